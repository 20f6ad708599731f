package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pankajarora1984/chandan-sarees-api/models"
)

var knownContactStatuses = map[models.ContactStatus]bool{
	models.ContactStatusNew:      true,
	models.ContactStatusRead:     true,
	models.ContactStatusReplied:  true,
	models.ContactStatusResolved: true,
}

// ContactStore keeps submitted contact-form messages in memory.
type ContactStore struct {
	mu       sync.Mutex
	messages []*models.ContactMessage
}

func NewContactStore() *ContactStore {
	return &ContactStore{}
}

// Submit stores a new message with status "new".
func (s *ContactStore) Submit(name, email, phone, subject, message, ip, userAgent string) models.ContactMessage {
	if subject == "" {
		subject = "General Inquiry"
	}
	now := time.Now()
	msg := &models.ContactMessage{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(name),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Phone:     strings.TrimSpace(phone),
		Subject:   strings.TrimSpace(subject),
		Message:   strings.TrimSpace(message),
		Status:    models.ContactStatusNew,
		IPAddress: ip,
		UserAgent: userAgent,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.mu.Unlock()
	return *msg
}

// ContactFilter narrows and orders the admin message listing.
type ContactFilter struct {
	Status models.ContactStatus
	Search string
	SortBy string
	Page   int
	Limit  int
}

func (s *ContactStore) List(f ContactFilter) ([]models.ContactMessage, models.Pagination, models.ContactSummary) {
	s.mu.Lock()
	var summary models.ContactSummary
	var filtered []models.ContactMessage
	for _, msg := range s.messages {
		summary.Total++
		switch msg.Status {
		case models.ContactStatusNew:
			summary.New++
		case models.ContactStatusRead:
			summary.Read++
		case models.ContactStatusReplied:
			summary.Replied++
		case models.ContactStatusResolved:
			summary.Resolved++
		}
		if f.Status != "" && msg.Status != f.Status {
			continue
		}
		if f.Search != "" && !messageMatches(*msg, f.Search) {
			continue
		}
		filtered = append(filtered, *msg)
	}
	s.mu.Unlock()

	switch f.SortBy {
	case "oldest":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].CreatedAt.Before(filtered[j].CreatedAt) })
	case "name":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Name < filtered[j].Name })
	case "status":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Status < filtered[j].Status })
	default: // newest
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].CreatedAt.After(filtered[j].CreatedAt) })
	}

	if f.Limit < 1 {
		f.Limit = 20
	}
	bounds, pagination := paginate(len(filtered), f.Page, f.Limit)
	return filtered[bounds.start:bounds.end], pagination, summary
}

// ByID fetches one message, flipping "new" to "read" as a side effect.
func (s *ContactStore) ByID(id string) (models.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, msg := range s.messages {
		if msg.ID == id {
			if msg.Status == models.ContactStatusNew {
				msg.Status = models.ContactStatusRead
				msg.UpdatedAt = time.Now()
			}
			return *msg, nil
		}
	}
	return models.ContactMessage{}, ErrMessageNotFound
}

// UpdateStatus sets status and/or admin notes on a message.
func (s *ContactStore) UpdateStatus(id string, status models.ContactStatus, adminNotes string) (models.ContactMessage, error) {
	if status != "" && !knownContactStatuses[status] {
		return models.ContactMessage{}, ErrInvalidContactStatus
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, msg := range s.messages {
		if msg.ID == id {
			if status != "" {
				msg.Status = status
			}
			if adminNotes != "" {
				msg.AdminNotes = adminNotes
			}
			msg.UpdatedAt = time.Now()
			return *msg, nil
		}
	}
	return models.ContactMessage{}, ErrMessageNotFound
}

func (s *ContactStore) Delete(id string) (models.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, msg := range s.messages {
		if msg.ID == id {
			deleted := *msg
			s.messages = append(s.messages[:i], s.messages[i+1:]...)
			return deleted, nil
		}
	}
	return models.ContactMessage{}, ErrMessageNotFound
}

func messageMatches(msg models.ContactMessage, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(msg.Name), term) ||
		strings.Contains(strings.ToLower(msg.Email), term) ||
		strings.Contains(strings.ToLower(msg.Subject), term) ||
		strings.Contains(strings.ToLower(msg.Message), term)
}
