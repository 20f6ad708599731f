package store

import (
	"sort"
	"sync"
	"time"

	"github.com/pankajarora1984/chandan-sarees-api/models"
)

const maxInteractions = 50

// PreferenceStore accumulates stated preferences and an interaction tail
// per user. Purely advisory input for the recommendation adviser; no
// invariant depends on it.
type PreferenceStore struct {
	mu           sync.RWMutex
	preferences  map[string]models.Preferences
	interactions map[string][]models.Interaction
}

func NewPreferenceStore() *PreferenceStore {
	return &PreferenceStore{
		preferences:  make(map[string]models.Preferences),
		interactions: make(map[string][]models.Interaction),
	}
}

// Update merges the incoming preferences over the stored ones; incoming
// non-empty fields win.
func (s *PreferenceStore) Update(userID string, incoming models.Preferences) models.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := s.preferences[userID]
	if incoming.Occasion != "" {
		merged.Occasion = incoming.Occasion
	}
	if incoming.PriceRange != "" {
		merged.PriceRange = incoming.PriceRange
	}
	if incoming.Material != "" {
		merged.Material = incoming.Material
	}
	if incoming.Style != "" {
		merged.Style = incoming.Style
	}
	if incoming.Size != "" {
		merged.Size = incoming.Size
	}
	merged.LastUpdated = time.Now()
	s.preferences[userID] = merged
	return merged
}

func (s *PreferenceStore) Preferences(userID string) models.Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.preferences[userID]
}

// Track records one interaction, keeping only the most recent entries.
func (s *PreferenceStore) Track(userID, action, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := append(s.interactions[userID], models.Interaction{
		Action:    action,
		ProductID: productID,
		Timestamp: time.Now(),
	})
	if len(log) > maxInteractions {
		log = log[len(log)-maxInteractions:]
	}
	s.interactions[userID] = log
}

func (s *PreferenceStore) Interactions(userID string) []models.Interaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Interaction(nil), s.interactions[userID]...)
}

// TopCategories counts interactions per product category and returns the
// three most active ones.
func (s *PreferenceStore) TopCategories(userID string, products *ProductStore) []models.CategoryCount {
	counts := make(map[string]int)
	for _, interaction := range s.Interactions(userID) {
		if p, err := products.ByID(interaction.ProductID); err == nil {
			counts[p.Category]++
		}
	}

	out := make([]models.CategoryCount, 0, len(counts))
	for category, count := range counts {
		out = append(out, models.CategoryCount{Category: category, Count: count})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > 3 {
		out = out[:3]
	}
	return out
}
