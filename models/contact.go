package models

import "time"

type ContactStatus string

const (
	ContactStatusNew      ContactStatus = "new"
	ContactStatusRead     ContactStatus = "read"
	ContactStatusReplied  ContactStatus = "replied"
	ContactStatusResolved ContactStatus = "resolved"
)

type ContactMessage struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	Phone      string        `json:"phone,omitempty"`
	Subject    string        `json:"subject"`
	Message    string        `json:"message"`
	Status     ContactStatus `json:"status"`
	AdminNotes string        `json:"adminNotes,omitempty"`
	IPAddress  string        `json:"ipAddress,omitempty"`
	UserAgent  string        `json:"userAgent,omitempty"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

// ContactSummary is the per-status breakdown on the admin listing.
type ContactSummary struct {
	Total    int `json:"total"`
	New      int `json:"new"`
	Read     int `json:"read"`
	Replied  int `json:"replied"`
	Resolved int `json:"resolved"`
}
