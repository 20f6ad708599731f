package models

import "time"

type Category struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"` // derived from Name, unique
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	ProductCount int       `json:"productCount"` // derived from the catalog on read
	Featured     bool      `json:"featured"`
	Tags         []string  `json:"tags"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
