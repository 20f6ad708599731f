package models

import "time"

// Product is catalog reference data. Prices are integer rupees.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         int       `json:"price"`
	OriginalPrice int       `json:"originalPrice"`
	Category      string    `json:"category"`
	CategoryName  string    `json:"categoryName"`
	Images        []string  `json:"images"`
	Colors        []string  `json:"colors"`
	Sizes         []string  `json:"sizes"`
	Material      string    `json:"material"`
	Occasion      []string  `json:"occasion"`
	InStock       bool      `json:"inStock"`
	Featured      bool      `json:"featured"`
	Rating        float64   `json:"rating"`
	Reviews       int       `json:"reviews"`
	Tags          []string  `json:"tags"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Pagination is the shared page envelope returned by list endpoints.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalItems  int  `json:"totalItems"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
}
