package models

import "time"

// Preferences are the stated shopping preferences for one user. Stored
// preferences are merged with request-supplied ones; the request wins on
// any non-empty field.
type Preferences struct {
	Occasion    string    `json:"occasion,omitempty"`
	PriceRange  string    `json:"priceRange,omitempty"` // budget | moderate | premium
	Material    string    `json:"material,omitempty"`
	Style       string    `json:"style,omitempty"`
	Size        string    `json:"size,omitempty"`
	LastUpdated time.Time `json:"lastUpdated,omitempty"`
}

// Interaction is one recorded user action (view, add-to-cart, ...).
type Interaction struct {
	Action    string    `json:"action"`
	ProductID string    `json:"productId"`
	Timestamp time.Time `json:"timestamp"`
}

// Recommendation is one ranked catalog product with the reason it was
// picked.
type Recommendation struct {
	Product     Product `json:"product"`
	Score       float64 `json:"score"`
	Reason      string  `json:"reason"`
	Explanation string  `json:"explanation"`
}

// CategoryCount pairs a category slug with an interaction count.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}
