package models

import "time"

type CouponType string

const (
	CouponPercentage CouponType = "percentage"
	CouponFixed      CouponType = "fixed"
)

// Cart holds one user's selected line items plus computed pricing.
// All money fields are integer rupees; the totals are recomputed by the
// cart store after every mutation.
type Cart struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	Items     []CartItem     `json:"items"`
	Subtotal  int            `json:"subtotal"`
	Tax       int            `json:"tax"`
	Shipping  int            `json:"shipping"`
	Coupon    *AppliedCoupon `json:"coupon,omitempty"`
	Total     int            `json:"total"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// CartItem is one cart line. The line id is unique per line, not per
// product: the same product can appear on several lines with different
// size/color selections. Name, price and image are denormalized from the
// catalog at add time.
type CartItem struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"productId"`
	Name          string    `json:"name"`
	Price         int       `json:"price"`
	OriginalPrice int       `json:"originalPrice"`
	Image         string    `json:"image"`
	SelectedSize  string    `json:"selectedSize"`
	SelectedColor string    `json:"selectedColor"`
	Quantity      int       `json:"quantity"`
	AddedAt       time.Time `json:"addedAt"`
}

// AppliedCoupon is the coupon stored on a cart. Discount is re-derived
// from Type/Value against the current subtotal on every recompute.
type AppliedCoupon struct {
	Code     string     `json:"code"`
	Type     CouponType `json:"type"`
	Value    int        `json:"value"`
	Discount int        `json:"discount"`
}
