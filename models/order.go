package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending    OrderStatus = "pending"    // placed, awaiting confirmation
	OrderStatusConfirmed  OrderStatus = "confirmed"  // payment verified or confirmed by seller
	OrderStatusProcessing OrderStatus = "processing" // being packed
	OrderStatusShipped    OrderStatus = "shipped"    // out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // customer received the item
	OrderStatusCancelled  OrderStatus = "cancelled"  // cancelled before shipping
	OrderStatusRefunded   OrderStatus = "refunded"

	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// Address is a shipping or billing address as submitted at checkout.
type Address struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Line1    string `json:"line1"`
	Line2    string `json:"line2,omitempty"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
	Country  string `json:"country"`
}

type OrderAddresses struct {
	Shipping Address `json:"shipping"`
	Billing  Address `json:"billing"`
}

// OrderItem is a cart line frozen at order-creation time. It never
// references live cart or catalog state.
type OrderItem struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"productId"`
	Name          string    `json:"name"`
	Price         int       `json:"price"`
	OriginalPrice int       `json:"originalPrice"`
	Image         string    `json:"image"`
	SelectedSize  string    `json:"selectedSize"`
	SelectedColor string    `json:"selectedColor"`
	Quantity      int       `json:"quantity"`
	OrderedAt     time.Time `json:"orderedAt"`
}

// OrderPricing is the cart's pricing snapshot copied at creation.
type OrderPricing struct {
	Subtotal int `json:"subtotal"`
	Tax      int `json:"tax"`
	Shipping int `json:"shipping"`
	Discount int `json:"discount"`
	Total    int `json:"total"`
}

// StatusChange is one entry in an order's status history.
type StatusChange struct {
	From      OrderStatus `json:"from"`
	To        OrderStatus `json:"to"`
	Timestamp time.Time   `json:"timestamp"`
	Notes     string      `json:"notes,omitempty"`
}

// Order is immutable once created except for the status-machine fields
// (statuses, history, tracking, refund and the related timestamps).
type Order struct {
	ID                 string         `json:"id"`
	OrderNumber        string         `json:"orderNumber"`
	UserID             string         `json:"userId"`
	CartID             string         `json:"cartId"`
	Items              []OrderItem    `json:"items"`
	Pricing            OrderPricing   `json:"pricing"`
	Coupon             *AppliedCoupon `json:"coupon,omitempty"`
	Addresses          OrderAddresses `json:"addresses"`
	PaymentMethod      string         `json:"paymentMethod"`
	PaymentStatus      PaymentStatus  `json:"paymentStatus"`
	OrderStatus        OrderStatus    `json:"orderStatus"`
	StatusHistory      []StatusChange `json:"statusHistory"`
	TrackingNumber     string         `json:"trackingNumber,omitempty"`
	RazorpayOrderID    string         `json:"razorpayOrderId,omitempty"`
	RazorpayPaymentID  string         `json:"razorpayPaymentId,omitempty"`
	CancellationReason string         `json:"cancellationReason,omitempty"`
	RefundStatus       string         `json:"refundStatus,omitempty"`
	EstimatedDelivery  time.Time      `json:"estimatedDelivery"`
	PaymentCompletedAt *time.Time     `json:"paymentCompletedAt,omitempty"`
	ShippedAt          *time.Time     `json:"shippedAt,omitempty"`
	DeliveredAt        *time.Time     `json:"deliveredAt,omitempty"`
	CancelledAt        *time.Time     `json:"cancelledAt,omitempty"`
	RefundInitiatedAt  *time.Time     `json:"refundInitiatedAt,omitempty"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}

// TrackingInfo is the public view answered for an order number.
type TrackingInfo struct {
	OrderNumber       string         `json:"orderNumber"`
	Status            OrderStatus    `json:"status"`
	TrackingNumber    string         `json:"trackingNumber,omitempty"`
	EstimatedDelivery time.Time      `json:"estimatedDelivery"`
	StatusHistory     []StatusChange `json:"statusHistory"`
	CurrentLocation   string         `json:"currentLocation"`
	LastUpdated       time.Time      `json:"lastUpdated"`
}

// OrderStats is the aggregate block on the admin order listing.
type OrderStats struct {
	Total        int `json:"total"`
	Pending      int `json:"pending"`
	Confirmed    int `json:"confirmed"`
	Shipped      int `json:"shipped"`
	Delivered    int `json:"delivered"`
	Cancelled    int `json:"cancelled"`
	TotalRevenue int `json:"totalRevenue"`
}
