package store

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pankajarora1984/chandan-sarees-api/models"
	"github.com/pankajarora1984/chandan-sarees-api/payment"
)

const orderNumberPrefix = "CS"

// PaymentGateway is what the order store needs from Razorpay; the
// concrete client lives in the payment package.
type PaymentGateway interface {
	CreateOrder(amountPaise int, receipt string, notes map[string]string) (payment.Order, error)
	VerifySignature(razorpayOrderID, razorpayPaymentID, signature string) bool
}

// cancellableStatuses is the single source of truth consulted by Cancel.
// Orders past confirmation cannot be cancelled.
var cancellableStatuses = map[models.OrderStatus]bool{
	models.OrderStatusPending:   true,
	models.OrderStatusConfirmed: true,
}

var knownOrderStatuses = map[models.OrderStatus]bool{
	models.OrderStatusPending:    true,
	models.OrderStatusConfirmed:  true,
	models.OrderStatusProcessing: true,
	models.OrderStatusShipped:    true,
	models.OrderStatusDelivered:  true,
	models.OrderStatusCancelled:  true,
	models.OrderStatusRefunded:   true,
}

// OrderStore owns the in-memory order list and drives the order status
// machine. OnStatusChange, when set, is invoked (outside the lock) for
// every transition so callers can fan updates out to listeners.
type OrderStore struct {
	mu             sync.Mutex
	orders         []*models.Order
	gateway        PaymentGateway
	OnStatusChange func(order models.Order, change models.StatusChange)
}

func NewOrderStore(gateway PaymentGateway) *OrderStore {
	return &OrderStore{gateway: gateway}
}

// CreateOrderInput carries everything needed to freeze a cart into an
// order.
type CreateOrderInput struct {
	UserID          string
	Cart            models.Cart
	ShippingAddress models.Address
	BillingAddress  *models.Address
	PaymentMethod   string
}

// Create snapshots the cart into a new order. Items and pricing are
// copied so later cart mutations cannot change a placed order. When the
// payment method is razorpay a gateway-side intent is requested first; if
// that fails the order is not stored.
func (s *OrderStore) Create(in CreateOrderInput) (models.Order, error) {
	if len(in.Cart.Items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	now := time.Now()
	billing := in.ShippingAddress
	if in.BillingAddress != nil {
		billing = *in.BillingAddress
	}

	items := make([]models.OrderItem, 0, len(in.Cart.Items))
	for _, it := range in.Cart.Items {
		items = append(items, models.OrderItem{
			ID:            it.ID,
			ProductID:     it.ProductID,
			Name:          it.Name,
			Price:         it.Price,
			OriginalPrice: it.OriginalPrice,
			Image:         it.Image,
			SelectedSize:  it.SelectedSize,
			SelectedColor: it.SelectedColor,
			Quantity:      it.Quantity,
			OrderedAt:     now,
		})
	}

	discount := 0
	var coupon *models.AppliedCoupon
	if in.Cart.Coupon != nil {
		c := *in.Cart.Coupon
		coupon = &c
		discount = c.Discount
	}

	order := &models.Order{
		ID:          uuid.NewString(),
		OrderNumber: generateOrderNumber(),
		UserID:      in.UserID,
		CartID:      in.Cart.ID,
		Items:       items,
		Pricing: models.OrderPricing{
			Subtotal: in.Cart.Subtotal,
			Tax:      in.Cart.Tax,
			Shipping: in.Cart.Shipping,
			Discount: discount,
			Total:    in.Cart.Total,
		},
		Coupon: coupon,
		Addresses: models.OrderAddresses{
			Shipping: in.ShippingAddress,
			Billing:  billing,
		},
		PaymentMethod:     in.PaymentMethod,
		PaymentStatus:     models.PaymentStatusPending,
		OrderStatus:       models.OrderStatusPending,
		EstimatedDelivery: now.Add(7 * 24 * time.Hour),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if in.PaymentMethod == "razorpay" {
		if s.gateway == nil {
			return models.Order{}, fmt.Errorf("%w: gateway not configured", ErrPaymentGateway)
		}
		gwOrder, err := s.gateway.CreateOrder(order.Pricing.Total*100, order.OrderNumber, map[string]string{
			"orderId": order.ID,
			"userId":  order.UserID,
		})
		if err != nil {
			return models.Order{}, fmt.Errorf("%w: %v", ErrPaymentGateway, err)
		}
		order.RazorpayOrderID = gwOrder.ID
	}

	s.mu.Lock()
	s.orders = append(s.orders, order)
	s.mu.Unlock()

	return cloneOrder(order), nil
}

// VerifyPayment checks the gateway signature for an order. On a match
// the payment completes and the order confirms; on a mismatch the payment
// is marked failed and ErrSignatureMismatch is returned together with the
// updated order.
func (s *OrderStore) VerifyPayment(orderID, razorpayOrderID, razorpayPaymentID, signature string) (models.Order, error) {
	s.mu.Lock()
	order := s.findByID(orderID)
	if order == nil {
		s.mu.Unlock()
		return models.Order{}, ErrOrderNotFound
	}

	now := time.Now()
	if s.gateway == nil || !s.gateway.VerifySignature(razorpayOrderID, razorpayPaymentID, signature) {
		order.PaymentStatus = models.PaymentStatusFailed
		order.UpdatedAt = now
		snapshot := cloneOrder(order)
		s.mu.Unlock()
		return snapshot, ErrSignatureMismatch
	}

	order.PaymentStatus = models.PaymentStatusCompleted
	order.RazorpayPaymentID = razorpayPaymentID
	order.PaymentCompletedAt = &now
	change := s.transition(order, models.OrderStatusConfirmed, "payment verified")
	snapshot := cloneOrder(order)
	s.mu.Unlock()

	s.notify(snapshot, change)
	return snapshot, nil
}

// Cancel rejects orders past the cancellable stages. Cancelling a paid
// order marks a refund as initiated; no refund is executed.
func (s *OrderStore) Cancel(orderID, reason string) (models.Order, error) {
	s.mu.Lock()
	order := s.findByID(orderID)
	if order == nil {
		s.mu.Unlock()
		return models.Order{}, ErrOrderNotFound
	}
	if !cancellableStatuses[order.OrderStatus] {
		s.mu.Unlock()
		return models.Order{}, ErrOrderNotCancellable
	}

	if reason == "" {
		reason = "Cancelled by customer"
	}
	now := time.Now()
	change := s.transition(order, models.OrderStatusCancelled, reason)
	order.CancellationReason = reason
	order.CancelledAt = &now
	if order.PaymentStatus == models.PaymentStatusCompleted {
		order.RefundStatus = "initiated"
		order.RefundInitiatedAt = &now
	}
	snapshot := cloneOrder(order)
	s.mu.Unlock()

	s.notify(snapshot, change)
	return snapshot, nil
}

// UpdateStatus moves an order to any recognized status (admin path).
// Tracking data is captured on shipped, delivery time on delivered.
func (s *OrderStore) UpdateStatus(orderID string, status models.OrderStatus, trackingNumber, notes string) (models.Order, error) {
	if !knownOrderStatuses[status] {
		return models.Order{}, ErrInvalidOrderStatus
	}

	s.mu.Lock()
	order := s.findByID(orderID)
	if order == nil {
		s.mu.Unlock()
		return models.Order{}, ErrOrderNotFound
	}

	now := time.Now()
	change := s.transition(order, status, notes)
	if status == models.OrderStatusShipped && trackingNumber != "" {
		order.TrackingNumber = trackingNumber
		order.ShippedAt = &now
	}
	if status == models.OrderStatusDelivered {
		order.DeliveredAt = &now
	}
	snapshot := cloneOrder(order)
	s.mu.Unlock()

	s.notify(snapshot, change)
	return snapshot, nil
}

// Track answers the public tracking view for an order number.
func (s *OrderStore) Track(orderNumber string) (models.TrackingInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, order := range s.orders {
		if order.OrderNumber == orderNumber {
			return models.TrackingInfo{
				OrderNumber:       order.OrderNumber,
				Status:            order.OrderStatus,
				TrackingNumber:    order.TrackingNumber,
				EstimatedDelivery: order.EstimatedDelivery,
				StatusHistory:     append([]models.StatusChange(nil), order.StatusHistory...),
				CurrentLocation:   "Processing Center",
				LastUpdated:       order.UpdatedAt,
			}, nil
		}
	}
	return models.TrackingInfo{}, ErrOrderNotFound
}

func (s *OrderStore) ByID(orderID string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if order := s.findByID(orderID); order != nil {
		return cloneOrder(order), nil
	}
	return models.Order{}, ErrOrderNotFound
}

// ListByUser returns one user's orders newest-first, optionally filtered
// by status.
func (s *OrderStore) ListByUser(userID string, status models.OrderStatus, page, limit int) ([]models.Order, models.Pagination) {
	s.mu.Lock()
	var filtered []models.Order
	for _, order := range s.orders {
		if order.UserID != userID {
			continue
		}
		if status != "" && order.OrderStatus != status {
			continue
		}
		filtered = append(filtered, cloneOrder(order))
	}
	s.mu.Unlock()

	sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].CreatedAt.After(filtered[j].CreatedAt) })
	bounds, pagination := paginate(len(filtered), page, limit)
	return filtered[bounds.start:bounds.end], pagination
}

// AdminList returns all orders with sorting, pagination and aggregate
// stats. Revenue counts completed payments only.
func (s *OrderStore) AdminList(status models.OrderStatus, sortBy string, page, limit int) ([]models.Order, models.Pagination, models.OrderStats) {
	s.mu.Lock()
	var stats models.OrderStats
	var filtered []models.Order
	for _, order := range s.orders {
		stats.Total++
		switch order.OrderStatus {
		case models.OrderStatusPending:
			stats.Pending++
		case models.OrderStatusConfirmed:
			stats.Confirmed++
		case models.OrderStatusShipped:
			stats.Shipped++
		case models.OrderStatusDelivered:
			stats.Delivered++
		case models.OrderStatusCancelled:
			stats.Cancelled++
		}
		if order.PaymentStatus == models.PaymentStatusCompleted {
			stats.TotalRevenue += order.Pricing.Total
		}
		if status != "" && order.OrderStatus != status {
			continue
		}
		filtered = append(filtered, cloneOrder(order))
	}
	s.mu.Unlock()

	switch sortBy {
	case "oldest":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].CreatedAt.Before(filtered[j].CreatedAt) })
	case "amount_high":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Pricing.Total > filtered[j].Pricing.Total })
	case "amount_low":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Pricing.Total < filtered[j].Pricing.Total })
	default: // newest
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].CreatedAt.After(filtered[j].CreatedAt) })
	}

	bounds, pagination := paginate(len(filtered), page, limit)
	return filtered[bounds.start:bounds.end], pagination, stats
}

// ParseOrderStatus maps a request string onto a recognized status.
func ParseOrderStatus(status string) (models.OrderStatus, error) {
	candidate := models.OrderStatus(status)
	if !knownOrderStatuses[candidate] {
		return "", ErrInvalidOrderStatus
	}
	return candidate, nil
}

// transition appends a history entry and flips the status. Caller holds
// the lock.
func (s *OrderStore) transition(order *models.Order, to models.OrderStatus, notes string) models.StatusChange {
	change := models.StatusChange{
		From:      order.OrderStatus,
		To:        to,
		Timestamp: time.Now(),
		Notes:     notes,
	}
	order.StatusHistory = append(order.StatusHistory, change)
	order.OrderStatus = to
	order.UpdatedAt = change.Timestamp
	return change
}

// cloneOrder returns a value safe to hold after the lock is released:
// the item and history slices and the coupon are copied, not aliased.
// Caller holds the lock.
func cloneOrder(order *models.Order) models.Order {
	out := *order
	out.Items = append([]models.OrderItem(nil), order.Items...)
	out.StatusHistory = append([]models.StatusChange(nil), order.StatusHistory...)
	if order.Coupon != nil {
		coupon := *order.Coupon
		out.Coupon = &coupon
	}
	return out
}

func (s *OrderStore) notify(order models.Order, change models.StatusChange) {
	if s.OnStatusChange != nil {
		s.OnStatusChange(order, change)
	}
}

func (s *OrderStore) findByID(orderID string) *models.Order {
	for _, order := range s.orders {
		if order.ID == orderID {
			return order
		}
	}
	return nil
}

// generateOrderNumber builds the human-readable reference: prefix, the
// last six digits of the millisecond clock, three random digits.
func generateOrderNumber() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 10)
	return orderNumberPrefix + ts[len(ts)-6:] + fmt.Sprintf("%03d", rand.Intn(1000))
}
