package store

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/pankajarora1984/chandan-sarees-api/models"
	"github.com/pankajarora1984/chandan-sarees-api/payment"
)

// fakeGateway stands in for Razorpay.
type fakeGateway struct {
	failCreate     bool
	validSignature string
}

func (g *fakeGateway) CreateOrder(amountPaise int, receipt string, notes map[string]string) (payment.Order, error) {
	if g.failCreate {
		return payment.Order{}, fmt.Errorf("gateway down")
	}
	return payment.Order{ID: "order_fake123", Amount: amountPaise, Currency: "INR", Receipt: receipt, Status: "created"}, nil
}

func (g *fakeGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return signature == g.validSignature
}

func newOrderFixture(t *testing.T, gw PaymentGateway) (*CartStore, *OrderStore) {
	t.Helper()
	products := NewProductStore()
	products.Seed(SeedProducts())
	return NewCartStore(products), NewOrderStore(gw)
}

func testAddress() models.Address {
	return models.Address{
		FullName: "Priya Sharma", Phone: "+91 98765 43210",
		Line1: "42 MG Road", City: "Bangalore", State: "Karnataka",
		Pincode: "560001", Country: "India",
	}
}

func placeCODOrder(t *testing.T, carts *CartStore, orders *OrderStore, userID string) models.Order {
	t.Helper()
	if _, _, err := carts.AddItem(userID, "1", 2, "", ""); err != nil {
		t.Fatal(err)
	}
	order, err := orders.Create(CreateOrderInput{
		UserID:          userID,
		Cart:            carts.GetOrCreate(userID),
		ShippingAddress: testAddress(),
		PaymentMethod:   "cod",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	return order
}

func TestCreateOrderSnapshotsCart(t *testing.T) {
	carts, orders := newOrderFixture(t, &fakeGateway{})
	order := placeCODOrder(t, carts, orders, "u1")

	if order.OrderStatus != models.OrderStatusPending {
		t.Errorf("status = %s, want pending", order.OrderStatus)
	}
	if order.PaymentStatus != models.PaymentStatusPending {
		t.Errorf("payment status = %s, want pending", order.PaymentStatus)
	}
	if order.Pricing.Subtotal != 31998 || order.Pricing.Total != 37758 {
		t.Errorf("pricing = %+v", order.Pricing)
	}
	if !strings.HasPrefix(order.OrderNumber, "CS") || len(order.OrderNumber) != 11 {
		t.Errorf("order number %q not in CS format", order.OrderNumber)
	}

	// Later cart mutations must not leak into the placed order.
	if _, _, err := carts.AddItem("u1", "2", 5, "", ""); err != nil {
		t.Fatal(err)
	}
	stored, err := orders.ByID(order.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(stored.Items) != 1 || stored.Pricing.Total != 37758 {
		t.Errorf("order changed after cart mutation: items=%d total=%d", len(stored.Items), stored.Pricing.Total)
	}
}

func TestListedOrderDetachedFromStore(t *testing.T) {
	carts, orders := newOrderFixture(t, &fakeGateway{})
	order := placeCODOrder(t, carts, orders, "u1")
	if _, err := orders.UpdateStatus(order.ID, models.OrderStatusConfirmed, "", ""); err != nil {
		t.Fatal(err)
	}

	list, _ := orders.ListByUser("u1", "", 1, 10)
	if len(list) != 1 {
		t.Fatalf("got %d orders", len(list))
	}

	// Mutating the listed copy must not reach into store state.
	list[0].Items[0].Quantity = 99
	list[0].StatusHistory[0].Notes = "tampered"

	stored, err := orders.ByID(order.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Items[0].Quantity != 2 {
		t.Errorf("store quantity = %d after mutating a listed copy, want 2", stored.Items[0].Quantity)
	}
	if stored.StatusHistory[0].Notes == "tampered" {
		t.Error("status history aliased to store state")
	}
}

func TestCreateOrderEmptyCart(t *testing.T) {
	carts, orders := newOrderFixture(t, &fakeGateway{})

	_, err := orders.Create(CreateOrderInput{
		UserID:          "u1",
		Cart:            carts.GetOrCreate("u1"),
		ShippingAddress: testAddress(),
		PaymentMethod:   "cod",
	})
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestCreateRazorpayOrderRequestsIntent(t *testing.T) {
	carts, orders := newOrderFixture(t, &fakeGateway{})
	if _, _, err := carts.AddItem("u1", "3", 1, "", ""); err != nil {
		t.Fatal(err)
	}

	order, err := orders.Create(CreateOrderInput{
		UserID:          "u1",
		Cart:            carts.GetOrCreate("u1"),
		ShippingAddress: testAddress(),
		PaymentMethod:   "razorpay",
	})
	if err != nil {
		t.Fatal(err)
	}
	if order.RazorpayOrderID != "order_fake123" {
		t.Errorf("RazorpayOrderID = %q", order.RazorpayOrderID)
	}
}

func TestCreateRazorpayOrderGatewayFailure(t *testing.T) {
	carts, orders := newOrderFixture(t, &fakeGateway{failCreate: true})
	if _, _, err := carts.AddItem("u1", "3", 1, "", ""); err != nil {
		t.Fatal(err)
	}

	_, err := orders.Create(CreateOrderInput{
		UserID:          "u1",
		Cart:            carts.GetOrCreate("u1"),
		ShippingAddress: testAddress(),
		PaymentMethod:   "razorpay",
	})
	if !errors.Is(err, ErrPaymentGateway) {
		t.Fatalf("expected ErrPaymentGateway, got %v", err)
	}

	// A failed intent must not leave a half-created order behind.
	list, _ := orders.ListByUser("u1", "", 1, 10)
	if len(list) != 0 {
		t.Errorf("found %d orders after gateway failure, want 0", len(list))
	}
}

func TestVerifyPayment(t *testing.T) {
	gw := &fakeGateway{validSignature: "good-signature"}
	carts, orders := newOrderFixture(t, gw)
	if _, _, err := carts.AddItem("u1", "3", 1, "", ""); err != nil {
		t.Fatal(err)
	}
	order, err := orders.Create(CreateOrderInput{
		UserID:          "u1",
		Cart:            carts.GetOrCreate("u1"),
		ShippingAddress: testAddress(),
		PaymentMethod:   "razorpay",
	})
	if err != nil {
		t.Fatal(err)
	}

	verified, err := orders.VerifyPayment(order.ID, order.RazorpayOrderID, "pay_abc", "good-signature")
	if err != nil {
		t.Fatalf("VerifyPayment returned error: %v", err)
	}
	if verified.PaymentStatus != models.PaymentStatusCompleted {
		t.Errorf("payment status = %s, want completed", verified.PaymentStatus)
	}
	if verified.OrderStatus != models.OrderStatusConfirmed {
		t.Errorf("order status = %s, want confirmed", verified.OrderStatus)
	}
	if verified.PaymentCompletedAt == nil {
		t.Error("PaymentCompletedAt not set")
	}
}

func TestVerifyPaymentBadSignature(t *testing.T) {
	gw := &fakeGateway{validSignature: "good-signature"}
	carts, orders := newOrderFixture(t, gw)
	if _, _, err := carts.AddItem("u1", "3", 1, "", ""); err != nil {
		t.Fatal(err)
	}
	order, err := orders.Create(CreateOrderInput{
		UserID:          "u1",
		Cart:            carts.GetOrCreate("u1"),
		ShippingAddress: testAddress(),
		PaymentMethod:   "razorpay",
	})
	if err != nil {
		t.Fatal(err)
	}

	failed, err := orders.VerifyPayment(order.ID, order.RazorpayOrderID, "pay_abc", "forged")
	if !errors.Is(err, ErrSignatureMismatch) {
		t.Fatalf("expected ErrSignatureMismatch, got %v", err)
	}
	if failed.PaymentStatus != models.PaymentStatusFailed {
		t.Errorf("payment status = %s, want failed", failed.PaymentStatus)
	}
	if failed.OrderStatus != models.OrderStatusPending {
		t.Errorf("order status = %s, should stay pending", failed.OrderStatus)
	}
}

func TestCancelPendingOrder(t *testing.T) {
	carts, orders := newOrderFixture(t, &fakeGateway{})
	order := placeCODOrder(t, carts, orders, "u1")

	cancelled, err := orders.Cancel(order.ID, "")
	if err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}
	if cancelled.OrderStatus != models.OrderStatusCancelled {
		t.Errorf("status = %s, want cancelled", cancelled.OrderStatus)
	}
	if cancelled.CancellationReason != "Cancelled by customer" {
		t.Errorf("default reason = %q", cancelled.CancellationReason)
	}
	if cancelled.RefundStatus != "" {
		t.Errorf("unpaid order should not initiate refund, got %q", cancelled.RefundStatus)
	}
}

func TestCancelShippedOrderRejected(t *testing.T) {
	carts, orders := newOrderFixture(t, &fakeGateway{})
	order := placeCODOrder(t, carts, orders, "u1")

	if _, err := orders.UpdateStatus(order.ID, models.OrderStatusShipped, "TRK123", ""); err != nil {
		t.Fatal(err)
	}
	_, err := orders.Cancel(order.ID, "changed my mind")
	if !errors.Is(err, ErrOrderNotCancellable) {
		t.Fatalf("expected ErrOrderNotCancellable, got %v", err)
	}
}

func TestCancelPaidOrderInitiatesRefund(t *testing.T) {
	gw := &fakeGateway{validSignature: "sig"}
	carts, orders := newOrderFixture(t, gw)
	if _, _, err := carts.AddItem("u1", "3", 1, "", ""); err != nil {
		t.Fatal(err)
	}
	order, err := orders.Create(CreateOrderInput{
		UserID:          "u1",
		Cart:            carts.GetOrCreate("u1"),
		ShippingAddress: testAddress(),
		PaymentMethod:   "razorpay",
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := orders.VerifyPayment(order.ID, order.RazorpayOrderID, "pay_abc", "sig"); err != nil {
		t.Fatal(err)
	}

	cancelled, err := orders.Cancel(order.ID, "ordered twice")
	if err != nil {
		t.Fatal(err)
	}
	if cancelled.RefundStatus != "initiated" {
		t.Errorf("refund status = %q, want initiated", cancelled.RefundStatus)
	}
	if cancelled.RefundInitiatedAt == nil {
		t.Error("RefundInitiatedAt not set")
	}
}

func TestUpdateStatusRecordsHistoryAndTracking(t *testing.T) {
	carts, orders := newOrderFixture(t, &fakeGateway{})
	order := placeCODOrder(t, carts, orders, "u1")

	for _, status := range []models.OrderStatus{
		models.OrderStatusConfirmed,
		models.OrderStatusProcessing,
	} {
		if _, err := orders.UpdateStatus(order.ID, status, "", ""); err != nil {
			t.Fatal(err)
		}
	}
	shipped, err := orders.UpdateStatus(order.ID, models.OrderStatusShipped, "TRK123", "left warehouse")
	if err != nil {
		t.Fatal(err)
	}

	if shipped.TrackingNumber != "TRK123" {
		t.Errorf("tracking number = %q", shipped.TrackingNumber)
	}
	if shipped.ShippedAt == nil {
		t.Error("ShippedAt not set")
	}
	if len(shipped.StatusHistory) != 3 {
		t.Fatalf("history length = %d, want 3", len(shipped.StatusHistory))
	}
	last := shipped.StatusHistory[2]
	if last.From != models.OrderStatusProcessing || last.To != models.OrderStatusShipped {
		t.Errorf("last transition %s -> %s", last.From, last.To)
	}
	if last.Notes != "left warehouse" {
		t.Errorf("notes = %q", last.Notes)
	}
}

func TestUpdateStatusUnknownValue(t *testing.T) {
	carts, orders := newOrderFixture(t, &fakeGateway{})
	order := placeCODOrder(t, carts, orders, "u1")

	_, err := orders.UpdateStatus(order.ID, models.OrderStatus("teleported"), "", "")
	if !errors.Is(err, ErrInvalidOrderStatus) {
		t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
	}
}

func TestTrackByOrderNumber(t *testing.T) {
	carts, orders := newOrderFixture(t, &fakeGateway{})
	order := placeCODOrder(t, carts, orders, "u1")
	if _, err := orders.UpdateStatus(order.ID, models.OrderStatusShipped, "TRK555", ""); err != nil {
		t.Fatal(err)
	}

	info, err := orders.Track(order.OrderNumber)
	if err != nil {
		t.Fatalf("Track returned error: %v", err)
	}
	if info.Status != models.OrderStatusShipped || info.TrackingNumber != "TRK555" {
		t.Errorf("tracking info = %+v", info)
	}
	if len(info.StatusHistory) != 1 {
		t.Errorf("history length = %d, want 1", len(info.StatusHistory))
	}

	if _, err := orders.Track("CS000000000"); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound for unknown number, got %v", err)
	}
}

func TestStatusChangeCallback(t *testing.T) {
	carts, orders := newOrderFixture(t, &fakeGateway{})

	var changes []models.StatusChange
	orders.OnStatusChange = func(order models.Order, change models.StatusChange) {
		changes = append(changes, change)
	}

	order := placeCODOrder(t, carts, orders, "u1")
	if _, err := orders.UpdateStatus(order.ID, models.OrderStatusConfirmed, "", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := orders.Cancel(order.ID, "test"); err != nil {
		t.Fatal(err)
	}

	if len(changes) != 2 {
		t.Fatalf("got %d callbacks, want 2", len(changes))
	}
	if changes[1].To != models.OrderStatusCancelled {
		t.Errorf("last callback to %s", changes[1].To)
	}
}

func TestAdminListStats(t *testing.T) {
	carts, orders := newOrderFixture(t, &fakeGateway{})
	first := placeCODOrder(t, carts, orders, "u1")
	placeCODOrder(t, carts, orders, "u2")

	if _, err := orders.Cancel(first.ID, ""); err != nil {
		t.Fatal(err)
	}

	_, _, stats := orders.AdminList("", "newest", 1, 20)
	if stats.Total != 2 || stats.Pending != 1 || stats.Cancelled != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.TotalRevenue != 0 {
		t.Errorf("revenue should count completed payments only, got %d", stats.TotalRevenue)
	}

	list, _, _ := orders.AdminList(models.OrderStatusCancelled, "newest", 1, 20)
	if len(list) != 1 || list[0].ID != first.ID {
		t.Errorf("status filter returned %d orders", len(list))
	}
}
