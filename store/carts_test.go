package store

import (
	"errors"
	"testing"
)

func newCartFixture(t *testing.T) (*ProductStore, *CartStore) {
	t.Helper()
	products := NewProductStore()
	products.Seed(SeedProducts())
	return products, NewCartStore(products)
}

func TestAddItemComputesTotals(t *testing.T) {
	_, carts := newCartFixture(t)

	// Banarasi Silk Saree, ₹15999, qty 2
	cart, name, err := carts.AddItem("u1", "1", 2, "Free Size", "Red")
	if err != nil {
		t.Fatalf("AddItem returned error: %v", err)
	}
	if name != "Banarasi Silk Saree" {
		t.Errorf("product name = %q", name)
	}

	if cart.Subtotal != 31998 {
		t.Errorf("subtotal = %d, want 31998", cart.Subtotal)
	}
	if cart.Tax != 5760 { // 18% of 31998 = 5759.64, rounds up
		t.Errorf("tax = %d, want 5760", cart.Tax)
	}
	if cart.Shipping != 0 {
		t.Errorf("shipping = %d, want 0 above free-shipping threshold", cart.Shipping)
	}
	if want := 31998 + 5760; cart.Total != want {
		t.Errorf("total = %d, want %d", cart.Total, want)
	}
}

func TestAddItemMergesSameSelection(t *testing.T) {
	_, carts := newCartFixture(t)

	if _, _, err := carts.AddItem("u1", "1", 1, "Free Size", "Red"); err != nil {
		t.Fatal(err)
	}
	cart, _, err := carts.AddItem("u1", "1", 2, "Free Size", "Red")
	if err != nil {
		t.Fatal(err)
	}

	if len(cart.Items) != 1 {
		t.Fatalf("expected merged line, got %d lines", len(cart.Items))
	}
	if cart.Items[0].Quantity != 3 {
		t.Errorf("quantity = %d, want 3", cart.Items[0].Quantity)
	}

	// Same product, different colour, gets its own line.
	cart, _, err = carts.AddItem("u1", "1", 1, "Free Size", "Blue")
	if err != nil {
		t.Fatal(err)
	}
	if len(cart.Items) != 2 {
		t.Errorf("expected separate line for new colour, got %d lines", len(cart.Items))
	}
}

func TestAddItemUnknownProduct(t *testing.T) {
	_, carts := newCartFixture(t)

	_, _, err := carts.AddItem("u1", "no-such-product", 1, "", "")
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestAddItemAppliesDefaults(t *testing.T) {
	_, carts := newCartFixture(t)

	cart, _, err := carts.AddItem("u1", "3", 0, "", "")
	if err != nil {
		t.Fatal(err)
	}
	item := cart.Items[0]
	if item.Quantity != 1 {
		t.Errorf("quantity = %d, want 1", item.Quantity)
	}
	if item.SelectedSize != "Free Size" || item.SelectedColor != "Default" {
		t.Errorf("defaults not applied: size=%q color=%q", item.SelectedSize, item.SelectedColor)
	}
}

func TestReturnedCartDetachedFromStore(t *testing.T) {
	_, carts := newCartFixture(t)

	returned, _, err := carts.AddItem("u1", "1", 2, "", "")
	if err != nil {
		t.Fatal(err)
	}
	withCoupon, _, err := carts.ApplyCoupon("u1", "WELCOME10")
	if err != nil {
		t.Fatal(err)
	}

	// Mutating the returned copies must not reach into store state.
	returned.Items[0].Quantity = 99
	withCoupon.Coupon.Discount = 1

	stored := carts.GetOrCreate("u1")
	if stored.Items[0].Quantity != 2 {
		t.Errorf("store quantity = %d after mutating a returned copy, want 2", stored.Items[0].Quantity)
	}
	if stored.Coupon == nil || stored.Coupon.Discount != 3200 {
		t.Errorf("store coupon = %+v after mutating a returned copy", stored.Coupon)
	}
}

func TestUpdateQuantityToZeroRemovesLine(t *testing.T) {
	_, carts := newCartFixture(t)

	cart, _, err := carts.AddItem("u1", "3", 2, "", "")
	if err != nil {
		t.Fatal(err)
	}
	itemID := cart.Items[0].ID

	cart, err = carts.UpdateItemQuantity("u1", itemID, 0)
	if err != nil {
		t.Fatalf("UpdateItemQuantity returned error: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Errorf("expected empty cart, got %d lines", len(cart.Items))
	}
	if cart.Subtotal != 0 || cart.Total != 100 {
		t.Errorf("empty cart totals: subtotal=%d total=%d, want 0 and 100", cart.Subtotal, cart.Total)
	}
}

func TestUpdateQuantityUnknownItem(t *testing.T) {
	_, carts := newCartFixture(t)

	_, err := carts.UpdateItemQuantity("u1", "missing", 2)
	if !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}
}

func TestApplyCouponAtBoundary(t *testing.T) {
	products, carts := newCartFixture(t)

	// Custom ₹1000 product so the subtotal lands exactly on 2000.
	p := products.Create(ProductInput{
		Name: "Plain Cotton Saree", Description: "Everyday wear",
		Price: 1000, Category: "cotton-sarees",
	})
	if _, _, err := carts.AddItem("u1", p.ID, 2, "", ""); err != nil {
		t.Fatal(err)
	}

	cart, discount, err := carts.ApplyCoupon("u1", "WELCOME10")
	if err != nil {
		t.Fatalf("ApplyCoupon returned error: %v", err)
	}
	if discount != 200 {
		t.Errorf("discount = %d, want 200", discount)
	}
	if cart.Tax != 324 { // 18% of 1800
		t.Errorf("tax = %d, want 324", cart.Tax)
	}
	// Subtotal of exactly 2000 is not strictly above the threshold.
	if cart.Shipping != 100 {
		t.Errorf("shipping = %d, want 100", cart.Shipping)
	}
	if want := 2000 - 200 + 324 + 100; cart.Total != want {
		t.Errorf("total = %d, want %d", cart.Total, want)
	}
}

func TestApplyCouponBelowMinimum(t *testing.T) {
	products, carts := newCartFixture(t)

	p := products.Create(ProductInput{
		Name: "Handkerchief", Description: "Small accessory",
		Price: 500, Category: "cotton-sarees",
	})
	if _, _, err := carts.AddItem("u1", p.ID, 1, "", ""); err != nil {
		t.Fatal(err)
	}

	_, _, err := carts.ApplyCoupon("u1", "WELCOME10")
	var minErr *CouponMinimumError
	if !errors.As(err, &minErr) {
		t.Fatalf("expected CouponMinimumError, got %v", err)
	}
}

func TestCouponDiscountTracksCartChanges(t *testing.T) {
	_, carts := newCartFixture(t)

	if _, _, err := carts.AddItem("u1", "4", 1, "", ""); err != nil { // ₹8999
		t.Fatal(err)
	}
	cart, _, err := carts.ApplyCoupon("u1", "WELCOME10")
	if err != nil {
		t.Fatal(err)
	}
	if cart.Coupon == nil || cart.Coupon.Discount != 900 {
		t.Fatalf("initial discount wrong: %+v", cart.Coupon)
	}

	// Adding more stock re-derives the percentage discount.
	cart, _, err = carts.AddItem("u1", "4", 1, "", "")
	if err != nil {
		t.Fatal(err)
	}
	if cart.Coupon == nil || cart.Coupon.Discount != 1800 {
		t.Errorf("discount after growth = %+v, want 1800", cart.Coupon)
	}
}

func TestClearDropsCoupon(t *testing.T) {
	_, carts := newCartFixture(t)

	if _, _, err := carts.AddItem("u1", "2", 1, "", ""); err != nil {
		t.Fatal(err)
	}
	if _, _, err := carts.ApplyCoupon("u1", "FESTIVAL20"); err != nil {
		t.Fatal(err)
	}

	cart := carts.Clear("u1")
	if cart.Coupon != nil {
		t.Errorf("coupon survived Clear: %+v", cart.Coupon)
	}
	if len(cart.Items) != 0 || cart.Subtotal != 0 || cart.Total != 100 {
		t.Errorf("cleared cart: items=%d subtotal=%d total=%d", len(cart.Items), cart.Subtotal, cart.Total)
	}
}

func TestRemoveItemKeepsCoupon(t *testing.T) {
	_, carts := newCartFixture(t)

	if _, _, err := carts.AddItem("u1", "2", 1, "", ""); err != nil { // ₹25999
		t.Fatal(err)
	}
	cart, _, err := carts.AddItem("u1", "1", 1, "", "") // ₹15999
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := carts.ApplyCoupon("u1", "FESTIVAL20"); err != nil {
		t.Fatal(err)
	}

	var removeID string
	for _, it := range cart.Items {
		if it.ProductID == "1" {
			removeID = it.ID
		}
	}
	cart, _, err = carts.RemoveItem("u1", removeID)
	if err != nil {
		t.Fatal(err)
	}
	if cart.Coupon == nil {
		t.Fatal("coupon dropped by RemoveItem")
	}
	if cart.Coupon.Discount != 5200 { // 20% of 25999 = 5199.8, rounds up
		t.Errorf("discount = %d, want 5200", cart.Coupon.Discount)
	}
}

func TestFreshCartHasBaseShipping(t *testing.T) {
	_, carts := newCartFixture(t)

	cart := carts.GetOrCreate("brand-new")
	if cart.Subtotal != 0 || cart.Shipping != 100 || cart.Total != 100 {
		t.Errorf("fresh cart: subtotal=%d shipping=%d total=%d", cart.Subtotal, cart.Shipping, cart.Total)
	}
}

func TestCountSumsQuantities(t *testing.T) {
	_, carts := newCartFixture(t)

	if _, _, err := carts.AddItem("u1", "1", 2, "", ""); err != nil {
		t.Fatal(err)
	}
	if _, _, err := carts.AddItem("u1", "3", 1, "", ""); err != nil {
		t.Fatal(err)
	}

	count, lines := carts.Count("u1")
	if count != 3 || lines != 2 {
		t.Errorf("Count = (%d, %d), want (3, 2)", count, lines)
	}
}
