package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pankajarora1984/chandan-sarees-api/models"
)

const (
	taxRatePercent    = 18   // GST
	freeShippingAbove = 2000 // subtotal strictly above this ships free
	flatShippingFee   = 100
	defaultSize       = "Free Size"
	defaultColor      = "Default"
)

// CartStore owns the per-user carts. One cart per user, created lazily on
// first access and never destroyed, only emptied. All mutations run under
// the store lock so a read-modify-recompute sequence is never interleaved
// with another request for the same user.
type CartStore struct {
	mu       sync.Mutex
	products *ProductStore
	carts    map[string]*models.Cart
}

func NewCartStore(products *ProductStore) *CartStore {
	return &CartStore{
		products: products,
		carts:    make(map[string]*models.Cart),
	}
}

// GetOrCreate returns the user's cart, creating an empty one on first
// access. Never fails.
func (s *CartStore) GetOrCreate(userID string) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshotCart(s.getOrCreate(userID))
}

// AddItem adds a product to the user's cart. A line already holding the
// same (product, size, color) triple has its quantity incremented instead
// of a second line being created.
func (s *CartStore) AddItem(userID, productID string, quantity int, size, color string) (models.Cart, string, error) {
	product, err := s.products.ByID(productID)
	if err != nil {
		return models.Cart{}, "", err
	}
	if quantity < 1 {
		quantity = 1
	}
	if size == "" {
		size = defaultSize
	}
	if color == "" {
		color = defaultColor
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.getOrCreate(userID)
	merged := false
	for i := range cart.Items {
		it := &cart.Items[i]
		if it.ProductID == productID && it.SelectedSize == size && it.SelectedColor == color {
			it.Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		image := ""
		if len(product.Images) > 0 {
			image = product.Images[0]
		}
		cart.Items = append(cart.Items, models.CartItem{
			ID:            uuid.NewString(),
			ProductID:     product.ID,
			Name:          product.Name,
			Price:         product.Price,
			OriginalPrice: product.OriginalPrice,
			Image:         image,
			SelectedSize:  size,
			SelectedColor: color,
			Quantity:      quantity,
			AddedAt:       time.Now(),
		})
	}

	recomputeCart(cart)
	return snapshotCart(cart), product.Name, nil
}

// UpdateItemQuantity sets the quantity of one cart line. A quantity of
// zero or below removes the line outright.
func (s *CartStore) UpdateItemQuantity(userID, itemID string, quantity int) (models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.getOrCreate(userID)
	idx := -1
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.Cart{}, ErrCartItemNotFound
	}

	if quantity < 1 {
		cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	} else {
		cart.Items[idx].Quantity = quantity
	}

	recomputeCart(cart)
	return snapshotCart(cart), nil
}

// RemoveItem deletes one line from the cart.
func (s *CartStore) RemoveItem(userID, itemID string) (models.Cart, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.getOrCreate(userID)
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			name := cart.Items[i].Name
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			recomputeCart(cart)
			return snapshotCart(cart), name, nil
		}
	}
	return models.Cart{}, "", ErrCartItemNotFound
}

// Clear empties the cart and drops any applied coupon.
func (s *CartStore) Clear(userID string) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.getOrCreate(userID)
	cart.Items = nil
	cart.Coupon = nil
	recomputeCart(cart)
	return snapshotCart(cart)
}

// ApplyCoupon validates a coupon against the current subtotal and stores
// it on the cart. Totals are recomputed with the discount included.
func (s *CartStore) ApplyCoupon(userID, code string) (models.Cart, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.getOrCreate(userID)
	canonical, rule, discount, err := EvaluateCoupon(code, cart.Subtotal)
	if err != nil {
		return models.Cart{}, 0, err
	}

	cart.Coupon = &models.AppliedCoupon{
		Code:     canonical,
		Type:     rule.Type,
		Value:    rule.Value,
		Discount: discount,
	}
	recomputeCart(cart)
	return snapshotCart(cart), discount, nil
}

// Count returns the total quantity across lines and the line count.
func (s *CartStore) Count(userID string) (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.getOrCreate(userID)
	count := 0
	for _, it := range cart.Items {
		count += it.Quantity
	}
	return count, len(cart.Items)
}

func (s *CartStore) getOrCreate(userID string) *models.Cart {
	if cart, ok := s.carts[userID]; ok {
		return cart
	}
	cart := &models.Cart{
		ID:        uuid.NewString(),
		UserID:    userID,
		Items:     nil,
		CreatedAt: time.Now(),
	}
	recomputeCart(cart)
	s.carts[userID] = cart
	return cart
}

// snapshotCart returns a value the caller can hold after the lock is
// released: the item slice and the coupon are copied, not aliased.
func snapshotCart(cart *models.Cart) models.Cart {
	out := *cart
	out.Items = append([]models.CartItem(nil), cart.Items...)
	if cart.Coupon != nil {
		coupon := *cart.Coupon
		out.Coupon = &coupon
	}
	return out
}

// recomputeCart re-derives subtotal, discount, tax, shipping and total
// from the current line items. Must run after every mutation.
//
//	subtotal = Σ(price × quantity)
//	tax      = round(18% × (subtotal − discount))
//	shipping = 0 if subtotal > 2000 else 100
//	total    = subtotal − discount + tax + shipping
func recomputeCart(cart *models.Cart) {
	subtotal := 0
	for _, it := range cart.Items {
		subtotal += it.Price * it.Quantity
	}

	discount := 0
	if cart.Coupon != nil {
		rule := CouponRule{Type: cart.Coupon.Type, Value: cart.Coupon.Value}
		discount = couponDiscount(rule, subtotal)
		cart.Coupon.Discount = discount
	}

	tax := decimal.NewFromInt(int64(subtotal - discount)).
		Mul(decimal.NewFromInt(taxRatePercent)).
		Div(decimal.NewFromInt(100)).
		Round(0)

	shipping := flatShippingFee
	if subtotal > freeShippingAbove {
		shipping = 0
	}

	cart.Subtotal = subtotal
	cart.Tax = int(tax.IntPart())
	cart.Shipping = shipping
	cart.Total = subtotal - discount + cart.Tax + shipping
	cart.UpdatedAt = time.Now()
}
