package store

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrSlugTaken            = errors.New("category with this name already exists")
	ErrCategoryHasProducts  = errors.New("cannot delete category with existing products")
	ErrCartItemNotFound     = errors.New("cart item not found")
	ErrInvalidCoupon        = errors.New("invalid coupon code")
	ErrOrderNotFound        = errors.New("order not found")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrOrderNotCancellable  = errors.New("order cannot be cancelled at this stage")
	ErrInvalidOrderStatus   = errors.New("invalid order status")
	ErrSignatureMismatch    = errors.New("payment verification failed")
	ErrPaymentGateway       = errors.New("payment gateway error")
	ErrMessageNotFound      = errors.New("contact message not found")
	ErrInvalidContactStatus = errors.New("invalid contact message status")
)

// CouponMinimumError rejects a coupon whose minimum order amount is not
// reached by the cart subtotal.
type CouponMinimumError struct {
	Code      string
	MinAmount int
}

func (e *CouponMinimumError) Error() string {
	return fmt.Sprintf("minimum order amount of ₹%d required for this coupon", e.MinAmount)
}
