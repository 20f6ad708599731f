package store

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pankajarora1984/chandan-sarees-api/models"
)

// CouponRule is one entry in the fixed coupon table.
type CouponRule struct {
	Type      models.CouponType
	Value     int
	MinAmount int
}

// Coupon codes are matched case-insensitively against this table. There
// is no expiry and no usage limit.
var coupons = map[string]CouponRule{
	"WELCOME10":  {Type: models.CouponPercentage, Value: 10, MinAmount: 1000},
	"FLAT500":    {Type: models.CouponFixed, Value: 500, MinAmount: 2000},
	"FESTIVAL20": {Type: models.CouponPercentage, Value: 20, MinAmount: 5000},
}

// EvaluateCoupon resolves a code against the table and computes the
// discount for the given subtotal. It returns the canonical code, the
// rule and the discount amount, or ErrInvalidCoupon / CouponMinimumError.
func EvaluateCoupon(code string, subtotal int) (string, CouponRule, int, error) {
	canonical := strings.ToUpper(strings.TrimSpace(code))
	rule, ok := coupons[canonical]
	if !ok {
		return "", CouponRule{}, 0, ErrInvalidCoupon
	}
	if subtotal < rule.MinAmount {
		return "", CouponRule{}, 0, &CouponMinimumError{Code: canonical, MinAmount: rule.MinAmount}
	}
	return canonical, rule, couponDiscount(rule, subtotal), nil
}

// couponDiscount computes the discount a rule yields on a subtotal.
// Percentage discounts round half-up to the nearest rupee.
func couponDiscount(rule CouponRule, subtotal int) int {
	if rule.Type == models.CouponFixed {
		return rule.Value
	}
	d := decimal.NewFromInt(int64(subtotal)).
		Mul(decimal.NewFromInt(int64(rule.Value))).
		Div(decimal.NewFromInt(100)).
		Round(0)
	return int(d.IntPart())
}
