package store

import (
	"errors"
	"testing"
)

func TestEvaluateCoupon(t *testing.T) {
	cases := []struct {
		name     string
		code     string
		subtotal int
		discount int
	}{
		{"welcome ten percent", "WELCOME10", 2000, 200},
		{"lowercase code accepted", "welcome10", 2000, 200},
		{"code with whitespace", "  Welcome10 ", 2000, 200},
		{"percentage rounds half up", "WELCOME10", 1005, 101},
		{"flat five hundred", "FLAT500", 2500, 500},
		{"festival twenty percent", "FESTIVAL20", 10000, 2000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			canonical, _, discount, err := EvaluateCoupon(tc.code, tc.subtotal)
			if err != nil {
				t.Fatalf("EvaluateCoupon(%q, %d) returned error: %v", tc.code, tc.subtotal, err)
			}
			if discount != tc.discount {
				t.Errorf("discount = %d, want %d", discount, tc.discount)
			}
			if canonical == "" {
				t.Errorf("expected canonical code, got empty string")
			}
		})
	}
}

func TestEvaluateCouponUnknownCode(t *testing.T) {
	_, _, _, err := EvaluateCoupon("NOSUCHCODE", 10000)
	if !errors.Is(err, ErrInvalidCoupon) {
		t.Fatalf("expected ErrInvalidCoupon, got %v", err)
	}
}

func TestEvaluateCouponBelowMinimum(t *testing.T) {
	_, _, _, err := EvaluateCoupon("WELCOME10", 500)

	var minErr *CouponMinimumError
	if !errors.As(err, &minErr) {
		t.Fatalf("expected CouponMinimumError, got %v", err)
	}
	if minErr.MinAmount != 1000 {
		t.Errorf("MinAmount = %d, want 1000", minErr.MinAmount)
	}
}

func TestEvaluateCouponMinimumIsInclusive(t *testing.T) {
	_, _, discount, err := EvaluateCoupon("WELCOME10", 1000)
	if err != nil {
		t.Fatalf("subtotal equal to minimum should qualify, got %v", err)
	}
	if discount != 100 {
		t.Errorf("discount = %d, want 100", discount)
	}
}
