package models

import (
	"errors"
	"testing"
	"time"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestPercentageDiscount(t *testing.T) {
	promo := PromoCode{DiscountType: DiscountTypePercentage, DiscountValue: 10}

	if got := promo.Discount(200); got != 20 {
		t.Errorf("expected 20, got %v", got)
	}
}

func TestPercentageDiscountHonorsCap(t *testing.T) {
	promo := PromoCode{
		DiscountType:      DiscountTypePercentage,
		DiscountValue:     50,
		MaxDiscountAmount: floatPtr(15),
	}

	if got := promo.Discount(200); got != 15 {
		t.Errorf("expected capped discount 15, got %v", got)
	}
	// Below the cap the raw percentage applies.
	if got := promo.Discount(20); got != 10 {
		t.Errorf("expected 10, got %v", got)
	}
}

func TestFixedDiscount(t *testing.T) {
	promo := PromoCode{DiscountType: DiscountTypeFixed, DiscountValue: 5}

	if got := promo.Discount(50); got != 5 {
		t.Errorf("expected 5, got %v", got)
	}
}

func TestDiscountNeverExceedsOrderAmount(t *testing.T) {
	promo := PromoCode{DiscountType: DiscountTypeFixed, DiscountValue: 30}

	if got := promo.Discount(12); got != 12 {
		t.Errorf("expected discount clamped to 12, got %v", got)
	}
}

func TestDiscountIsRemovable(t *testing.T) {
	promo := PromoCode{DiscountType: DiscountTypePercentage, DiscountValue: 25}

	orderAmount := 80.0
	discounted := orderAmount - promo.Discount(orderAmount)
	restored := discounted + promo.Discount(orderAmount)

	if restored != orderAmount {
		t.Errorf("removing the code should restore %v, got %v", orderAmount, restored)
	}
}

func TestUnknownDiscountTypeYieldsZero(t *testing.T) {
	promo := PromoCode{DiscountType: "bogus", DiscountValue: 50}

	if got := promo.Discount(100); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}

func TestValidateInactive(t *testing.T) {
	promo := PromoCode{IsActive: false}

	if err := promo.Validate(100, time.Now()); !errors.Is(err, ErrPromoNotActive) {
		t.Errorf("expected ErrPromoNotActive, got %v", err)
	}
}

func TestValidateExpired(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	promo := PromoCode{IsActive: true, ExpiresAt: &past}

	if err := promo.Validate(100, time.Now()); !errors.Is(err, ErrPromoExpired) {
		t.Errorf("expected ErrPromoExpired, got %v", err)
	}
}

func TestValidateNotYetExpired(t *testing.T) {
	future := time.Now().Add(time.Hour)
	promo := PromoCode{IsActive: true, ExpiresAt: &future}

	if err := promo.Validate(100, time.Now()); err != nil {
		t.Errorf("expected valid, got %v", err)
	}
}

func TestValidateExhausted(t *testing.T) {
	promo := PromoCode{IsActive: true, UsageLimit: intPtr(3), UsageCount: 3}

	if err := promo.Validate(100, time.Now()); !errors.Is(err, ErrPromoExhausted) {
		t.Errorf("expected ErrPromoExhausted, got %v", err)
	}
}

func TestValidateMinOrderAmount(t *testing.T) {
	promo := PromoCode{IsActive: true, MinOrderAmount: 50}

	if err := promo.Validate(49.99, time.Now()); !errors.Is(err, ErrPromoMinAmount) {
		t.Errorf("expected ErrPromoMinAmount, got %v", err)
	}
	if err := promo.Validate(50, time.Now()); err != nil {
		t.Errorf("expected valid at the exact minimum, got %v", err)
	}
}
