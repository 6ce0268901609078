package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

var (
	ErrPromoNotActive = errors.New("promo code is not active")
	ErrPromoExpired   = errors.New("promo code has expired")
	ErrPromoExhausted = errors.New("promo code usage limit reached")
	ErrPromoMinAmount = errors.New("order amount below promo code minimum")
)

type PromoCode struct {
	ID                uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	Code              string        `json:"code" gorm:"type:varchar(50);uniqueIndex;not null"`
	Description       LocalizedText `json:"description" gorm:"type:jsonb;not null;default:'{}'"`
	DiscountType      string        `json:"discount_type" gorm:"type:varchar(20);not null;check:discount_type IN ('percentage', 'fixed')"`
	DiscountValue     float64       `json:"discount_value" gorm:"type:numeric(12,2);not null;check:discount_value >= 0"`
	MinOrderAmount    float64       `json:"min_order_amount" gorm:"type:numeric(12,2);default:0"`
	MaxDiscountAmount *float64      `json:"max_discount_amount,omitempty" gorm:"type:numeric(12,2)"`
	UsageLimit        *int          `json:"usage_limit,omitempty"`
	UsageCount        int           `json:"usage_count" gorm:"default:0"`
	IsActive          bool          `json:"is_active" gorm:"column:is_active;default:true;index"`
	ExpiresAt         *time.Time    `json:"expires_at,omitempty"`
	CreatedAt         time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

func (PromoCode) TableName() string {
	return "promo_codes"
}

func (p *PromoCode) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	p.Code = strings.ToUpper(strings.TrimSpace(p.Code))
	return nil
}

// Validate checks whether the code may be applied to an order of the given
// amount at the given instant.
func (p *PromoCode) Validate(orderAmount float64, now time.Time) error {
	if !p.IsActive {
		return ErrPromoNotActive
	}
	if p.ExpiresAt != nil && now.After(*p.ExpiresAt) {
		return ErrPromoExpired
	}
	if p.UsageLimit != nil && p.UsageCount >= *p.UsageLimit {
		return ErrPromoExhausted
	}
	if orderAmount < p.MinOrderAmount {
		return ErrPromoMinAmount
	}
	return nil
}

// Discount returns the amount to subtract from an order of the given total.
// Percentage discounts honor MaxDiscountAmount; the result never exceeds
// the order amount, so applying and later removing a code restores the
// original total exactly.
func (p *PromoCode) Discount(orderAmount float64) float64 {
	var d float64
	switch p.DiscountType {
	case DiscountTypePercentage:
		d = orderAmount * p.DiscountValue / 100
		if p.MaxDiscountAmount != nil && d > *p.MaxDiscountAmount {
			d = *p.MaxDiscountAmount
		}
	case DiscountTypeFixed:
		d = p.DiscountValue
	default:
		return 0
	}
	if d > orderAmount {
		d = orderAmount
	}
	if d < 0 {
		d = 0
	}
	return d
}

type PromoCodeRequest struct {
	Code              string        `json:"code" binding:"required"`
	Description       LocalizedText `json:"description"`
	DiscountType      string        `json:"discount_type" binding:"required,oneof=percentage fixed"`
	DiscountValue     float64       `json:"discount_value" binding:"required,min=0"`
	MinOrderAmount    float64       `json:"min_order_amount" binding:"min=0"`
	MaxDiscountAmount *float64      `json:"max_discount_amount"`
	UsageLimit        *int          `json:"usage_limit"`
	IsActive          *bool         `json:"is_active"`
	ExpiresAt         *time.Time    `json:"expires_at"`
}

type ValidatePromoRequest struct {
	Code        string  `json:"code" binding:"required"`
	OrderAmount float64 `json:"order_amount" binding:"min=0"`
}

type ValidatePromoResponse struct {
	Valid          bool    `json:"valid"`
	Code           string  `json:"code"`
	DiscountAmount float64 `json:"discount_amount"`
	FinalAmount    float64 `json:"final_amount"`
	Reason         string  `json:"reason,omitempty"`
}
