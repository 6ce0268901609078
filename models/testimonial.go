package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Testimonial struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CustomerName string    `json:"customer_name" gorm:"type:varchar(255);not null"`
	Rating       int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment      string    `json:"comment" gorm:"type:text;not null"`
	Locale       string    `json:"locale" gorm:"type:varchar(5);default:'fr'"`
	IsApproved   bool      `json:"is_approved" gorm:"column:is_approved;default:false;index"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Testimonial) TableName() string {
	return "testimonials"
}

func (t *Testimonial) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

type TestimonialRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	Comment      string `json:"comment" binding:"required"`
	Locale       string `json:"locale" binding:"omitempty,oneof=fr ar en"`
}
