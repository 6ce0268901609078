package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactMessage struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Email     string    `json:"email" gorm:"type:varchar(255);not null"`
	Subject   string    `json:"subject" gorm:"type:varchar(255)"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	IsRead    bool      `json:"is_read" gorm:"column:is_read;default:false;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}

func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

type NewsletterSubscriber struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email     string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Locale    string    `json:"locale" gorm:"type:varchar(5);default:'fr'"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (NewsletterSubscriber) TableName() string {
	return "newsletter_subscribers"
}

func (n *NewsletterSubscriber) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

type NewsletterSubscribeRequest struct {
	Email  string `json:"email" binding:"required,email"`
	Locale string `json:"locale" binding:"omitempty,oneof=fr ar en"`
}

// AdminStats mirrors the admin dashboard overview card.
type AdminStats struct {
	TotalUsers       int     `json:"total_users"`
	TotalProducts    int     `json:"total_products"`
	TotalOrders      int     `json:"total_orders"`
	TotalContent     int     `json:"total_historical_content"`
	TotalTestimonial int     `json:"total_testimonials"`
	RecentUsers      int     `json:"recent_users"`
	RecentProducts   int     `json:"recent_products"`
	RecentOrders     int     `json:"recent_orders"`
	TotalRevenue     float64 `json:"total_revenue"`
}
