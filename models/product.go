package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product categories carried over from the storefront navigation.
var ProductCategories = []string{"epices", "thes", "robes-kabyles", "bijoux-kabyles"}

type Product struct {
	ID          uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	Name        LocalizedText `json:"name" gorm:"type:jsonb;not null;default:'{}'"`
	Description LocalizedText `json:"description" gorm:"type:jsonb;not null;default:'{}'"`
	Category    string        `json:"category" gorm:"type:varchar(50);not null;index"`
	Price       float64       `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	Currency    string        `json:"currency" gorm:"type:varchar(3);default:'EUR'"`
	ImageURLs   StringList    `json:"image_urls" gorm:"type:jsonb;not null;default:'[]'"`
	InStock     bool          `json:"in_stock" gorm:"column:in_stock;default:true;index"`
	Origin      LocalizedText `json:"origin" gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt   time.Time     `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
	CreatedBy   *uuid.UUID    `json:"created_by,omitempty" gorm:"type:uuid"`
}

func (Product) TableName() string {
	return "products"
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

type ProductRequest struct {
	Name        LocalizedText `json:"name" binding:"required"`
	Description LocalizedText `json:"description" binding:"required"`
	Category    string        `json:"category" binding:"required"`
	Price       float64       `json:"price" binding:"min=0"`
	Currency    string        `json:"currency"`
	ImageURLs   []string      `json:"image_urls"`
	Origin      LocalizedText `json:"origin"`
	InStock     *bool         `json:"in_stock"`
}

type UpdateProductRequest struct {
	Name        *LocalizedText `json:"name"`
	Description *LocalizedText `json:"description"`
	Category    *string        `json:"category"`
	Price       *float64       `json:"price" binding:"omitempty,min=0"`
	Currency    *string        `json:"currency"`
	ImageURLs   *[]string      `json:"image_urls"`
	Origin      *LocalizedText `json:"origin"`
	InStock     *bool          `json:"in_stock"`
}
