package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NavigationItem is one entry of the header menu, admin-orderable.
type NavigationItem struct {
	ID        uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	Label     LocalizedText `json:"label" gorm:"type:jsonb;not null;default:'{}'"`
	URL       string        `json:"url" gorm:"type:varchar(255);not null"`
	IsActive  bool          `json:"is_active" gorm:"column:is_active;default:true;index"`
	Order     int           `json:"order" gorm:"column:sort_order;default:0;index"`
	CreatedAt time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

func (NavigationItem) TableName() string {
	return "navigation_items"
}

func (n *NavigationItem) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

type NavigationItemRequest struct {
	Label    LocalizedText `json:"label" binding:"required"`
	URL      string        `json:"url" binding:"required"`
	IsActive *bool         `json:"is_active"`
	Order    int           `json:"order"`
}

// ReorderRequest carries the full new ordering, index position wins.
type ReorderRequest struct {
	Items []ReorderEntry `json:"items" binding:"required,min=1,dive"`
}

type ReorderEntry struct {
	ID    string `json:"id" binding:"required"`
	Order int    `json:"order"`
}
