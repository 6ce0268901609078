package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Banner is one slide of the home hero slider.
type Banner struct {
	ID        uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	Title     LocalizedText `json:"title" gorm:"type:jsonb;not null;default:'{}'"`
	Subtitle  LocalizedText `json:"subtitle" gorm:"type:jsonb;not null;default:'{}'"`
	ImageURL  string        `json:"image_url" gorm:"type:text;not null"`
	CTALink   string        `json:"cta_link" gorm:"column:cta_link;type:varchar(255)"`
	IsActive  bool          `json:"is_active" gorm:"column:is_active;default:true;index"`
	Order     int           `json:"order" gorm:"column:sort_order;default:0;index"`
	CreatedAt time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Banner) TableName() string {
	return "banners"
}

func (b *Banner) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

type BannerRequest struct {
	Title    LocalizedText `json:"title" binding:"required"`
	Subtitle LocalizedText `json:"subtitle"`
	ImageURL string        `json:"image_url" binding:"required"`
	CTALink  string        `json:"cta_link"`
	IsActive *bool         `json:"is_active"`
	Order    int           `json:"order"`
}
