package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Page is an admin-authored custom page served at /pages/:slug.
type Page struct {
	ID          uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	Slug        string        `json:"slug" gorm:"type:varchar(100);uniqueIndex;not null"`
	Title       LocalizedText `json:"title" gorm:"type:jsonb;not null;default:'{}'"`
	Content     LocalizedText `json:"content" gorm:"type:jsonb;not null;default:'{}'"`
	IsPublished bool          `json:"is_published" gorm:"column:is_published;default:false;index"`
	CreatedAt   time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Page) TableName() string {
	return "pages"
}

func (p *Page) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

type PageRequest struct {
	Slug        string        `json:"slug" binding:"required"`
	Title       LocalizedText `json:"title" binding:"required"`
	Content     LocalizedText `json:"content" binding:"required"`
	IsPublished *bool         `json:"is_published"`
}
