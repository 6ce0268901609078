package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Regions covered by the heritage pages.
var ContentRegions = []string{"algerie", "kabylie", "vallee-soumam"}

type HistoricalContent struct {
	ID        uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	Title     LocalizedText `json:"title" gorm:"type:jsonb;not null;default:'{}'"`
	Content   LocalizedText `json:"content" gorm:"type:jsonb;not null;default:'{}'"`
	Region    string        `json:"region" gorm:"type:varchar(50);not null;index"`
	ImageURLs StringList    `json:"image_urls" gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
	CreatedBy *uuid.UUID    `json:"created_by,omitempty" gorm:"type:uuid"`
}

func (HistoricalContent) TableName() string {
	return "historical_content"
}

func (h *HistoricalContent) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

type HistoricalContentRequest struct {
	Title     LocalizedText `json:"title" binding:"required"`
	Content   LocalizedText `json:"content" binding:"required"`
	Region    string        `json:"region" binding:"required"`
	ImageURLs []string      `json:"image_urls"`
}

type UpdateHistoricalContentRequest struct {
	Title     *LocalizedText `json:"title"`
	Content   *LocalizedText `json:"content"`
	Region    *string        `json:"region"`
	ImageURLs *[]string      `json:"image_urls"`
}
