package models

import (
	"time"

	"gorm.io/gorm"
)

// CustomizationID pins the settings to a single row.
const CustomizationID = 1

// Customization is the singleton site theming record: branding, colors,
// fonts. Fetched once at startup by clients and applied as global
// presentation state.
type Customization struct {
	ID             int           `json:"-" gorm:"primaryKey"`
	SiteName       LocalizedText `json:"site_name" gorm:"type:jsonb;not null;default:'{}'"`
	SiteSlogan     LocalizedText `json:"site_slogan" gorm:"type:jsonb;not null;default:'{}'"`
	LogoURL        *string       `json:"logo_url" gorm:"type:text"`
	FaviconURL     *string       `json:"favicon_url" gorm:"type:text"`
	PrimaryColor   string        `json:"primary_color" gorm:"type:varchar(9);default:'#6B8E23'"`
	SecondaryColor string        `json:"secondary_color" gorm:"type:varchar(9);default:'#8B7355'"`
	AccentColor    string        `json:"accent_color" gorm:"type:varchar(9);default:'#F59E0B'"`
	FontHeading    string        `json:"font_heading" gorm:"type:varchar(100);default:'Inter'"`
	FontBody       string        `json:"font_body" gorm:"type:varchar(100);default:'Inter'"`
	UpdatedAt      time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Customization) TableName() string {
	return "customizations"
}

func (c *Customization) BeforeCreate(tx *gorm.DB) error {
	c.ID = CustomizationID
	return nil
}

// DefaultCustomization is served when the settings row has never been
// saved, so the site renders with the brand defaults instead of failing.
func DefaultCustomization() Customization {
	return Customization{
		ID: CustomizationID,
		SiteName: LocalizedText{
			LocaleFR: "Délices et Trésors d'Algérie",
			LocaleEN: "Délices et Trésors d'Algérie",
			LocaleAR: "لذائذ وكنوز الجزائر",
		},
		SiteSlogan: LocalizedText{
			LocaleFR: "Découvrez nos trésors : dattes Deglet Nour et huile d'olive kabyle authentique",
			LocaleEN: "Discover our treasures: Deglet Nour dates and authentic Kabyle olive oil",
			LocaleAR: "اكتشف كنوزنا: تمور دقلة نور وزيت الزيتون القبائلي الأصيل",
		},
		PrimaryColor:   "#6B8E23",
		SecondaryColor: "#8B7355",
		AccentColor:    "#F59E0B",
		FontHeading:    "Inter",
		FontBody:       "Inter",
	}
}

type CustomizationRequest struct {
	SiteName       *LocalizedText `json:"site_name"`
	SiteSlogan     *LocalizedText `json:"site_slogan"`
	LogoURL        *string        `json:"logo_url"`
	FaviconURL     *string        `json:"favicon_url"`
	PrimaryColor   *string        `json:"primary_color"`
	SecondaryColor *string        `json:"secondary_color"`
	AccentColor    *string        `json:"accent_color"`
	FontHeading    *string        `json:"font_heading"`
	FontBody       *string        `json:"font_body"`
}
