package customization_controller

import (
	"errors"
	"log"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	customization_cache "github.com/yacbhl71/DELICES-DALGERIE-sub000/cache"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/config"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/models"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// GetCustomization godoc
// @Summary Get the current theming settings for editing
// @Tags Admin - Customization
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /api/admin/customization [get]
func GetCustomization(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var settings models.Customization
	err := config.DB.WithContext(ctx).First(&settings, "id = ?", models.CustomizationID).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
			return
		}
		settings = models.DefaultCustomization()
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customization fetched", settings))
}

// UpdateCustomization godoc
// @Summary Update the site theming settings
// @Description Only the provided fields change; the singleton row is created on first save
// @Tags Admin - Customization
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CustomizationRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse
// @Router /api/admin/customization [put]
func UpdateCustomization(c *gin.Context) {
	var req models.CustomizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	for _, hex := range []*string{req.PrimaryColor, req.SecondaryColor, req.AccentColor} {
		if hex != nil && !hexColorPattern.MatchString(*hex) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Colors must be #RRGGBB hex values"))
			return
		}
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var settings models.Customization
	err := config.DB.WithContext(ctx).First(&settings, "id = ?", models.CustomizationID).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
			return
		}
		settings = models.DefaultCustomization()
	}

	if req.SiteName != nil {
		settings.SiteName = *req.SiteName
	}
	if req.SiteSlogan != nil {
		settings.SiteSlogan = *req.SiteSlogan
	}
	if req.LogoURL != nil {
		settings.LogoURL = req.LogoURL
	}
	if req.FaviconURL != nil {
		settings.FaviconURL = req.FaviconURL
	}
	if req.PrimaryColor != nil {
		settings.PrimaryColor = *req.PrimaryColor
	}
	if req.SecondaryColor != nil {
		settings.SecondaryColor = *req.SecondaryColor
	}
	if req.AccentColor != nil {
		settings.AccentColor = *req.AccentColor
	}
	if req.FontHeading != nil {
		settings.FontHeading = *req.FontHeading
	}
	if req.FontBody != nil {
		settings.FontBody = *req.FontBody
	}

	if err := config.DB.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&settings).Error; err != nil {
		log.Printf("[admin.customization.update] ❌ save failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save customization"))
		return
	}

	customization_cache.Invalidate()
	log.Printf("[admin.customization.update] ✅ settings saved")
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customization saved", settings))
}
