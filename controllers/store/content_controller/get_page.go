package content_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yacbhl71/DELICES-DALGERIE-sub000/config"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/models"
)

// GetPageBySlug godoc
// @Summary Get a published page by slug
// @Tags Content
// @Produce json
// @Param slug path string true "Page slug"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/pages/{slug} [get]
func GetPageBySlug(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var page models.Page
	if err := config.DB.WithContext(ctx).
		Where("slug = ? AND is_published = true", c.Param("slug")).
		First(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Page not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Page fetched", page))
}

// GetFooter godoc
// @Summary Get the footer payload
// @Description Site identity, active navigation and published page links in one call
// @Tags Content
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/footer [get]
func GetFooter(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var settings models.Customization
	if err := config.DB.WithContext(ctx).First(&settings, "id = ?", models.CustomizationID).Error; err != nil {
		settings = models.DefaultCustomization()
	}

	var navigation []models.NavigationItem
	config.DB.WithContext(ctx).
		Where("is_active = true").
		Order("sort_order ASC").
		Find(&navigation)

	var pages []models.Page
	config.DB.WithContext(ctx).
		Select("slug", "title").
		Where("is_published = true").
		Order("created_at ASC").
		Find(&pages)

	footer := gin.H{
		"site_name":   settings.SiteName,
		"site_slogan": settings.SiteSlogan,
		"logo_url":    settings.LogoURL,
		"navigation":  navigation,
		"pages":       pages,
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Footer fetched", footer))
}
