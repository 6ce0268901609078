package customization_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	customization_cache "github.com/yacbhl71/DELICES-DALGERIE-sub000/cache"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/config"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/models"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/services"
)

// loadSettings serves the singleton settings row, cache first, brand
// defaults when the row was never saved.
func loadSettings() models.Customization {
	if cached, ok := customization_cache.Get(); ok {
		return cached
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var settings models.Customization
	err := config.DB.WithContext(ctx).First(&settings, "id = ?", models.CustomizationID).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[customization.get] ⚠️ query failed, serving defaults: %v", err)
		}
		settings = models.DefaultCustomization()
	}

	customization_cache.Set(settings)
	return settings
}

// GetCustomization godoc
// @Summary Get the site theming settings
// @Tags Customization
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/customization [get]
func GetCustomization(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customization fetched", loadSettings()))
}

// GetThemeCSS godoc
// @Summary Get the theme as a CSS stylesheet
// @Description Renders the saved colors and fonts as CSS custom properties
// @Tags Customization
// @Produce text/css
// @Success 200 {string} string "CSS stylesheet"
// @Router /api/customization/theme.css [get]
func GetThemeCSS(c *gin.Context) {
	css := services.BuildThemeCSS(loadSettings())
	c.Header("Cache-Control", "public, max-age=300")
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(css))
}
