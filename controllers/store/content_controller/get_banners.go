package content_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yacbhl71/DELICES-DALGERIE-sub000/config"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/models"
)

// GetBanners godoc
// @Summary List active hero banners in display order
// @Tags Content
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/banners [get]
func GetBanners(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var banners []models.Banner
	if err := config.DB.WithContext(ctx).
		Where("is_active = true").
		Order("sort_order ASC, created_at ASC").
		Find(&banners).Error; err != nil {
		log.Printf("[banners.list] ❌ query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Banners fetched", banners))
}

// GetNavigation godoc
// @Summary List active navigation items in menu order
// @Tags Content
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/navigation [get]
func GetNavigation(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var items []models.NavigationItem
	if err := config.DB.WithContext(ctx).
		Where("is_active = true").
		Order("sort_order ASC, created_at ASC").
		Find(&items).Error; err != nil {
		log.Printf("[navigation.list] ❌ query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Navigation fetched", items))
}
