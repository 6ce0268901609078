package promo_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yacbhl71/DELICES-DALGERIE-sub000/config"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/models"
)

// GetActivePromoCodes godoc
// @Summary List currently usable promo codes
// @Tags Promo codes
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/promo-codes/active [get]
func GetActivePromoCodes(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var codes []models.PromoCode
	if err := config.DB.WithContext(ctx).
		Where("is_active = true").
		Where("expires_at IS NULL OR expires_at > ?", time.Now()).
		Where("usage_limit IS NULL OR usage_count < usage_limit").
		Order("created_at DESC").
		Find(&codes).Error; err != nil {
		log.Printf("[promo.active] ❌ query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Active promo codes fetched", codes))
}
