package content_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yacbhl71/DELICES-DALGERIE-sub000/config"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/models"
)

// GetHistoricalContent godoc
// @Summary List heritage articles
// @Tags Content
// @Produce json
// @Param region query string false "Region slug (algerie, kabylie, vallee-soumam)"
// @Success 200 {object} models.ApiResponse
// @Router /api/historical-content [get]
func GetHistoricalContent(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.DB.WithContext(ctx).Model(&models.HistoricalContent{})
	if region := c.Query("region"); region != "" {
		query = query.Where("region = ?", region)
	}

	var content []models.HistoricalContent
	if err := query.Order("created_at ASC").Find(&content).Error; err != nil {
		log.Printf("[content.list] ❌ query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Historical content fetched", content))
}
