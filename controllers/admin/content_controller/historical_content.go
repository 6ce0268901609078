package content_controller

import (
	"errors"
	"log"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yacbhl71/DELICES-DALGERIE-sub000/config"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/middleware"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/models"
)

// CreateHistoricalContent godoc
// @Summary Create a heritage article
// @Tags Admin - Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.HistoricalContentRequest true "Article"
// @Success 201 {object} models.ApiResponse
// @Router /api/admin/historical-content [post]
func CreateHistoricalContent(c *gin.Context) {
	var req models.HistoricalContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	if !slices.Contains(models.ContentRegions, req.Region) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown region: "+req.Region))
		return
	}

	content := models.HistoricalContent{
		Title:     req.Title,
		Content:   req.Content,
		Region:    req.Region,
		ImageURLs: models.StringList(req.ImageURLs),
	}
	if adminID, ok := middleware.GetUserIDFromContext(c); ok {
		content.CreatedBy = &adminID
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.DB.WithContext(ctx).Create(&content).Error; err != nil {
		log.Printf("[admin.content.create] ❌ insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create content"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Historical content created", content))
}

// UpdateHistoricalContent godoc
// @Summary Update a heritage article
// @Tags Admin - Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Content ID"
// @Param request body models.UpdateHistoricalContentRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse
// @Router /api/admin/historical-content/{id} [put]
func UpdateHistoricalContent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid content id"))
		return
	}

	var req models.UpdateHistoricalContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var content models.HistoricalContent
	if err := config.DB.WithContext(ctx).First(&content, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Content not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	if req.Title != nil {
		content.Title = *req.Title
	}
	if req.Content != nil {
		content.Content = *req.Content
	}
	if req.Region != nil {
		if !slices.Contains(models.ContentRegions, *req.Region) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown region: "+*req.Region))
			return
		}
		content.Region = *req.Region
	}
	if req.ImageURLs != nil {
		content.ImageURLs = models.StringList(*req.ImageURLs)
	}

	if err := config.DB.WithContext(ctx).Save(&content).Error; err != nil {
		log.Printf("[admin.content.update] ❌ save failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update content"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Historical content updated", content))
}

// DeleteHistoricalContent godoc
// @Summary Delete a heritage article
// @Tags Admin - Content
// @Produce json
// @Security BearerAuth
// @Param id path string true "Content ID"
// @Success 200 {object} models.ApiResponse
// @Router /api/admin/historical-content/{id} [delete]
func DeleteHistoricalContent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid content id"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.DB.WithContext(ctx).Delete(&models.HistoricalContent{}, "id = ?", id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete content"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Content not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Historical content deleted", nil))
}
