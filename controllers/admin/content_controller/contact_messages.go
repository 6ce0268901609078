package content_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yacbhl71/DELICES-DALGERIE-sub000/config"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/models"
)

// GetContactMessages godoc
// @Summary List contact form messages
// @Tags Admin - Content
// @Produce json
// @Security BearerAuth
// @Param unread query bool false "Only unread messages"
// @Success 200 {object} models.ApiResponse
// @Router /api/admin/contact-messages [get]
func GetContactMessages(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.DB.WithContext(ctx).Model(&models.ContactMessage{})
	if c.Query("unread") == "true" {
		query = query.Where("is_read = false")
	}

	var messages []models.ContactMessage
	if err := query.Order("created_at DESC").Find(&messages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Messages fetched", messages))
}

// MarkContactMessageRead godoc
// @Summary Mark a contact message as read
// @Tags Admin - Content
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 200 {object} models.ApiResponse
// @Router /api/admin/contact-messages/{id}/read [put]
func MarkContactMessageRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid message id"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.DB.WithContext(ctx).
		Model(&models.ContactMessage{}).
		Where("id = ?", id).
		Update("is_read", true)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update message"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Message not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Message marked as read", nil))
}
