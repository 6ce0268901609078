package content_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yacbhl71/DELICES-DALGERIE-sub000/config"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/models"
)

// GetAllTestimonials godoc
// @Summary List all testimonials, pending ones included
// @Tags Admin - Content
// @Produce json
// @Security BearerAuth
// @Param approved query bool false "Filter by approval state"
// @Success 200 {object} models.ApiResponse
// @Router /api/admin/testimonials [get]
func GetAllTestimonials(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.DB.WithContext(ctx).Model(&models.Testimonial{})
	if approved := c.Query("approved"); approved != "" {
		query = query.Where("is_approved = ?", approved == "true")
	}

	var testimonials []models.Testimonial
	if err := query.Order("created_at DESC").Find(&testimonials).Error; err != nil {
		log.Printf("[admin.testimonials.list] ❌ query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Testimonials fetched", testimonials))
}

type approveTestimonialRequest struct {
	IsApproved bool `json:"is_approved"`
}

// ApproveTestimonial godoc
// @Summary Approve or reject a testimonial
// @Tags Admin - Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Testimonial ID"
// @Param request body approveTestimonialRequest true "Approval state"
// @Success 200 {object} models.ApiResponse
// @Router /api/admin/testimonials/{id}/approve [put]
func ApproveTestimonial(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid testimonial id"))
		return
	}

	var req approveTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var testimonial models.Testimonial
	if err := config.DB.WithContext(ctx).First(&testimonial, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Testimonial not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	if err := config.DB.WithContext(ctx).
		Model(&testimonial).
		Update("is_approved", req.IsApproved).Error; err != nil {
		log.Printf("[admin.testimonials.approve] ❌ update failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update testimonial"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Testimonial updated", testimonial))
}

// DeleteTestimonial godoc
// @Summary Delete a testimonial
// @Tags Admin - Content
// @Produce json
// @Security BearerAuth
// @Param id path string true "Testimonial ID"
// @Success 200 {object} models.ApiResponse
// @Router /api/admin/testimonials/{id} [delete]
func DeleteTestimonial(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid testimonial id"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.DB.WithContext(ctx).Delete(&models.Testimonial{}, "id = ?", id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete testimonial"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Testimonial not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Testimonial deleted", nil))
}
