package content_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yacbhl71/DELICES-DALGERIE-sub000/config"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/models"
)

// GetTestimonials godoc
// @Summary List approved testimonials
// @Tags Content
// @Produce json
// @Param locale query string false "Filter by locale (fr, ar, en)"
// @Success 200 {object} models.ApiResponse
// @Router /api/testimonials [get]
func GetTestimonials(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.DB.WithContext(ctx).Where("is_approved = true")
	if locale := c.Query("locale"); locale != "" {
		query = query.Where("locale = ?", locale)
	}

	var testimonials []models.Testimonial
	if err := query.Order("created_at DESC").Find(&testimonials).Error; err != nil {
		log.Printf("[testimonials.list] ❌ query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Testimonials fetched", testimonials))
}

// CreateTestimonial godoc
// @Summary Submit a testimonial
// @Description Submissions are hidden until an admin approves them
// @Tags Content
// @Accept json
// @Produce json
// @Param request body models.TestimonialRequest true "Testimonial"
// @Success 201 {object} models.ApiResponse
// @Router /api/testimonials [post]
func CreateTestimonial(c *gin.Context) {
	var req models.TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	locale := req.Locale
	if locale == "" {
		locale = models.LocaleFR
	}

	testimonial := models.Testimonial{
		CustomerName: req.CustomerName,
		Rating:       req.Rating,
		Comment:      req.Comment,
		Locale:       locale,
		IsApproved:   false,
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.DB.WithContext(ctx).Create(&testimonial).Error; err != nil {
		log.Printf("[testimonials.create] ❌ insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to submit testimonial"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Testimonial submitted for review", testimonial))
}
