package content_controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yacbhl71/DELICES-DALGERIE-sub000/config"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/models"
)

// CreateContactMessage godoc
// @Summary Send a contact form message
// @Tags Content
// @Accept json
// @Produce json
// @Param request body models.ContactRequest true "Message"
// @Success 201 {object} models.ApiResponse
// @Router /api/contact [post]
func CreateContactMessage(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	message := models.ContactMessage{
		Name:    req.Name,
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Subject: req.Subject,
		Message: req.Message,
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.DB.WithContext(ctx).Create(&message).Error; err != nil {
		log.Printf("[contact.create] ❌ insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to send message"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Message sent", nil))
}

// SubscribeNewsletter godoc
// @Summary Subscribe to the newsletter
// @Description Subscribing an already-subscribed email succeeds silently
// @Tags Content
// @Accept json
// @Produce json
// @Param request body models.NewsletterSubscribeRequest true "Email and locale"
// @Success 201 {object} models.ApiResponse
// @Router /api/newsletter/subscribe [post]
func SubscribeNewsletter(c *gin.Context) {
	var req models.NewsletterSubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	locale := req.Locale
	if locale == "" {
		locale = models.LocaleFR
	}

	subscriber := models.NewsletterSubscriber{
		Email:  strings.ToLower(strings.TrimSpace(req.Email)),
		Locale: locale,
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	err := config.DB.WithContext(ctx).Create(&subscriber).Error
	if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique") {
			c.JSON(http.StatusCreated, models.SuccessResponse(c, "Subscribed to newsletter", nil))
			return
		}
		log.Printf("[newsletter.subscribe] ❌ insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to subscribe"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Subscribed to newsletter", nil))
}
