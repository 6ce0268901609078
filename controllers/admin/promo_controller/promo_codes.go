package promo_controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yacbhl71/DELICES-DALGERIE-sub000/config"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/models"
)

// GetPromoCodes godoc
// @Summary List all promo codes
// @Tags Admin - Promo codes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /api/admin/promo-codes [get]
func GetPromoCodes(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var codes []models.PromoCode
	if err := config.DB.WithContext(ctx).Order("created_at DESC").Find(&codes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Promo codes fetched", codes))
}

// CreatePromoCode godoc
// @Summary Create a promo code
// @Tags Admin - Promo codes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.PromoCodeRequest true "Promo code"
// @Success 201 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /api/admin/promo-codes [post]
func CreatePromoCode(c *gin.Context) {
	var req models.PromoCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	if req.DiscountType == models.DiscountTypePercentage && req.DiscountValue > 100 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Percentage discount cannot exceed 100"))
		return
	}

	promo := models.PromoCode{
		Code:              req.Code,
		Description:       req.Description,
		DiscountType:      req.DiscountType,
		DiscountValue:     req.DiscountValue,
		MinOrderAmount:    req.MinOrderAmount,
		MaxDiscountAmount: req.MaxDiscountAmount,
		UsageLimit:        req.UsageLimit,
		ExpiresAt:         req.ExpiresAt,
		IsActive:          true,
	}
	if req.IsActive != nil {
		promo.IsActive = *req.IsActive
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.DB.WithContext(ctx).Create(&promo).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique") {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "A promo code with this code already exists"))
			return
		}
		log.Printf("[admin.promo.create] ❌ insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create promo code"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Promo code created", promo))
}

// UpdatePromoCode godoc
// @Summary Update a promo code
// @Tags Admin - Promo codes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promo code ID"
// @Param request body models.PromoCodeRequest true "Promo code"
// @Success 200 {object} models.ApiResponse
// @Router /api/admin/promo-codes/{id} [put]
func UpdatePromoCode(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid promo code id"))
		return
	}

	var req models.PromoCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	if req.DiscountType == models.DiscountTypePercentage && req.DiscountValue > 100 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Percentage discount cannot exceed 100"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var promo models.PromoCode
	if err := config.DB.WithContext(ctx).First(&promo, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Promo code not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	promo.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	promo.Description = req.Description
	promo.DiscountType = req.DiscountType
	promo.DiscountValue = req.DiscountValue
	promo.MinOrderAmount = req.MinOrderAmount
	promo.MaxDiscountAmount = req.MaxDiscountAmount
	promo.UsageLimit = req.UsageLimit
	promo.ExpiresAt = req.ExpiresAt
	if req.IsActive != nil {
		promo.IsActive = *req.IsActive
	}

	if err := config.DB.WithContext(ctx).Save(&promo).Error; err != nil {
		log.Printf("[admin.promo.update] ❌ save failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update promo code"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Promo code updated", promo))
}

// DeletePromoCode godoc
// @Summary Delete a promo code
// @Tags Admin - Promo codes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promo code ID"
// @Success 200 {object} models.ApiResponse
// @Router /api/admin/promo-codes/{id} [delete]
func DeletePromoCode(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid promo code id"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.DB.WithContext(ctx).Delete(&models.PromoCode{}, "id = ?", id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete promo code"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Promo code not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Promo code deleted", nil))
}
