package promo_controller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yacbhl71/DELICES-DALGERIE-sub000/config"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/models"
)

var promoRejections = map[error]string{
	models.ErrPromoNotActive: "This code is no longer active",
	models.ErrPromoExpired:   "This code has expired",
	models.ErrPromoExhausted: "This code has reached its usage limit",
	models.ErrPromoMinAmount: "Order amount is below the code's minimum",
}

// ValidatePromoCode godoc
// @Summary Check a promo code against an order amount
// @Description Always answers 200; the payload says whether the code applies and for how much
// @Tags Promo codes
// @Accept json
// @Produce json
// @Param request body models.ValidatePromoRequest true "Code and order amount"
// @Success 200 {object} models.ApiResponse
// @Router /api/promo-codes/validate [post]
func ValidatePromoCode(c *gin.Context) {
	var req models.ValidatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var promo models.PromoCode
	err := config.DB.WithContext(ctx).Where("code = ?", code).First(&promo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, models.SuccessResponse(c, "Promo code checked", models.ValidatePromoResponse{
				Valid:       false,
				Code:        code,
				FinalAmount: req.OrderAmount,
				Reason:      "Unknown promo code",
			}))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	if err := promo.Validate(req.OrderAmount, time.Now()); err != nil {
		reason := promoRejections[err]
		if reason == "" {
			reason = "Promo code cannot be applied"
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Promo code checked", models.ValidatePromoResponse{
			Valid:       false,
			Code:        code,
			FinalAmount: req.OrderAmount,
			Reason:      reason,
		}))
		return
	}

	discount := promo.Discount(req.OrderAmount)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Promo code checked", models.ValidatePromoResponse{
		Valid:          true,
		Code:           code,
		DiscountAmount: discount,
		FinalAmount:    req.OrderAmount - discount,
	}))
}
