package order_controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yacbhl71/DELICES-DALGERIE-sub000/config"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/controllers/store/cart_controller"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/middleware"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/models"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/services"
)

// generateOrderNumber mints ORD-YYYY-NNNNNN from a Postgres sequence, so
// concurrent checkouts can never collide.
func generateOrderNumber(ctx context.Context) (string, error) {
	var seq int64
	if err := config.Pool.QueryRow(ctx, "SELECT nextval('order_number_seq')").Scan(&seq); err != nil {
		return "", fmt.Errorf("failed to allocate order number: %w", err)
	}
	return fmt.Sprintf("ORD-%d-%06d", time.Now().Year(), seq), nil
}

// CreateOrder godoc
// @Summary Place an order
// @Description Recomputes every price server-side from the catalog, applies the promo code, and clears the visitor's cart only after the order is committed
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body models.CreateOrderRequest true "Checkout details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/orders [post]
func CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithCustomTimeout(30 * time.Second)
	defer cancel()

	// Rebuild every line from the catalog. Client-sent prices are ignored.
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, input := range req.Items {
		productID, err := uuid.Parse(input.ProductID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product id: "+input.ProductID))
			return
		}

		var product models.Product
		if err := config.DB.WithContext(ctx).First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Product no longer available: "+input.ProductID))
				return
			}
			log.Printf("[orders.create] ❌ product lookup failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
			return
		}

		if !product.InStock {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "Product is out of stock: "+product.Name.Resolve(models.LocaleFR)))
			return
		}

		item := models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    input.Quantity,
			Price:       product.Price,
			Subtotal:    product.Price * float64(input.Quantity),
		}
		if len(product.ImageURLs) > 0 {
			url := product.ImageURLs[0]
			item.ImageURL = &url
		}
		items = append(items, item)
	}

	subtotal, _ := models.ComputeOrderTotals(items)

	// Promo validation happens inside the same transaction as the usage
	// counter increment, so a code cannot be used past its limit.
	var discount float64
	var promoCode *string
	var promo models.PromoCode
	hasPromo := false

	if req.PromoCode != "" {
		code := strings.ToUpper(strings.TrimSpace(req.PromoCode))
		err := config.DB.WithContext(ctx).Where("code = ?", code).First(&promo).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown promo code"))
				return
			}
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
			return
		}
		if err := promo.Validate(subtotal, time.Now()); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Promo code cannot be applied: "+err.Error()))
			return
		}
		discount = promo.Discount(subtotal)
		promoCode = &promo.Code
		hasPromo = true
	}

	orderNumber, err := generateOrderNumber(ctx)
	if err != nil {
		log.Printf("[orders.create] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create order"))
		return
	}

	order := models.Order{
		OrderNumber:        orderNumber,
		CustomerName:       req.CustomerName,
		CustomerEmail:      strings.ToLower(strings.TrimSpace(req.CustomerEmail)),
		CustomerPhone:      req.CustomerPhone,
		ShippingAddress:    req.ShippingAddress,
		ShippingCity:       req.ShippingCity,
		ShippingPostalCode: req.ShippingPostalCode,
		Notes:              req.Notes,
		Subtotal:           subtotal,
		Discount:           discount,
		Total:              subtotal - discount,
		Currency:           "EUR",
		PromoCode:          promoCode,
		Status:             models.OrderStatusPending,
		Items:              items,
	}

	// Signed-in customers get the order attached to their account.
	if userID, ok := middleware.GetUserIDFromContext(c); ok {
		order.UserID = &userID
	}

	err = config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if hasPromo {
			result := tx.Model(&models.PromoCode{}).
				Where("id = ?", promo.ID).
				Where("usage_limit IS NULL OR usage_count < usage_limit").
				Update("usage_count", gorm.Expr("usage_count + 1"))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return models.ErrPromoExhausted
			}
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		if errors.Is(err, models.ErrPromoExhausted) {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "Promo code has just reached its usage limit"))
			return
		}
		log.Printf("[orders.create] ❌ transaction failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create order"))
		return
	}

	log.Printf("[orders.create] ✅ order %s placed (%.2f EUR)", order.OrderNumber, order.Total)

	// The cart is cleared only now that the order is committed.
	clearVisitorCart(c)

	sendConfirmationEmail(c, order)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Order placed successfully", order))
}

// clearVisitorCart empties the cart tied to the cart_id cookie, if any.
// Failures are logged, not surfaced: the order already exists.
func clearVisitorCart(c *gin.Context) {
	cartID, err := c.Cookie("cart_id")
	if err != nil || cartID == "" {
		return
	}

	if err := cart_controller.ClearStoredCart(c.Request.Context(), cartID); err != nil {
		log.Printf("[orders.create] ⚠️ failed to clear cart %s: %v", cartID, err)
	}
}

// sendConfirmationEmail fires the localized confirmation in the background.
func sendConfirmationEmail(c *gin.Context, order models.Order) {
	client := services.NewResendClient()
	if client == nil {
		return
	}

	locale := c.GetHeader("Accept-Language")
	if len(locale) >= 2 {
		locale = strings.ToLower(locale[:2])
	}

	go func() {
		err := client.SendOrderConfirmation(services.OrderConfirmationData{
			CustomerName:  order.CustomerName,
			CustomerEmail: order.CustomerEmail,
			OrderNumber:   order.OrderNumber,
			Locale:        locale,
			Items:         order.Items,
			Subtotal:      order.Subtotal,
			Discount:      order.Discount,
			Total:         order.Total,
			Currency:      order.Currency,
		})
		if err != nil {
			log.Printf("[orders.create] ⚠️ confirmation email failed for %s: %v", order.OrderNumber, err)
		}
	}()
}
