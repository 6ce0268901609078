package cart_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yacbhl71/DELICES-DALGERIE-sub000/cart"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/config"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/models"
)

type addItemRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity"`
}

// AddItem godoc
// @Summary Add a product to the cart
// @Description Adding a product already in the cart increments its quantity
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body addItemRequest true "Product and quantity"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/cart/items [post]
func AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Price and name come from the catalog, never from the client.
	var product models.Product
	if err := config.DB.WithContext(ctx).First(&product, "id = ?", req.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("[cart.add] ❌ product lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	if !product.InStock {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Product is out of stock"))
		return
	}

	line := cart.Line{
		ProductID: product.ID.String(),
		Name:      product.Name,
		Price:     product.Price,
	}
	if len(product.ImageURLs) > 0 {
		line.ImageURL = product.ImageURLs[0]
	}

	store := resolveCart(c)
	if err := store.AddItem(c.Request.Context(), line, req.Quantity); err != nil {
		log.Printf("[cart.add] ❌ failed to persist cart: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item added to cart", store.State()))
}
