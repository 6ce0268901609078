package cart_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yacbhl71/DELICES-DALGERIE-sub000/models"
)

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateItem godoc
// @Summary Set a cart line's quantity
// @Description Sets the quantity outright; zero or negative removes the line
// @Tags Cart
// @Accept json
// @Produce json
// @Param productID path string true "Product ID"
// @Param request body updateItemRequest true "New quantity"
// @Success 200 {object} models.ApiResponse
// @Router /api/cart/items/{productID} [put]
func UpdateItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	store := resolveCart(c)
	if err := store.UpdateQuantity(c.Request.Context(), c.Param("productID"), req.Quantity); err != nil {
		log.Printf("[cart.update] ❌ failed to persist cart: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart updated", store.State()))
}

// RemoveItem godoc
// @Summary Remove a product from the cart
// @Tags Cart
// @Produce json
// @Param productID path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Router /api/cart/items/{productID} [delete]
func RemoveItem(c *gin.Context) {
	store := resolveCart(c)
	if err := store.RemoveItem(c.Request.Context(), c.Param("productID")); err != nil {
		log.Printf("[cart.remove] ❌ failed to persist cart: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item removed", store.State()))
}

// ClearCart godoc
// @Summary Empty the cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/cart [delete]
func ClearCart(c *gin.Context) {
	store := resolveCart(c)
	if err := store.Clear(c.Request.Context()); err != nil {
		log.Printf("[cart.clear] ❌ failed to clear cart: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to clear cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart cleared", store.State()))
}
