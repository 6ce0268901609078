package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yacbhl71/DELICES-DALGERIE-sub000/models"
)

// GetCart godoc
// @Summary Get the visitor's cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/cart [get]
func GetCart(c *gin.Context) {
	store := resolveCart(c)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched", store.State()))
}
