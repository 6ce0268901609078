package product_controller

import (
	"log"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/yacbhl71/DELICES-DALGERIE-sub000/config"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/middleware"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/models"
)

// CreateProduct godoc
// @Summary Create a product
// @Tags Admin - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ProductRequest true "Product details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/admin/products [post]
func CreateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	if !slices.Contains(models.ProductCategories, req.Category) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown category: "+req.Category))
		return
	}
	if req.Name.IsEmpty() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Product name needs at least one translation"))
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = "EUR"
	}
	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Currency:    currency,
		ImageURLs:   models.StringList(req.ImageURLs),
		Origin:      req.Origin,
		InStock:     inStock,
	}
	if adminID, ok := middleware.GetUserIDFromContext(c); ok {
		product.CreatedBy = &adminID
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.DB.WithContext(ctx).Create(&product).Error; err != nil {
		log.Printf("[admin.products.create] ❌ insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}

	log.Printf("[admin.products.create] ✅ product %s", product.ID)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created", product))
}
