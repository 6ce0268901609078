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

// GetAllNavigation godoc
// @Summary List all navigation items, inactive ones included
// @Tags Admin - Content
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /api/admin/navigation [get]
func GetAllNavigation(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var items []models.NavigationItem
	if err := config.DB.WithContext(ctx).
		Order("sort_order ASC, created_at ASC").
		Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Navigation fetched", items))
}

// CreateNavigationItem godoc
// @Summary Create a navigation item
// @Tags Admin - Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.NavigationItemRequest true "Item"
// @Success 201 {object} models.ApiResponse
// @Router /api/admin/navigation [post]
func CreateNavigationItem(c *gin.Context) {
	var req models.NavigationItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	item := models.NavigationItem{
		Label:    req.Label,
		URL:      req.URL,
		IsActive: isActive,
		Order:    req.Order,
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.DB.WithContext(ctx).Create(&item).Error; err != nil {
		log.Printf("[admin.navigation.create] ❌ insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create navigation item"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Navigation item created", item))
}

// UpdateNavigationItem godoc
// @Summary Update a navigation item
// @Tags Admin - Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param request body models.NavigationItemRequest true "Item"
// @Success 200 {object} models.ApiResponse
// @Router /api/admin/navigation/{id} [put]
func UpdateNavigationItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid navigation item id"))
		return
	}

	var req models.NavigationItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var item models.NavigationItem
	if err := config.DB.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Navigation item not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	item.Label = req.Label
	item.URL = req.URL
	item.Order = req.Order
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := config.DB.WithContext(ctx).Save(&item).Error; err != nil {
		log.Printf("[admin.navigation.update] ❌ save failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update navigation item"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Navigation item updated", item))
}

// DeleteNavigationItem godoc
// @Summary Delete a navigation item
// @Tags Admin - Content
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} models.ApiResponse
// @Router /api/admin/navigation/{id} [delete]
func DeleteNavigationItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid navigation item id"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.DB.WithContext(ctx).Delete(&models.NavigationItem{}, "id = ?", id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete navigation item"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Navigation item not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Navigation item deleted", nil))
}

// ReorderNavigation godoc
// @Summary Reorder the navigation menu
// @Description Applies the submitted ordering atomically
// @Tags Admin - Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ReorderRequest true "New ordering"
// @Success 200 {object} models.ApiResponse
// @Router /api/admin/navigation/reorder [put]
func ReorderNavigation(c *gin.Context) {
	reorderItems(c, &models.NavigationItem{}, "navigation")
}

// reorderItems applies a full ordering to navigation items or banners in
// one transaction.
func reorderItems(c *gin.Context, model any, label string) {
	var req models.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	err := config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, entry := range req.Items {
			id, err := uuid.Parse(entry.ID)
			if err != nil {
				return err
			}
			if err := tx.Model(model).
				Where("id = ?", id).
				Update("sort_order", entry.Order).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("[admin.%s.reorder] ❌ transaction failed: %v", label, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to reorder"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order updated", nil))
}
