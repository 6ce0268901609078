package content_controller

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

// GetAllPages godoc
// @Summary List all pages, drafts included
// @Tags Admin - Content
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /api/admin/pages [get]
func GetAllPages(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var pages []models.Page
	if err := config.DB.WithContext(ctx).Order("created_at ASC").Find(&pages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Pages fetched", pages))
}

// CreatePage godoc
// @Summary Create a custom page
// @Tags Admin - Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.PageRequest true "Page"
// @Success 201 {object} models.ApiResponse
// @Router /api/admin/pages [post]
func CreatePage(c *gin.Context) {
	var req models.PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	page := models.Page{
		Slug:    strings.ToLower(strings.TrimSpace(req.Slug)),
		Title:   req.Title,
		Content: req.Content,
	}
	if req.IsPublished != nil {
		page.IsPublished = *req.IsPublished
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.DB.WithContext(ctx).Create(&page).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique") {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "A page with this slug already exists"))
			return
		}
		log.Printf("[admin.pages.create] ❌ insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create page"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Page created", page))
}

// UpdatePage godoc
// @Summary Update a custom page
// @Tags Admin - Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Page ID"
// @Param request body models.PageRequest true "Page"
// @Success 200 {object} models.ApiResponse
// @Router /api/admin/pages/{id} [put]
func UpdatePage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid page id"))
		return
	}

	var req models.PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var page models.Page
	if err := config.DB.WithContext(ctx).First(&page, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Page not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	page.Slug = strings.ToLower(strings.TrimSpace(req.Slug))
	page.Title = req.Title
	page.Content = req.Content
	if req.IsPublished != nil {
		page.IsPublished = *req.IsPublished
	}

	if err := config.DB.WithContext(ctx).Save(&page).Error; err != nil {
		log.Printf("[admin.pages.update] ❌ save failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update page"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Page updated", page))
}

// DeletePage godoc
// @Summary Delete a custom page
// @Tags Admin - Content
// @Produce json
// @Security BearerAuth
// @Param id path string true "Page ID"
// @Success 200 {object} models.ApiResponse
// @Router /api/admin/pages/{id} [delete]
func DeletePage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid page id"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.DB.WithContext(ctx).Delete(&models.Page{}, "id = ?", id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete page"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Page not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Page deleted", nil))
}
