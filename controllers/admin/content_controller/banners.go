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

// GetAllBanners godoc
// @Summary List all banners, inactive ones included
// @Tags Admin - Content
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /api/admin/banners [get]
func GetAllBanners(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var banners []models.Banner
	if err := config.DB.WithContext(ctx).
		Order("sort_order ASC, created_at ASC").
		Find(&banners).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Banners fetched", banners))
}

// CreateBanner godoc
// @Summary Create a hero banner
// @Tags Admin - Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.BannerRequest true "Banner"
// @Success 201 {object} models.ApiResponse
// @Router /api/admin/banners [post]
func CreateBanner(c *gin.Context) {
	var req models.BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	banner := models.Banner{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		ImageURL: req.ImageURL,
		CTALink:  req.CTALink,
		IsActive: isActive,
		Order:    req.Order,
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.DB.WithContext(ctx).Create(&banner).Error; err != nil {
		log.Printf("[admin.banners.create] ❌ insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create banner"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Banner created", banner))
}

// UpdateBanner godoc
// @Summary Update a banner
// @Tags Admin - Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Banner ID"
// @Param request body models.BannerRequest true "Banner"
// @Success 200 {object} models.ApiResponse
// @Router /api/admin/banners/{id} [put]
func UpdateBanner(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid banner id"))
		return
	}

	var req models.BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var banner models.Banner
	if err := config.DB.WithContext(ctx).First(&banner, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Banner not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	banner.Title = req.Title
	banner.Subtitle = req.Subtitle
	banner.ImageURL = req.ImageURL
	banner.CTALink = req.CTALink
	banner.Order = req.Order
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}

	if err := config.DB.WithContext(ctx).Save(&banner).Error; err != nil {
		log.Printf("[admin.banners.update] ❌ save failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update banner"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Banner updated", banner))
}

// DeleteBanner godoc
// @Summary Delete a banner
// @Tags Admin - Content
// @Produce json
// @Security BearerAuth
// @Param id path string true "Banner ID"
// @Success 200 {object} models.ApiResponse
// @Router /api/admin/banners/{id} [delete]
func DeleteBanner(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid banner id"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.DB.WithContext(ctx).Delete(&models.Banner{}, "id = ?", id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete banner"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Banner not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Banner deleted", nil))
}

// ReorderBanners godoc
// @Summary Reorder the banner slider
// @Tags Admin - Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ReorderRequest true "New ordering"
// @Success 200 {object} models.ApiResponse
// @Router /api/admin/banners/reorder [put]
func ReorderBanners(c *gin.Context) {
	reorderItems(c, &models.Banner{}, "banners")
}
