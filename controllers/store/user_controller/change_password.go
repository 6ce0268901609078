package user_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yacbhl71/DELICES-DALGERIE-sub000/config"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/middleware"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/models"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/services"
)

// ChangePassword godoc
// @Summary Change the signed-in user's password
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /api/users/me/password [put]
func ChangePassword(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	if err := config.DB.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "User not found"))
		return
	}

	authService := services.GetAuthService()
	if !authService.VerifyPassword(user.PasswordHash, req.CurrentPassword) {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Current password is incorrect"))
		return
	}

	hash, err := authService.HashPassword(req.NewPassword)
	if err != nil {
		log.Printf("[users.password] ❌ failed to hash password: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to change password"))
		return
	}

	if err := config.DB.WithContext(ctx).
		Model(&user).
		Update("password_hash", hash).Error; err != nil {
		log.Printf("[users.password] ❌ failed to save password: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to change password"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Password changed", nil))
}
