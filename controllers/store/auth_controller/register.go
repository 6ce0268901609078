package auth_controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yacbhl71/DELICES-DALGERIE-sub000/config"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/models"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/services"
)

// Register godoc
// @Summary Register a new customer account
// @Description Creates the account and immediately opens a session
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /api/auth/register [post]
func Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var existing models.User
	err := config.DB.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "An account with this email already exists"))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[auth.register] ❌ lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	hash, err := services.GetAuthService().HashPassword(req.Password)
	if err != nil {
		log.Printf("[auth.register] ❌ failed to hash password: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
		return
	}

	user := models.User{
		Email:        email,
		FullName:     strings.TrimSpace(req.FullName),
		PasswordHash: hash,
		Role:         models.RoleUser,
		IsActive:     true,
	}

	if err := config.DB.WithContext(ctx).Create(&user).Error; err != nil {
		log.Printf("[auth.register] ❌ failed to create user: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
		return
	}

	// Registration doubles as the first login.
	session, err := issueSession(c, &user)
	if err != nil {
		log.Printf("[auth.register] ❌ failed to issue token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Account created but login failed, please sign in"))
		return
	}

	log.Printf("[auth.register] ✅ new account %s", user.ID)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Account created successfully", session))
}
