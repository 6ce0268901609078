package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yacbhl71/DELICES-DALGERIE-sub000/config"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/models"
)

// AdminMiddleware restricts a route to users with the admin role. It must
// run after AuthMiddleware, and re-checks the role against the database so
// a revoked admin cannot keep using an old token.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
			c.Abort()
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		var user models.User
		if err := config.DB.WithContext(ctx).
			Select("role", "is_active").
			Where("id = ?", userID).
			First(&user).Error; err != nil {
			log.Printf("[auth.admin] failed to fetch user role: %v", err)
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - user not found"))
			c.Abort()
			return
		}

		if !user.IsActive {
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - account disabled"))
			c.Abort()
			return
		}

		if user.Role != models.RoleAdmin {
			log.Printf("[auth.admin] non-admin attempted restricted action")
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - admin access required"))
			c.Abort()
			return
		}

		c.Set("userRole", user.Role)
		c.Next()
	}
}
