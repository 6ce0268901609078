package auth_controller

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/yacbhl71/DELICES-DALGERIE-sub000/models"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/services"
)

const authCookieName = "auth_token"

// issueSession generates a bearer token and mirrors it into the auth cookie,
// so browser clients and API clients authenticate the same way.
func issueSession(c *gin.Context, user *models.User) (models.TokenResponse, error) {
	token, err := services.GenerateToken(user.ID.String(), user.Email, user.Role)
	if err != nil {
		return models.TokenResponse{}, err
	}

	secure := os.Getenv("ENVIRONMENT") == "production"
	if secure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(authCookieName, token, 24*60*60, "/", "", secure, true)

	return models.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		User:        user.ToResponse(),
	}, nil
}

func clearSession(c *gin.Context) {
	secure := os.Getenv("ENVIRONMENT") == "production"
	c.SetCookie(authCookieName, "", -1, "/", "", secure, true)
}
