package cart_controller

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yacbhl71/DELICES-DALGERIE-sub000/cart"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/config"
)

const cartCookieName = "cart_id"

// cartCookieMaxAge matches the storage TTL so the cookie and the stored
// cart expire together.
const cartCookieMaxAge = 30 * 24 * 60 * 60

var cartStorage cart.Storage

// InitStorage selects the cart backend once at startup. Redis when
// available, process-local memory otherwise.
func InitStorage(redisAvailable bool) {
	if redisAvailable {
		cartStorage = cart.NewRedisStorage(config.RedisClient)
		return
	}
	cartStorage = cart.NewMemoryStorage()
}

// ClearStoredCart empties the cart persisted under cartID, whichever
// backend is active. Used by checkout after an order commits.
func ClearStoredCart(ctx context.Context, cartID string) error {
	if cartID == "" {
		return nil
	}
	return cart.Load(ctx, cartStorage, cartID).Clear(ctx)
}

// resolveCart loads the visitor's cart from the cart_id cookie, minting a
// new id (and cookie) for first-time visitors.
func resolveCart(c *gin.Context) *cart.Store {
	cartID, err := c.Cookie(cartCookieName)
	if err != nil || cartID == "" {
		cartID = uuid.Must(uuid.NewV7()).String()
		secure := os.Getenv("ENVIRONMENT") == "production"
		if secure {
			c.SetSameSite(http.SameSiteNoneMode)
		} else {
			c.SetSameSite(http.SameSiteLaxMode)
		}
		c.SetCookie(cartCookieName, cartID, cartCookieMaxAge, "/", "", secure, true)
	}

	return cart.Load(c.Request.Context(), cartStorage, cartID)
}
