package store_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yacbhl71/DELICES-DALGERIE-sub000/controllers/store/auth_controller"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/controllers/store/cart_controller"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/controllers/store/catalog_controller"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/controllers/store/content_controller"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/controllers/store/customization_controller"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/controllers/store/order_controller"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/controllers/store/promo_controller"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/controllers/store/user_controller"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/middleware"
)

// SetupStoreRoutes registers the public storefront surface plus the
// customer-authenticated endpoints.
func SetupStoreRoutes(rg *gin.RouterGroup) {
	rg.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Délices et Trésors d'Algérie API", "version": "1.0"})
	})

	// Auth
	auth := rg.Group("/auth")
	{
		auth.POST("/register", auth_controller.Register)
		auth.POST("/login", auth_controller.Login)
		auth.POST("/logout", auth_controller.Logout)
		auth.GET("/me", middleware.AuthMiddleware(), auth_controller.GetMe)
	}

	// Catalog
	rg.GET("/products", catalog_controller.GetProducts)
	rg.GET("/products/:id", catalog_controller.GetProductByID)

	// Content
	rg.GET("/historical-content", content_controller.GetHistoricalContent)
	rg.GET("/testimonials", content_controller.GetTestimonials)
	rg.POST("/testimonials", content_controller.CreateTestimonial)
	rg.GET("/banners", content_controller.GetBanners)
	rg.GET("/navigation", content_controller.GetNavigation)
	rg.GET("/pages/:slug", content_controller.GetPageBySlug)
	rg.GET("/footer", content_controller.GetFooter)
	rg.POST("/contact", content_controller.CreateContactMessage)
	rg.POST("/newsletter/subscribe", content_controller.SubscribeNewsletter)

	// Theming
	rg.GET("/customization", customization_controller.GetCustomization)
	rg.GET("/customization/theme.css", customization_controller.GetThemeCSS)

	// Promo codes
	rg.GET("/promo-codes/active", promo_controller.GetActivePromoCodes)
	rg.POST("/promo-codes/validate", promo_controller.ValidatePromoCode)

	// Cart (cookie-scoped, no auth required)
	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cart_controller.GetCart)
		cartGroup.DELETE("", cart_controller.ClearCart)
		cartGroup.POST("/items", cart_controller.AddItem)
		cartGroup.PUT("/items/:productID", cart_controller.UpdateItem)
		cartGroup.DELETE("/items/:productID", cart_controller.RemoveItem)
	}

	// Checkout works for guests; a valid token attaches the order to the
	// account.
	rg.POST("/orders", middleware.OptionalAuthMiddleware(), order_controller.CreateOrder)

	// Account
	account := rg.Group("")
	account.Use(middleware.AuthMiddleware())
	{
		account.GET("/my-orders", order_controller.GetMyOrders)
		account.PUT("/users/me", user_controller.UpdateProfile)
		account.PUT("/users/me/password", user_controller.ChangePassword)
	}
}
