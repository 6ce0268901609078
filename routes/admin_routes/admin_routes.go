package admin_routes

import (
	"time"

	"github.com/gin-gonic/gin"

	admin_content "github.com/yacbhl71/DELICES-DALGERIE-sub000/controllers/admin/content_controller"
	admin_customization "github.com/yacbhl71/DELICES-DALGERIE-sub000/controllers/admin/customization_controller"
	admin_orders "github.com/yacbhl71/DELICES-DALGERIE-sub000/controllers/admin/order_controller"
	admin_products "github.com/yacbhl71/DELICES-DALGERIE-sub000/controllers/admin/product_controller"
	admin_promo "github.com/yacbhl71/DELICES-DALGERIE-sub000/controllers/admin/promo_controller"
	admin_stats "github.com/yacbhl71/DELICES-DALGERIE-sub000/controllers/admin/stats_controller"
	admin_upload "github.com/yacbhl71/DELICES-DALGERIE-sub000/controllers/admin/upload_controller"
	admin_users "github.com/yacbhl71/DELICES-DALGERIE-sub000/controllers/admin/user_controller"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/middleware"
)

// SetupAdminRoutes registers the back-office surface. Everything here
// requires a valid token with the admin role, and writes are rate limited.
func SetupAdminRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	admin.Use(middleware.RateLimiter(120, time.Minute))

	// Products
	admin.POST("/products", admin_products.CreateProduct)
	admin.PUT("/products/:id", admin_products.UpdateProduct)
	admin.DELETE("/products/:id", admin_products.DeleteProduct)

	// Heritage content
	admin.POST("/historical-content", admin_content.CreateHistoricalContent)
	admin.PUT("/historical-content/:id", admin_content.UpdateHistoricalContent)
	admin.DELETE("/historical-content/:id", admin_content.DeleteHistoricalContent)

	// Testimonials
	admin.GET("/testimonials", admin_content.GetAllTestimonials)
	admin.PUT("/testimonials/:id/approve", admin_content.ApproveTestimonial)
	admin.DELETE("/testimonials/:id", admin_content.DeleteTestimonial)

	// Navigation
	admin.GET("/navigation", admin_content.GetAllNavigation)
	admin.POST("/navigation", admin_content.CreateNavigationItem)
	admin.PUT("/navigation/reorder", admin_content.ReorderNavigation)
	admin.PUT("/navigation/:id", admin_content.UpdateNavigationItem)
	admin.DELETE("/navigation/:id", admin_content.DeleteNavigationItem)

	// Banners
	admin.GET("/banners", admin_content.GetAllBanners)
	admin.POST("/banners", admin_content.CreateBanner)
	admin.PUT("/banners/reorder", admin_content.ReorderBanners)
	admin.PUT("/banners/:id", admin_content.UpdateBanner)
	admin.DELETE("/banners/:id", admin_content.DeleteBanner)

	// Pages
	admin.GET("/pages", admin_content.GetAllPages)
	admin.POST("/pages", admin_content.CreatePage)
	admin.PUT("/pages/:id", admin_content.UpdatePage)
	admin.DELETE("/pages/:id", admin_content.DeletePage)

	// Contact inbox
	admin.GET("/contact-messages", admin_content.GetContactMessages)
	admin.PUT("/contact-messages/:id/read", admin_content.MarkContactMessageRead)

	// Promo codes
	admin.GET("/promo-codes", admin_promo.GetPromoCodes)
	admin.POST("/promo-codes", admin_promo.CreatePromoCode)
	admin.PUT("/promo-codes/:id", admin_promo.UpdatePromoCode)
	admin.DELETE("/promo-codes/:id", admin_promo.DeletePromoCode)

	// Orders
	admin.GET("/orders", admin_orders.GetOrders)
	admin.GET("/orders/export", admin_orders.ExportOrders)
	admin.GET("/orders/:id", admin_orders.GetOrderByID)
	admin.PUT("/orders/:id/status", admin_orders.UpdateOrderStatus)
	admin.GET("/orders/:id/invoice", admin_orders.GetOrderInvoice)

	// Customization
	admin.GET("/customization", admin_customization.GetCustomization)
	admin.PUT("/customization", admin_customization.UpdateCustomization)

	// Users
	admin.GET("/users", admin_users.GetUsers)
	admin.PUT("/users/:id", admin_users.UpdateUser)
	admin.DELETE("/users/:id", admin_users.DeleteUser)

	// Dashboard
	admin.GET("/stats", admin_stats.GetStats)
	admin.GET("/stats/orders", admin_stats.GetOrderStats)

	// Uploads
	admin.POST("/upload", admin_upload.UploadImage)
	admin.DELETE("/upload/:publicId", admin_upload.DeleteImage)
}
