// @title Délices et Trésors d'Algérie API
// @version 1.0
// @description Storefront and back-office API for the Délices et Trésors d'Algérie shop
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/yacbhl71/DELICES-DALGERIE-sub000/config"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/controllers/store/cart_controller"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/models"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/routes/admin_routes"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/routes/store_routes"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/services"
)

func init() {
	_ = godotenv.Load()
}

func runMigrations() {
	err := config.DB.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.HistoricalContent{},
		&models.Testimonial{},
		&models.NavigationItem{},
		&models.Banner{},
		&models.Page{},
		&models.PromoCode{},
		&models.Order{},
		&models.OrderItem{},
		&models.ContactMessage{},
		&models.NewsletterSubscriber{},
		&models.Customization{},
	)
	if err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	// Order numbers draw from a sequence so concurrent checkouts never
	// collide.
	ctx, cancel := config.WithTimeout()
	defer cancel()
	if _, err := config.Pool.Exec(ctx, "CREATE SEQUENCE IF NOT EXISTS order_number_seq"); err != nil {
		log.Fatalf("❌ Failed to create order number sequence: %v", err)
	}

	log.Println("✅ Migrations applied")
}

func allowedOrigins() []string {
	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		return strings.Split(raw, ",")
	}
	return []string{"http://localhost:3000", "http://localhost:5173"}
}

func main() {
	// Connect to DB
	config.InitDB()
	runMigrations()

	// Redis is optional; carts fall back to in-memory storage without it.
	redisAvailable := config.ConnectRedis()
	cart_controller.InitStorage(redisAvailable)

	// Cloudinary is optional too; uploads answer 503 when unconfigured.
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if err := services.InitCloudinary(cloudName, apiKey, apiSecret); err != nil {
		log.Printf("⚠️  Cloudinary not configured, image uploads disabled: %v", err)
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	corsCfg := cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"},
	}

	if os.Getenv("ENVIRONMENT") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	api := router.Group("/api")
	store_routes.SetupStoreRoutes(api)
	log.Println("✅ Storefront routes registered")

	admin_routes.SetupAdminRoutes(api)
	log.Println("✅ Admin routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("🚀 Server is running on http://localhost:%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
