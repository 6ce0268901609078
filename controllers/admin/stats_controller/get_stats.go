package stats_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yacbhl71/DELICES-DALGERIE-sub000/config"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/models"
)

// GetStats godoc
// @Summary Dashboard overview counters
// @Description Totals, 30-day activity and delivered revenue in one query
// @Tags Admin - Stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /api/admin/stats [get]
func GetStats(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	// One round trip; each sub-count is cheap against the partial indexes.
	const query = `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM historical_content),
			(SELECT COUNT(*) FROM testimonials),
			(SELECT COUNT(*) FROM users WHERE created_at > NOW() - INTERVAL '30 days'),
			(SELECT COUNT(*) FROM products WHERE created_at > NOW() - INTERVAL '30 days'),
			(SELECT COUNT(*) FROM orders WHERE created_at > NOW() - INTERVAL '30 days'),
			(SELECT COALESCE(SUM(total), 0) FROM orders WHERE status NOT IN ('cancelled'))
	`

	var stats models.AdminStats
	err := config.Pool.QueryRow(ctx, query).Scan(
		&stats.TotalUsers,
		&stats.TotalProducts,
		&stats.TotalOrders,
		&stats.TotalContent,
		&stats.TotalTestimonial,
		&stats.RecentUsers,
		&stats.RecentProducts,
		&stats.RecentOrders,
		&stats.TotalRevenue,
	)
	if err != nil {
		log.Printf("[admin.stats] ❌ query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Stats fetched", stats))
}

// GetOrderStats godoc
// @Summary Order counts by status
// @Tags Admin - Stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /api/admin/stats/orders [get]
func GetOrderStats(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	const query = `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'confirmed'),
			COUNT(*) FILTER (WHERE status = 'shipped'),
			COUNT(*) FILTER (WHERE status = 'delivered'),
			COUNT(*) FILTER (WHERE status = 'cancelled'),
			COALESCE(SUM(total) FILTER (WHERE status NOT IN ('cancelled')), 0)
		FROM orders
	`

	var stats models.OrderStatsResponse
	err := config.Pool.QueryRow(ctx, query).Scan(
		&stats.TotalOrders,
		&stats.PendingOrders,
		&stats.ConfirmedOrders,
		&stats.ShippedOrders,
		&stats.DeliveredOrders,
		&stats.CancelledOrders,
		&stats.TotalRevenue,
	)
	if err != nil {
		log.Printf("[admin.stats.orders] ❌ query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order stats fetched", stats))
}
