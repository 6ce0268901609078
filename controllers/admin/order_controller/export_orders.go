package order_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/yacbhl71/DELICES-DALGERIE-sub000/config"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/models"
)

// ExportOrders godoc
// @Summary Export orders to an Excel file
// @Tags Admin - Orders
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Success 200 {file} binary "Orders spreadsheet"
// @Router /api/admin/orders/export [get]
func ExportOrders(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.DB.WithContext(ctx).Model(&models.Order{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	if err := query.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
		log.Printf("[admin.orders.export] ❌ query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Commandes")
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create spreadsheet"))
		return
	}

	headers := []string{
		"Numéro", "Client", "Email", "Téléphone", "Ville",
		"Articles", "Sous-total", "Remise", "Total", "Code promo",
		"Statut", "Date",
	}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	for _, o := range orders {
		itemCount := 0
		for _, it := range o.Items {
			itemCount += it.Quantity
		}

		promoCode := ""
		if o.PromoCode != nil {
			promoCode = *o.PromoCode
		}

		row := sheet.AddRow()
		row.AddCell().SetValue(o.OrderNumber)
		row.AddCell().SetValue(o.CustomerName)
		row.AddCell().SetValue(o.CustomerEmail)
		row.AddCell().SetValue(o.CustomerPhone)
		row.AddCell().SetValue(o.ShippingCity)
		row.AddCell().SetValue(itemCount)
		row.AddCell().SetValue(o.Subtotal)
		row.AddCell().SetValue(o.Discount)
		row.AddCell().SetValue(o.Total)
		row.AddCell().SetValue(promoCode)
		row.AddCell().SetValue(o.Status)
		row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	c.Header("Content-Disposition", "attachment; filename=commandes.xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Expires", "0")

	if err := file.Write(c.Writer); err != nil {
		log.Printf("[admin.orders.export] ❌ write failed: %v", err)
	}
}
