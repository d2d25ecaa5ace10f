package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/socksbox/socksbox-api/initializers"
	"github.com/socksbox/socksbox-api/models"
)

func GetCustomers(ctx *gin.Context) {
	var customers []models.User
	result := initializers.DB.Where("role = ?", models.RoleCustomer).Find(&customers)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch customers", result.Error)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"customers": customers})
}

func salesBetween(start, end time.Time) float64 {
	var total float64
	initializers.DB.Model(&models.Order{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total)
	return total
}

func countOrdersByStatus(status string) int64 {
	var count int64
	initializers.DB.Model(&models.Order{}).Where("status = ?", status).Count(&count)
	return count
}

type productSales struct {
	ProductID uint    `json:"productId"`
	Name      string  `json:"name"`
	UnitsSold int64   `json:"unitsSold"`
	Revenue   float64 `json:"revenue"`
}

// GetAnalytics aggregates the sales dashboard figures: overall totals, the
// current day/week/month windows, per-status order counts, a six month sales
// series and the best selling products by units.
func GetAnalytics(ctx *gin.Context) {
	var totalOrders, totalProducts, totalUsers int64
	initializers.DB.Model(&models.Order{}).Count(&totalOrders)
	initializers.DB.Model(&models.Product{}).Count(&totalProducts)
	initializers.DB.Model(&models.User{}).Count(&totalUsers)

	var totalRevenue float64
	initializers.DB.Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&totalRevenue)

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	startOfWeek := startOfDay.AddDate(0, 0, -(weekday - 1))
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	statusCounts := gin.H{
		"pending":   countOrdersByStatus(models.OrderStatusPending),
		"confirmed": countOrdersByStatus(models.OrderStatusConfirmed),
		"shipped":   countOrdersByStatus(models.OrderStatusShipped),
		"delivered": countOrdersByStatus(models.OrderStatusDelivered),
		"cancelled": countOrdersByStatus(models.OrderStatusCancelled),
	}

	// Last six calendar months, oldest first.
	salesByMonth := make([]gin.H, 0, 6)
	for i := 5; i >= 0; i-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		monthEnd := monthStart.AddDate(0, 1, 0)
		salesByMonth = append(salesByMonth, gin.H{
			"month": monthStart.Format("January 2006"),
			"sales": salesBetween(monthStart, monthEnd),
		})
	}

	var topProducts []productSales
	initializers.DB.Model(&models.OrderItem{}).
		Select("product_id, name, SUM(quantity) AS units_sold, SUM(subtotal) AS revenue").
		Group("product_id, name").
		Order("units_sold DESC").
		Limit(5).
		Scan(&topProducts)

	ctx.JSON(http.StatusOK, gin.H{
		"totalOrders":   totalOrders,
		"totalProducts": totalProducts,
		"totalUsers":    totalUsers,
		"totalRevenue":  totalRevenue,
		"dailySales":    salesBetween(startOfDay, now),
		"weeklySales":   salesBetween(startOfWeek, now),
		"monthlySales":  salesBetween(startOfMonth, now),
		"orderCounts":   statusCounts,
		"salesByMonth":  salesByMonth,
		"topProducts":   topProducts,
	})
}
