package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"jennamart/internal/reports"
	"jennamart/internal/storage"
)

// GetSalesStats computes the overview statistics for an optional date window.
// Growth figures are only present for a fully bounded window, compared
// against the immediately preceding period of equal length.
func GetSalesStats(db *mongo.Database) gin.HandlerFunc {
	orders := storage.NewOrders(db)

	return func(c *gin.Context) {
		window, err := windowFromQuery(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		list, err := orders.Find(ctx, windowFilter(window))
		if err != nil {
			log.Println("GetSalesStats find error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		stats := reports.SalesStats(list)

		var totalDays interface{}
		if prevFrom, prevTo, ok := reports.PreviousPeriod(window); ok {
			previous, err := orders.Find(ctx, storage.And(
				storage.Between("createdAt", prevFrom, nil),
				storage.Before("createdAt", prevTo),
			))
			if err != nil {
				log.Println("GetSalesStats previous period find error:", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
				return
			}
			stats.ApplyGrowth(sumTotals(previous), len(previous))

			days := int(reports.StartOfDay(*window.To).Sub(reports.StartOfDay(*window.From))/(24*time.Hour)) + 1
			totalDays = days
		}

		var from, to interface{}
		if raw := strings.TrimSpace(c.Query("fromDate")); raw != "" {
			from = raw
		}
		if raw := strings.TrimSpace(c.Query("toDate")); raw != "" {
			to = raw
		}

		c.JSON(http.StatusOK, gin.H{
			"totalRevenue":          stats.TotalRevenue,
			"totalOrders":           stats.TotalOrders,
			"totalItemsSold":        stats.TotalItemsSold,
			"averageOrderValue":     stats.AverageOrderValue,
			"uniqueProductsSold":    stats.UniqueProductsSold,
			"bestSellingProduct":    stats.BestSellingProduct,
			"highestRevenueProduct": stats.HighestRevenueProduct,
			"averageItemsPerOrder":  stats.AverageItemsPerOrder,
			"revenueGrowth":         stats.RevenueGrowth,
			"ordersGrowth":          stats.OrdersGrowth,
			"period": gin.H{
				"fromDate":  from,
				"toDate":    to,
				"totalDays": totalDays,
			},
		})
	}
}

// GetTopProducts ranks products by quantity sold within the window.
func GetTopProducts(db *mongo.Database) gin.HandlerFunc {
	orders := storage.NewOrders(db)

	return func(c *gin.Context) {
		window, err := windowFromQuery(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		limit, err := parseLimitParam(strings.TrimSpace(c.Query("limit")), 10)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		list, err := orders.Find(ctx, windowFilter(window))
		if err != nil {
			log.Println("GetTopProducts find error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		c.JSON(http.StatusOK, reports.TopProducts(list, int(limit)))
	}
}

// dailyWindow fills missing bounds of the daily rollup window from the
// default last-7-days window, keeping any bound the caller did supply.
func dailyWindow(window reports.Window, now time.Time) reports.Window {
	if window.Bounded() {
		return window
	}
	week, _ := reports.ResolveWindow("week", reports.Window{}, now)
	if window.From == nil {
		window.From = week.From
	}
	if window.To == nil {
		window.To = week.To
	}
	return window
}

// GetDailySales returns the gap-free per-day rollup. Missing window bounds
// fall back to the last 7 days.
func GetDailySales(db *mongo.Database) gin.HandlerFunc {
	orders := storage.NewOrders(db)

	return func(c *gin.Context) {
		window, err := windowFromQuery(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		window = dailyWindow(window, time.Now())

		ctx, cancel := requestContext(c)
		defer cancel()

		buckets, err := orders.DailyBuckets(ctx, windowFilter(window))
		if err != nil {
			log.Println("GetDailySales aggregate error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		c.JSON(http.StatusOK, reports.FillDaily(buckets, *window.From, *window.To))
	}
}

// GetMonthlySales returns up to limit months (default 12), oldest first, with
// growth against the preceding returned month.
func GetMonthlySales(db *mongo.Database) gin.HandlerFunc {
	orders := storage.NewOrders(db)

	return func(c *gin.Context) {
		limit, err := parseLimitParam(strings.TrimSpace(c.Query("limit")), 12)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		buckets, err := orders.MonthlyBuckets(ctx, limit)
		if err != nil {
			log.Println("GetMonthlySales aggregate error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		c.JSON(http.StatusOK, reports.MonthlyWithGrowth(buckets))
	}
}
