package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"jennamart/internal/models"
	"jennamart/internal/reports"
	"jennamart/internal/storage"
)

// GetOrderStats previews what a retention delete would touch: orders in the
// requested range, orders inside the protected safety period, and the
// deletable remainder.
func GetOrderStats(db *mongo.Database) gin.HandlerFunc {
	orders := storage.NewOrders(db)

	return func(c *gin.Context) {
		window, err := windowFromQuery(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		safety := reports.SafetyBoundary(time.Now())

		rangeFilter := windowFilter(window)

		ctx, cancel := requestContext(c)
		defer cancel()

		inRange, err := orders.Find(ctx, rangeFilter)
		if err != nil {
			log.Println("GetOrderStats range find error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		inSafety, err := orders.Find(ctx, storage.Between("createdAt", safety, nil))
		if err != nil {
			log.Println("GetOrderStats safety find error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		deletable, err := orders.Find(ctx, storage.And(
			storage.Before("createdAt", safety),
			rangeFilter,
		))
		if err != nil {
			log.Println("GetOrderStats deletable find error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		var oldest, newest interface{}
		if len(deletable) > 0 {
			oldestAt, newestAt := deletable[0].CreatedAt, deletable[0].CreatedAt
			for _, order := range deletable[1:] {
				if order.CreatedAt.Before(oldestAt) {
					oldestAt = order.CreatedAt
				}
				if order.CreatedAt.After(newestAt) {
					newestAt = order.CreatedAt
				}
			}
			oldest, newest = oldestAt, newestAt
		}

		var from, to interface{}
		if raw := strings.TrimSpace(c.Query("fromDate")); raw != "" {
			from = raw
		}
		if raw := strings.TrimSpace(c.Query("toDate")); raw != "" {
			to = raw
		}

		c.JSON(http.StatusOK, gin.H{
			"dateRange": gin.H{
				"from":           from,
				"to":             to,
				"ordersInRange":  len(inRange),
				"revenueInRange": sumTotals(inRange),
			},
			"safetyPeriod": gin.H{
				"safetyDate":            safety.Format("2006-01-02"),
				"ordersInSafetyPeriod":  len(inSafety),
				"revenueInSafetyPeriod": sumTotals(inSafety),
			},
			"deletable": gin.H{
				"count":       len(deletable),
				"revenue":     sumTotals(deletable),
				"oldestOrder": oldest,
				"newestOrder": newest,
			},
		})
	}
}

func sumTotals(orders []models.Order) float64 {
	total := 0.0
	for _, order := range orders {
		total += order.Total
	}
	return total
}
