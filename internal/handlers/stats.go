package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"jennamart/internal/storage"
)

// GetStats reports collection counts, total revenue and last-activity
// timestamps for the dashboard.
func GetStats(db *mongo.Database) gin.HandlerFunc {
	products := storage.NewProducts(db)
	orders := storage.NewOrders(db)

	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		productCount, err := products.Count(ctx, storage.Always())
		if err != nil {
			log.Println("GetStats products count error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		orderCount, err := orders.Count(ctx, storage.Always())
		if err != nil {
			log.Println("GetStats orders count error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		orderList, err := orders.Find(ctx, storage.Always())
		if err != nil {
			log.Println("GetStats orders find error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		totalRevenue := sumTotals(orderList)

		latestOrder, err := orders.Latest(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		latestProduct, err := products.Latest(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		var lastOrderAt, lastProductAt, lastActivity interface{}
		if latestOrder != nil {
			lastOrderAt = latestOrder.CreatedAt
			lastActivity = latestOrder.CreatedAt
		}
		if latestProduct != nil {
			lastProductAt = latestProduct.CreatedAt
			if lastActivity == nil {
				lastActivity = latestProduct.CreatedAt
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"collections": gin.H{
				"products": gin.H{
					"count":       productCount,
					"lastUpdated": lastProductAt,
				},
				"orders": gin.H{
					"count":        orderCount,
					"lastUpdated":  lastOrderAt,
					"totalRevenue": totalRevenue,
				},
			},
			"summary": gin.H{
				"totalProducts": productCount,
				"totalOrders":   orderCount,
				"totalRevenue":  totalRevenue,
				"lastActivity":  lastActivity,
			},
		})
	}
}
