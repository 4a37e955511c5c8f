package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"jennamart/internal/export"
	"jennamart/internal/models"
	"jennamart/internal/storage"
)

// ExportData streams a JSON snapshot of the selected collections as a file
// download. With no selection both collections are exported.
func ExportData(db *mongo.Database) gin.HandlerFunc {
	products := storage.NewProducts(db)
	orders := storage.NewOrders(db)

	return func(c *gin.Context) {
		collections := []string{"products", "orders"}
		if raw := strings.TrimSpace(c.Query("collections")); raw != "" {
			collections = parseCollectionsParam(raw)
			if len(collections) == 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "no valid collections specified"})
				return
			}
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		var productList []models.Product
		var orderList []models.Order
		for _, collection := range collections {
			var err error
			switch collection {
			case "products":
				productList, err = products.Find(ctx, storage.Always())
			case "orders":
				orderList, err = orders.Find(ctx, storage.Always())
			}
			if err != nil {
				log.Println("ExportData find error:", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
				return
			}
		}

		now := time.Now()
		doc := export.Snapshot(collections, productList, orderList, now)
		filename := export.SnapshotFilename(collections, now)

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.IndentedJSON(http.StatusOK, doc)
	}
}

// ExportSalesReport streams the overview or detailed sales report as a file
// download.
func ExportSalesReport(db *mongo.Database) gin.HandlerFunc {
	products := storage.NewProducts(db)
	orders := storage.NewOrders(db)

	return func(c *gin.Context) {
		window, err := windowFromQuery(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		reportType := strings.TrimSpace(c.Query("type"))
		if reportType == "" {
			reportType = "overview"
		}
		if reportType != "overview" && reportType != "detailed" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "type must be overview or detailed"})
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		orderList, err := orders.Find(ctx, windowFilter(window))
		if err != nil {
			log.Println("ExportSalesReport orders find error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		productCount, err := products.Count(ctx, storage.Always())
		if err != nil {
			log.Println("ExportSalesReport products count error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		now := time.Now()
		report := export.SalesReport(reportType, window, orderList, int(productCount), now)
		filename := export.SalesReportFilename(reportType, window, now)

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.IndentedJSON(http.StatusOK, report)
	}
}
