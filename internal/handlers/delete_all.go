package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"jennamart/internal/reports"
	"jennamart/internal/retention"
	"jennamart/internal/storage"
)

// DeleteAllData bulk-deletes the selected collections. Orders are governed by
// the retention safety period; products are wiped unconditionally. All plans
// are validated before the first delete runs, so a rejected window deletes
// nothing at all.
func DeleteAllData(db *mongo.Database) gin.HandlerFunc {
	products := storage.NewProducts(db)
	orders := storage.NewOrders(db)

	return func(c *gin.Context) {
		const route = "DELETE /delete-all"
		defer handlePanic(c, route)

		raw := strings.TrimSpace(c.Query("collections"))
		if raw == "" {
			respondWithError(c, http.StatusBadRequest, route, "collections parameter is required")
			return
		}
		collections := parseCollectionsParam(raw)
		if len(collections) == 0 {
			respondWithError(c, http.StatusBadRequest, route, "no valid collections specified")
			return
		}

		window, err := windowFromQuery(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		safety := reports.SafetyBoundary(time.Now())

		plans := make([]retention.Plan, 0, len(collections))
		for _, collection := range collections {
			plan, err := retention.PlanDeletion(collection, window, safety)
			if err != nil {
				var violation retention.SafetyViolationError
				if errors.As(err, &violation) {
					c.JSON(http.StatusBadRequest, gin.H{
						"success":    false,
						"error":      violation.Error(),
						"safetyDate": violation.SafetyDate.Format("2006-01-02"),
					})
					return
				}
				respondWithError(c, http.StatusBadRequest, route, err.Error())
				return
			}
			plans = append(plans, plan)
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		if err := ensureDBConnection(ctx, db); err != nil {
			log.Println("DeleteAllData ping error:", err)
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		results := gin.H{}
		allSuccessful := true
		var totalDeleted int64
		for _, plan := range plans {
			var col retention.Collection
			switch plan.Collection {
			case "products":
				col = products
			case "orders":
				col = orders
			}

			result, err := retention.Execute(ctx, col, plan)
			if err != nil {
				log.Printf("DeleteAllData %s error: %v", plan.Collection, err)
				respondWithError(c, http.StatusInternalServerError, route, "db error")
				return
			}

			if result.PreviousCount == 0 {
				if plan.Collection == "orders" && !window.Empty() {
					result.Message = "No orders found in the specified date range (excluding safety period)"
				} else {
					result.Message = fmt.Sprintf("%s collection was already empty", plan.Collection)
				}
			}

			results[plan.Collection] = result
			totalDeleted += result.DeletedCount
			allSuccessful = allSuccessful && result.Success
		}

		message := "Data deletion completed"
		if !allSuccessful {
			message = "Data deletion completed with errors"
		}

		var from, to interface{}
		if window.From != nil {
			from = window.From.Format("2006-01-02")
		}
		if window.To != nil {
			to = window.To.Format("2006-01-02")
		}

		c.JSON(http.StatusOK, gin.H{
			"success":      allSuccessful,
			"message":      message,
			"collections":  collections,
			"results":      results,
			"totalDeleted": totalDeleted,
			"safetyDate":   safety.Format("2006-01-02"),
			"dateRange":    gin.H{"from": from, "to": to},
		})
	}
}
