package handlers

import (
	"fmt"
	"log"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jennamart/internal/models"
	"jennamart/internal/storage"
)

type createOrderItemRequest struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity" binding:"required"`
}

type createOrderRequest struct {
	Items        []createOrderItemRequest `json:"items" binding:"required"`
	Total        float64                  `json:"total"`
	CustomerName string                   `json:"customerName"`
}

func GetOrders(db *mongo.Database) gin.HandlerFunc {
	orders := storage.NewOrders(db)

	return func(c *gin.Context) {
		limit, err := parseLimitParam(strings.TrimSpace(c.Query("limit")), 0)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		window, err := windowFromQuery(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		filters := make([]storage.Filter, 0, 3)
		if f := windowFilter(window); !f.IsAlways() {
			filters = append(filters, f)
		}
		if status := strings.TrimSpace(c.Query("status")); status != "" {
			filters = append(filters, storage.Eq("status", status))
		}
		if customer := strings.TrimSpace(c.Query("customerName")); customer != "" {
			filters = append(filters, storage.Eq("customerName", customer))
		}

		sortField := strings.TrimSpace(c.Query("sort"))
		if sortField == "" {
			sortField = "createdAt"
		}
		sortDir := -1
		if strings.EqualFold(strings.TrimSpace(c.Query("order")), "asc") {
			sortDir = 1
		}

		opts := options.Find().SetSort(bson.D{{Key: sortField, Value: sortDir}})
		if limit > 0 {
			opts.SetLimit(limit)
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		list, err := orders.Find(ctx, storage.And(filters...), opts)
		if err != nil {
			log.Println("GetOrders find error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		c.JSON(http.StatusOK, list)
	}
}

func CreateOrder(db *mongo.Database) gin.HandlerFunc {
	orders := storage.NewOrders(db)

	return func(c *gin.Context) {
		const route = "POST /orders"
		defer handlePanic(c, route)

		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		order, err := buildOrderFromRequest(req, time.Now())
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		id, err := orders.Insert(ctx, order)
		if err != nil {
			log.Println("CreateOrder insert error:", err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		order.ID = id

		c.JSON(http.StatusCreated, order)
	}
}

// buildOrderFromRequest validates the payload and fills the checkout
// defaults. The submitted total is stored as-is; a mismatch against the item
// subtotals is only logged.
func buildOrderFromRequest(req createOrderRequest, now time.Time) (models.Order, error) {
	if len(req.Items) == 0 {
		return models.Order{}, fmt.Errorf("at least one item is required")
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	computedTotal := 0.0
	for _, item := range req.Items {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return models.Order{}, fmt.Errorf("item name is required")
		}
		if item.Quantity < 1 {
			return models.Order{}, fmt.Errorf("quantity must be greater than zero")
		}
		if item.Price < 0 {
			return models.Order{}, fmt.Errorf("item price must not be negative")
		}

		items = append(items, models.OrderItem{
			ProductID: strings.TrimSpace(item.ProductID),
			Name:      name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
		computedTotal += item.Price * float64(item.Quantity)
	}

	if math.Abs(req.Total-computedTotal) > 0.001 {
		log.Printf("CreateOrder total mismatch: submitted=%v computed=%v", req.Total, computedTotal)
	}

	customer := strings.TrimSpace(req.CustomerName)
	if customer == "" {
		customer = "Guest"
	}

	return models.Order{
		OrderNumber:  fmt.Sprintf("ORD-%d", now.UnixMilli()),
		Items:        items,
		Total:        req.Total,
		CustomerName: customer,
		Status:       "completed",
		CreatedAt:    now,
	}, nil
}
