package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"jennamart/internal/cart"
	"jennamart/internal/models"
	"jennamart/internal/storage"
)

const sessionHeader = "X-Session-ID"

// sessionID reads the caller's session from the X-Session-ID header, minting
// a fresh one when absent. The ID is always echoed back so the client can
// keep it.
func sessionID(c *gin.Context) string {
	id := strings.TrimSpace(c.GetHeader(sessionHeader))
	if id == "" {
		id = uuid.NewString()
	}
	c.Header(sessionHeader, id)
	return id
}

type cartItemRequest struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type cartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func GetCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, store.Get(sessionID(c)))
	}
}

func AddCartItem(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if req.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "item price must not be negative"})
			return
		}

		item := models.OrderItem{
			ProductID: strings.TrimSpace(req.ProductID),
			Name:      strings.TrimSpace(req.Name),
			Price:     req.Price,
			Quantity:  req.Quantity,
		}

		state := store.Apply(sessionID(c), func(s cart.State) cart.State {
			return cart.AddItem(s, item)
		})
		c.JSON(http.StatusOK, state)
	}
}

func UpdateCartItem(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("productId")

		var req cartQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		state := store.Apply(sessionID(c), func(s cart.State) cart.State {
			return cart.SetQuantity(s, productID, req.Quantity)
		})
		c.JSON(http.StatusOK, state)
	}
}

func RemoveCartItem(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("productId")

		state := store.Apply(sessionID(c), func(s cart.State) cart.State {
			return cart.RemoveItem(s, productID)
		})
		c.JSON(http.StatusOK, state)
	}
}

func ClearCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := store.Apply(sessionID(c), cart.Clear)
		c.JSON(http.StatusOK, state)
	}
}

type checkoutRequest struct {
	CustomerName string `json:"customerName"`
}

// Checkout turns the session's cart into a stored order and drops the cart.
// An empty cart cannot be checked out.
func Checkout(db *mongo.Database, store *cart.Store) gin.HandlerFunc {
	orders := storage.NewOrders(db)

	return func(c *gin.Context) {
		const route = "POST /cart/checkout"
		defer handlePanic(c, route)

		session := sessionID(c)
		state := store.Get(session)
		if len(state.Items) == 0 {
			respondWithError(c, http.StatusBadRequest, route, "cart is empty")
			return
		}

		var req checkoutRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				respondWithError(c, http.StatusBadRequest, route, "invalid request body")
				return
			}
		}

		items := make([]createOrderItemRequest, 0, len(state.Items))
		for _, item := range state.Items {
			items = append(items, createOrderItemRequest{
				ProductID: item.ProductID,
				Name:      item.Name,
				Price:     item.Price,
				Quantity:  item.Quantity,
			})
		}

		order, err := buildOrderFromRequest(createOrderRequest{
			Items:        items,
			Total:        state.Total,
			CustomerName: req.CustomerName,
		}, time.Now())
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		id, err := orders.Insert(ctx, order)
		if err != nil {
			log.Println("Checkout insert error:", err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		order.ID = id

		store.Drop(session)
		c.JSON(http.StatusCreated, order)
	}
}
