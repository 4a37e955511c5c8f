package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jennamart/internal/models"
	"jennamart/internal/storage"
)

type productCreateRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	TrackStock  *bool   `json:"trackStock"`
}

type productUpdateRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	TrackStock  *bool    `json:"trackStock"`
}

func GetProducts(db *mongo.Database) gin.HandlerFunc {
	products := storage.NewProducts(db)

	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		filter := storage.Always()
		if category := strings.TrimSpace(c.Query("category")); category != "" {
			filter = storage.Eq("category", category)
		}

		opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
		list, err := products.Find(ctx, filter, opts)
		if err != nil {
			log.Println("GetProducts find error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		c.JSON(http.StatusOK, list)
	}
}

func CreateProduct(db *mongo.Database) gin.HandlerFunc {
	products := storage.NewProducts(db)

	return func(c *gin.Context) {
		var req productCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		name := strings.TrimSpace(req.Name)
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
			return
		}
		if req.Price <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
			return
		}
		if req.Stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "stock must be zero or greater"})
			return
		}

		trackStock := true
		if req.TrackStock != nil {
			trackStock = *req.TrackStock
		}

		product := models.Product{
			Name:        name,
			Price:       req.Price,
			Stock:       req.Stock,
			Category:    strings.TrimSpace(req.Category),
			Description: strings.TrimSpace(req.Description),
			TrackStock:  trackStock,
			CreatedAt:   time.Now(),
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		id, err := products.Insert(ctx, product)
		if err != nil {
			log.Println("CreateProduct insert error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		product.ID = id
		c.JSON(http.StatusCreated, product)
	}
}

func GetProduct(db *mongo.Database) gin.HandlerFunc {
	products := storage.NewProducts(db)

	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		product, err := products.FindByID(ctx, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		if product == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

func UpdateProduct(db *mongo.Database) gin.HandlerFunc {
	products := storage.NewProducts(db)

	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		var req productUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		set := bson.M{}
		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
				return
			}
			set["name"] = name
		}
		if req.Price != nil {
			if *req.Price <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
				return
			}
			set["price"] = *req.Price
		}
		if req.Stock != nil {
			if *req.Stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "stock must be zero or greater"})
				return
			}
			set["stock"] = *req.Stock
		}
		if req.Category != nil {
			set["category"] = strings.TrimSpace(*req.Category)
		}
		if req.Description != nil {
			set["description"] = strings.TrimSpace(*req.Description)
		}
		if req.TrackStock != nil {
			set["trackStock"] = *req.TrackStock
		}

		if len(set) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
			return
		}
		set["updatedAt"] = time.Now()

		ctx, cancel := requestContext(c)
		defer cancel()

		matched, err := products.UpdateByID(ctx, id, set)
		if err != nil {
			log.Println("UpdateProduct update error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		if matched == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		updated, err := products.FindByID(ctx, id)
		if err != nil || updated == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func DeleteProduct(db *mongo.Database) gin.HandlerFunc {
	products := storage.NewProducts(db)

	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		deleted, err := products.DeleteByID(ctx, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		if deleted == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
	}
}
