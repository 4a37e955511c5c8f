package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"jennamart/internal/cart"
	"jennamart/internal/config"
	"jennamart/internal/database"
	"jennamart/internal/handlers"
	"jennamart/internal/middleware"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureProductIndexes(db); err != nil {
		log.Printf("product index warning: %v", err)
	}
	if err := database.EnsureOrderIndexes(db); err != nil {
		log.Printf("order index warning: %v", err)
	}

	carts := cart.NewStore()

	r := gin.Default()

	r.POST("/admin/login", handlers.AdminLogin(
		config.AppEnv.AdminPasswordHash,
		config.AppEnv.JWTSecret,
		config.AppEnv.AccessTokenTTL,
	))

	r.GET("/products", handlers.GetProducts(db))
	r.POST("/products", handlers.CreateProduct(db))
	r.GET("/products/:id", handlers.GetProduct(db))
	r.PUT("/products/:id", handlers.UpdateProduct(db))
	r.DELETE("/products/:id", handlers.DeleteProduct(db))

	r.GET("/orders", handlers.GetOrders(db))
	r.POST("/orders", handlers.CreateOrder(db))
	r.GET("/orders/stats", handlers.GetOrderStats(db))

	r.GET("/sales/stats", handlers.GetSalesStats(db))
	r.GET("/sales/top-products", handlers.GetTopProducts(db))
	r.GET("/sales/daily", handlers.GetDailySales(db))
	r.GET("/sales/monthly", handlers.GetMonthlySales(db))
	r.GET("/sales/export", handlers.ExportSalesReport(db))

	r.GET("/export", handlers.ExportData(db))
	r.GET("/stats", handlers.GetStats(db))

	r.GET("/cart", handlers.GetCart(carts))
	r.POST("/cart/items", handlers.AddCartItem(carts))
	r.PUT("/cart/items/:productId", handlers.UpdateCartItem(carts))
	r.DELETE("/cart/items/:productId", handlers.RemoveCartItem(carts))
	r.DELETE("/cart", handlers.ClearCart(carts))
	r.POST("/cart/checkout", handlers.Checkout(db, carts))

	admin := r.Group("/")
	admin.Use(middleware.AdminAuth(config.AppEnv.JWTSecret))
	{
		admin.DELETE("/delete-all", handlers.DeleteAllData(db))
		admin.POST("/import/products", handlers.ImportProducts(db))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
