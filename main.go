package main

import (
	"log"
	"net/http"
	"os"

	"restaurant-site-api/config"
	"restaurant-site-api/database"
	"restaurant-site-api/handlers"
	"restaurant-site-api/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	log.Println("Database connected successfully")

	// Repair the schema before the listener starts. A failed bootstrap is
	// logged, not fatal: the process keeps serving and data operations
	// surface their own errors.
	if err := database.Bootstrap(db); err != nil {
		log.Println("Schema bootstrap failed:", err)
	} else {
		log.Println("Database schema ready")
	}

	if _, err := os.Stat(cfg.UploadDir); os.IsNotExist(err) {
		os.MkdirAll(cfg.UploadDir, 0755)
	}

	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Restaurant Site API",
		})
	})

	routes.SetupRoutes(r, handlers.New(db, cfg), cfg)

	log.Printf("Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
