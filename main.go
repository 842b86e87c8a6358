package main

import (
	"log"
	"os"
	"time"

	"go-delivery-marketplace/database"
	"go-delivery-marketplace/middleware"
	routes "go-delivery-marketplace/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("no .env file found, falling back to environment")
	}

	database.EnsureIndexes(database.Client)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:9000"},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// public routes
	routes.UserRoutes(router)

	// everything below requires a valid token
	router.Use(middleware.Authentication())
	routes.AccountRoutes(router)
	routes.CatalogRoutes(router)
	routes.CartRoutes(router)
	routes.OrderRoutes(router)
	routes.DeliveryRoutes(router)
	routes.AdminRoutes(router)

	router.Run(":" + port)
}
