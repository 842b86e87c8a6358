package routes

import (
	controller "go-delivery-marketplace/controllers"
	"go-delivery-marketplace/middleware"
	"go-delivery-marketplace/models"

	"github.com/gin-gonic/gin"
)

func CartRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/cart/:cart_key", middleware.RequireRole(models.RoleUser), controller.GetCart())
	incomingRoutes.POST("/cart", middleware.RequireRole(models.RoleUser), controller.AddToCart())
	incomingRoutes.PATCH("/cart", middleware.RequireRole(models.RoleUser), controller.UpdateCartItem())
}
