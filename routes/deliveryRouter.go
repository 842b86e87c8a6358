package routes

import (
	controller "go-delivery-marketplace/controllers"
	"go-delivery-marketplace/middleware"
	"go-delivery-marketplace/models"

	"github.com/gin-gonic/gin"
)

func DeliveryRoutes(incomingRoutes *gin.Engine) {
	delivery := incomingRoutes.Group("/delivery", middleware.RequireRole(models.RoleDelivery))
	delivery.GET("/orders/available", controller.GetAvailableOrders())
	delivery.POST("/orders/:order_id/accept", controller.AcceptOrder())
	delivery.PATCH("/orders/:order_id/pickup", controller.ConfirmPickup())
	delivery.PATCH("/orders/:order_id/deliver", controller.ConfirmDelivery())
	delivery.GET("/orders", controller.GetMyDeliveries())
	delivery.GET("/dashboard", controller.GetDashboard())
	delivery.PATCH("/availability", controller.SetAvailability())
}
