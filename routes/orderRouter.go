package routes

import (
	controller "go-delivery-marketplace/controllers"
	"go-delivery-marketplace/middleware"
	"go-delivery-marketplace/models"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/orders", controller.GetOrders())
	incomingRoutes.GET("/orders/:order_id", controller.GetOrder())
	incomingRoutes.POST("/orders", middleware.RequireRole(models.RoleUser), controller.PlaceOrder())
	incomingRoutes.POST("/orders/:order_id/review", middleware.RequireRole(models.RoleUser), controller.SubmitReview())
	incomingRoutes.PATCH("/orders/:order_id/preparing", middleware.RequireRole(models.RoleSeller, models.RoleAdmin), controller.MarkPreparing())
	incomingRoutes.PATCH("/orders/:order_id/cancel", middleware.RequireRole(models.RoleSeller, models.RoleAdmin), controller.CancelOrder())
}
