package routes

import (
	controller "go-delivery-marketplace/controllers"
	"go-delivery-marketplace/middleware"
	"go-delivery-marketplace/models"

	"github.com/gin-gonic/gin"
)

func AdminRoutes(incomingRoutes *gin.Engine) {
	admin := incomingRoutes.Group("/admin", middleware.RequireRole(models.RoleAdmin))
	admin.GET("/delivery-boys", controller.GetDeliveryBoys())
	admin.POST("/delivery-boys/:delivery_boy_id/settle", controller.SettleOutstanding())
	admin.GET("/stats/orders/:month", controller.GetMonthlyOrderStats())
	admin.GET("/stats/commissions/:startDate/:endDate", controller.GetCommissionReport())
	admin.POST("/promotions", controller.BroadcastPromo())
	admin.POST("/coupons", controller.CreateCoupon())
	admin.DELETE("/coupons/:name", controller.DeleteCoupon())
}
