package routes

import (
	controller "go-delivery-marketplace/controllers"
	"go-delivery-marketplace/middleware"
	"go-delivery-marketplace/models"

	"github.com/gin-gonic/gin"
)

func CatalogRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/shops", controller.GetShops())
	incomingRoutes.GET("/products", controller.GetProducts())
	incomingRoutes.GET("/products/:product_id", controller.GetProduct())
	incomingRoutes.GET("/coupons", controller.GetCoupons())
	incomingRoutes.GET("/coupons/:name", controller.GetCoupon())

	incomingRoutes.POST("/shops", middleware.RequireRole(models.RoleSeller), controller.CreateShop())
	incomingRoutes.POST("/products", middleware.RequireRole(models.RoleSeller), controller.CreateProduct())
	incomingRoutes.PATCH("/products/:product_id", middleware.RequireRole(models.RoleSeller, models.RoleAdmin), controller.UpdateProduct())
}
