package routes

import (
	controller "go-delivery-marketplace/controllers"

	"github.com/gin-gonic/gin"
)

func UserRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/users/signup", controller.SignUp())
	incomingRoutes.POST("/users/login", controller.Login())
	incomingRoutes.POST("/delivery/signup", controller.DeliverySignUp())
	incomingRoutes.POST("/delivery/login", controller.DeliveryLogin())
	incomingRoutes.GET("/ws", controller.HandleWebSocket())
}

func AccountRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/users/:user_id", controller.GetUser())
	incomingRoutes.GET("/addresses", controller.GetAddresses())
	incomingRoutes.POST("/addresses", controller.AddAddress())
	incomingRoutes.DELETE("/addresses/:address_id", controller.DeleteAddress())
	incomingRoutes.GET("/notifications", controller.GetNotifications())
	incomingRoutes.PATCH("/notifications/:notification_id/read", controller.MarkNotificationRead())
}
