package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/socksbox/socksbox-api/controllers"
	"github.com/socksbox/socksbox-api/middlewares"
)

func PaymentRoutes(server *gin.Engine) {
	payment := server.Group("/payment")
	{
		payment.POST("/initiate", middlewares.RequireAuth(), controllers.InitiatePayment)
		// eSewa redirects the browser here without our bearer token.
		payment.GET("/verify", controllers.VerifyEsewaPayment)
	}
}
