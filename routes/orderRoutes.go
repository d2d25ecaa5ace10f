package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/socksbox/socksbox-api/controllers"
	"github.com/socksbox/socksbox-api/middlewares"
)

func OrderRoutes(server *gin.Engine) {
	order := server.Group("/order", middlewares.RequireAuth())
	{
		order.POST("", controllers.CreateOrder)
		order.GET("", middlewares.RequireAdmin(), controllers.GetOrders)
		order.GET("/stats/undelivered", middlewares.RequireAdmin(), controllers.GetUndeliveredOrders)
		order.GET("/:orderId", controllers.GetOrderById)
		order.PATCH("/:orderId", middlewares.RequireAdmin(), controllers.UpdateOrderStatus)
		order.DELETE("/:orderId", middlewares.RequireAdmin(), controllers.DeleteOrder)
	}
	server.GET("/user/:userId/orders", middlewares.RequireAuth(), controllers.GetOrdersByCustomerId)
}
