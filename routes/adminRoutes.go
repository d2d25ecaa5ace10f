package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/socksbox/socksbox-api/controllers"
	"github.com/socksbox/socksbox-api/middlewares"
)

func AdminRoutes(server *gin.Engine) {
	admin := server.Group("/admin", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.GET("/customers", controllers.GetCustomers)
		admin.GET("/analytics", controllers.GetAnalytics)
	}
}
