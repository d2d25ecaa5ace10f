package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/socksbox/socksbox-api/controllers"
	"github.com/socksbox/socksbox-api/middlewares"
)

func AuthRoutes(server *gin.Engine) {
	auth := server.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.GET("/user", middlewares.RequireAuth(), controllers.GetCurrentUser)
	}
}
