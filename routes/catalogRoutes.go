package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/socksbox/socksbox-api/controllers"
	"github.com/socksbox/socksbox-api/middlewares"
)

func CatalogRoutes(server *gin.Engine) {
	server.GET("/category", controllers.GetCategories)
	server.GET("/category/:id", controllers.GetCategory)
	server.POST("/category", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.CreateCategory)
	server.PUT("/category/:id", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.UpdateCategory)
	server.DELETE("/category/:id", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.DeleteCategory)

	server.GET("/brand", controllers.GetBrands)
	server.GET("/brand/:id", controllers.GetBrand)
	server.POST("/brand", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.CreateBrand)
	server.PUT("/brand/:id", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.UpdateBrand)
	server.DELETE("/brand/:id", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.DeleteBrand)
}
