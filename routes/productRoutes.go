package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/socksbox/socksbox-api/controllers"
	"github.com/socksbox/socksbox-api/middlewares"
)

func ProductRoutes(server *gin.Engine) {
	server.GET("/product", controllers.GetProducts)
	server.GET("/product/:id", controllers.GetProduct)
	server.POST("/product", middlewares.RequireAuth(), middlewares.RequireSeller(), controllers.CreateProduct)
	server.PUT("/product/:id", middlewares.RequireAuth(), middlewares.RequireSeller(), controllers.UpdateProduct)
	server.DELETE("/product/:id", middlewares.RequireAuth(), middlewares.RequireSeller(), controllers.DeleteProduct)
	server.POST("/product-images", middlewares.RequireAuth(), middlewares.RequireSeller(), controllers.UploadProductImages)
}
