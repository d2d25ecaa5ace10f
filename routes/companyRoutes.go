package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/socksbox/socksbox-api/controllers"
	"github.com/socksbox/socksbox-api/middlewares"
)

func CompanyRoutes(server *gin.Engine) {
	company := server.Group("/company", middlewares.RequireAuth())
	{
		company.POST("", middlewares.RequireRole("seller"), controllers.RegisterCompany)
		company.GET("", middlewares.RequireAdmin(), controllers.GetCompanies)
		company.GET("/me", middlewares.RequireRole("seller"), controllers.GetOwnCompany)
		company.PATCH("/:id/status", middlewares.RequireAdmin(), controllers.UpdateCompanyStatus)
	}
}
