package dashboard_routes

import (
	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/controllers/dashboard/insights_controller"
	"github.com/gin-gonic/gin"
)

func SetupInsightsRoutes(rg *gin.RouterGroup) {
	insights := rg.Group("/insights")

	insights.POST("/summary", insights_controller.GenerateSummary)
}
