package dashboard_routes

import (
	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/controllers/dashboard/analytics_controller"
	"github.com/gin-gonic/gin"
)

func SetupAnalyticsRoutes(rg *gin.RouterGroup) {
	analytics := rg.Group("/analytics")

	analytics.GET("/kpis", analytics_controller.GetKPIs)
	analytics.GET("/sales-trend", analytics_controller.GetSalesTrend)
	analytics.GET("/origins", analytics_controller.GetOriginBreakdown)
	analytics.GET("/day-of-week", analytics_controller.GetDayOfWeekBreakdown)
}
