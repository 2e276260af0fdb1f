package dashboard_routes

import (
	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/controllers/dashboard/data_controller"
	"github.com/gin-gonic/gin"
)

func SetupDataRoutes(rg *gin.RouterGroup) {
	data := rg.Group("/data")

	data.GET("", data_controller.GetSnapshot)
	data.POST("/refresh", data_controller.RefreshSnapshot)
}
