package dashboard_routes

import (
	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/controllers/dashboard/customer_controller"
	"github.com/gin-gonic/gin"
)

func SetupCustomerRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")

	customers.GET("/metrics", customer_controller.GetCustomerMetrics)
	customers.GET("/recurrent", customer_controller.GetRecurrentCustomers)
	customers.GET("/countries", customer_controller.GetCountryBreakdown)
}
