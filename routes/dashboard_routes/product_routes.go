package dashboard_routes

import (
	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/controllers/dashboard/product_controller"
	"github.com/gin-gonic/gin"
)

func SetupProductRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")

	products.GET("/ranking", product_controller.GetProductRanking)
	products.GET("/version-split", product_controller.GetVersionSplit)
	products.GET("/combinations", product_controller.GetCombinations)
}
