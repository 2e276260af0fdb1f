package product_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/analytics"
	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/config"
	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/models"
	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/services"
	"github.com/gin-gonic/gin"
)

// GetProductRanking godoc
// @Summary Get product ranking
// @Description Returns download counts and unique customers per (product name, version) pair for orders in the filtered period
// @Tags Dashboard - Products
// @Produce json
// @Param date_range query string false "ultimo_mes | ultimos_3_meses | ultimos_6_meses | year | all"
// @Success 200 {object} models.ApiResponse{data=[]models.ProductStat}
// @Failure 502 {object} models.ApiResponse
// @Router /dashboard/products/ranking [get]
func GetProductRanking(c *gin.Context) {
	log.Printf("[dashboard.products-ranking] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	snap, fromCache, err := services.GetSnapshot(ctx)
	if err != nil {
		log.Printf("[dashboard.products-ranking] ERROR snapshot err=%v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch data from Airtable"))
		return
	}

	filters := models.FilterFromQuery(c)
	filtered := analytics.FilterOrders(snap.Orders, filters, time.Now())
	ranking := analytics.ProductBreakdown(filtered, snap.Products)

	log.Printf("[dashboard.products-ranking] respond 200 products=%d orders=%d", len(ranking), len(filtered))

	c.JSON(http.StatusOK, models.AggregateResponse(c, "Product ranking retrieved successfully", ranking, snap.Meta(fromCache), filters))
}
