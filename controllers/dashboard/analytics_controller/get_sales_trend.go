package analytics_controller

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

// GetSalesTrend godoc
// @Summary Get sales evolution
// @Description Returns daily order counts split by free vs paid orders for the filtered period
// @Tags Dashboard - Analytics
// @Produce json
// @Param date_range query string false "ultimo_mes | ultimos_3_meses | ultimos_6_meses | year | all"
// @Success 200 {object} models.ApiResponse{data=[]models.TrendPoint}
// @Failure 502 {object} models.ApiResponse
// @Router /dashboard/analytics/sales-trend [get]
func GetSalesTrend(c *gin.Context) {
	log.Printf("[dashboard.analytics-trend] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	snap, fromCache, err := services.GetSnapshot(ctx)
	if err != nil {
		log.Printf("[dashboard.analytics-trend] ERROR snapshot err=%v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch data from Airtable"))
		return
	}

	filters := models.FilterFromQuery(c)
	filtered := analytics.FilterOrders(snap.Orders, filters, time.Now())
	trend := analytics.SalesTrend(filtered)

	log.Printf("[dashboard.analytics-trend] respond 200 days=%d orders=%d", len(trend), len(filtered))

	c.JSON(http.StatusOK, models.AggregateResponse(c, "Sales trend retrieved successfully", trend, snap.Meta(fromCache), filters))
}
