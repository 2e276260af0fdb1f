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

// GetKPIs godoc
// @Summary Get KPI metrics
// @Description Returns scalar sales KPIs (orders, revenue, free/paid split, unique customers, paid ratio) for the filtered period
// @Tags Dashboard - Analytics
// @Produce json
// @Param date_range query string false "ultimo_mes | ultimos_3_meses | ultimos_6_meses | year | all"
// @Param device query string false "todos | desktop | mobile"
// @Success 200 {object} models.ApiResponse{data=models.KPIMetrics}
// @Failure 502 {object} models.ApiResponse
// @Router /dashboard/analytics/kpis [get]
func GetKPIs(c *gin.Context) {
	log.Printf("[dashboard.analytics-kpis] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	snap, fromCache, err := services.GetSnapshot(ctx)
	if err != nil {
		log.Printf("[dashboard.analytics-kpis] ERROR snapshot err=%v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch data from Airtable"))
		return
	}

	filters := models.FilterFromQuery(c)
	filtered := analytics.FilterOrders(snap.Orders, filters, time.Now())
	kpis := analytics.ComputeKPIs(filtered)

	log.Printf("[dashboard.analytics-kpis] respond 200 orders=%d revenue=%.2f unique_customers=%d",
		kpis.TotalOrders, kpis.TotalRevenue, kpis.UniqueCustomers)

	c.JSON(http.StatusOK, models.AggregateResponse(c, "KPI metrics retrieved successfully", kpis, snap.Meta(fromCache), filters))
}
