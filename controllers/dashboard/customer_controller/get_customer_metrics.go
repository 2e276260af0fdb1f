package customer_controller

import (
	"log"
	"net/http"

	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/analytics"
	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/config"
	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/models"
	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/services"
	"github.com/gin-gonic/gin"
)

// GetCustomerMetrics godoc
// @Summary Get customer metrics
// @Description Returns unique customers, recurrent customers, recurrence rate and countries reached over the full snapshot
// @Tags Dashboard - Customers
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CustomerMetrics}
// @Failure 502 {object} models.ApiResponse
// @Router /dashboard/customers/metrics [get]
func GetCustomerMetrics(c *gin.Context) {
	log.Printf("[dashboard.customers-metrics] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	snap, fromCache, err := services.GetSnapshot(ctx)
	if err != nil {
		log.Printf("[dashboard.customers-metrics] ERROR snapshot err=%v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch data from Airtable"))
		return
	}

	// customers view reads the full snapshot, not the filtered subset
	metrics := analytics.CustomerMetrics(snap.Orders, snap.Clients)

	log.Printf("[dashboard.customers-metrics] respond 200 unique=%d recurrent=%d",
		metrics.UniqueCustomers, metrics.RecurrentCustomers)

	c.JSON(http.StatusOK, models.SnapshotResponse(c, "Customer metrics retrieved successfully", metrics, snap.Meta(fromCache)))
}
