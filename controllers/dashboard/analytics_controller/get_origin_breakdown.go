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

// GetOriginBreakdown godoc
// @Summary Get traffic origin breakdown
// @Description Returns orders per traffic origin with newsletter conversion and average pages per session, orders without an origin bucketed as Directo
// @Tags Dashboard - Analytics
// @Produce json
// @Param date_range query string false "ultimo_mes | ultimos_3_meses | ultimos_6_meses | year | all"
// @Success 200 {object} models.ApiResponse{data=[]models.OriginStat}
// @Failure 502 {object} models.ApiResponse
// @Router /dashboard/analytics/origins [get]
func GetOriginBreakdown(c *gin.Context) {
	log.Printf("[dashboard.analytics-origins] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	snap, fromCache, err := services.GetSnapshot(ctx)
	if err != nil {
		log.Printf("[dashboard.analytics-origins] ERROR snapshot err=%v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch data from Airtable"))
		return
	}

	filters := models.FilterFromQuery(c)
	filtered := analytics.FilterOrders(snap.Orders, filters, time.Now())
	origins := analytics.OriginBreakdown(filtered)

	log.Printf("[dashboard.analytics-origins] respond 200 origins=%d orders=%d", len(origins), len(filtered))

	c.JSON(http.StatusOK, models.AggregateResponse(c, "Origin breakdown retrieved successfully", origins, snap.Meta(fromCache), filters))
}
