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

// GetDayOfWeekBreakdown godoc
// @Summary Get orders by day of week
// @Description Returns order counts per weekday, Monday first, all seven days present even at zero
// @Tags Dashboard - Analytics
// @Produce json
// @Param date_range query string false "ultimo_mes | ultimos_3_meses | ultimos_6_meses | year | all"
// @Success 200 {object} models.ApiResponse{data=[]models.DayOfWeekStat}
// @Failure 502 {object} models.ApiResponse
// @Router /dashboard/analytics/day-of-week [get]
func GetDayOfWeekBreakdown(c *gin.Context) {
	log.Printf("[dashboard.analytics-dow] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	snap, fromCache, err := services.GetSnapshot(ctx)
	if err != nil {
		log.Printf("[dashboard.analytics-dow] ERROR snapshot err=%v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch data from Airtable"))
		return
	}

	filters := models.FilterFromQuery(c)
	filtered := analytics.FilterOrders(snap.Orders, filters, time.Now())
	days := analytics.DayOfWeekBreakdown(filtered)

	log.Printf("[dashboard.analytics-dow] respond 200 orders=%d", len(filtered))

	c.JSON(http.StatusOK, models.AggregateResponse(c, "Day of week breakdown retrieved successfully", days, snap.Meta(fromCache), filters))
}
