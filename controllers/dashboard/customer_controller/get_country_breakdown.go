package customer_controller

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/analytics"
	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/config"
	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/models"
	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/services"
	"github.com/gin-gonic/gin"
)

const defaultCountryLimit = 10

// GetCountryBreakdown godoc
// @Summary Get orders by country
// @Description Returns order counts per resolved client country, unresolved customers bucketed as Desconocido, truncated to the top N
// @Tags Dashboard - Customers
// @Produce json
// @Param limit query int false "top-N truncation, default 10"
// @Param date_range query string false "ultimo_mes | ultimos_3_meses | ultimos_6_meses | year | all"
// @Success 200 {object} models.ApiResponse{data=[]models.CountryStat}
// @Failure 502 {object} models.ApiResponse
// @Router /dashboard/customers/countries [get]
func GetCountryBreakdown(c *gin.Context) {
	log.Printf("[dashboard.customers-countries] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	snap, fromCache, err := services.GetSnapshot(ctx)
	if err != nil {
		log.Printf("[dashboard.customers-countries] ERROR snapshot err=%v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch data from Airtable"))
		return
	}

	limit := defaultCountryLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	filters := models.FilterFromQuery(c)
	filtered := analytics.FilterOrders(snap.Orders, filters, time.Now())
	countries := analytics.CountryBreakdown(filtered, snap.Clients, limit)

	log.Printf("[dashboard.customers-countries] respond 200 countries=%d orders=%d", len(countries), len(filtered))

	c.JSON(http.StatusOK, models.AggregateResponse(c, "Country breakdown retrieved successfully", countries, snap.Meta(fromCache), filters))
}
