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

// GetVersionSplit godoc
// @Summary Get free vs paid split
// @Description Returns aggregate download totals for Gratuita vs Avanzada product versions in the filtered period
// @Tags Dashboard - Products
// @Produce json
// @Param date_range query string false "ultimo_mes | ultimos_3_meses | ultimos_6_meses | year | all"
// @Success 200 {object} models.ApiResponse{data=models.VersionSplit}
// @Failure 502 {object} models.ApiResponse
// @Router /dashboard/products/version-split [get]
func GetVersionSplit(c *gin.Context) {
	log.Printf("[dashboard.products-versions] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	snap, fromCache, err := services.GetSnapshot(ctx)
	if err != nil {
		log.Printf("[dashboard.products-versions] ERROR snapshot err=%v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch data from Airtable"))
		return
	}

	filters := models.FilterFromQuery(c)
	filtered := analytics.FilterOrders(snap.Orders, filters, time.Now())
	split := analytics.SplitByVersion(analytics.ProductBreakdown(filtered, snap.Products))

	log.Printf("[dashboard.products-versions] respond 200 gratuita=%d avanzada=%d", split.Gratuita, split.Avanzada)

	c.JSON(http.StatusOK, models.AggregateResponse(c, "Version split retrieved successfully", split, snap.Meta(fromCache), filters))
}
