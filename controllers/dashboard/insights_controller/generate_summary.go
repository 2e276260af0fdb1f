package insights_controller

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

// GenerateSummary godoc
// @Summary Generate executive summary
// @Description Builds a metrics digest for the filtered period and asks the generative model for a narrative summary with insights and a health score
// @Tags Dashboard - Insights
// @Produce json
// @Param date_range query string false "ultimo_mes | ultimos_3_meses | ultimos_6_meses | year | all"
// @Success 200 {object} models.ApiResponse{data=models.ExecutiveSummary}
// @Failure 502 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /dashboard/insights/summary [post]
func GenerateSummary(c *gin.Context) {
	log.Printf("[dashboard.insights-summary] start")

	gemini := services.GetGeminiClient()
	if gemini == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Executive summaries are not configured"))
		return
	}

	ctx, cancel := config.WithCustomTimeout(45 * time.Second)
	defer cancel()

	snap, fromCache, err := services.GetSnapshot(ctx)
	if err != nil {
		log.Printf("[dashboard.insights-summary] ERROR snapshot err=%v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch data from Airtable"))
		return
	}

	filters := models.FilterFromQuery(c)
	filtered := analytics.FilterOrders(snap.Orders, filters, time.Now())
	digest := analytics.BuildInsightsDigest(filtered, snap.Products, snap.Clients, filters.DateRange)

	summary, err := gemini.GenerateExecutiveSummary(ctx, digest)
	if err != nil {
		log.Printf("[dashboard.insights-summary] ERROR gemini err=%v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to generate executive summary"))
		return
	}

	log.Printf("[dashboard.insights-summary] respond 200 score=%d insights=%d", summary.Health.Score, len(summary.Insights))

	c.JSON(http.StatusOK, models.AggregateResponse(c, "Executive summary generated successfully", summary, snap.Meta(fromCache), filters))
}
