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

// GetCombinations godoc
// @Summary Get most common product combinations
// @Description Returns the top 5 unordered pairs of distinct product names downloaded together in the same order
// @Tags Dashboard - Products
// @Produce json
// @Param date_range query string false "ultimo_mes | ultimos_3_meses | ultimos_6_meses | year | all"
// @Success 200 {object} models.ApiResponse{data=[]models.BasketPair}
// @Failure 502 {object} models.ApiResponse
// @Router /dashboard/products/combinations [get]
func GetCombinations(c *gin.Context) {
	log.Printf("[dashboard.products-combinations] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	snap, fromCache, err := services.GetSnapshot(ctx)
	if err != nil {
		log.Printf("[dashboard.products-combinations] ERROR snapshot err=%v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch data from Airtable"))
		return
	}

	filters := models.FilterFromQuery(c)
	filtered := analytics.FilterOrders(snap.Orders, filters, time.Now())

	// keep only product rows whose owning order survived the filter
	surviving := make(map[string]struct{}, len(filtered))
	for _, o := range filtered {
		surviving[o.OrderNumber] = struct{}{}
	}
	products := make([]models.Product, 0, len(snap.Products))
	for _, p := range snap.Products {
		if _, ok := surviving[p.OrderNumber]; ok {
			products = append(products, p)
		}
	}

	pairs := analytics.MinePairs(products)

	log.Printf("[dashboard.products-combinations] respond 200 pairs=%d orders=%d", len(pairs), len(filtered))

	c.JSON(http.StatusOK, models.AggregateResponse(c, "Product combinations retrieved successfully", pairs, snap.Meta(fromCache), filters))
}
