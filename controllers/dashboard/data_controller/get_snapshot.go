package data_controller

import (
	"log"
	"net/http"

	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/config"
	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/models"
	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/services"
	"github.com/gin-gonic/gin"
)

// GetSnapshot godoc
// @Summary Get the raw data snapshot
// @Description Returns the current orders, products and clients collections with the time they were fetched from Airtable
// @Tags Dashboard - Data
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.DashboardData}
// @Failure 502 {object} models.ApiResponse
// @Router /dashboard/data [get]
func GetSnapshot(c *gin.Context) {
	log.Printf("[dashboard.data] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	snap, fromCache, err := services.GetSnapshot(ctx)
	if err != nil {
		log.Printf("[dashboard.data] ERROR snapshot err=%v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch data from Airtable"))
		return
	}

	log.Printf("[dashboard.data] respond 200 orders=%d products=%d clients=%d from_cache=%t",
		len(snap.Orders), len(snap.Products), len(snap.Clients), fromCache)

	c.JSON(http.StatusOK, models.SnapshotResponse(c, "Snapshot retrieved successfully", snap, snap.Meta(fromCache)))
}
