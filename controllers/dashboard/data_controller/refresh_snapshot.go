package data_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/config"
	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/models"
	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/services"
	"github.com/gin-gonic/gin"
)

// RefreshSnapshot godoc
// @Summary Force a snapshot refresh
// @Description Refetches all three collections from Airtable, bypassing the cache, and fires VIP webhook alerts for customers that newly crossed the threshold
// @Tags Dashboard - Data
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.SnapshotMeta}
// @Failure 502 {object} models.ApiResponse
// @Router /dashboard/data/refresh [post]
func RefreshSnapshot(c *gin.Context) {
	log.Printf("[dashboard.data-refresh] start")

	// a forced refresh pulls three tables, give it more room than a read
	ctx, cancel := config.WithCustomTimeout(30 * time.Second)
	defer cancel()

	snap, err := services.RefreshSnapshot(ctx)
	if err != nil {
		log.Printf("[dashboard.data-refresh] ERROR refresh err=%v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to refresh data from Airtable"))
		return
	}

	log.Printf("[dashboard.data-refresh] respond 200 orders=%d products=%d clients=%d",
		len(snap.Orders), len(snap.Products), len(snap.Clients))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Snapshot refreshed successfully", snap.Meta(false)))
}
