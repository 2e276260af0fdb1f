package customer_controller

import (
	"log"
	"net/http"
	"sort"

	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/analytics"
	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/config"
	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/models"
	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/services"
	"github.com/gin-gonic/gin"
)

// GetRecurrentCustomers godoc
// @Summary Get recurrent customers
// @Description Returns customers with 2 or more orders, sorted descending by order count
// @Tags Dashboard - Customers
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.RecurrentCustomer}
// @Failure 502 {object} models.ApiResponse
// @Router /dashboard/customers/recurrent [get]
func GetRecurrentCustomers(c *gin.Context) {
	log.Printf("[dashboard.customers-recurrent] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	snap, fromCache, err := services.GetSnapshot(ctx)
	if err != nil {
		log.Printf("[dashboard.customers-recurrent] ERROR snapshot err=%v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch data from Airtable"))
		return
	}

	recurrent := analytics.RecurrentCustomers(snap.Orders, snap.Clients)
	// the core leaves output order unspecified; the view ranks by order count
	sort.SliceStable(recurrent, func(i, j int) bool { return recurrent[i].OrderCount > recurrent[j].OrderCount })

	log.Printf("[dashboard.customers-recurrent] respond 200 recurrent=%d", len(recurrent))

	c.JSON(http.StatusOK, models.SnapshotResponse(c, "Recurrent customers retrieved successfully", recurrent, snap.Meta(fromCache)))
}
