package analytics

import "github.com/ConsultBI/Dashboard-ConsultBI-Ventas/models"

// ComputeKPIs derives the scalar summary metrics for a set of orders.
//
// Free and paid counts come from independent predicates: free means
// Total == 0 with the flag SI, paid means Total > 0 or the flag explicitly
// NO. A zero-total order whose flag is blank (neither SI nor NO) matches
// neither, so the two counts need not sum to the total. Preserved
// source-system semantics, do not "fix" without confirming intent.
func ComputeKPIs(orders []models.Order) models.KPIMetrics {
	m := models.KPIMetrics{TotalOrders: len(orders)}

	seen := make(map[string]struct{}, len(orders))
	for _, o := range orders {
		m.TotalRevenue += o.Total
		if o.Total == 0 && o.FreeOrder == models.Yes {
			m.FreeOrders++
		}
		if o.Total > 0 || o.FreeOrder == models.No {
			m.PaidOrders++
		}
		if _, ok := seen[o.CustomerID]; !ok {
			seen[o.CustomerID] = struct{}{}
			m.UniqueCustomers++
		}
	}

	if m.TotalOrders > 0 {
		m.PaidRatioPercent = float64(m.PaidOrders) / float64(m.TotalOrders) * 100
	}
	return m
}
