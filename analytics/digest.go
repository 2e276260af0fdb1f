package analytics

import "github.com/ConsultBI/Dashboard-ConsultBI-Ventas/models"

const digestTopN = 3

// BuildInsightsDigest condenses a snapshot into the compact summary handed
// to the narrative generation service: KPI scalars, the top product names
// and countries, and the filter-period tag the numbers were computed under.
func BuildInsightsDigest(orders []models.Order, products []models.Product, clients []models.Client, period models.DateRange) models.InsightsDigest {
	kpis := ComputeKPIs(orders)
	recurrent := RecurrentCustomers(orders, clients)

	var topProducts []string
	for _, s := range ProductBreakdown(orders, products) {
		topProducts = append(topProducts, s.Name)
		if len(topProducts) == digestTopN {
			break
		}
	}

	var topCountries []string
	for _, c := range CountryBreakdown(orders, clients, digestTopN) {
		topCountries = append(topCountries, c.Name)
	}

	return models.InsightsDigest{
		Period:             string(period),
		TotalOrders:        kpis.TotalOrders,
		TotalRevenue:       kpis.TotalRevenue,
		FreeOrders:         kpis.FreeOrders,
		PaidOrders:         kpis.PaidOrders,
		UniqueCustomers:    kpis.UniqueCustomers,
		RecurrentCustomers: len(recurrent),
		PaidRatioPercent:   kpis.PaidRatioPercent,
		TopProducts:        topProducts,
		TopCountries:       topCountries,
	}
}
