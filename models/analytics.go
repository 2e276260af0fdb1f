package models

// KPIMetrics holds the scalar summary metrics for a set of orders.
// FreeOrders and PaidOrders are not required to sum to TotalOrders: a
// zero-total order whose free flag is neither SI nor NO counts toward
// neither. That is the source-system semantics and is preserved on purpose.
type KPIMetrics struct {
	TotalOrders      int     `json:"total_orders"`
	TotalRevenue     float64 `json:"total_revenue"`
	FreeOrders       int     `json:"free_orders"`
	PaidOrders       int     `json:"paid_orders"`
	UniqueCustomers  int     `json:"unique_customers"`
	PaidRatioPercent float64 `json:"paid_ratio_percent"` // 0 when TotalOrders is 0
}

// OriginStat is one row of the traffic-origin breakdown.
type OriginStat struct {
	Name           string  `json:"name"`
	Orders         int     `json:"orders"`
	PctTotal       float64 `json:"pct_total"`
	NewsletterRate float64 `json:"newsletter_rate"` // one decimal
	AvgPages       float64 `json:"avg_pages"`       // one decimal
}

// CountryStat is one row of the geographic breakdown.
type CountryStat struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// DayOfWeekStat is one of the seven fixed Monday-first buckets.
type DayOfWeekStat struct {
	Day   string `json:"day"`
	Value int    `json:"value"`
}

// ProductStat is one row of the product ranking, keyed by the normalized
// (name, version) pair.
type ProductStat struct {
	Name          string `json:"name"`
	Version       string `json:"version"`
	Tier          string `json:"tier"` // "Gratuita" or "Avanzada"
	Downloads     int    `json:"downloads"`
	UniqueClients int    `json:"unique_clients"`
}

// VersionSplit aggregates downloads by free vs paid tier.
type VersionSplit struct {
	Gratuita int `json:"gratuita"`
	Avanzada int `json:"avanzada"`
}

// TrendPoint is one day of the sales-evolution chart.
type TrendPoint struct {
	Date     string `json:"date"` // YYYY-MM-DD
	Total    int    `json:"total"`
	Gratuita int    `json:"gratuita"`
	Avanzada int    `json:"avanzada"`
}

// RecurrentCustomer is a customer with 2 or more orders. Client is nil when
// the customer identifier resolves to no row in the Clientes table.
type RecurrentCustomer struct {
	Client     *Client  `json:"client,omitempty"`
	CustomerID string   `json:"customer_id"`
	OrderCount int      `json:"order_count"`
	ProductIDs []string `json:"product_ids"` // flattened, duplicates preserved
}

// CustomerMetrics are the scalar cards of the customers view.
type CustomerMetrics struct {
	UniqueCustomers       int     `json:"unique_customers"`
	RecurrentCustomers    int     `json:"recurrent_customers"`
	RecurrenceRatePercent float64 `json:"recurrence_rate_percent"` // one decimal
	CountriesReached      int     `json:"countries_reached"`
}

// BasketPair is an unordered pair of distinct product names co-purchased in
// the same order, in canonical "A + B" label form.
type BasketPair struct {
	Pair  string `json:"pair"`
	Count int    `json:"count"`
}

// InsightsDigest is the JSON-serializable summary handed to the narrative
// generation collaborator.
type InsightsDigest struct {
	Period             string   `json:"period"`
	TotalOrders        int      `json:"total_orders"`
	TotalRevenue       float64  `json:"total_revenue"`
	FreeOrders         int      `json:"free_orders"`
	PaidOrders         int      `json:"paid_orders"`
	UniqueCustomers    int      `json:"unique_customers"`
	RecurrentCustomers int      `json:"recurrent_customers"`
	PaidRatioPercent   float64  `json:"paid_ratio_percent"`
	TopProducts        []string `json:"top_products"`
	TopCountries       []string `json:"top_countries"`
}

// HealthStatus is the 0-10 business-health verdict of the narrative service.
type HealthStatus struct {
	Score         int    `json:"score"`
	Justification string `json:"justification"`
}

// ExecutiveSummary is the structured narrative result. When the generation
// service replies with something that is not parseable as this structure the
// raw text lands in Summary with empty insights and a zero health score.
type ExecutiveSummary struct {
	Summary  string       `json:"summary"`
	Insights []string     `json:"insights"`
	Health   HealthStatus `json:"health"`
}
