package analytics

import "github.com/ConsultBI/Dashboard-ConsultBI-Ventas/models"

// RecurrentCustomers groups orders by customer identifier and returns the
// customers with 2 or more orders. The client pointer is the first Clientes
// row matching the identifier, or nil when none exists (orphaned orders are
// tolerated). ProductIDs is the flattened concatenation of the customer's
// order product lists, duplicates preserved.
//
// Groups come out in first-appearance order of the customer in the input;
// callers wanting a ranking sort themselves.
func RecurrentCustomers(orders []models.Order, clients []models.Client) []models.RecurrentCustomer {
	type group struct {
		count      int
		productIDs []string
	}

	var keys []string
	groups := make(map[string]*group)
	for _, o := range orders {
		g, ok := groups[o.CustomerID]
		if !ok {
			g = &group{}
			groups[o.CustomerID] = g
			keys = append(keys, o.CustomerID)
		}
		g.count++
		g.productIDs = append(g.productIDs, o.ProductIDs...)
	}

	out := make([]models.RecurrentCustomer, 0, len(keys))
	for _, id := range keys {
		g := groups[id]
		if g.count < 2 {
			continue
		}
		out = append(out, models.RecurrentCustomer{
			Client:     lookupClient(clients, id),
			CustomerID: id,
			OrderCount: g.count,
			ProductIDs: g.productIDs,
		})
	}
	return out
}

// lookupClient resolves a customer identifier to its first matching Clientes
// row. Absence is a valid outcome, never a fault.
func lookupClient(clients []models.Client, customerID string) *models.Client {
	for i := range clients {
		if clients[i].CustomerID == customerID {
			return &clients[i]
		}
	}
	return nil
}

// CustomerMetrics computes the scalar cards of the customers view over the
// full (unfiltered) snapshot.
func CustomerMetrics(orders []models.Order, clients []models.Client) models.CustomerMetrics {
	unique := make(map[string]struct{}, len(orders))
	for _, o := range orders {
		unique[o.CustomerID] = struct{}{}
	}

	recurrent := len(RecurrentCustomers(orders, clients))

	countries := make(map[string]struct{})
	for _, c := range clients {
		if c.Country != "" {
			countries[c.Country] = struct{}{}
		}
	}

	m := models.CustomerMetrics{
		UniqueCustomers:    len(unique),
		RecurrentCustomers: recurrent,
		CountriesReached:   len(countries),
	}
	if m.UniqueCustomers > 0 {
		m.RecurrenceRatePercent = round1(float64(recurrent) / float64(m.UniqueCustomers) * 100)
	}
	return m
}
