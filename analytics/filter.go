// Package analytics holds the pure aggregation core of the dashboard. Every
// function is a deterministic transform of immutable record snapshots: no
// I/O, no shared state, same inputs same outputs. Missing or malformed
// optional fields never fault; they fall back to defaults ("Directo",
// "Desconocido", zero) and the record stays in the computation, except for
// unparseable dates which drop the record from date-sensitive paths only.
package analytics

import (
	"strings"
	"time"

	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/models"
)

// order dates arrive from Airtable as RFC3339 or bare dates
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseOrderDate parses the raw Fecha value of an order.
func ParseOrderDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FilterOrders returns the subset of orders satisfying the date and device
// predicates of the filter state. The reference time is injected so date
// boundaries are testable; callers pass time.Now().
//
// The date predicate is strictly-after: an order dated exactly at the cutoff
// is excluded. Orders whose date does not parse are dropped by any
// date-constrained range but kept for RangeAll, which applies no date
// predicate at all.
//
// The version filter is accepted but has no effect here: version lives on
// Product rows, not orders. Current behavior carried over from the source
// system. Same for the country list, which can only be resolved through the
// client join and is applied by the country-aware views.
func FilterOrders(orders []models.Order, filters models.FilterState, now time.Time) []models.Order {
	var cutoff time.Time
	switch filters.DateRange {
	case models.RangeLastMonth:
		cutoff = now.AddDate(0, -1, 0)
	case models.RangeLast3Months:
		cutoff = now.AddDate(0, -3, 0)
	case models.RangeLast6Months:
		cutoff = now.AddDate(0, -6, 0)
	case models.RangeCurrentYear:
		cutoff = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	}

	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if filters.DateRange != models.RangeAll && filters.DateRange != "" {
			d, ok := ParseOrderDate(o.Date)
			if !ok || !d.After(cutoff) {
				continue
			}
		}

		if filters.Device != "" && filters.Device != models.DeviceAll {
			// a missing device field fails a specific device request
			if !strings.EqualFold(o.DeviceType, string(filters.Device)) {
				continue
			}
		}

		out = append(out, o)
	}
	return out
}
