package analytics

import (
	"math"
	"sort"
	"strings"

	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/models"
)

const (
	// DefaultOrigin is the bucket for orders with no traffic origin.
	DefaultOrigin = "Directo"
	// UnknownCountry is the bucket for orders whose customer cannot be
	// resolved or whose client row carries no country.
	UnknownCountry = "Desconocido"

	// TierGratuita / TierAvanzada classify a product version label.
	TierGratuita = "Gratuita"
	TierAvanzada = "Avanzada"

	freeTierMarker = "gratuita"
)

// IsFreeTier reports whether a version label classifies as the free tier:
// a case-insensitive substring match on the free-tier marker. Everything
// else is paid.
func IsFreeTier(version string) bool {
	return strings.Contains(strings.ToLower(version), freeTierMarker)
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// OriginBreakdown groups orders by traffic origin, defaulting empty origins
// to "Directo". Rows are sorted descending by order count; ties keep the
// first-appearance order of the origin in the input (stable sort over the
// insertion-ordered grouping).
func OriginBreakdown(orders []models.Order) []models.OriginStat {
	type acc struct {
		orders     int
		newsletter int
		pages      int
	}

	var keys []string
	accs := make(map[string]*acc)
	for _, o := range orders {
		src := o.Origin
		if src == "" {
			src = DefaultOrigin
		}
		a, ok := accs[src]
		if !ok {
			a = &acc{}
			accs[src] = a
			keys = append(keys, src)
		}
		a.orders++
		if o.Newsletter == models.Yes {
			a.newsletter++
		}
		a.pages += o.SessionPages
	}

	total := len(orders)
	out := make([]models.OriginStat, 0, len(keys))
	for _, k := range keys {
		a := accs[k]
		out = append(out, models.OriginStat{
			Name:           k,
			Orders:         a.orders,
			PctTotal:       round1(float64(a.orders) / float64(total) * 100),
			NewsletterRate: round1(float64(a.newsletter) / float64(a.orders) * 100),
			AvgPages:       round1(float64(a.pages) / float64(a.orders)),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Orders > out[j].Orders })
	return out
}

// CountryBreakdown counts orders per resolved client country. Orders whose
// customer resolves to no client, or to a client without a country, land in
// the "Desconocido" bucket. Sorted descending by count (ties stable on
// first appearance) and truncated to limit when limit > 0.
func CountryBreakdown(orders []models.Order, clients []models.Client, limit int) []models.CountryStat {
	var keys []string
	counts := make(map[string]int)
	for _, o := range orders {
		country := UnknownCountry
		if cl := lookupClient(clients, o.CustomerID); cl != nil && cl.Country != "" {
			country = cl.Country
		}
		if _, ok := counts[country]; !ok {
			keys = append(keys, country)
		}
		counts[country]++
	}

	out := make([]models.CountryStat, 0, len(keys))
	for _, k := range keys {
		out = append(out, models.CountryStat{Name: k, Value: counts[k]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Spanish day labels, Monday first, matching the dashboard's fixed axis.
var dayLabels = [7]string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo"}

// DayOfWeekBreakdown buckets orders into the seven fixed Monday-first day
// labels. All seven days appear even at zero count. time.Weekday numbers
// Sunday as 0; the index shift normalizes to Monday-first. Orders with
// unparseable dates are skipped.
func DayOfWeekBreakdown(orders []models.Order) []models.DayOfWeekStat {
	var counts [7]int
	for _, o := range orders {
		d, ok := ParseOrderDate(o.Date)
		if !ok {
			continue
		}
		counts[(int(d.Weekday())+6)%7]++
	}

	out := make([]models.DayOfWeekStat, 7)
	for i := range out {
		out[i] = models.DayOfWeekStat{Day: dayLabels[i], Value: counts[i]}
	}
	return out
}

// ProductBreakdown ranks product downloads by the normalized (name, version)
// pair over the Productos rows whose owning order is in the given order
// subset. UniqueClients joins each row's owning order back to its customer
// and counts distinct identifiers. Sorted descending by downloads, ties
// stable on first appearance.
func ProductBreakdown(orders []models.Order, products []models.Product) []models.ProductStat {
	customerByOrder := make(map[string]string, len(orders))
	for _, o := range orders {
		customerByOrder[o.OrderNumber] = o.CustomerID
	}

	type key struct{ name, version string }
	type acc struct {
		downloads int
		clients   map[string]struct{}
	}

	var keys []key
	accs := make(map[key]*acc)
	for _, p := range products {
		customerID, ok := customerByOrder[p.OrderNumber]
		if !ok {
			continue // owning order filtered out or missing
		}
		k := key{name: strings.TrimSpace(p.ProductName), version: strings.TrimSpace(p.Version)}
		a, found := accs[k]
		if !found {
			a = &acc{clients: make(map[string]struct{})}
			accs[k] = a
			keys = append(keys, k)
		}
		a.downloads++
		a.clients[customerID] = struct{}{}
	}

	out := make([]models.ProductStat, 0, len(keys))
	for _, k := range keys {
		a := accs[k]
		tier := TierAvanzada
		if IsFreeTier(k.version) {
			tier = TierGratuita
		}
		out = append(out, models.ProductStat{
			Name:          k.name,
			Version:       k.version,
			Tier:          tier,
			Downloads:     a.downloads,
			UniqueClients: len(a.clients),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Downloads > out[j].Downloads })
	return out
}

// SplitByVersion folds a product ranking into free vs paid download totals.
func SplitByVersion(stats []models.ProductStat) models.VersionSplit {
	var split models.VersionSplit
	for _, s := range stats {
		if s.Tier == TierGratuita {
			split.Gratuita += s.Downloads
		} else {
			split.Avanzada += s.Downloads
		}
	}
	return split
}

// SalesTrend counts orders per calendar day, split by the free-order flag,
// sorted ascending by date. The day key is the date part of the raw Fecha
// value; orders with unparseable dates are skipped.
func SalesTrend(orders []models.Order) []models.TrendPoint {
	var keys []string
	points := make(map[string]*models.TrendPoint)
	for _, o := range orders {
		if _, ok := ParseOrderDate(o.Date); !ok {
			continue
		}
		day := strings.SplitN(o.Date, "T", 2)[0]
		p, ok := points[day]
		if !ok {
			p = &models.TrendPoint{Date: day}
			points[day] = p
			keys = append(keys, day)
		}
		p.Total++
		if o.FreeOrder == models.Yes {
			p.Gratuita++
		} else {
			p.Avanzada++
		}
	}

	sort.Strings(keys)
	out := make([]models.TrendPoint, 0, len(keys))
	for _, k := range keys {
		out = append(out, *points[k])
	}
	return out
}
