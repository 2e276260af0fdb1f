package analytics

import (
	"testing"

	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/models"
)

func TestOriginBreakdown(t *testing.T) {
	orders := []models.Order{
		{Origin: "Google", Newsletter: models.Yes, SessionPages: 4},
		{Origin: "", Newsletter: models.No, SessionPages: 2},
		{Origin: "Google", Newsletter: models.No, SessionPages: 6},
		{Origin: "Newsletter", Newsletter: models.Yes, SessionPages: 3},
	}

	got := OriginBreakdown(orders)

	if len(got) != 3 {
		t.Fatalf("expected 3 origins, got %d", len(got))
	}
	if got[0].Name != "Google" || got[0].Orders != 2 {
		t.Errorf("expected Google first with 2 orders, got %+v", got[0])
	}

	t.Run("empty_origin_defaults_to_directo", func(t *testing.T) {
		found := false
		for _, s := range got {
			if s.Name == DefaultOrigin && s.Orders == 1 {
				found = true
			}
		}
		if !found {
			t.Errorf("missing Directo bucket in %+v", got)
		}
	})

	t.Run("rates_one_decimal", func(t *testing.T) {
		if got[0].NewsletterRate != 50.0 {
			t.Errorf("expected Google newsletter rate 50.0, got %v", got[0].NewsletterRate)
		}
		if got[0].AvgPages != 5.0 {
			t.Errorf("expected Google avg pages 5.0, got %v", got[0].AvgPages)
		}
		if got[0].PctTotal != 50.0 {
			t.Errorf("expected Google share 50.0, got %v", got[0].PctTotal)
		}
	})

	t.Run("ties_keep_first_appearance_order", func(t *testing.T) {
		// Directo (order 2) appears before Newsletter (order 4); both count 1
		if got[1].Name != DefaultOrigin || got[2].Name != "Newsletter" {
			t.Errorf("tie-break must preserve input enumeration order, got %q then %q", got[1].Name, got[2].Name)
		}
	})
}

func TestCountryBreakdown(t *testing.T) {
	orders := []models.Order{
		{CustomerID: "c1"},
		{CustomerID: "c2"}, // client with no country
		{CustomerID: "c3"}, // no client row at all
		{CustomerID: "c1"},
	}
	clients := []models.Client{
		{CustomerID: "c1", Country: "España"},
		{CustomerID: "c2", Country: ""},
	}

	got := CountryBreakdown(orders, clients, 0)

	if len(got) != 2 {
		t.Fatalf("expected 2 countries, got %d", len(got))
	}
	if got[0].Name != "España" || got[0].Value != 2 {
		t.Errorf("expected España with 2 orders first, got %+v", got[0])
	}
	if got[1].Name != UnknownCountry || got[1].Value != 2 {
		t.Errorf("unresolved joins and empty countries must share the Desconocido bucket, got %+v", got[1])
	}
}

func TestCountryBreakdown_TopN(t *testing.T) {
	var orders []models.Order
	var clients []models.Client
	countries := []string{"España", "México", "Chile", "Argentina", "Perú", "Colombia", "Uruguay"}
	for i, country := range countries {
		id := countries[i]
		clients = append(clients, models.Client{CustomerID: id, Country: country})
		// descending counts: 7, 6, 5, ...
		for n := 0; n < len(countries)-i; n++ {
			orders = append(orders, models.Order{CustomerID: id})
		}
	}

	got := CountryBreakdown(orders, clients, 6)

	if len(got) != 6 {
		t.Fatalf("expected truncation to 6, got %d", len(got))
	}
	if got[0].Name != "España" || got[0].Value != 7 {
		t.Errorf("expected España first with 7, got %+v", got[0])
	}
}

func TestDayOfWeekBreakdown(t *testing.T) {
	t.Run("zero_orders_seed_all_seven_days", func(t *testing.T) {
		got := DayOfWeekBreakdown(nil)
		if len(got) != 7 {
			t.Fatalf("expected 7 days, got %d", len(got))
		}
		if got[0].Day != "Lunes" || got[6].Day != "Domingo" {
			t.Errorf("expected Monday-first order, got %q .. %q", got[0].Day, got[6].Day)
		}
		for _, d := range got {
			if d.Value != 0 {
				t.Errorf("expected zero count for %s, got %d", d.Day, d.Value)
			}
		}
	})

	t.Run("sunday_normalized_to_last", func(t *testing.T) {
		orders := []models.Order{
			{Date: "2024-06-10T09:00:00Z"}, // a Monday
			{Date: "2024-06-16T09:00:00Z"}, // a Sunday
			{Date: "2024-06-16T21:00:00Z"}, // same Sunday
			{Date: "garbage"},              // skipped
		}

		got := DayOfWeekBreakdown(orders)
		if got[0].Value != 1 {
			t.Errorf("expected 1 order on Lunes, got %d", got[0].Value)
		}
		if got[6].Value != 2 {
			t.Errorf("expected 2 orders on Domingo, got %d", got[6].Value)
		}
	})
}

func TestProductBreakdown(t *testing.T) {
	orders := []models.Order{
		{OrderNumber: "P1", CustomerID: "c1"},
		{OrderNumber: "P2", CustomerID: "c2"},
		{OrderNumber: "P3", CustomerID: "c1"},
	}
	products := []models.Product{
		{OrderNumber: "P1", ProductName: " Plantilla CRM ", Version: "Español, Gratuita"},
		{OrderNumber: "P2", ProductName: "Plantilla CRM", Version: "Español, Gratuita "},
		{OrderNumber: "P3", ProductName: "Plantilla CRM", Version: "Español, Avanzada"},
		{OrderNumber: "P3", ProductName: "Guía Ventas", Version: "Español, Gratuita"},
		{OrderNumber: "P9", ProductName: "Huérfano", Version: "X"}, // order filtered out
	}

	got := ProductBreakdown(orders, products)

	if len(got) != 3 {
		t.Fatalf("expected 3 (name, version) keys, got %d: %+v", len(got), got)
	}

	t.Run("trimmed_pair_key", func(t *testing.T) {
		if got[0].Name != "Plantilla CRM" || got[0].Version != "Español, Gratuita" || got[0].Downloads != 2 {
			t.Errorf("whitespace must not split keys, got %+v", got[0])
		}
	})

	t.Run("unique_clients_join", func(t *testing.T) {
		if got[0].UniqueClients != 2 {
			t.Errorf("expected 2 distinct customers for the free CRM, got %d", got[0].UniqueClients)
		}
	})

	t.Run("tier_classification", func(t *testing.T) {
		if got[0].Tier != TierGratuita {
			t.Errorf("expected Gratuita tier, got %q", got[0].Tier)
		}
		for _, s := range got {
			if s.Version == "Español, Avanzada" && s.Tier != TierAvanzada {
				t.Errorf("expected Avanzada tier, got %q", s.Tier)
			}
		}
	})

	t.Run("orphaned_product_rows_excluded", func(t *testing.T) {
		for _, s := range got {
			if s.Name == "Huérfano" {
				t.Error("product rows whose owning order is filtered out must not count")
			}
		}
	})
}

func TestIsFreeTier(t *testing.T) {
	cases := []struct {
		version string
		free    bool
	}{
		{"Español, Gratuita", true},
		{"ESPAÑOL, GRATUITA", true},
		{"English, gratuita", true},
		{"Español, Avanzada", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsFreeTier(tc.version); got != tc.free {
			t.Errorf("IsFreeTier(%q) = %v, want %v", tc.version, got, tc.free)
		}
	}
}

func TestSplitByVersion(t *testing.T) {
	stats := []models.ProductStat{
		{Tier: TierGratuita, Downloads: 10},
		{Tier: TierAvanzada, Downloads: 4},
		{Tier: TierGratuita, Downloads: 3},
	}

	split := SplitByVersion(stats)
	if split.Gratuita != 13 || split.Avanzada != 4 {
		t.Errorf("expected 13/4, got %+v", split)
	}
}

func TestSalesTrend(t *testing.T) {
	orders := []models.Order{
		{Date: "2024-06-11T10:00:00Z", FreeOrder: models.No},
		{Date: "2024-06-10T09:00:00Z", FreeOrder: models.Yes},
		{Date: "2024-06-10T18:00:00Z", FreeOrder: models.No},
		{Date: "bad-date", FreeOrder: models.Yes},
	}

	got := SalesTrend(orders)

	if len(got) != 2 {
		t.Fatalf("expected 2 days, got %d", len(got))
	}
	if got[0].Date != "2024-06-10" || got[1].Date != "2024-06-11" {
		t.Errorf("expected ascending dates, got %q then %q", got[0].Date, got[1].Date)
	}
	if got[0].Total != 2 || got[0].Gratuita != 1 || got[0].Avanzada != 1 {
		t.Errorf("unexpected split for first day: %+v", got[0])
	}
}

func TestBuildInsightsDigest(t *testing.T) {
	orders := []models.Order{
		{OrderNumber: "P1", CustomerID: "c1", Total: 10, FreeOrder: models.No},
		{OrderNumber: "P2", CustomerID: "c1", Total: 0, FreeOrder: models.Yes},
	}
	products := []models.Product{
		{OrderNumber: "P1", ProductName: "Plantilla CRM", Version: "Español, Avanzada"},
		{OrderNumber: "P2", ProductName: "Guía Ventas", Version: "Español, Gratuita"},
	}
	clients := []models.Client{{CustomerID: "c1", Country: "España"}}

	d := BuildInsightsDigest(orders, products, clients, models.RangeLast3Months)

	if d.Period != string(models.RangeLast3Months) {
		t.Errorf("expected period tag, got %q", d.Period)
	}
	if d.TotalOrders != 2 || d.UniqueCustomers != 1 || d.RecurrentCustomers != 1 {
		t.Errorf("unexpected scalars: %+v", d)
	}
	if len(d.TopProducts) != 2 || d.TopProducts[0] != "Plantilla CRM" {
		t.Errorf("unexpected top products: %v", d.TopProducts)
	}
	if len(d.TopCountries) != 1 || d.TopCountries[0] != "España" {
		t.Errorf("unexpected top countries: %v", d.TopCountries)
	}
}
