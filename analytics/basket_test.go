package analytics

import (
	"testing"

	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/models"
)

func TestMinePairs_ThreeDistinctNames(t *testing.T) {
	products := []models.Product{
		{OrderNumber: "P1", ProductName: "A"},
		{OrderNumber: "P1", ProductName: "B"},
		{OrderNumber: "P1", ProductName: "C"},
	}

	got := MinePairs(products)

	want := map[string]int{"A + B": 1, "A + C": 1, "B + C": 1}
	if len(got) != len(want) {
		t.Fatalf("expected %d pairs, got %d: %+v", len(want), len(got), got)
	}
	for _, p := range got {
		if want[p.Pair] != p.Count {
			t.Errorf("unexpected pair %q count %d", p.Pair, p.Count)
		}
	}
}

func TestMinePairs_RepeatedSingleName(t *testing.T) {
	products := []models.Product{
		{OrderNumber: "P1", ProductName: "A"},
		{OrderNumber: "P1", ProductName: "A"},
	}

	if got := MinePairs(products); len(got) != 0 {
		t.Errorf("an order with one distinct name contributes no pairs, got %+v", got)
	}
}

func TestMinePairs_CanonicalLabel(t *testing.T) {
	// same unordered pair seen in both directions across two orders
	products := []models.Product{
		{OrderNumber: "P1", ProductName: "Zeta"},
		{OrderNumber: "P1", ProductName: "Alfa"},
		{OrderNumber: "P2", ProductName: "Alfa"},
		{OrderNumber: "P2", ProductName: "Zeta"},
	}

	got := MinePairs(products)

	if len(got) != 1 {
		t.Fatalf("expected a single canonical pair, got %+v", got)
	}
	if got[0].Pair != "Alfa + Zeta" || got[0].Count != 2 {
		t.Errorf("expected 'Alfa + Zeta' counted twice, got %+v", got[0])
	}
}

func TestMinePairs_TopFiveTruncation(t *testing.T) {
	// one order with 4 distinct names yields C(4,2) = 6 pairs; frequency of
	// "A + B" boosted by a second order so the cut is deterministic
	products := []models.Product{
		{OrderNumber: "P1", ProductName: "A"},
		{OrderNumber: "P1", ProductName: "B"},
		{OrderNumber: "P1", ProductName: "C"},
		{OrderNumber: "P1", ProductName: "D"},
		{OrderNumber: "P2", ProductName: "A"},
		{OrderNumber: "P2", ProductName: "B"},
	}

	got := MinePairs(products)

	if len(got) != 5 {
		t.Fatalf("expected truncation to top 5, got %d", len(got))
	}
	if got[0].Pair != "A + B" || got[0].Count != 2 {
		t.Errorf("expected 'A + B' first with count 2, got %+v", got[0])
	}
}
