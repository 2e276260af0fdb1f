package analytics

import (
	"sort"

	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/models"
)

const topPairs = 5

// MinePairs finds the most common unordered pairs of distinct product names
// co-occurring in the same order. Names are deduplicated per order and
// sorted lexicographically before pairing, so {A,B} and {B,A} always count
// under the same canonical "A + B" label. An order with a single distinct
// name, even repeated, contributes no pairs. Descending by count, top 5.
func MinePairs(products []models.Product) []models.BasketPair {
	var orderKeys []string
	namesByOrder := make(map[string][]string)
	for _, p := range products {
		if _, ok := namesByOrder[p.OrderNumber]; !ok {
			orderKeys = append(orderKeys, p.OrderNumber)
		}
		namesByOrder[p.OrderNumber] = append(namesByOrder[p.OrderNumber], p.ProductName)
	}

	var labels []string
	counts := make(map[string]int)
	for _, orderID := range orderKeys {
		names := distinctSorted(namesByOrder[orderID])
		for i := 0; i < len(names); i++ {
			for j := i + 1; j < len(names); j++ {
				label := names[i] + " + " + names[j]
				if _, ok := counts[label]; !ok {
					labels = append(labels, label)
				}
				counts[label]++
			}
		}
	}

	out := make([]models.BasketPair, 0, len(labels))
	for _, l := range labels {
		out = append(out, models.BasketPair{Pair: l, Count: counts[l]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > topPairs {
		out = out[:topPairs]
	}
	return out
}

func distinctSorted(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
