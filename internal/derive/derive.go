// Package derive computes read-only views over a snapshot. Every function is
// a pure function of (snapshot, parameters) and never mutates its input.
package derive

import (
	"sort"

	"github.com/dukerupert/pricetrack/internal/model"
)

// LatestPrice returns the price entry with the maximum date for a product.
// Ties on the date are broken by insertion order: the last-recorded entry
// wins, it being the freshest observation. The second return is false when
// the product has no price history.
func LatestPrice(snap model.Snapshot, productID string) (model.PriceEntry, bool) {
	var best model.PriceEntry
	found := false
	for _, pe := range snap.Prices {
		if pe.ProductID != productID {
			continue
		}
		if !found || !pe.Date.Before(best.Date) {
			best = pe
			found = true
		}
	}
	return best, found
}

// PriceHistory returns a product's entries ordered by date descending.
// Entries sharing a date appear newest-recorded first, so the head of the
// history is always the LatestPrice entry.
func PriceHistory(snap model.Snapshot, productID string) []model.PriceEntry {
	var entries []model.PriceEntry
	for i := len(snap.Prices) - 1; i >= 0; i-- {
		if snap.Prices[i].ProductID == productID {
			entries = append(entries, snap.Prices[i])
		}
	}
	// Collected in reverse insertion order; a stable date sort then keeps
	// later-recorded entries first among equal dates.
	stableSortByDateDesc(entries)
	return entries
}

// PriceDelta returns the percent change between a product's latest and
// second-latest entries. Zero when fewer than two entries exist.
func PriceDelta(snap model.Snapshot, productID string) float64 {
	history := PriceHistory(snap, productID)
	return EntryDelta(history, 0)
}

// EntryDelta returns the percent change of history[i] relative to the next
// older entry history[i+1]. Zero when there is no older entry.
func EntryDelta(history []model.PriceEntry, i int) float64 {
	if i < 0 || i+1 >= len(history) {
		return 0
	}
	prev := history[i+1].Price
	if prev == 0 {
		return 0
	}
	return (history[i].Price - prev) / prev * 100
}

// Stats aggregates a product's price history.
type Stats struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
}

// PriceStats returns min/max/arithmetic-mean over a product's entries. The
// second return is false when no entries exist: callers must not render a
// zero as if it were an observed price.
func PriceStats(snap model.Snapshot, productID string) (Stats, bool) {
	var st Stats
	count := 0
	sum := 0.0
	for _, pe := range snap.Prices {
		if pe.ProductID != productID {
			continue
		}
		if count == 0 || pe.Price < st.Min {
			st.Min = pe.Price
		}
		if count == 0 || pe.Price > st.Max {
			st.Max = pe.Price
		}
		sum += pe.Price
		count++
	}
	if count == 0 {
		return Stats{}, false
	}
	st.Average = sum / float64(count)
	return st, true
}

// ListEstimate sums latest-price × quantity across a list's items. Products
// without price history contribute 0.
func ListEstimate(snap model.Snapshot, list model.ShoppingList) float64 {
	total := 0.0
	for _, item := range list.Items {
		if pe, ok := LatestPrice(snap, item.ProductID); ok {
			total += pe.Price * float64(item.Quantity)
		}
	}
	return total
}

// ListProgress returns the purchased percentage of a list, 0 for empty lists.
func ListProgress(list model.ShoppingList) float64 {
	if len(list.Items) == 0 {
		return 0
	}
	purchased := 0
	for _, item := range list.Items {
		if item.Purchased {
			purchased++
		}
	}
	return float64(purchased) / float64(len(list.Items)) * 100
}

// VendorPriceCount returns how many price entries reference a vendor.
func VendorPriceCount(snap model.Snapshot, vendorID string) int {
	count := 0
	for _, pe := range snap.Prices {
		if pe.VendorID == vendorID {
			count++
		}
	}
	return count
}

func stableSortByDateDesc(entries []model.PriceEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
}
