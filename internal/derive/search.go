package derive

import (
	"sort"
	"strings"

	"github.com/dukerupert/pricetrack/internal/model"
)

// SortMode selects a product ordering.
type SortMode string

const (
	SortName      SortMode = "name"       // lexicographic by name
	SortRecent    SortMode = "recent"     // dateAdded descending
	SortPriceLow  SortMode = "price-low"  // latest price ascending
	SortPriceHigh SortMode = "price-high" // latest price descending
)

// ParseSortMode maps a query-string value to a SortMode, defaulting to
// recency like the search screen does.
func ParseSortMode(s string) SortMode {
	switch SortMode(s) {
	case SortName, SortRecent, SortPriceLow, SortPriceHigh:
		return SortMode(s)
	}
	return SortRecent
}

// SearchProducts filters products by a case-insensitive substring match on
// the name or a substring match on the barcode. An empty query matches all.
func SearchProducts(snap model.Snapshot, query string) []model.Product {
	query = strings.TrimSpace(query)
	if query == "" {
		return append([]model.Product(nil), snap.Products...)
	}
	lower := strings.ToLower(query)
	var out []model.Product
	for _, p := range snap.Products {
		if strings.Contains(strings.ToLower(p.Name), lower) || strings.Contains(p.Barcode, query) {
			out = append(out, p)
		}
	}
	return out
}

// SortProducts orders products in place by the given mode. Price modes use
// the latest price, with products lacking history sorting as price 0. Sorts
// are stable so equal keys keep their relative order.
func SortProducts(snap model.Snapshot, products []model.Product, mode SortMode) {
	switch mode {
	case SortName:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Name < products[j].Name
		})
	case SortPriceLow, SortPriceHigh:
		price := func(productID string) float64 {
			pe, ok := LatestPrice(snap, productID)
			if !ok {
				return 0
			}
			return pe.Price
		}
		sort.SliceStable(products, func(i, j int) bool {
			a, b := price(products[i].ID), price(products[j].ID)
			if mode == SortPriceLow {
				return a < b
			}
			return a > b
		})
	default: // SortRecent
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].DateAdded.After(products[j].DateAdded)
		})
	}
}
