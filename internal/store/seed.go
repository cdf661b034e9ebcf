package store

import (
	"time"

	"github.com/dukerupert/pricetrack/internal/model"
)

// Seed returns the sample dataset used when no persisted snapshot exists,
// so a fresh install has something to explore.
func Seed() model.Snapshot {
	return model.Snapshot{
		Vendors: []model.Vendor{
			{ID: "v1", Name: "Carrefour", Category: model.VendorSupermarket},
			{ID: "v2", Name: "Leclerc", Category: model.VendorSupermarket},
			{ID: "v3", Name: "Amazon", Category: model.VendorOnline},
			{ID: "v4", Name: "Auchan", Category: model.VendorSupermarket},
			{ID: "v5", Name: "Intermarché", Category: model.VendorSupermarket},
		},
		Products: []model.Product{
			{ID: "p1", Name: "Nutella 750g", Barcode: "3017620422003", DateAdded: model.NewDate(2024, time.January, 15)},
			{ID: "p2", Name: "Coca-Cola 1.5L", Barcode: "5449000000996", DateAdded: model.NewDate(2024, time.January, 20)},
			{ID: "p3", Name: "Pâtes Barilla 500g", Barcode: "8076800105735", DateAdded: model.NewDate(2024, time.February, 1)},
		},
		Prices: []model.PriceEntry{
			{ID: "pr1", ProductID: "p1", Price: 5.99, VendorID: "v1", Date: model.NewDate(2024, time.January, 15)},
			{ID: "pr2", ProductID: "p1", Price: 6.49, VendorID: "v2", Date: model.NewDate(2024, time.January, 20)},
			{ID: "pr3", ProductID: "p1", Price: 5.79, VendorID: "v3", Date: model.NewDate(2024, time.February, 1)},
			{ID: "pr4", ProductID: "p2", Price: 1.89, VendorID: "v1", Date: model.NewDate(2024, time.January, 20)},
			{ID: "pr5", ProductID: "p2", Price: 1.79, VendorID: "v4", Date: model.NewDate(2024, time.January, 25)},
			{ID: "pr6", ProductID: "p3", Price: 1.29, VendorID: "v1", Date: model.NewDate(2024, time.February, 1)},
			{ID: "pr7", ProductID: "p3", Price: 1.19, VendorID: "v5", Date: model.NewDate(2024, time.February, 5)},
		},
		ShoppingLists: []model.ShoppingList{},
		RecentScans:   []string{"p1", "p2"},
	}
}
