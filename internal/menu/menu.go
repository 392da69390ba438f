// Package menu holds the fixed price table. It is the only source of item
// prices: cart handlers look prices up here and ignore anything the client
// sends.
package menu

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Item is a menu entry.
type Item struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

var prices = map[string]decimal.Decimal{
	"Classic Baked Potato":    decimal.RequireFromString("24.90"),
	"Loaded Fries":            decimal.RequireFromString("32.00"),
	"Potato Wedges":           decimal.RequireFromString("22.50"),
	"Mashed Potato Bowl":      decimal.RequireFromString("26.00"),
	"Sweet Potato Fries":      decimal.RequireFromString("28.00"),
	"Hash Brown Stack":        decimal.RequireFromString("19.90"),
	"Potato Gnocchi":          decimal.RequireFromString("38.00"),
	"Spanish Tortilla":        decimal.RequireFromString("34.50"),
	"Creamy Potato Soup":      decimal.RequireFromString("21.00"),
	"Garlic Roasted Potatoes": decimal.RequireFromString("23.50"),
	"Soft Drink":              decimal.RequireFromString("9.00"),
	"Fresh Lemonade":          decimal.RequireFromString("12.00"),
}

// Price returns the price for an item name, and whether the item exists.
func Price(name string) (decimal.Decimal, bool) {
	p, ok := prices[name]
	return p, ok
}

// Exists reports whether an item is on the menu.
func Exists(name string) bool {
	_, ok := prices[name]
	return ok
}

// Items returns the full menu sorted by name.
func Items() []Item {
	items := make([]Item, 0, len(prices))
	for name, price := range prices {
		items = append(items, Item{Name: name, Price: price})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items
}
