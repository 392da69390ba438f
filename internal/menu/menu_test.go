package menu

import (
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPrice(t *testing.T) {
	p, ok := Price("Loaded Fries")
	assert.True(t, ok)
	assert.True(t, p.Equal(decimal.RequireFromString("32.00")))

	_, ok = Price("Deep Fried Mars Bar")
	assert.False(t, ok)
}

func TestExists(t *testing.T) {
	assert.True(t, Exists("Soft Drink"))
	assert.False(t, Exists("soft drink")) // names are exact
}

func TestItems(t *testing.T) {
	items := Items()
	assert.Len(t, items, 12)
	assert.True(t, sort.SliceIsSorted(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	}))
	for _, item := range items {
		assert.True(t, item.Price.IsPositive(), item.Name)
	}
}
