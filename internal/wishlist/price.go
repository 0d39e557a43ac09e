// Package wishlist contains pure domain logic for wishlist items:
// price normalization and list aggregation.
package wishlist

import (
	"math"
	"strconv"

	"github.com/nwatkins/wishlist/internal/models"
)

// CoercePrice normalizes a raw stored price value to a float64.
// Historical item documents carry prices as numbers, numeric strings, or
// nothing at all; anything that does not parse as a number counts as zero.
func CoercePrice(v any) float64 {
	switch p := v.(type) {
	case nil:
		return 0
	case float64:
		return p
	case float32:
		return float64(p)
	case int64:
		return float64(p)
	case int:
		return float64(p)
	case string:
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0
		}
		return f
	case []byte:
		f, err := strconv.ParseFloat(string(p), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Round2 rounds to two decimal places for display totals.
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// TotalPrice sums the prices of the given items, rounded to two decimals.
func TotalPrice(items []*models.Item) float64 {
	var total float64
	for _, item := range items {
		total += item.Price
	}
	return Round2(total)
}
