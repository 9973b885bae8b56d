package models

import (
	"strconv"
	"strings"
)

// Product is a catalog entry. Name is the lookup key but is not unique.
type Product struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// String renders "name - $price", e.g. "Apple - $1.0".
func (p Product) String() string {
	return p.Name + " - $" + FormatPrice(p.Price)
}

// FormatPrice prints the shortest decimal that round-trips, keeping one
// fractional digit for whole amounts.
func FormatPrice(price float64) string {
	s := strconv.FormatFloat(price, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
