package entity

import "github.com/shopspring/decimal"

// SearchFilter is the structured product search filter. A nil field
// contributes no predicate; present fields are ANDed in a fixed order
// (title, minPrice, maxPrice) so compiled queries are deterministic.
type SearchFilter struct {
	Title    *string          `json:"title"`
	MinPrice *decimal.Decimal `json:"minPrice"`
	MaxPrice *decimal.Decimal `json:"maxPrice"`
}

// Empty reports whether no filter field is set.
func (f *SearchFilter) Empty() bool {
	return f == nil || (f.Title == nil && f.MinPrice == nil && f.MaxPrice == nil)
}
