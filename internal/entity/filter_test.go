package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSearchFilter_Empty(t *testing.T) {
	var nilFilter *SearchFilter
	assert.True(t, nilFilter.Empty())
	assert.True(t, (&SearchFilter{}).Empty())

	title := "lamp"
	assert.False(t, (&SearchFilter{Title: &title}).Empty())

	min := decimal.NewFromInt(5)
	assert.False(t, (&SearchFilter{MinPrice: &min}).Empty())
}
