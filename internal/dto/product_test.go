package dto

import (
	"database/sql"
	"testing"

	"shop-catalog-manager/internal/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapProduct_NullableDefaults(t *testing.T) {
	row := entity.ProductRow{ProductId: "p1"}

	p := MapProduct(row)
	assert.Equal(t, "p1", p.Id)
	assert.Equal(t, "", p.Title)
	assert.Equal(t, "", p.Description)
	assert.True(t, p.Price.Equal(decimal.Zero))
	assert.Nil(t, p.Comments)
	assert.Nil(t, p.Images)
	assert.Nil(t, p.Thumbnail)
}

func TestMapProduct_PopulatedFields(t *testing.T) {
	row := entity.ProductRow{
		ProductId:   "p1",
		Title:       sql.NullString{String: "Lamp", Valid: true},
		Description: sql.NullString{String: "Desk lamp", Valid: true},
		Price:       decimal.NullDecimal{Decimal: decimal.RequireFromString("25.50"), Valid: true},
	}

	p := MapProduct(row)
	assert.Equal(t, "Lamp", p.Title)
	assert.Equal(t, "Desk lamp", p.Description)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("25.50")))
}

func TestMapProducts_NoRowIsDropped(t *testing.T) {
	rows := []entity.ProductRow{
		{ProductId: "p1"},
		{ProductId: "p2", Title: sql.NullString{String: "Chair", Valid: true}},
	}

	products := MapProducts(rows)
	require.Len(t, products, 2)
	assert.Equal(t, "p1", products[0].Id)
	assert.Equal(t, "p2", products[1].Id)

	assert.NotNil(t, MapProducts(nil))
	assert.Empty(t, MapProducts(nil))
}

func TestMapSummary_NullableDefaults(t *testing.T) {
	s := MapSummary(entity.SummaryRow{ProductId: "p1"})
	assert.Equal(t, "p1", s.Id)
	assert.True(t, s.Price.Equal(decimal.Zero))
}

func TestMapComment(t *testing.T) {
	c := MapComment(entity.CommentRow{
		CommentId: "c1",
		Email:     "user@example.com",
		Name:      "User",
		Body:      "Great product",
		ProductId: "p1",
	})
	assert.Equal(t, "c1", c.Id)
	assert.Equal(t, "p1", c.ProductId)
}

func TestMapImage(t *testing.T) {
	img := MapImage(entity.ImageRow{
		ImageId:   "i1",
		Url:       "https://example.com/1.jpg",
		ProductId: "p1",
		Main:      true,
	})
	assert.Equal(t, "i1", img.Id)
	assert.True(t, img.Main)
}
