package store

import (
	"context"
	"errors"
	"testing"

	"shop-catalog-manager/internal/cerr"
	"shop-catalog-manager/internal/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestBuildSearchQuery_Empty(t *testing.T) {
	query, args := buildSearchQuery(nil)
	assert.Equal(t, "SELECT * FROM products", query)
	assert.Empty(t, args)

	query, args = buildSearchQuery(&entity.SearchFilter{})
	assert.Equal(t, "SELECT * FROM products", query)
	assert.Empty(t, args)
}

func TestBuildSearchQuery_TitleOnly(t *testing.T) {
	query, args := buildSearchQuery(&entity.SearchFilter{Title: strPtr("Lamp")})
	assert.Equal(t, "SELECT * FROM products WHERE LOWER(title) LIKE :title", query)
	assert.Equal(t, map[string]any{"title": "%lamp%"}, args)
}

func TestBuildSearchQuery_PriceBounds(t *testing.T) {
	query, args := buildSearchQuery(&entity.SearchFilter{
		MinPrice: decPtr("10.50"),
		MaxPrice: decPtr("99.99"),
	})
	assert.Equal(t, "SELECT * FROM products WHERE price >= :minPrice AND price <= :maxPrice", query)
	assert.Len(t, args, 2)
	assert.True(t, args["minPrice"].(decimal.Decimal).Equal(decimal.RequireFromString("10.50")))
	assert.True(t, args["maxPrice"].(decimal.Decimal).Equal(decimal.RequireFromString("99.99")))
}

func TestBuildSearchQuery_PredicateOrderIsFixed(t *testing.T) {
	filter := &entity.SearchFilter{
		Title:    strPtr("chair"),
		MinPrice: decPtr("5"),
		MaxPrice: decPtr("50"),
	}
	want := "SELECT * FROM products WHERE LOWER(title) LIKE :title AND price >= :minPrice AND price <= :maxPrice"

	// Compilation is deterministic: same filter, same query text, always.
	for i := 0; i < 10; i++ {
		query, _ := buildSearchQuery(filter)
		assert.Equal(t, want, query)
	}
}

func TestProductStore_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	ps := db.Products()
	ctx := context.Background()

	err := ps.AddProduct(ctx, "p1", &entity.ProductInsert{
		Title:       "Lamp",
		Description: "Desk lamp",
		Price:       decimal.NullDecimal{Decimal: decimal.RequireFromString("25.00"), Valid: true},
	})
	require.NoError(t, err)

	row, err := ps.GetProductById(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Lamp", row.Title.String)
	assert.True(t, row.Price.Decimal.Equal(decimal.RequireFromString("25.00")))

	_, err = ps.GetProductById(ctx, "missing")
	assert.True(t, errors.Is(err, cerr.ErrNotFound))

	affected, err := ps.DeleteProductById(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, affected)

	affected, err = ps.DeleteProductById(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 0, affected)
}

func TestProductStore_Search(t *testing.T) {
	db := newTestDB(t)
	ps := db.Products()
	ctx := context.Background()

	products := []struct {
		id    string
		title string
		price string
	}{
		{"p1", "Desk Lamp", "25.00"},
		{"p2", "Floor Lamp", "80.00"},
		{"p3", "Office Chair", "150.00"},
	}
	for _, p := range products {
		err := ps.AddProduct(ctx, p.id, &entity.ProductInsert{
			Title: p.title,
			Price: decimal.NullDecimal{Decimal: decimal.RequireFromString(p.price), Valid: true},
		})
		require.NoError(t, err)
	}

	rows, err := ps.SearchProducts(ctx, &entity.SearchFilter{Title: strPtr("lamp")})
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = ps.SearchProducts(ctx, &entity.SearchFilter{
		Title:    strPtr("lamp"),
		MinPrice: decPtr("50"),
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "p2", rows[0].ProductId)

	// Bounds are inclusive on both ends.
	rows, err = ps.SearchProducts(ctx, &entity.SearchFilter{
		MinPrice: decPtr("25.00"),
		MaxPrice: decPtr("150.00"),
	})
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestProductStore_Stats(t *testing.T) {
	db := newTestDB(t)
	ps := db.Products()
	ctx := context.Background()

	stats, err := ps.GetCatalogStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Count)
	assert.True(t, stats.TotalPrice.IsZero())

	err = ps.AddProduct(ctx, "p1", &entity.ProductInsert{
		Title: "Lamp",
		Price: decimal.NullDecimal{Decimal: decimal.RequireFromString("25.00"), Valid: true},
	})
	require.NoError(t, err)
	err = ps.AddProduct(ctx, "p2", &entity.ProductInsert{
		Title: "Chair",
		Price: decimal.NullDecimal{Decimal: decimal.RequireFromString("75.00"), Valid: true},
	})
	require.NoError(t, err)

	stats, err = ps.GetCatalogStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Count)
	assert.True(t, stats.TotalPrice.Equal(decimal.RequireFromString("100.00")))
}
