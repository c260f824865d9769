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
	"golang.org/x/exp/slices"
)

func addTestProducts(t *testing.T, db *MYSQLStore, ids ...string) {
	ctx := context.Background()
	for _, id := range ids {
		err := db.Products().AddProduct(ctx, id, &entity.ProductInsert{
			Title: "Product " + id,
			Price: decimal.NullDecimal{Decimal: decimal.NewFromInt(10), Valid: true},
		})
		require.NoError(t, err)
	}
}

func TestRelationStore_SymmetricLookup(t *testing.T) {
	db := newTestDB(t)
	rs := db.Relations()
	ctx := context.Background()

	addTestProducts(t, db, "p1", "p2", "p3")

	err := rs.AddRelations(ctx, []entity.RelationPair{
		{ProductId: "p1", RelatedProductId: "p2"},
		{ProductId: "p3", RelatedProductId: "p1"},
	})
	require.NoError(t, err)

	// Edges resolve from both orientations.
	related, err := rs.GetRelatedProducts(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, related, 2)

	ids := []string{related[0].Id, related[1].Id}
	slices.Sort(ids)
	assert.Equal(t, []string{"p2", "p3"}, ids)

	related, err = rs.GetRelatedProducts(ctx, "p2")
	require.NoError(t, err)
	require.Len(t, related, 1)
	assert.Equal(t, "p1", related[0].Id)
}

func TestRelationStore_DuplicateEdge(t *testing.T) {
	db := newTestDB(t)
	rs := db.Relations()
	ctx := context.Background()

	addTestProducts(t, db, "p1", "p2")

	pair := []entity.RelationPair{{ProductId: "p1", RelatedProductId: "p2"}}
	require.NoError(t, rs.AddRelations(ctx, pair))

	err := rs.AddRelations(ctx, pair)
	assert.True(t, errors.Is(err, cerr.ErrDuplicateEdge))
}

func TestRelationStore_RemoveAndCascade(t *testing.T) {
	db := newTestDB(t)
	rs := db.Relations()
	ctx := context.Background()

	addTestProducts(t, db, "p1", "p2", "p3")

	err := rs.AddRelations(ctx, []entity.RelationPair{
		{ProductId: "p1", RelatedProductId: "p2"},
		{ProductId: "p3", RelatedProductId: "p1"},
	})
	require.NoError(t, err)

	// Removal works against the reversed orientation too.
	affected, err := rs.RemoveRelations(ctx, "p1", []string{"p3"})
	require.NoError(t, err)
	assert.Equal(t, 1, affected)

	affected, err = rs.RemoveRelations(ctx, "p1", []string{"p3"})
	require.NoError(t, err)
	assert.Equal(t, 0, affected)

	affected, err = rs.CascadeDeleteRelations(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, affected)

	// Cascade on an edgeless product is a no-op, not an error.
	affected, err = rs.CascadeDeleteRelations(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 0, affected)
}
