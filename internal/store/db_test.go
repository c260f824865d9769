package store

import (
	"context"
	"errors"
	"testing"

	"shop-catalog-manager/internal/cerr"
	"shop-catalog-manager/internal/dependency"
	"shop-catalog-manager/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTx_CommitPersists(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	err := db.Tx(ctx, func(ctx context.Context, store dependency.Repository) error {
		assert.True(t, store.InTx())
		return store.Products().AddProduct(ctx, "p1", &entity.ProductInsert{Title: "Lamp"})
	})
	require.NoError(t, err)

	row, err := db.Products().GetProductById(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Lamp", row.Title.String)
}

func TestTx_ErrorRollsBack(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	boom := errors.New("boom")
	err := db.Tx(ctx, func(ctx context.Context, store dependency.Repository) error {
		if err := store.Products().AddProduct(ctx, "p1", &entity.ProductInsert{Title: "Lamp"}); err != nil {
			return err
		}
		return boom
	})
	assert.True(t, errors.Is(err, boom))

	_, err = db.Products().GetProductById(ctx, "p1")
	assert.True(t, errors.Is(err, cerr.ErrNotFound))
}
