package store

import (
	"context"
	"testing"

	"shop-catalog-manager/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentStore_DuplicateProbeIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	cs := db.Comments()
	ctx := context.Background()

	addTestProducts(t, db, "p1")

	row := entity.CommentRow{
		CommentId: "c1",
		Email:     "user@example.com",
		Name:      "User",
		Body:      "Great product",
		ProductId: "p1",
	}
	require.NoError(t, cs.AddComment(ctx, row))

	dup, err := cs.HasDuplicateComment(ctx, entity.CommentRow{
		Email:     "USER@EXAMPLE.COM",
		Name:      "user",
		Body:      "GREAT PRODUCT",
		ProductId: "p1",
	})
	require.NoError(t, err)
	assert.True(t, dup)

	dup, err = cs.HasDuplicateComment(ctx, entity.CommentRow{
		Email:     "user@example.com",
		Name:      "User",
		Body:      "Different body",
		ProductId: "p1",
	})
	require.NoError(t, err)
	assert.False(t, dup)
}

func TestCommentStore_DeleteById(t *testing.T) {
	db := newTestDB(t)
	cs := db.Comments()
	ctx := context.Background()

	addTestProducts(t, db, "p1")

	require.NoError(t, cs.AddComment(ctx, entity.CommentRow{
		CommentId: "c1",
		Email:     "user@example.com",
		Name:      "User",
		Body:      "Great product",
		ProductId: "p1",
	}))

	affected, err := cs.DeleteCommentById(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 1, affected)

	affected, err = cs.DeleteCommentById(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 0, affected)
}
