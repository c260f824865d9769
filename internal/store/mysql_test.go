package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *MYSQLStore {
	dsn := os.Getenv("MYSQL_TEST_DSN")
	if dsn == "" {
		t.Skip("MYSQL_TEST_DSN is not set")
	}

	db, err := New(context.Background(), Config{
		DSN:         dsn,
		Automigrate: true,
	})
	require.NoError(t, err)

	ctx := context.Background()
	_, err = db.db.ExecContext(ctx, "SET FOREIGN_KEY_CHECKS = 0")
	require.NoError(t, err)
	_, err = db.db.ExecContext(ctx, "DELETE FROM related_products")
	require.NoError(t, err)
	_, err = db.db.ExecContext(ctx, "DELETE FROM images")
	require.NoError(t, err)
	_, err = db.db.ExecContext(ctx, "DELETE FROM comments")
	require.NoError(t, err)
	_, err = db.db.ExecContext(ctx, "DELETE FROM products")
	require.NoError(t, err)
	_, err = db.db.ExecContext(ctx, "SET FOREIGN_KEY_CHECKS = 1")
	require.NoError(t, err)

	return db
}

func TestPing(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Ping(context.Background()))
}
