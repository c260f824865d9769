package dependency

import (
	"context"
	"database/sql"
	"time"

	"shop-catalog-manager/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type (
	ContextStore interface {
		Tx(ctx context.Context, fn func(ctx context.Context, store Repository) error) error
	}

	Products interface {
		ContextStore
		// AddProduct inserts one product row under a caller-generated id.
		AddProduct(ctx context.Context, id string, prd *entity.ProductInsert) error
		// GetAllProducts returns every product row.
		GetAllProducts(ctx context.Context) ([]entity.ProductRow, error)
		// SearchProducts returns product rows matching the compiled filter.
		SearchProducts(ctx context.Context, filter *entity.SearchFilter) ([]entity.ProductRow, error)
		// GetProductById returns a single product row or cerr.ErrNotFound.
		GetProductById(ctx context.Context, id string) (*entity.ProductRow, error)
		// UpdateProductFields writes the full field set of a product row.
		UpdateProductFields(ctx context.Context, id string, title, description string, price decimal.NullDecimal) error
		// DeleteProductById removes the product row, returning affected count.
		DeleteProductById(ctx context.Context, id string) (int, error)
		// GetCatalogStats returns count and total price over all products.
		GetCatalogStats(ctx context.Context) (*entity.CatalogStats, error)
	}

	Images interface {
		// AddImages bulk-inserts image rows with caller-generated ids.
		AddImages(ctx context.Context, images []entity.ImageRow) error
		GetAllImages(ctx context.Context) ([]entity.ImageRow, error)
		GetImagesByProductId(ctx context.Context, productId string) ([]entity.ImageRow, error)
		// GetMainImages returns every row with main=true for the product.
		// More than one row is an integrity violation the caller decides
		// how to treat.
		GetMainImages(ctx context.Context, productId string) ([]entity.ImageRow, error)
		// GetProductImage returns the rows matching both product and image id.
		GetProductImage(ctx context.Context, productId, imageId string) ([]entity.ImageRow, error)
		// ReplaceThumbnail flips main on exactly the two affected rows in a
		// single statement, returning affected count.
		ReplaceThumbnail(ctx context.Context, currentId, newId string) (int, error)
		DeleteImagesByIds(ctx context.Context, ids []string) (int, error)
		DeleteImagesByProductId(ctx context.Context, productId string) error
	}

	Comments interface {
		AddComment(ctx context.Context, row entity.CommentRow) error
		GetAllComments(ctx context.Context) ([]entity.CommentRow, error)
		GetCommentsByProductId(ctx context.Context, productId string) ([]entity.CommentRow, error)
		// HasDuplicateComment probes for an existing comment with the same
		// product and case-insensitive email/name/body.
		HasDuplicateComment(ctx context.Context, row entity.CommentRow) (bool, error)
		DeleteCommentById(ctx context.Context, id string) (int, error)
		DeleteCommentsByProductId(ctx context.Context, productId string) error
	}

	Relations interface {
		// GetRelatedProducts returns summaries of every product sharing an
		// edge with productId, in either column orientation, deduplicated,
		// excluding productId itself.
		GetRelatedProducts(ctx context.Context, productId string) ([]entity.ProductSummary, error)
		// AddRelations inserts the pairs. A uniqueness violation surfaces
		// as cerr.ErrDuplicateEdge.
		AddRelations(ctx context.Context, pairs []entity.RelationPair) error
		// RemoveRelations deletes edges between productId and each related
		// id, in either orientation, returning affected count.
		RemoveRelations(ctx context.Context, productId string, relatedIds []string) (int, error)
		// CascadeDeleteRelations removes every edge touching productId.
		// Idempotent: zero edges removed is not an error.
		CascadeDeleteRelations(ctx context.Context, productId string) (int, error)
	}

	Repository interface {
		Products() Products
		Images() Images
		Comments() Comments
		Relations() Relations
		Tx(ctx context.Context, f func(context.Context, Repository) error) error
		TxBegin(ctx context.Context) (Repository, error)
		TxCommit(ctx context.Context) error
		TxRollback(ctx context.Context) error
		Now() time.Time
		InTx() bool
		Close()
		IsErrUniqueViolation(err error) bool
		IsErrorRepeat(err error) bool
		DB() DB
	}

	// DB represents database interface.
	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
		NamedQuery(query string, arg interface{}) (*sqlx.Rows, error)
		PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
		PreparexContext(ctx context.Context, query string) (*sqlx.Stmt, error)
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}
)
