package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"shop-catalog-manager/internal/cerr"
	"shop-catalog-manager/internal/dependency"
	"shop-catalog-manager/internal/entity"

	"github.com/shopspring/decimal"
)

type productStore struct {
	*MYSQLStore
}

// Products returns an object implementing product interface
func (ms *MYSQLStore) Products() dependency.Products {
	return &productStore{
		MYSQLStore: ms,
	}
}

// AddProduct inserts a single product row. The id comes from the caller:
// ids are generated in the orchestrator, never by storage.
func (ms *MYSQLStore) AddProduct(ctx context.Context, id string, prd *entity.ProductInsert) error {
	query := `
	INSERT INTO products
	(product_id, title, description, price)
	VALUES (:productId, :title, :description, :price)`

	err := ExecNamed(ctx, ms.DB(), query, map[string]any{
		"productId":   id,
		"title":       prd.Title,
		"description": prd.Description,
		"price":       prd.Price,
	})
	if err != nil {
		return fmt.Errorf("can't insert product: %w", err)
	}
	return nil
}

func (ms *MYSQLStore) GetAllProducts(ctx context.Context) ([]entity.ProductRow, error) {
	query := `SELECT * FROM products`
	rows, err := QueryListNamed[entity.ProductRow](ctx, ms.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get products: %w", err)
	}
	return rows, nil
}

// buildSearchQuery compiles a structured filter into a parameterized query
// plus its named values. Predicate order is fixed (title, minPrice,
// maxPrice) so the same filter always compiles to the same query text.
// Every value is bound, never interpolated.
func buildSearchQuery(filter *entity.SearchFilter) (string, map[string]any) {
	query := `SELECT * FROM products`
	args := make(map[string]any)
	if filter.Empty() {
		return query, args
	}

	var whereClauses []string
	if filter.Title != nil {
		whereClauses = append(whereClauses, "LOWER(title) LIKE :title")
		args["title"] = "%" + strings.ToLower(*filter.Title) + "%"
	}
	if filter.MinPrice != nil {
		whereClauses = append(whereClauses, "price >= :minPrice")
		args["minPrice"] = *filter.MinPrice
	}
	if filter.MaxPrice != nil {
		whereClauses = append(whereClauses, "price <= :maxPrice")
		args["maxPrice"] = *filter.MaxPrice
	}

	query += " WHERE " + strings.Join(whereClauses, " AND ")
	return query, args
}

func (ms *MYSQLStore) SearchProducts(ctx context.Context, filter *entity.SearchFilter) ([]entity.ProductRow, error) {
	query, args := buildSearchQuery(filter)
	rows, err := QueryListNamed[entity.ProductRow](ctx, ms.DB(), query, args)
	if err != nil {
		return nil, fmt.Errorf("can't search products: %w", err)
	}
	return rows, nil
}

func (ms *MYSQLStore) GetProductById(ctx context.Context, id string) (*entity.ProductRow, error) {
	query := `SELECT * FROM products WHERE product_id = :productId`
	row, err := QueryNamedOne[entity.ProductRow](ctx, ms.DB(), query, map[string]any{
		"productId": id,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, cerr.ErrNotFound
		}
		return nil, fmt.Errorf("can't get product: %w", err)
	}
	return &row, nil
}

// UpdateProductFields writes the full field set of a product row. Merging
// patch payloads over current values happens in the orchestrator; the
// store always writes all three fields.
func (ms *MYSQLStore) UpdateProductFields(ctx context.Context, id string, title, description string, price decimal.NullDecimal) error {
	query := `
	UPDATE products
	SET
		title = :title,
		description = :description,
		price = :price
	WHERE product_id = :productId`

	err := ExecNamed(ctx, ms.DB(), query, map[string]any{
		"title":       title,
		"description": description,
		"price":       price,
		"productId":   id,
	})
	if err != nil {
		return fmt.Errorf("can't update product fields: %w", err)
	}
	return nil
}

func (ms *MYSQLStore) DeleteProductById(ctx context.Context, id string) (int, error) {
	query := `DELETE FROM products WHERE product_id = :productId`
	affected, err := ExecNamedAffected(ctx, ms.DB(), query, map[string]any{
		"productId": id,
	})
	if err != nil {
		return 0, fmt.Errorf("can't delete product: %w", err)
	}
	return affected, nil
}

// GetCatalogStats returns the product count and the price total over the
// whole table. An empty catalog yields count 0 and total 0, not NULL.
func (ms *MYSQLStore) GetCatalogStats(ctx context.Context) (*entity.CatalogStats, error) {
	query := `SELECT COUNT(*) AS count, COALESCE(SUM(price), 0) AS total_price FROM products`
	stats, err := QueryNamedOne[entity.CatalogStats](ctx, ms.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get catalog stats: %w", err)
	}
	return &stats, nil
}
