package store

import (
	"context"
	"fmt"

	"shop-catalog-manager/internal/cerr"
	"shop-catalog-manager/internal/dependency"
	"shop-catalog-manager/internal/dto"
	"shop-catalog-manager/internal/entity"
)

type relationStore struct {
	*MYSQLStore
}

// Relations returns an object implementing relation interface
func (ms *MYSQLStore) Relations() dependency.Relations {
	return &relationStore{
		MYSQLStore: ms,
	}
}

// GetRelatedProducts resolves every product sharing an edge with
// productId. Edges are symmetric: either column orientation counts. The
// join also guarantees that edges pointing at a deleted product resolve
// to nothing, and DISTINCT plus the self-exclusion keep the result clean
// even against erroneous self-edges.
func (ms *MYSQLStore) GetRelatedProducts(ctx context.Context, productId string) ([]entity.ProductSummary, error) {
	query := `
	SELECT DISTINCT p.product_id, p.title, p.description, p.price
	FROM related_products r
		JOIN products p ON r.related_product_id = p.product_id
		OR r.product_id = p.product_id
	WHERE (r.product_id = :productId OR r.related_product_id = :productId)
		AND p.product_id != :productId`

	rows, err := QueryListNamed[entity.SummaryRow](ctx, ms.DB(), query, map[string]any{
		"productId": productId,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get related products: %w", err)
	}
	return dto.MapSummaries(rows), nil
}

var relationColumns = []string{"product_id", "related_product_id"}

// AddRelations inserts the pairs as one multi-row statement. A duplicate
// pair trips the unique key and surfaces as cerr.ErrDuplicateEdge so
// callers can distinguish "already related" from a real write failure.
func (ms *MYSQLStore) AddRelations(ctx context.Context, pairs []entity.RelationPair) error {
	rows := make([]map[string]any, 0, len(pairs))
	for _, pair := range pairs {
		rows = append(rows, map[string]any{
			"product_id":         pair.ProductId,
			"related_product_id": pair.RelatedProductId,
		})
	}
	err := BulkInsert(ctx, ms.DB(), "related_products", relationColumns, rows)
	if err != nil {
		if ms.IsErrUniqueViolation(err) {
			return fmt.Errorf("%w: %v", cerr.ErrDuplicateEdge, err)
		}
		return fmt.Errorf("can't insert relations: %w", err)
	}
	return nil
}

// RemoveRelations deletes edges between productId and each related id,
// whichever column each id landed in. Returns the number of edges
// actually removed; interpreting zero is the caller's concern.
func (ms *MYSQLStore) RemoveRelations(ctx context.Context, productId string, relatedIds []string) (int, error) {
	query := `
	DELETE FROM related_products
	WHERE (product_id = :productId AND related_product_id IN (:relatedIds))
		OR (related_product_id = :productId AND product_id IN (:relatedIds))`

	affected, err := ExecNamedAffected(ctx, ms.DB(), query, map[string]any{
		"productId":  productId,
		"relatedIds": relatedIds,
	})
	if err != nil {
		return 0, fmt.Errorf("can't remove relations: %w", err)
	}
	return affected, nil
}

// CascadeDeleteRelations removes every edge touching productId in either
// orientation. Idempotent: removing from an edgeless product affects zero
// rows and is not an error.
func (ms *MYSQLStore) CascadeDeleteRelations(ctx context.Context, productId string) (int, error) {
	query := `
	DELETE FROM related_products
	WHERE product_id = :productId OR related_product_id = :productId`

	affected, err := ExecNamedAffected(ctx, ms.DB(), query, map[string]any{
		"productId": productId,
	})
	if err != nil {
		return 0, fmt.Errorf("can't cascade delete relations: %w", err)
	}
	return affected, nil
}
