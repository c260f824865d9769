package store

import (
	"context"
	"fmt"
	"strings"

	"shop-catalog-manager/internal/dependency"
	"shop-catalog-manager/internal/entity"
)

type commentStore struct {
	*MYSQLStore
}

// Comments returns an object implementing comment interface
func (ms *MYSQLStore) Comments() dependency.Comments {
	return &commentStore{
		MYSQLStore: ms,
	}
}

func (ms *MYSQLStore) AddComment(ctx context.Context, row entity.CommentRow) error {
	query := `
	INSERT INTO comments
	(comment_id, email, name, body, product_id)
	VALUES (:commentId, :email, :name, :body, :productId)`

	err := ExecNamed(ctx, ms.DB(), query, map[string]any{
		"commentId": row.CommentId,
		"email":     row.Email,
		"name":      row.Name,
		"body":      row.Body,
		"productId": row.ProductId,
	})
	if err != nil {
		return fmt.Errorf("can't insert comment: %w", err)
	}
	return nil
}

func (ms *MYSQLStore) GetAllComments(ctx context.Context) ([]entity.CommentRow, error) {
	query := `SELECT * FROM comments`
	rows, err := QueryListNamed[entity.CommentRow](ctx, ms.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get comments: %w", err)
	}
	return rows, nil
}

func (ms *MYSQLStore) GetCommentsByProductId(ctx context.Context, productId string) ([]entity.CommentRow, error) {
	query := `SELECT * FROM comments WHERE product_id = :productId`
	rows, err := QueryListNamed[entity.CommentRow](ctx, ms.DB(), query, map[string]any{
		"productId": productId,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get product comments: %w", err)
	}
	return rows, nil
}

// HasDuplicateComment probes for a comment on the same product whose
// email, name and body all match case-insensitively.
func (ms *MYSQLStore) HasDuplicateComment(ctx context.Context, row entity.CommentRow) (bool, error) {
	query := `
	SELECT * FROM comments c
	WHERE LOWER(c.email) = :email
	AND LOWER(c.name) = :name
	AND LOWER(c.body) = :body
	AND c.product_id = :productId`

	rows, err := QueryListNamed[entity.CommentRow](ctx, ms.DB(), query, map[string]any{
		"email":     strings.ToLower(row.Email),
		"name":      strings.ToLower(row.Name),
		"body":      strings.ToLower(row.Body),
		"productId": row.ProductId,
	})
	if err != nil {
		return false, fmt.Errorf("can't check duplicate comment: %w", err)
	}
	return len(rows) > 0, nil
}

func (ms *MYSQLStore) DeleteCommentById(ctx context.Context, id string) (int, error) {
	query := `DELETE FROM comments WHERE comment_id = :commentId`
	affected, err := ExecNamedAffected(ctx, ms.DB(), query, map[string]any{
		"commentId": id,
	})
	if err != nil {
		return 0, fmt.Errorf("can't delete comment: %w", err)
	}
	return affected, nil
}

func (ms *MYSQLStore) DeleteCommentsByProductId(ctx context.Context, productId string) error {
	query := `DELETE FROM comments WHERE product_id = :productId`
	err := ExecNamed(ctx, ms.DB(), query, map[string]any{
		"productId": productId,
	})
	if err != nil {
		return fmt.Errorf("can't delete product comments: %w", err)
	}
	return nil
}
