package store

import (
	"context"
	"fmt"

	"shop-catalog-manager/internal/dependency"
	"shop-catalog-manager/internal/entity"
)

type imageStore struct {
	*MYSQLStore
}

// Images returns an object implementing image interface
func (ms *MYSQLStore) Images() dependency.Images {
	return &imageStore{
		MYSQLStore: ms,
	}
}

var imageColumns = []string{"image_id", "url", "product_id", "main"}

// AddImages bulk-inserts image rows. Ids are caller-generated. The whole
// batch is one statement, so it is atomic at the storage layer.
func (ms *MYSQLStore) AddImages(ctx context.Context, images []entity.ImageRow) error {
	rows := make([]map[string]any, 0, len(images))
	for _, img := range images {
		rows = append(rows, map[string]any{
			"image_id":   img.ImageId,
			"url":        img.Url,
			"product_id": img.ProductId,
			"main":       img.Main,
		})
	}
	err := BulkInsert(ctx, ms.DB(), "images", imageColumns, rows)
	if err != nil {
		return fmt.Errorf("can't insert images: %w", err)
	}
	return nil
}

func (ms *MYSQLStore) GetAllImages(ctx context.Context) ([]entity.ImageRow, error) {
	query := `SELECT * FROM images`
	rows, err := QueryListNamed[entity.ImageRow](ctx, ms.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get images: %w", err)
	}
	return rows, nil
}

func (ms *MYSQLStore) GetImagesByProductId(ctx context.Context, productId string) ([]entity.ImageRow, error) {
	query := `SELECT * FROM images WHERE product_id = :productId`
	rows, err := QueryListNamed[entity.ImageRow](ctx, ms.DB(), query, map[string]any{
		"productId": productId,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get product images: %w", err)
	}
	return rows, nil
}

// GetMainImages returns every image marked main for the product. The
// write path treats anything other than exactly one row as an error;
// the read path tolerates it.
func (ms *MYSQLStore) GetMainImages(ctx context.Context, productId string) ([]entity.ImageRow, error) {
	query := `SELECT * FROM images WHERE product_id = :productId AND main = :main`
	rows, err := QueryListNamed[entity.ImageRow](ctx, ms.DB(), query, map[string]any{
		"productId": productId,
		"main":      true,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get main images: %w", err)
	}
	return rows, nil
}

func (ms *MYSQLStore) GetProductImage(ctx context.Context, productId, imageId string) ([]entity.ImageRow, error) {
	query := `SELECT * FROM images WHERE product_id = :productId AND image_id = :imageId`
	rows, err := QueryListNamed[entity.ImageRow](ctx, ms.DB(), query, map[string]any{
		"productId": productId,
		"imageId":   imageId,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get product image: %w", err)
	}
	return rows, nil
}

// ReplaceThumbnail flips main=true to the new image and main=false to the
// current one in a single statement, so no intermediate state with zero
// or two thumbnails is observable.
func (ms *MYSQLStore) ReplaceThumbnail(ctx context.Context, currentId, newId string) (int, error) {
	query := `
	UPDATE images
	SET main = CASE
		WHEN image_id = :currentId THEN FALSE
		WHEN image_id = :newId THEN TRUE
		ELSE main
	END
	WHERE image_id IN (:currentId, :newId)`

	affected, err := ExecNamedAffected(ctx, ms.DB(), query, map[string]any{
		"currentId": currentId,
		"newId":     newId,
	})
	if err != nil {
		return 0, fmt.Errorf("can't replace thumbnail: %w", err)
	}
	return affected, nil
}

func (ms *MYSQLStore) DeleteImagesByIds(ctx context.Context, ids []string) (int, error) {
	query := `DELETE FROM images WHERE image_id IN (:imageIds)`
	affected, err := ExecNamedAffected(ctx, ms.DB(), query, map[string]any{
		"imageIds": ids,
	})
	if err != nil {
		return 0, fmt.Errorf("can't delete images: %w", err)
	}
	return affected, nil
}

func (ms *MYSQLStore) DeleteImagesByProductId(ctx context.Context, productId string) error {
	query := `DELETE FROM images WHERE product_id = :productId`
	err := ExecNamed(ctx, ms.DB(), query, map[string]any{
		"productId": productId,
	})
	if err != nil {
		return fmt.Errorf("can't delete product images: %w", err)
	}
	return nil
}
