// Package catalog is the product aggregation and relational integrity
// layer: it rebuilds nested product aggregates from normalized rows and
// sequences the multi-step mutations. Most mutations are short runs of
// independently atomic statements; a failure aborts the current step
// only, and re-running the same mutation converges instead of
// double-applying. Delete wraps its destructive tail in a transaction.
package catalog

import (
	"context"
	"fmt"

	"log/slog"

	"shop-catalog-manager/internal/cerr"
	"shop-catalog-manager/internal/dependency"
	"shop-catalog-manager/internal/dto"
	"shop-catalog-manager/internal/entity"

	v "github.com/asaskevich/govalidator"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service exposes the catalog operations over a Repository. It holds no
// mutable state; every operation is request-scoped.
type Service struct {
	repo dependency.Repository
}

// New creates a new catalog service.
func New(r dependency.Repository) *Service {
	return &Service{repo: r}
}

// newId generates an opaque product/image/comment identifier. Ids are
// never storage-assigned.
func newId() string {
	return uuid.NewString()
}

// ListProducts returns every product. With withChildren false the child
// collections are not fetched and stay nil; with true, comments and
// images are fetched wholesale and partitioned in memory.
func (s *Service) ListProducts(ctx context.Context, withChildren bool) ([]entity.Product, error) {
	rows, err := s.repo.Products().GetAllProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("can't list products: %w", err)
	}
	products := dto.MapProducts(rows)

	if !withChildren {
		return products, nil
	}
	return s.attachAllChildren(ctx, products)
}

// SearchProducts compiles the filter into a parameterized query. Children
// are attached only when the search matched anything, so an empty result
// costs a single query.
func (s *Service) SearchProducts(ctx context.Context, filter *entity.SearchFilter) ([]entity.Product, error) {
	rows, err := s.repo.Products().SearchProducts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("can't search products: %w", err)
	}
	products := dto.MapProducts(rows)
	if len(products) == 0 {
		return products, nil
	}
	return s.attachAllChildren(ctx, products)
}

func (s *Service) attachAllChildren(ctx context.Context, products []entity.Product) ([]entity.Product, error) {
	commentRows, err := s.repo.Comments().GetAllComments(ctx)
	if err != nil {
		return nil, fmt.Errorf("can't fetch comments: %w", err)
	}
	imageRows, err := s.repo.Images().GetAllImages(ctx)
	if err != nil {
		return nil, fmt.Errorf("can't fetch images: %w", err)
	}
	return attachChildren(products, dto.MapComments(commentRows), dto.MapImages(imageRows)), nil
}

// GetProduct returns the full aggregate: children, thumbnail and related
// product summaries.
func (s *Service) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	row, err := s.repo.Products().GetProductById(ctx, id)
	if err != nil {
		return nil, err
	}

	commentRows, err := s.repo.Comments().GetCommentsByProductId(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("can't fetch product comments: %w", err)
	}
	imageRows, err := s.repo.Images().GetImagesByProductId(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("can't fetch product images: %w", err)
	}

	products := attachChildren(
		[]entity.Product{dto.MapProduct(*row)},
		dto.MapComments(commentRows),
		dto.MapImages(imageRows),
	)
	product := products[0]

	related, err := s.repo.Relations().GetRelatedProducts(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("can't fetch related products: %w", err)
	}
	product.Related = related

	return &product, nil
}

// CreateProduct inserts the product row and, when images are supplied,
// bulk-inserts them under generated ids. The two steps are not wrapped in
// a transaction: if the image insert fails the product exists without
// images, and the returned error names the created id so the caller can
// observe and recover the partial state.
func (s *Service) CreateProduct(ctx context.Context, req *entity.ProductCreate) (*entity.Product, error) {
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", cerr.ErrBadRequest)
	}
	if err := validateMains(req.Images, false); err != nil {
		return nil, err
	}
	if _, err := v.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", cerr.ErrBadRequest, err)
	}

	id := newId()
	// An omitted or zero price persists as NULL; reads default it back
	// to zero.
	insert := &entity.ProductInsert{
		Title:       req.Title,
		Description: req.Description,
		Price:       decimal.NullDecimal{Decimal: req.Price, Valid: !req.Price.IsZero()},
	}
	if err := s.repo.Products().AddProduct(ctx, id, insert); err != nil {
		return nil, fmt.Errorf("can't create product: %w", err)
	}

	product := &entity.Product{
		Id:          id,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
	}

	if len(req.Images) > 0 {
		images, err := s.insertImages(ctx, id, req.Images)
		if err != nil {
			slog.Default().ErrorContext(ctx, "product created without images",
				slog.String("productId", id),
				slog.String("err", err.Error()),
			)
			return nil, fmt.Errorf("product %s created without images: %w", id, err)
		}
		product.Images = images
		product.Thumbnail = electThumbnail(images)
	}

	return product, nil
}

func (s *Service) insertImages(ctx context.Context, productId string, uploads []entity.ImageUpload) ([]entity.Image, error) {
	rows := make([]entity.ImageRow, 0, len(uploads))
	for _, up := range uploads {
		rows = append(rows, entity.ImageRow{
			ImageId:   newId(),
			Url:       up.Url,
			ProductId: productId,
			Main:      up.Main,
		})
	}
	if err := s.repo.Images().AddImages(ctx, rows); err != nil {
		return nil, err
	}
	return dto.MapImages(rows), nil
}

// validateMains rejects a batch that would leave the product with more
// than one main image. The read path tolerates that state; the write path
// never produces it.
func validateMains(uploads []entity.ImageUpload, hasExistingMain bool) error {
	mains := 0
	for _, up := range uploads {
		if up.Main {
			mains++
		}
	}
	if mains > 1 {
		return fmt.Errorf("%w: more than one image marked main", cerr.ErrBadRequest)
	}
	if mains == 1 && hasExistingMain {
		return fmt.Errorf("%w: product already has a main image", cerr.ErrBadRequest)
	}
	return nil
}

// PatchProduct merges only the fields present in the patch over the
// current row and writes the full field set back. Presence is explicit:
// a pointer to an empty string sets the empty string, a nil pointer
// keeps the current value.
func (s *Service) PatchProduct(ctx context.Context, id string, patch *entity.ProductPatch) error {
	row, err := s.repo.Products().GetProductById(ctx, id)
	if err != nil {
		return err
	}
	current := dto.MapProduct(*row)

	title := current.Title
	if patch.Title != nil {
		title = *patch.Title
	}
	description := current.Description
	if patch.Description != nil {
		description = *patch.Description
	}
	price := row.Price
	if patch.Price != nil {
		if patch.Price.IsNegative() {
			return fmt.Errorf("%w: price must not be negative", cerr.ErrBadRequest)
		}
		price = decimal.NullDecimal{Decimal: *patch.Price, Valid: true}
	}

	if err := s.repo.Products().UpdateProductFields(ctx, id, title, description, price); err != nil {
		return fmt.Errorf("can't patch product: %w", err)
	}
	return nil
}

// DeleteProduct removes the product and everything hanging off it. Step
// order is fixed: relation edges go first, before the existence check,
// because an edge to a nonexistent product must never persist no matter
// how far the delete gets. The remaining children-then-row steps run in
// one transaction, so a product without its images or comments is never
// observable. The whole call stays re-runnable.
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if _, err := s.repo.Relations().CascadeDeleteRelations(ctx, id); err != nil {
		return fmt.Errorf("can't cascade delete relations: %w", err)
	}

	if _, err := s.repo.Products().GetProductById(ctx, id); err != nil {
		return err
	}

	return s.repo.Tx(ctx, func(ctx context.Context, store dependency.Repository) error {
		if err := store.Images().DeleteImagesByProductId(ctx, id); err != nil {
			return fmt.Errorf("can't delete product images: %w", err)
		}
		if err := store.Comments().DeleteCommentsByProductId(ctx, id); err != nil {
			return fmt.Errorf("can't delete product comments: %w", err)
		}
		if _, err := store.Products().DeleteProductById(ctx, id); err != nil {
			return fmt.Errorf("can't delete product: %w", err)
		}
		return nil
	})
}

// AddImages bulk-inserts new images for the product. An empty batch is
// rejected before any storage call.
func (s *Service) AddImages(ctx context.Context, productId string, uploads []entity.ImageUpload) ([]entity.Image, error) {
	if len(uploads) == 0 {
		return nil, fmt.Errorf("%w: images array is empty", cerr.ErrBadRequest)
	}
	for _, up := range uploads {
		if up.Url == "" {
			return nil, fmt.Errorf("%w: image url is required", cerr.ErrBadRequest)
		}
	}

	mains, err := s.repo.Images().GetMainImages(ctx, productId)
	if err != nil {
		return nil, fmt.Errorf("can't check main image: %w", err)
	}
	if err := validateMains(uploads, len(mains) > 0); err != nil {
		return nil, err
	}

	return s.insertImages(ctx, productId, uploads)
}

// RemoveImages bulk-deletes images by id. Empty input is a BadRequest
// before any storage call; zero affected rows is NotFound.
func (s *Service) RemoveImages(ctx context.Context, imageIds []string) error {
	if len(imageIds) == 0 {
		return fmt.Errorf("%w: images array is empty", cerr.ErrBadRequest)
	}
	affected, err := s.repo.Images().DeleteImagesByIds(ctx, imageIds)
	if err != nil {
		return fmt.Errorf("can't remove images: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: no image has been removed", cerr.ErrNotFound)
	}
	return nil
}

// ReplaceThumbnail flips the main flag from the current main image to the
// candidate. The current main must be exactly one row and the candidate
// must be exactly one image of the same product; both flips happen in a
// single statement so no state with zero or two mains is observable.
func (s *Service) ReplaceThumbnail(ctx context.Context, productId, newImageId string) error {
	mains, err := s.repo.Images().GetMainImages(ctx, productId)
	if err != nil {
		return fmt.Errorf("can't read current thumbnail: %w", err)
	}
	if len(mains) != 1 {
		return fmt.Errorf("%w: product has %d main images, want exactly one", cerr.ErrBadRequest, len(mains))
	}

	candidates, err := s.repo.Images().GetProductImage(ctx, productId, newImageId)
	if err != nil {
		return fmt.Errorf("can't read new thumbnail: %w", err)
	}
	if len(candidates) != 1 {
		return fmt.Errorf("%w: incorrect new thumbnail id", cerr.ErrBadRequest)
	}

	currentId := mains[0].ImageId
	if currentId == newImageId {
		// Re-running a completed replacement converges without a write.
		return nil
	}

	affected, err := s.repo.Images().ReplaceThumbnail(ctx, currentId, newImageId)
	if err != nil {
		return fmt.Errorf("can't replace thumbnail: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: no image has been updated", cerr.ErrNotFound)
	}
	return nil
}

// GetRelated returns summaries of every product related to productId.
func (s *Service) GetRelated(ctx context.Context, productId string) ([]entity.ProductSummary, error) {
	return s.repo.Relations().GetRelatedProducts(ctx, productId)
}

// AddRelated inserts relation edges. Self-pairs are rejected before any
// write. A duplicate pair surfaces as cerr.ErrDuplicateEdge; pairs
// inserted by earlier statements of the same call are not rolled back.
func (s *Service) AddRelated(ctx context.Context, pairs []entity.RelationPair) error {
	if len(pairs) == 0 {
		return fmt.Errorf("%w: pairs array is empty", cerr.ErrBadRequest)
	}
	for _, pair := range pairs {
		if pair.ProductId == "" || pair.RelatedProductId == "" {
			return fmt.Errorf("%w: both product ids are required", cerr.ErrBadRequest)
		}
		if pair.ProductId == pair.RelatedProductId {
			return fmt.Errorf("%w: product can't relate to itself", cerr.ErrBadRequest)
		}
	}
	return s.repo.Relations().AddRelations(ctx, pairs)
}

// AddRelatedIds is the (productId, relatedIds[]) form of AddRelated.
func (s *Service) AddRelatedIds(ctx context.Context, productId string, relatedIds []string) error {
	pairs := make([]entity.RelationPair, 0, len(relatedIds))
	for _, rid := range relatedIds {
		pairs = append(pairs, entity.RelationPair{ProductId: productId, RelatedProductId: rid})
	}
	return s.AddRelated(ctx, pairs)
}

// RemoveRelated deletes the edges between productId and relatedIds in
// either orientation. Zero removed edges is NotFound, not a failure.
func (s *Service) RemoveRelated(ctx context.Context, productId string, relatedIds []string) error {
	if len(relatedIds) == 0 {
		return fmt.Errorf("%w: related ids array is empty", cerr.ErrBadRequest)
	}
	affected, err := s.repo.Relations().RemoveRelations(ctx, productId, relatedIds)
	if err != nil {
		return fmt.Errorf("can't remove related products: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: no relations found for provided ids", cerr.ErrNotFound)
	}
	return nil
}

// AddComment stores a new comment after checking the product exists and
// an identical comment (case-insensitive email/name/body) does not.
func (s *Service) AddComment(ctx context.Context, req *entity.CommentCreate) (*entity.Comment, error) {
	if _, err := v.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", cerr.ErrBadRequest, err)
	}

	if _, err := s.repo.Products().GetProductById(ctx, req.ProductId); err != nil {
		return nil, err
	}

	row := entity.CommentRow{
		CommentId: newId(),
		Email:     req.Email,
		Name:      req.Name,
		Body:      req.Body,
		ProductId: req.ProductId,
	}

	duplicate, err := s.repo.Comments().HasDuplicateComment(ctx, row)
	if err != nil {
		return nil, fmt.Errorf("can't check duplicate comment: %w", err)
	}
	if duplicate {
		return nil, cerr.ErrDuplicateComment
	}

	if err := s.repo.Comments().AddComment(ctx, row); err != nil {
		return nil, fmt.Errorf("can't add comment: %w", err)
	}
	comment := dto.MapComment(row)
	return &comment, nil
}

// DeleteComment removes one comment by id; zero affected rows is NotFound.
func (s *Service) DeleteComment(ctx context.Context, commentId string) error {
	affected, err := s.repo.Comments().DeleteCommentById(ctx, commentId)
	if err != nil {
		return fmt.Errorf("can't delete comment: %w", err)
	}
	if affected == 0 {
		return cerr.ErrNotFound
	}
	return nil
}

// Stats returns the product count and total price over the catalog.
func (s *Service) Stats(ctx context.Context) (*entity.CatalogStats, error) {
	return s.repo.Products().GetCatalogStats(ctx)
}
