package entity

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// ProductRow represents the products table. Title, description and price
// are nullable at the storage level; the dto package maps them to their
// defaulted domain form.
type ProductRow struct {
	ProductId   string              `db:"product_id"`
	Title       sql.NullString      `db:"title"`
	Description sql.NullString      `db:"description"`
	Price       decimal.NullDecimal `db:"price"`
}

// Product is the defaulted domain form of a product row, optionally
// carrying its children. A nil Comments/Images slice means the children
// were not fetched for this read; an empty non-nil slice means they were
// fetched and none exist.
type Product struct {
	Id          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Price       decimal.Decimal  `json:"price"`
	Comments    []Comment        `json:"comments,omitempty"`
	Images      []Image          `json:"images,omitempty"`
	Thumbnail   *Image           `json:"thumbnail,omitempty"`
	Related     []ProductSummary `json:"related,omitempty"`
}

// SummaryRow is the storage projection behind ProductSummary; fields stay
// nullable until mapped.
type SummaryRow struct {
	ProductId   string              `db:"product_id"`
	Title       sql.NullString      `db:"title"`
	Description sql.NullString      `db:"description"`
	Price       decimal.NullDecimal `db:"price"`
}

// ProductSummary is the related-products projection: no children, no
// thumbnail, just the product fields.
type ProductSummary struct {
	Id          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// ProductInsert carries the defaulted fields written on create. The id is
// generated by the caller, never by storage.
type ProductInsert struct {
	Title       string
	Description string
	Price       decimal.NullDecimal
}

// ProductPatch encodes partial updates. A nil field means "keep the
// current value"; a non-nil pointer to the zero value means "set to
// empty/zero" and must be honored.
type ProductPatch struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
}

// ProductCreate is the create payload accepted by the orchestrator.
type ProductCreate struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Images      []ImageUpload   `json:"images"`
}

// CatalogStats is the aggregate over the whole products table.
type CatalogStats struct {
	Count      int             `db:"count" json:"count"`
	TotalPrice decimal.Decimal `db:"total_price" json:"totalPrice"`
}
