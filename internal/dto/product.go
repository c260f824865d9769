// Package dto maps flat storage rows into their domain entities. Mapping
// is pure and total: one row in, one entity out, nullable fields collapse
// to their defaults, no row is ever dropped.
package dto

import (
	"shop-catalog-manager/internal/entity"

	"github.com/shopspring/decimal"
)

func MapProduct(row entity.ProductRow) entity.Product {
	p := entity.Product{
		Id:    row.ProductId,
		Price: decimal.Zero,
	}
	if row.Title.Valid {
		p.Title = row.Title.String
	}
	if row.Description.Valid {
		p.Description = row.Description.String
	}
	if row.Price.Valid {
		p.Price = row.Price.Decimal
	}
	return p
}

func MapProducts(rows []entity.ProductRow) []entity.Product {
	products := make([]entity.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, MapProduct(row))
	}
	return products
}

func MapImage(row entity.ImageRow) entity.Image {
	return entity.Image{
		Id:        row.ImageId,
		Url:       row.Url,
		ProductId: row.ProductId,
		Main:      row.Main,
	}
}

func MapImages(rows []entity.ImageRow) []entity.Image {
	images := make([]entity.Image, 0, len(rows))
	for _, row := range rows {
		images = append(images, MapImage(row))
	}
	return images
}

func MapSummary(row entity.SummaryRow) entity.ProductSummary {
	s := entity.ProductSummary{
		Id:    row.ProductId,
		Price: decimal.Zero,
	}
	if row.Title.Valid {
		s.Title = row.Title.String
	}
	if row.Description.Valid {
		s.Description = row.Description.String
	}
	if row.Price.Valid {
		s.Price = row.Price.Decimal
	}
	return s
}

func MapSummaries(rows []entity.SummaryRow) []entity.ProductSummary {
	summaries := make([]entity.ProductSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, MapSummary(row))
	}
	return summaries
}

func MapComment(row entity.CommentRow) entity.Comment {
	return entity.Comment{
		Id:        row.CommentId,
		Email:     row.Email,
		Name:      row.Name,
		Body:      row.Body,
		ProductId: row.ProductId,
	}
}

func MapComments(rows []entity.CommentRow) []entity.Comment {
	comments := make([]entity.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, MapComment(row))
	}
	return comments
}
