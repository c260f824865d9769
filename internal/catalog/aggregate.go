package catalog

import (
	"shop-catalog-manager/internal/entity"
)

// attachChildren partitions comments and images by their product foreign
// key and assigns them to the matching products. Every returned product
// carries non-nil child slices: an empty slice means "fetched, none
// exist", which readers must be able to tell apart from "not fetched"
// (nil, left untouched by list reads that skip child queries).
func attachChildren(products []entity.Product, comments []entity.Comment, images []entity.Image) []entity.Product {
	commentsByProduct := make(map[string][]entity.Comment, len(products))
	for _, c := range comments {
		commentsByProduct[c.ProductId] = append(commentsByProduct[c.ProductId], c)
	}
	imagesByProduct := make(map[string][]entity.Image, len(products))
	for _, img := range images {
		imagesByProduct[img.ProductId] = append(imagesByProduct[img.ProductId], img)
	}

	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		p.Comments = commentsByProduct[p.Id]
		if p.Comments == nil {
			p.Comments = []entity.Comment{}
		}
		p.Images = imagesByProduct[p.Id]
		if p.Images == nil {
			p.Images = []entity.Image{}
		}
		p.Thumbnail = electThumbnail(p.Images)
		out = append(out, p)
	}
	return out
}

// electThumbnail picks the representative image: the one marked main, or
// the first by insertion order when none is marked, or nil for an empty
// set. Several mains is an integrity violation the read path tolerates by
// picking the first deterministically; the write path rejects it instead.
func electThumbnail(images []entity.Image) *entity.Image {
	if len(images) == 0 {
		return nil
	}
	for i := range images {
		if images[i].Main {
			return &images[i]
		}
	}
	return &images[0]
}
