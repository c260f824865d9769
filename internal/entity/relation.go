package entity

// RelationPair is one related-product edge. Edges are unordered: the pair
// {a, b} is the same edge as {b, a} for all read purposes, regardless of
// which id landed in which column.
type RelationPair struct {
	ProductId        string `db:"product_id" json:"product_id"`
	RelatedProductId string `db:"related_product_id" json:"related_product_id"`
}
