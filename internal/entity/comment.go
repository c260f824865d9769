package entity

// CommentRow represents the comments table.
type CommentRow struct {
	CommentId string `db:"comment_id"`
	Email     string `db:"email"`
	Name      string `db:"name"`
	Body      string `db:"body"`
	ProductId string `db:"product_id"`
}

// Comment is the domain form of a comment row.
type Comment struct {
	Id        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Body      string `json:"body"`
	ProductId string `json:"productId"`
}

// CommentCreate is the add-comment payload.
type CommentCreate struct {
	ProductId string `json:"productId" valid:"required"`
	Email     string `json:"email" valid:"required,email"`
	Name      string `json:"name" valid:"required"`
	Body      string `json:"body" valid:"required"`
}
