package entity

// ImageRow represents the images table.
type ImageRow struct {
	ImageId   string `db:"image_id"`
	Url       string `db:"url"`
	ProductId string `db:"product_id"`
	Main      bool   `db:"main"`
}

// Image is the domain form of an image row.
type Image struct {
	Id        string `json:"id"`
	Url       string `json:"url"`
	ProductId string `json:"productId"`
	Main      bool   `json:"main"`
}

// ImageUpload is the caller-supplied shape for new images; ids are
// generated by the orchestrator on insert.
type ImageUpload struct {
	Url  string `json:"url" valid:"required"`
	Main bool   `json:"main"`
}
