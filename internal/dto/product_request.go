package dto

type ProductRequest struct {
	ID          string   `json:"id" form:"-"`
	Name        string   `json:"name" form:"name"`
	Description string   `json:"description" form:"description"`
	Price       float64  `json:"price" form:"price"`
	Category    string   `json:"category" form:"category"`
	Brand       string   `json:"brand" form:"brand"`
	SkinType    []string `json:"skinType" form:"skinType"`
	Status      string   `json:"status" form:"status"`
	Stock       int64    `json:"stock" form:"stock"`
}
