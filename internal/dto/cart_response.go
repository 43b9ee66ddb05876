package dto

import "github.com/noyo-commerce/storefront-service/internal/domain"

// CartProduct is the subset of catalog fields a cart listing exposes
// for each line.
type CartProduct struct {
	ID       string                `json:"id"`
	Name     string                `json:"name"`
	Price    float64               `json:"price"`
	Images   []domain.ProductImage `json:"images"`
	Category string                `json:"category"`
	Brand    string                `json:"brand"`
	SkinType []string              `json:"skinType"`
}

type CartItemResponse struct {
	Product  CartProduct `json:"product"`
	Quantity int64       `json:"quantity"`
}
