package dto

type CartRequest struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

type WishlistRequest struct {
	ProductID string `json:"productId"`
}
