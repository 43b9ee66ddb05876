package dto

import "github.com/noyo-commerce/storefront-service/internal/domain"

type OrderItemRequest struct {
	Name     string  `json:"name"`
	Quantity int64   `json:"quantity"`
	Image    string  `json:"image"`
	Price    float64 `json:"price"`
	Product  string  `json:"product"`
}

type OrderRequest struct {
	OrderItems    []OrderItemRequest  `json:"orderItems"`
	ShippingInfo  domain.ShippingInfo `json:"shippingInfo"`
	ItemsPrice    float64             `json:"itemsPrice"`
	TaxPrice      float64             `json:"taxPrice"`
	ShippingPrice float64             `json:"shippingPrice"`
	TotalPrice    float64             `json:"totalPrice"`
	PaymentInfo   domain.PaymentInfo  `json:"paymentInfo"`
}

type OrderStatusRequest struct {
	Status string `json:"status"`
}
