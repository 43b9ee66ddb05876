package service

import (
	"context"
	"io"
	"mime/multipart"
	"net/url"

	"github.com/noyo-commerce/storefront-service/internal/domain"
	"github.com/noyo-commerce/storefront-service/internal/dto"
	"github.com/noyo-commerce/storefront-service/pkg/response"
)

// ImageStore is the external object storage products keep their image
// references in.
type ImageStore interface {
	Upload(filename string, content io.Reader) (domain.ProductImage, error)
	Destroy(publicID string) error
}

type ProductService interface {
	GetActiveProducts(ctx context.Context, params url.Values) (products []domain.Product, err error)
	GetProducts(ctx context.Context, params url.Values) (products []domain.Product, meta response.PaginationMeta, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	AddProduct(ctx context.Context, payload dto.ProductRequest, images []*multipart.FileHeader, userID string) (product domain.Product, err error)
	UpdateProduct(ctx context.Context, payload dto.ProductRequest, images []*multipart.FileHeader, retainedImageIDs []string) (product domain.Product, err error)
	DeleteProduct(ctx context.Context, id string) (err error)
}

type UserService interface {
	GetCurrentUser(ctx context.Context, userID string) (user dto.UserResponse, err error)
	GetCart(ctx context.Context, userID string) (items []dto.CartItemResponse, err error)
	AddToCart(ctx context.Context, userID string, payload dto.CartRequest) (cart domain.Cart, err error)
	RemoveFromCart(ctx context.Context, userID string, productID string) (cart domain.Cart, err error)
	DecreaseCartItem(ctx context.Context, userID string, productID string) (cart domain.Cart, err error)
	GetWishlist(ctx context.Context, userID string) (products []domain.Product, err error)
	AddToWishlist(ctx context.Context, userID string, payload dto.WishlistRequest) (err error)
	RemoveFromWishlist(ctx context.Context, userID string, productID string) (err error)
	PruneDanglingReferences(ctx context.Context) (err error)
}

type OrderService interface {
	AddOrder(ctx context.Context, userID string, payload dto.OrderRequest) (order domain.Order, err error)
	GetMyOrders(ctx context.Context, userID string) (orders []domain.Order, err error)
	GetOrderByID(ctx context.Context, id string) (order domain.Order, err error)
	GetOrders(ctx context.Context, params url.Values) (orders []domain.Order, meta response.PaginationMeta, err error)
	UpdateOrderStatus(ctx context.Context, id string, payload dto.OrderStatusRequest) (order domain.Order, err error)
}
