package repository

import (
	"context"

	"github.com/noyo-commerce/storefront-service/internal/domain"
	"github.com/noyo-commerce/storefront-service/internal/query"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error)
	GetProducts(ctx context.Context, pred query.Predicate, page *query.Page) (data []domain.Product, err error)
	CountProducts(ctx context.Context, pred query.Predicate) (total int64, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	GetProductsByIDs(ctx context.Context, ids []primitive.ObjectID) (data []domain.Product, err error)
	FilterExistingIDs(ctx context.Context, ids []primitive.ObjectID) (existing []primitive.ObjectID, err error)
	UpdateProduct(ctx context.Context, data domain.Product) (err error)
	DeleteProduct(ctx context.Context, id string) (err error)
}

type UserRepository interface {
	AddUser(ctx context.Context, data domain.User) (id primitive.ObjectID, err error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (user domain.User, err error)
	GetUserByEmail(ctx context.Context, email string) (user domain.User, err error)
	GetUsersWithReferences(ctx context.Context) (users []domain.User, err error)
	SetCart(ctx context.Context, userID primitive.ObjectID, cart domain.Cart) (err error)
	SetWishlist(ctx context.Context, userID primitive.ObjectID, wishlist []primitive.ObjectID) (err error)
	AddToWishlist(ctx context.Context, userID primitive.ObjectID, productID primitive.ObjectID) (err error)
	RemoveFromWishlist(ctx context.Context, userID primitive.ObjectID, productID primitive.ObjectID) (err error)
}

type OrderRepository interface {
	AddOrder(ctx context.Context, data domain.Order) (id primitive.ObjectID, err error)
	GetOrderByID(ctx context.Context, id string) (order domain.Order, err error)
	GetOrdersByUser(ctx context.Context, userID primitive.ObjectID) (orders []domain.Order, err error)
	GetOrders(ctx context.Context, pred query.Predicate, page *query.Page) (orders []domain.Order, err error)
	CountOrders(ctx context.Context, pred query.Predicate) (total int64, err error)
	SetOrderStatus(ctx context.Context, id string, status string) (err error)
	SetOrderDelivered(ctx context.Context, id string, settlement domain.PaymentInfo) (err error)
}
