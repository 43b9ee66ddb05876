package service

import (
	"context"
	"time"

	"github.com/noyo-commerce/storefront-service/internal/domain"
	"github.com/noyo-commerce/storefront-service/internal/query"
	"github.com/noyo-commerce/storefront-service/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeProductRepository struct {
	products map[primitive.ObjectID]domain.Product
}

func newFakeProductRepository(products ...domain.Product) *fakeProductRepository {
	repo := &fakeProductRepository{products: map[primitive.ObjectID]domain.Product{}}
	for _, product := range products {
		repo.products[product.ID] = product
	}
	return repo
}

func (r *fakeProductRepository) AddProduct(ctx context.Context, data domain.Product) (primitive.ObjectID, error) {
	data.ID = primitive.NewObjectID()
	r.products[data.ID] = data
	return data.ID, nil
}

func (r *fakeProductRepository) GetProducts(ctx context.Context, pred query.Predicate, page *query.Page) ([]domain.Product, error) {
	data := make([]domain.Product, 0, len(r.products))
	for _, product := range r.products {
		data = append(data, product)
	}
	return data, nil
}

func (r *fakeProductRepository) CountProducts(ctx context.Context, pred query.Predicate) (int64, error) {
	return int64(len(r.products)), nil
}

func (r *fakeProductRepository) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Product{}, errs.ErrProductNotFound
	}
	product, ok := r.products[oid]
	if !ok {
		return domain.Product{}, errs.ErrProductNotFound
	}
	return product, nil
}

func (r *fakeProductRepository) GetProductsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Product, error) {
	var data []domain.Product
	for _, id := range ids {
		if product, ok := r.products[id]; ok {
			data = append(data, product)
		}
	}
	return data, nil
}

func (r *fakeProductRepository) FilterExistingIDs(ctx context.Context, ids []primitive.ObjectID) ([]primitive.ObjectID, error) {
	var existing []primitive.ObjectID
	for _, id := range ids {
		if _, ok := r.products[id]; ok {
			existing = append(existing, id)
		}
	}
	return existing, nil
}

func (r *fakeProductRepository) UpdateProduct(ctx context.Context, data domain.Product) error {
	if _, ok := r.products[data.ID]; !ok {
		return errs.ErrProductNotFound
	}
	r.products[data.ID] = data
	return nil
}

func (r *fakeProductRepository) DeleteProduct(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrProductNotFound
	}
	if _, ok := r.products[oid]; !ok {
		return errs.ErrProductNotFound
	}
	delete(r.products, oid)
	return nil
}

type fakeUserRepository struct {
	users      map[primitive.ObjectID]domain.User
	setCartErr error
}

func newFakeUserRepository(users ...domain.User) *fakeUserRepository {
	repo := &fakeUserRepository{users: map[primitive.ObjectID]domain.User{}}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (r *fakeUserRepository) AddUser(ctx context.Context, data domain.User) (primitive.ObjectID, error) {
	data.ID = primitive.NewObjectID()
	r.users[data.ID] = data
	return data.ID, nil
}

func (r *fakeUserRepository) GetUserByID(ctx context.Context, id primitive.ObjectID) (domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return domain.User{}, errs.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return domain.User{}, errs.ErrUserNotFound
}

func (r *fakeUserRepository) GetUsersWithReferences(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	for _, user := range r.users {
		if len(user.Cart) > 0 || len(user.Wishlist) > 0 {
			users = append(users, user)
		}
	}
	return users, nil
}

func (r *fakeUserRepository) SetCart(ctx context.Context, userID primitive.ObjectID, cart domain.Cart) error {
	if r.setCartErr != nil {
		return r.setCartErr
	}
	user, ok := r.users[userID]
	if !ok {
		return errs.ErrUserNotFound
	}
	user.Cart = cart
	r.users[userID] = user
	return nil
}

func (r *fakeUserRepository) SetWishlist(ctx context.Context, userID primitive.ObjectID, wishlist []primitive.ObjectID) error {
	user, ok := r.users[userID]
	if !ok {
		return errs.ErrUserNotFound
	}
	user.Wishlist = wishlist
	r.users[userID] = user
	return nil
}

func (r *fakeUserRepository) AddToWishlist(ctx context.Context, userID primitive.ObjectID, productID primitive.ObjectID) error {
	user, ok := r.users[userID]
	if !ok {
		return errs.ErrUserNotFound
	}
	for _, id := range user.Wishlist {
		if id == productID {
			return nil
		}
	}
	user.Wishlist = append(user.Wishlist, productID)
	r.users[userID] = user
	return nil
}

func (r *fakeUserRepository) RemoveFromWishlist(ctx context.Context, userID primitive.ObjectID, productID primitive.ObjectID) error {
	user, ok := r.users[userID]
	if !ok {
		return errs.ErrUserNotFound
	}
	wishlist := make([]primitive.ObjectID, 0, len(user.Wishlist))
	for _, id := range user.Wishlist {
		if id != productID {
			wishlist = append(wishlist, id)
		}
	}
	user.Wishlist = wishlist
	r.users[userID] = user
	return nil
}

type fakeOrderRepository struct {
	orders map[primitive.ObjectID]domain.Order
}

func newFakeOrderRepository(orders ...domain.Order) *fakeOrderRepository {
	repo := &fakeOrderRepository{orders: map[primitive.ObjectID]domain.Order{}}
	for _, order := range orders {
		repo.orders[order.ID] = order
	}
	return repo
}

func (r *fakeOrderRepository) AddOrder(ctx context.Context, data domain.Order) (primitive.ObjectID, error) {
	data.ID = primitive.NewObjectID()
	r.orders[data.ID] = data
	return data.ID, nil
}

func (r *fakeOrderRepository) GetOrderByID(ctx context.Context, id string) (domain.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Order{}, errs.ErrOrderNotFound
	}
	order, ok := r.orders[oid]
	if !ok {
		return domain.Order{}, errs.ErrOrderNotFound
	}
	return order, nil
}

func (r *fakeOrderRepository) GetOrdersByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Order, error) {
	var orders []domain.Order
	for _, order := range r.orders {
		if order.User == userID {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (r *fakeOrderRepository) GetOrders(ctx context.Context, pred query.Predicate, page *query.Page) ([]domain.Order, error) {
	orders := make([]domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *fakeOrderRepository) CountOrders(ctx context.Context, pred query.Predicate) (int64, error) {
	return int64(len(r.orders)), nil
}

func (r *fakeOrderRepository) SetOrderStatus(ctx context.Context, id string, status string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrOrderNotFound
	}
	order, ok := r.orders[oid]
	if !ok {
		return errs.ErrOrderNotFound
	}
	order.OrderStatus = status
	r.orders[oid] = order
	return nil
}

func (r *fakeOrderRepository) SetOrderDelivered(ctx context.Context, id string, settlement domain.PaymentInfo) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrOrderNotFound
	}
	order, ok := r.orders[oid]
	if !ok {
		return errs.ErrOrderNotFound
	}
	now := time.Now()
	order.OrderStatus = domain.OrderStatusDelivered
	order.DeliveredAt = &now
	order.PaidAt = &now
	order.PaymentInfo = settlement
	r.orders[oid] = order
	return nil
}
