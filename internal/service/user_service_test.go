package service

import (
	"context"
	"testing"

	"github.com/noyo-commerce/storefront-service/internal/domain"
	"github.com/noyo-commerce/storefront-service/internal/dto"
	"github.com/noyo-commerce/storefront-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAddToCartMergesQuantities(t *testing.T) {
	product := domain.Product{ID: primitive.NewObjectID(), Name: "Vitamin C Serum", Price: 25}
	user := domain.User{ID: primitive.NewObjectID()}
	userRepo := newFakeUserRepository(user)
	svc := CreateUserService(userRepo, newFakeProductRepository(product))

	payload := dto.CartRequest{ProductID: product.ID.Hex(), Quantity: 2}

	_, err := svc.AddToCart(context.Background(), user.ID.Hex(), payload)
	require.NoError(t, err)

	payload.Quantity = 3
	cart, err := svc.AddToCart(context.Background(), user.ID.Hex(), payload)
	require.NoError(t, err)

	assert.Len(t, cart, 1)
	assert.Equal(t, int64(5), cart.Quantity(product.ID))

	persisted, err := userRepo.GetUserByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), persisted.Cart.Quantity(product.ID))
}

func TestAddToCartUnknownProduct(t *testing.T) {
	user := domain.User{ID: primitive.NewObjectID()}
	svc := CreateUserService(newFakeUserRepository(user), newFakeProductRepository())

	payload := dto.CartRequest{ProductID: primitive.NewObjectID().Hex(), Quantity: 1}

	_, err := svc.AddToCart(context.Background(), user.ID.Hex(), payload)
	assert.ErrorIs(t, err, errs.ErrProductNotFound)
}

func TestDecreaseCartItemDropsLineAtOne(t *testing.T) {
	product := domain.Product{ID: primitive.NewObjectID()}
	user := domain.User{ID: primitive.NewObjectID(), Cart: domain.Cart{{Product: product.ID, Quantity: 1}}}
	svc := CreateUserService(newFakeUserRepository(user), newFakeProductRepository(product))

	cart, err := svc.DecreaseCartItem(context.Background(), user.ID.Hex(), product.ID.Hex())
	require.NoError(t, err)

	assert.Empty(t, cart)
}

func TestDecreaseCartItemNotInCart(t *testing.T) {
	product := domain.Product{ID: primitive.NewObjectID()}
	user := domain.User{ID: primitive.NewObjectID()}
	svc := CreateUserService(newFakeUserRepository(user), newFakeProductRepository(product))

	_, err := svc.DecreaseCartItem(context.Background(), user.ID.Hex(), product.ID.Hex())
	assert.ErrorIs(t, err, errs.ErrCartItemNotFound)
}

func TestRemoveFromCartAbsentProduct(t *testing.T) {
	product := domain.Product{ID: primitive.NewObjectID()}
	user := domain.User{ID: primitive.NewObjectID(), Cart: domain.Cart{{Product: product.ID, Quantity: 2}}}
	svc := CreateUserService(newFakeUserRepository(user), newFakeProductRepository(product))

	cart, err := svc.RemoveFromCart(context.Background(), user.ID.Hex(), primitive.NewObjectID().Hex())
	require.NoError(t, err)

	assert.Equal(t, int64(2), cart.Quantity(product.ID))
}

func TestGetCartSkipsDanglingReferences(t *testing.T) {
	product := domain.Product{ID: primitive.NewObjectID(), Name: "Clay Mask"}
	deleted := primitive.NewObjectID()
	user := domain.User{ID: primitive.NewObjectID(), Cart: domain.Cart{
		{Product: product.ID, Quantity: 1},
		{Product: deleted, Quantity: 4},
	}}
	svc := CreateUserService(newFakeUserRepository(user), newFakeProductRepository(product))

	items, err := svc.GetCart(context.Background(), user.ID.Hex())
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, product.ID.Hex(), items[0].Product.ID)
}

func TestAddToWishlistIsIdempotent(t *testing.T) {
	product := domain.Product{ID: primitive.NewObjectID()}
	user := domain.User{ID: primitive.NewObjectID()}
	userRepo := newFakeUserRepository(user)
	svc := CreateUserService(userRepo, newFakeProductRepository(product))

	payload := dto.WishlistRequest{ProductID: product.ID.Hex()}

	require.NoError(t, svc.AddToWishlist(context.Background(), user.ID.Hex(), payload))
	require.NoError(t, svc.AddToWishlist(context.Background(), user.ID.Hex(), payload))

	persisted, err := userRepo.GetUserByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Len(t, persisted.Wishlist, 1)
}

func TestRemoveFromWishlistAbsentIsNoOp(t *testing.T) {
	product := domain.Product{ID: primitive.NewObjectID()}
	user := domain.User{ID: primitive.NewObjectID(), Wishlist: []primitive.ObjectID{product.ID}}
	userRepo := newFakeUserRepository(user)
	svc := CreateUserService(userRepo, newFakeProductRepository(product))

	require.NoError(t, svc.RemoveFromWishlist(context.Background(), user.ID.Hex(), primitive.NewObjectID().Hex()))

	persisted, err := userRepo.GetUserByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Len(t, persisted.Wishlist, 1)
}

func TestPruneDanglingReferences(t *testing.T) {
	product := domain.Product{ID: primitive.NewObjectID()}
	deleted := primitive.NewObjectID()
	user := domain.User{
		ID:       primitive.NewObjectID(),
		Cart:     domain.Cart{{Product: product.ID, Quantity: 1}, {Product: deleted, Quantity: 2}},
		Wishlist: []primitive.ObjectID{product.ID, deleted},
	}
	userRepo := newFakeUserRepository(user)
	svc := CreateUserService(userRepo, newFakeProductRepository(product))

	require.NoError(t, svc.PruneDanglingReferences(context.Background()))

	persisted, err := userRepo.GetUserByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Cart{{Product: product.ID, Quantity: 1}}, persisted.Cart)
	assert.Equal(t, []primitive.ObjectID{product.ID}, persisted.Wishlist)
}
