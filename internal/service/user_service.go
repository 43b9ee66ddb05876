package service

import (
	"context"

	"github.com/noyo-commerce/storefront-service/internal/domain"
	"github.com/noyo-commerce/storefront-service/internal/dto"
	"github.com/noyo-commerce/storefront-service/internal/repository"
	"github.com/noyo-commerce/storefront-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserServiceImpl struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
}

func CreateUserService(userRepo repository.UserRepository, productRepo repository.ProductRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo, productRepo: productRepo}
}

func (s *UserServiceImpl) GetCurrentUser(ctx context.Context, userID string) (user dto.UserResponse, err error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return user, errs.ErrNotLoggedIn
	}

	record, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return
	}

	return dto.UserResponse{
		ID:    record.ID.Hex(),
		Name:  record.Name,
		Email: record.Email,
		Role:  record.Role,
	}, nil
}

// GetCart hydrates each line with a catalog snapshot for display.
func (s *UserServiceImpl) GetCart(ctx context.Context, userID string) (items []dto.CartItemResponse, err error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return
	}

	products, err := s.productRepo.GetProductsByIDs(ctx, user.Cart.ProductIDs())
	if err != nil {
		return
	}

	byID := make(map[primitive.ObjectID]domain.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	items = make([]dto.CartItemResponse, 0, len(user.Cart))
	for _, line := range user.Cart {
		product, ok := byID[line.Product]
		if !ok {
			// Dangling reference, skipped here and pruned by the
			// reconciler.
			continue
		}
		items = append(items, dto.CartItemResponse{
			Product: dto.CartProduct{
				ID:       product.ID.Hex(),
				Name:     product.Name,
				Price:    product.Price,
				Images:   product.Images,
				Category: product.Category,
				Brand:    product.Brand,
				SkinType: product.SkinType,
			},
			Quantity: line.Quantity,
		})
	}
	return items, nil
}

// AddToCart merges the quantity into the user's cart. The whole
// operation is one load plus one cart write; concurrent writes to the
// same cart are last-write-wins.
func (s *UserServiceImpl) AddToCart(ctx context.Context, userID string, payload dto.CartRequest) (cart domain.Cart, err error) {
	productID, err := primitive.ObjectIDFromHex(payload.ProductID)
	if err != nil {
		return cart, errs.ErrProductNotFound
	}

	if _, err = s.productRepo.GetProductByID(ctx, payload.ProductID); err != nil {
		return
	}

	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return
	}

	cart = user.Cart.Add(productID, payload.Quantity)
	if err = s.userRepo.SetCart(ctx, user.ID, cart); err != nil {
		return
	}
	return cart, nil
}

func (s *UserServiceImpl) RemoveFromCart(ctx context.Context, userID string, productID string) (cart domain.Cart, err error) {
	id, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return cart, errs.ErrProductNotFound
	}

	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return
	}

	cart = user.Cart.Remove(id)
	if err = s.userRepo.SetCart(ctx, user.ID, cart); err != nil {
		return
	}
	return cart, nil
}

func (s *UserServiceImpl) DecreaseCartItem(ctx context.Context, userID string, productID string) (cart domain.Cart, err error) {
	id, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return cart, errs.ErrProductNotFound
	}

	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return
	}

	cart, found := user.Cart.Decrease(id)
	if !found {
		return cart, errs.ErrCartItemNotFound
	}

	if err = s.userRepo.SetCart(ctx, user.ID, cart); err != nil {
		return
	}
	return cart, nil
}

func (s *UserServiceImpl) GetWishlist(ctx context.Context, userID string) (products []domain.Product, err error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return
	}

	products, err = s.productRepo.GetProductsByIDs(ctx, user.Wishlist)
	if err != nil {
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

func (s *UserServiceImpl) AddToWishlist(ctx context.Context, userID string, payload dto.WishlistRequest) (err error) {
	productID, err := primitive.ObjectIDFromHex(payload.ProductID)
	if err != nil {
		return errs.ErrProductNotFound
	}

	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return errs.ErrNotLoggedIn
	}

	return s.userRepo.AddToWishlist(ctx, id, productID)
}

func (s *UserServiceImpl) RemoveFromWishlist(ctx context.Context, userID string, productID string) (err error) {
	pid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return errs.ErrProductNotFound
	}

	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return errs.ErrNotLoggedIn
	}

	return s.userRepo.RemoveFromWishlist(ctx, id, pid)
}

// PruneDanglingReferences drops cart lines and wishlist entries whose
// product no longer exists. Product deletion leaves these behind; a
// scheduled job calls this to reconcile.
func (s *UserServiceImpl) PruneDanglingReferences(ctx context.Context) (err error) {
	users, err := s.userRepo.GetUsersWithReferences(ctx)
	if err != nil {
		return
	}

	referenced := make(map[primitive.ObjectID]bool)
	var ids []primitive.ObjectID
	for _, user := range users {
		for _, line := range user.Cart {
			if !referenced[line.Product] {
				referenced[line.Product] = true
				ids = append(ids, line.Product)
			}
		}
		for _, pid := range user.Wishlist {
			if !referenced[pid] {
				referenced[pid] = true
				ids = append(ids, pid)
			}
		}
	}
	if len(ids) == 0 {
		return nil
	}

	existingIDs, err := s.productRepo.FilterExistingIDs(ctx, ids)
	if err != nil {
		return
	}
	existing := make(map[primitive.ObjectID]bool, len(existingIDs))
	for _, id := range existingIDs {
		existing[id] = true
	}

	for _, user := range users {
		cart := make(domain.Cart, 0, len(user.Cart))
		for _, line := range user.Cart {
			if existing[line.Product] {
				cart = append(cart, line)
			}
		}
		if len(cart) != len(user.Cart) {
			if setErr := s.userRepo.SetCart(ctx, user.ID, cart); setErr != nil {
				log.Ctx(ctx).Error().Err(setErr).Str("component", "PruneDanglingReferences").Msg("")
			}
		}

		wishlist := make([]primitive.ObjectID, 0, len(user.Wishlist))
		for _, pid := range user.Wishlist {
			if existing[pid] {
				wishlist = append(wishlist, pid)
			}
		}
		if len(wishlist) != len(user.Wishlist) {
			if setErr := s.userRepo.SetWishlist(ctx, user.ID, wishlist); setErr != nil {
				log.Ctx(ctx).Error().Err(setErr).Str("component", "PruneDanglingReferences").Msg("")
			}
		}
	}

	return nil
}

func (s *UserServiceImpl) loadUser(ctx context.Context, userID string) (user domain.User, err error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return user, errs.ErrNotLoggedIn
	}
	return s.userRepo.GetUserByID(ctx, id)
}
