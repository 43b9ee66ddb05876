package bootstrap

import (
	"context"
	"testing"

	"github.com/noyo-commerce/storefront-service/config"
	"github.com/noyo-commerce/storefront-service/internal/domain"
	"github.com/noyo-commerce/storefront-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepository struct {
	users map[string]domain.User
}

func (r *fakeUserRepository) AddUser(ctx context.Context, data domain.User) (primitive.ObjectID, error) {
	data.ID = primitive.NewObjectID()
	r.users[data.Email] = data
	return data.ID, nil
}

func (r *fakeUserRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	user, ok := r.users[email]
	if !ok {
		return domain.User{}, errs.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepository) GetUserByID(ctx context.Context, id primitive.ObjectID) (domain.User, error) {
	return domain.User{}, errs.ErrUserNotFound
}

func (r *fakeUserRepository) GetUsersWithReferences(ctx context.Context) ([]domain.User, error) {
	return nil, nil
}

func (r *fakeUserRepository) SetCart(ctx context.Context, userID primitive.ObjectID, cart domain.Cart) error {
	return nil
}

func (r *fakeUserRepository) SetWishlist(ctx context.Context, userID primitive.ObjectID, wishlist []primitive.ObjectID) error {
	return nil
}

func (r *fakeUserRepository) AddToWishlist(ctx context.Context, userID primitive.ObjectID, productID primitive.ObjectID) error {
	return nil
}

func (r *fakeUserRepository) RemoveFromWishlist(ctx context.Context, userID primitive.ObjectID, productID primitive.ObjectID) error {
	return nil
}

func TestEnsureAdminUserCreatesAccount(t *testing.T) {
	repo := &fakeUserRepository{users: map[string]domain.User{}}
	cfg := config.AdminConfig{Name: "Admin", Email: "admin@example.com", Password: "s3cret"}

	require.NoError(t, EnsureAdminUser(context.Background(), repo, cfg))

	user, err := repo.GetUserByEmail(context.Background(), cfg.Email)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(cfg.Password)))
}

func TestEnsureAdminUserIsIdempotent(t *testing.T) {
	repo := &fakeUserRepository{users: map[string]domain.User{}}
	cfg := config.AdminConfig{Name: "Admin", Email: "admin@example.com", Password: "s3cret"}

	require.NoError(t, EnsureAdminUser(context.Background(), repo, cfg))
	existing, err := repo.GetUserByEmail(context.Background(), cfg.Email)
	require.NoError(t, err)

	require.NoError(t, EnsureAdminUser(context.Background(), repo, cfg))
	after, err := repo.GetUserByEmail(context.Background(), cfg.Email)
	require.NoError(t, err)

	assert.Equal(t, existing.ID, after.ID)
}

func TestEnsureAdminUserSkipsWhenUnconfigured(t *testing.T) {
	repo := &fakeUserRepository{users: map[string]domain.User{}}

	require.NoError(t, EnsureAdminUser(context.Background(), repo, config.AdminConfig{}))
	assert.Empty(t, repo.users)
}
