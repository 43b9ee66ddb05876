package repository

import (
	"context"
	"time"

	"github.com/noyo-commerce/storefront-service/internal/domain"
	"github.com/noyo-commerce/storefront-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoDBUserRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewUserRepository(db *mongo.Database) UserRepository {
	return &MongoDBUserRepositoryImpl{db: db}
}

func (r *MongoDBUserRepositoryImpl) AddUser(ctx context.Context, data domain.User) (id primitive.ObjectID, err error) {
	data.CreatedAt = time.Now()
	data.UpdatedAt = data.CreatedAt
	if data.Cart == nil {
		data.Cart = domain.Cart{}
	}
	if data.Wishlist == nil {
		data.Wishlist = []primitive.ObjectID{}
	}

	result, err := r.db.Collection("users").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddUser").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBUserRepositoryImpl) GetUserByID(ctx context.Context, id primitive.ObjectID) (user domain.User, err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	err = r.db.Collection("users").FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return user, errs.ErrUserNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUserByID").Msg("")

		return user, err
	}
	return user, nil
}

func (r *MongoDBUserRepositoryImpl) GetUserByEmail(ctx context.Context, email string) (user domain.User, err error) {
	filter := bson.D{{Key: "email", Value: email}}

	err = r.db.Collection("users").FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return user, errs.ErrUserNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUserByEmail").Msg("")

		return user, err
	}
	return user, nil
}

// GetUsersWithReferences returns users whose embedded cart or wishlist
// is non-empty. The reference reconciler scans these.
func (r *MongoDBUserRepositoryImpl) GetUsersWithReferences(ctx context.Context) (users []domain.User, err error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"cart": bson.M{"$ne": bson.A{}}},
		bson.M{"wishlist": bson.M{"$ne": bson.A{}}},
	}}

	cursor, err := r.db.Collection("users").Find(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUsersWithReferences").Msg("")
		return
	}

	if err = cursor.All(ctx, &users); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUsersWithReferences").Msg("")
		return
	}

	return users, nil
}

// SetCart persists the recomputed cart as a single write on the owning
// user document.
func (r *MongoDBUserRepositoryImpl) SetCart(ctx context.Context, userID primitive.ObjectID, cart domain.Cart) (err error) {
	if cart == nil {
		cart = domain.Cart{}
	}

	filter := bson.D{{Key: "_id", Value: userID}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "cart", Value: cart},
		{Key: "updatedAt", Value: time.Now()},
	}}}

	result, err := r.db.Collection("users").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SetCart").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrUserNotFound
	}

	return nil
}

func (r *MongoDBUserRepositoryImpl) SetWishlist(ctx context.Context, userID primitive.ObjectID, wishlist []primitive.ObjectID) (err error) {
	if wishlist == nil {
		wishlist = []primitive.ObjectID{}
	}

	filter := bson.D{{Key: "_id", Value: userID}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "wishlist", Value: wishlist},
		{Key: "updatedAt", Value: time.Now()},
	}}}

	result, err := r.db.Collection("users").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SetWishlist").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrUserNotFound
	}

	return nil
}

func (r *MongoDBUserRepositoryImpl) AddToWishlist(ctx context.Context, userID primitive.ObjectID, productID primitive.ObjectID) (err error) {
	filter := bson.D{{Key: "_id", Value: userID}}
	update := bson.D{{Key: "$addToSet", Value: bson.D{{Key: "wishlist", Value: productID}}}}

	result, err := r.db.Collection("users").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddToWishlist").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrUserNotFound
	}

	return nil
}

func (r *MongoDBUserRepositoryImpl) RemoveFromWishlist(ctx context.Context, userID primitive.ObjectID, productID primitive.ObjectID) (err error) {
	filter := bson.D{{Key: "_id", Value: userID}}
	update := bson.D{{Key: "$pull", Value: bson.D{{Key: "wishlist", Value: productID}}}}

	result, err := r.db.Collection("users").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "RemoveFromWishlist").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrUserNotFound
	}

	return nil
}
