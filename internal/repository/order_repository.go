package repository

import (
	"context"
	"time"

	"github.com/noyo-commerce/storefront-service/internal/domain"
	"github.com/noyo-commerce/storefront-service/internal/query"
	"github.com/noyo-commerce/storefront-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBOrderRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewOrderRepository(db *mongo.Database) OrderRepository {
	return &MongoDBOrderRepositoryImpl{db: db}
}

func (r *MongoDBOrderRepositoryImpl) AddOrder(ctx context.Context, data domain.Order) (id primitive.ObjectID, err error) {
	data.CreatedAt = time.Now()
	data.UpdatedAt = data.CreatedAt

	result, err := r.db.Collection("orders").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddOrder").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBOrderRepositoryImpl) GetOrderByID(ctx context.Context, id string) (order domain.Order, err error) {
	orderID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return order, errs.ErrOrderNotFound
	}

	filter := bson.D{{Key: "_id", Value: orderID}}

	err = r.db.Collection("orders").FindOne(ctx, filter).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return order, errs.ErrOrderNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrderByID").Msg("")

		return order, err
	}
	return order, nil
}

func (r *MongoDBOrderRepositoryImpl) GetOrdersByUser(ctx context.Context, userID primitive.ObjectID) (orders []domain.Order, err error) {
	filter := bson.D{{Key: "user", Value: userID}}

	cursor, err := r.db.Collection("orders").Find(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrdersByUser").Msg("")
		return
	}

	if err = cursor.All(ctx, &orders); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrdersByUser").Msg("")
		return
	}

	return orders, nil
}

func (r *MongoDBOrderRepositoryImpl) GetOrders(ctx context.Context, pred query.Predicate, page *query.Page) (orders []domain.Order, err error) {
	var opts *options.FindOptions
	if page != nil {
		opts = options.Find().SetSkip(page.Skip()).SetLimit(int64(page.Limit))
	}

	cursor, err := r.db.Collection("orders").Find(ctx, pred.ToBSON(), opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrders").Msg("")
		return
	}

	if err = cursor.All(ctx, &orders); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrders").Msg("")
		return
	}

	return orders, nil
}

func (r *MongoDBOrderRepositoryImpl) CountOrders(ctx context.Context, pred query.Predicate) (total int64, err error) {
	total, err = r.db.Collection("orders").CountDocuments(ctx, pred.ToBSON())
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountOrders").Msg("")
	}
	return
}

func (r *MongoDBOrderRepositoryImpl) SetOrderStatus(ctx context.Context, id string, status string) (err error) {
	orderID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrOrderNotFound
	}

	filter := bson.D{{Key: "_id", Value: orderID}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "orderStatus", Value: status},
		{Key: "updatedAt", Value: time.Now()},
	}}}

	result, err := r.db.Collection("orders").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SetOrderStatus").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrOrderNotFound
	}

	return nil
}

// SetOrderDelivered applies the delivered transition and its settlement
// side effects as one write: status, deliveredAt, paidAt, and the
// payment marker land atomically.
func (r *MongoDBOrderRepositoryImpl) SetOrderDelivered(ctx context.Context, id string, settlement domain.PaymentInfo) (err error) {
	orderID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrOrderNotFound
	}

	now := time.Now()
	filter := bson.D{{Key: "_id", Value: orderID}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "orderStatus", Value: domain.OrderStatusDelivered},
		{Key: "deliveredAt", Value: now},
		{Key: "paidAt", Value: now},
		{Key: "paymentInfo", Value: settlement},
		{Key: "updatedAt", Value: now},
	}}}

	result, err := r.db.Collection("orders").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SetOrderDelivered").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrOrderNotFound
	}

	return nil
}
