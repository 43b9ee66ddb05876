package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/noyo-commerce/storefront-service/config"
	"github.com/noyo-commerce/storefront-service/internal/domain"
	"github.com/noyo-commerce/storefront-service/internal/dto"
	"github.com/noyo-commerce/storefront-service/internal/query"
	"github.com/noyo-commerce/storefront-service/internal/repository"
	"github.com/noyo-commerce/storefront-service/pkg/errs"
	"github.com/noyo-commerce/storefront-service/pkg/response"
	"github.com/noyo-commerce/storefront-service/pkg/utils"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gopkg.in/gomail.v2"
)

type OrderServiceImpl struct {
	repo          repository.OrderRepository
	userRepo      repository.UserRepository
	kafkaProducer *kafka.Conn
	config        config.Config
}

func CreateOrderService(repo repository.OrderRepository, userRepo repository.UserRepository, kafkaProducer *kafka.Conn, config config.Config) OrderService {
	return &OrderServiceImpl{
		repo:          repo,
		userRepo:      userRepo,
		kafkaProducer: kafkaProducer,
		config:        config,
	}
}

// AddOrder snapshots the submitted line items into a new order. The
// order insert must be durable before the cart is cleared; a failed
// cart clear is logged and reconciled later, never rolled back.
func (s *OrderServiceImpl) AddOrder(ctx context.Context, userID string, payload dto.OrderRequest) (order domain.Order, err error) {
	owner, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return order, errs.ErrNotLoggedIn
	}

	if err = validateOrderPayload(payload); err != nil {
		return
	}

	receiptNumber, err := uuid.NewV7()
	if err != nil {
		return order, fmt.Errorf("error generating receipt number: %v", err)
	}

	items := make([]domain.OrderItem, 0, len(payload.OrderItems))
	for _, item := range payload.OrderItems {
		productID, idErr := primitive.ObjectIDFromHex(item.Product)
		if idErr != nil {
			return order, errs.ErrClient
		}
		items = append(items, domain.OrderItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Image:    item.Image,
			Price:    item.Price,
			Product:  productID,
		})
	}

	now := time.Now()
	order = domain.Order{
		ReceiptNumber: receiptNumber.String(),
		OrderItems:    items,
		ShippingInfo:  payload.ShippingInfo,
		ItemsPrice:    payload.ItemsPrice,
		TaxPrice:      payload.TaxPrice,
		ShippingPrice: payload.ShippingPrice,
		TotalPrice:    payload.TotalPrice,
		PaymentInfo:   payload.PaymentInfo,
		OrderStatus:   domain.OrderStatusProcessing,
		PaidAt:        &now,
		User:          owner,
	}

	id, err := s.repo.AddOrder(ctx, order)
	if err != nil {
		return
	}
	order.ID = id

	if clearErr := s.userRepo.SetCart(ctx, owner, domain.Cart{}); clearErr != nil {
		log.Ctx(ctx).Error().Err(clearErr).Str("component", "AddOrder").Str("orderId", id.Hex()).Msg("order created but cart clear failed")
	}

	s.publishOrderCreated(ctx, order)
	s.sendConfirmationEmail(ctx, order)

	return order, nil
}

func (s *OrderServiceImpl) GetMyOrders(ctx context.Context, userID string) (orders []domain.Order, err error) {
	owner, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return orders, errs.ErrNotLoggedIn
	}

	orders, err = s.repo.GetOrdersByUser(ctx, owner)
	if err != nil {
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

func (s *OrderServiceImpl) GetOrderByID(ctx context.Context, id string) (order domain.Order, err error) {
	return s.repo.GetOrderByID(ctx, id)
}

func (s *OrderServiceImpl) GetOrders(ctx context.Context, params url.Values) (orders []domain.Order, meta response.PaginationMeta, err error) {
	pred, err := query.Compile(params)
	if err != nil {
		return
	}
	page := query.PlanPage(params.Get("page"), params.Get("limit"))

	orders, err = s.repo.GetOrders(ctx, pred, &page)
	if err != nil {
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}

	total, err := s.repo.CountOrders(ctx, pred)
	if err != nil {
		return
	}

	meta = response.PaginationMeta{
		Count:        len(orders),
		Total:        total,
		TotalPages:   page.TotalPages(total),
		CurrentPage:  page.Number,
		ItemsPerPage: page.Limit,
	}
	return orders, meta, nil
}

// UpdateOrderStatus applies a status transition. Delivered carries the
// cash-on-delivery settlement side effects in the same write. The
// status vocabulary is validated; direction is not, matching the
// documented two-transition contract.
func (s *OrderServiceImpl) UpdateOrderStatus(ctx context.Context, id string, payload dto.OrderStatusRequest) (order domain.Order, err error) {
	if !domain.IsValidOrderStatus(payload.Status) {
		return order, errs.ErrInvalidOrderStatus
	}

	if _, err = s.repo.GetOrderByID(ctx, id); err != nil {
		return
	}

	if payload.Status == domain.OrderStatusDelivered {
		err = s.repo.SetOrderDelivered(ctx, id, domain.SettledCashOnDelivery)
	} else {
		err = s.repo.SetOrderStatus(ctx, id, payload.Status)
	}
	if err != nil {
		return
	}

	return s.repo.GetOrderByID(ctx, id)
}

func (s *OrderServiceImpl) publishOrderCreated(ctx context.Context, order domain.Order) {
	if s.kafkaProducer == nil {
		return
	}

	jsonMsg, err := json.Marshal(dto.KafkaMessage{EventType: "order_created", Data: order})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publishOrderCreated").Msg("")
		return
	}

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		_, err = s.kafkaProducer.WriteMessages(kafka.Message{Key: []byte(order.ReceiptNumber), Value: jsonMsg})
		if err == nil {
			return
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "publishOrderCreated").Msgf("failed to write message (attempt %d/%d)", i+1, maxRetries)
		time.Sleep(time.Second * time.Duration(i+1))
	}
}

func (s *OrderServiceImpl) sendConfirmationEmail(ctx context.Context, order domain.Order) {
	smtp := s.config.SMTPConfig
	if smtp.Sender == "" || smtp.Host == "" {
		return
	}

	user, err := s.userRepo.GetUserByID(ctx, order.User)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "sendConfirmationEmail").Msg("")
		return
	}

	message := gomail.NewMessage()
	message.SetHeader("From", smtp.Sender)
	message.SetHeader("To", user.Email)
	message.SetHeader("Subject", fmt.Sprintf("Order confirmation %s", order.ReceiptNumber))
	message.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nYour order %s has been placed. Total: %.2f.\n\nThank you for shopping with us.",
		user.Name, order.ReceiptNumber, order.TotalPrice,
	))

	if err := utils.SendEmail(message, smtp.Sender, smtp.Password, smtp.Host, smtp.Port); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "sendConfirmationEmail").Msg("failed to send order confirmation")
	}
}

func validateOrderPayload(payload dto.OrderRequest) error {
	if len(payload.OrderItems) == 0 {
		return errs.ErrClient
	}
	for _, item := range payload.OrderItems {
		if item.Quantity < 1 || item.Price < 0 {
			return errs.ErrClient
		}
	}
	if payload.ItemsPrice < 0 || payload.TaxPrice < 0 || payload.ShippingPrice < 0 || payload.TotalPrice < 0 {
		return errs.ErrClient
	}
	return nil
}
