package service

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"net/url"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/noyo-commerce/storefront-service/config"
	"github.com/noyo-commerce/storefront-service/internal/domain"
	"github.com/noyo-commerce/storefront-service/internal/dto"
	"github.com/noyo-commerce/storefront-service/internal/query"
	"github.com/noyo-commerce/storefront-service/internal/repository"
	"github.com/noyo-commerce/storefront-service/pkg/errs"
	"github.com/noyo-commerce/storefront-service/pkg/response"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const productCacheTTL = 10 * time.Minute

type ProductServiceImpl struct {
	repo          repository.ProductRepository
	imageStore    ImageStore
	cache         *redis.Client
	kafkaProducer *kafka.Conn
	config        config.Config
}

func CreateProductService(repo repository.ProductRepository, imageStore ImageStore, cache *redis.Client, kafkaProducer *kafka.Conn, config config.Config) ProductService {
	return &ProductServiceImpl{
		repo:          repo,
		imageStore:    imageStore,
		cache:         cache,
		kafkaProducer: kafkaProducer,
		config:        config,
	}
}

// GetActiveProducts is the public listing: filter plus keyword, no
// windowing.
func (s *ProductServiceImpl) GetActiveProducts(ctx context.Context, params url.Values) (products []domain.Product, err error) {
	pred, err := query.Compile(params)
	if err != nil {
		return
	}
	pred = query.WithKeyword(pred, params.Get("keyword"), query.ProductKeywordFields)

	products, err = s.repo.GetProducts(ctx, pred, nil)
	if err != nil {
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context, params url.Values) (products []domain.Product, meta response.PaginationMeta, err error) {
	pred, err := query.Compile(params)
	if err != nil {
		return
	}
	pred = query.WithKeyword(pred, params.Get("keyword"), query.ProductKeywordFields)
	page := query.PlanPage(params.Get("page"), params.Get("limit"))

	products, err = s.repo.GetProducts(ctx, pred, &page)
	if err != nil {
		return
	}
	if products == nil {
		products = []domain.Product{}
	}

	// The count runs against the same predicate, before windowing.
	total, err := s.repo.CountProducts(ctx, pred)
	if err != nil {
		return
	}

	meta = response.PaginationMeta{
		Count:        len(products),
		Total:        total,
		TotalPages:   page.TotalPages(total),
		CurrentPage:  page.Number,
		ItemsPerPage: page.Limit,
	}
	return products, meta, nil
}

func (s *ProductServiceImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	if s.cache != nil {
		cached, cacheErr := s.cache.Get(ctx, productCacheKey(id)).Result()
		if cacheErr == nil {
			if err = json.Unmarshal([]byte(cached), &product); err == nil {
				return product, nil
			}
		}
	}

	product, err = s.repo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	if s.cache != nil {
		if encoded, marshalErr := json.Marshal(product); marshalErr == nil {
			if cacheErr := s.cache.Set(ctx, productCacheKey(id), encoded, productCacheTTL).Err(); cacheErr != nil {
				log.Ctx(ctx).Warn().Err(cacheErr).Str("component", "GetProductByID").Msg("failed to cache product")
			}
		}
	}

	return product, nil
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, payload dto.ProductRequest, images []*multipart.FileHeader, userID string) (product domain.Product, err error) {
	if err = validateProductPayload(payload); err != nil {
		return
	}

	owner, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return product, errs.ErrNotLoggedIn
	}

	uploaded, err := s.uploadImages(ctx, images)
	if err != nil {
		return
	}

	product = domain.Product{
		Name:        payload.Name,
		Description: payload.Description,
		Price:       payload.Price,
		Category:    payload.Category,
		Brand:       payload.Brand,
		SkinType:    payload.SkinType,
		Status:      payload.Status,
		Stock:       payload.Stock,
		Images:      uploaded,
		User:        owner,
	}
	if product.Status == "" {
		product.Status = "Active"
	}

	id, err := s.repo.AddProduct(ctx, product)
	if err != nil {
		return
	}
	product.ID = id

	s.publishEvent(ctx, "product_created", product)

	return product, nil
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, payload dto.ProductRequest, images []*multipart.FileHeader, retainedImageIDs []string) (product domain.Product, err error) {
	existing, err := s.repo.GetProductByID(ctx, payload.ID)
	if err != nil {
		return
	}

	updated := existing
	updated.Name = payload.Name
	updated.Description = payload.Description
	updated.Price = payload.Price
	updated.Category = payload.Category
	updated.Brand = payload.Brand
	updated.SkinType = payload.SkinType
	updated.Stock = payload.Stock
	if payload.Status != "" {
		updated.Status = payload.Status
	}

	if err = validateProductPayload(dto.ProductRequest{
		Name:        updated.Name,
		Description: updated.Description,
		Price:       updated.Price,
		Category:    updated.Category,
		Brand:       updated.Brand,
		SkinType:    updated.SkinType,
		Stock:       updated.Stock,
	}); err != nil {
		return
	}

	if len(images) > 0 {
		retained := make(map[string]bool, len(retainedImageIDs))
		for _, id := range retainedImageIDs {
			retained[id] = true
		}

		// Superseded remote images go first, then the replacements.
		kept := make([]domain.ProductImage, 0, len(existing.Images))
		for _, image := range existing.Images {
			if retained[image.PublicID] {
				kept = append(kept, image)
				continue
			}
			if destroyErr := s.imageStore.Destroy(image.PublicID); destroyErr != nil {
				log.Ctx(ctx).Warn().Err(destroyErr).Str("component", "UpdateProduct").Str("publicId", image.PublicID).Msg("failed to delete superseded image")
			}
		}

		uploaded, uploadErr := s.uploadImages(ctx, images)
		if uploadErr != nil {
			return product, uploadErr
		}
		updated.Images = append(kept, uploaded...)
	}

	if err = s.repo.UpdateProduct(ctx, updated); err != nil {
		return
	}

	s.invalidateCache(ctx, payload.ID)
	s.publishEvent(ctx, "product_updated", updated)

	return updated, nil
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	// Remote images first, then the document.
	for _, image := range product.Images {
		if destroyErr := s.imageStore.Destroy(image.PublicID); destroyErr != nil {
			log.Ctx(ctx).Warn().Err(destroyErr).Str("component", "DeleteProduct").Str("publicId", image.PublicID).Msg("failed to delete image")
		}
	}

	if err = s.repo.DeleteProduct(ctx, id); err != nil {
		return
	}

	s.invalidateCache(ctx, id)
	s.publishEvent(ctx, "product_deleted", product)

	return nil
}

func (s *ProductServiceImpl) uploadImages(ctx context.Context, images []*multipart.FileHeader) ([]domain.ProductImage, error) {
	uploaded := make([]domain.ProductImage, 0, len(images))
	for _, header := range images {
		file, err := header.Open()
		if err != nil {
			return nil, errs.ErrClient
		}

		image, err := s.imageStore.Upload(header.Filename, file)
		file.Close()
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "uploadImages").Msg("")
			return nil, errs.ErrInternalServer
		}

		uploaded = append(uploaded, image)
	}
	return uploaded, nil
}

func (s *ProductServiceImpl) invalidateCache(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, productCacheKey(id)).Err(); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "invalidateCache").Msg("failed to invalidate product cache")
	}
}

func (s *ProductServiceImpl) publishEvent(ctx context.Context, eventType string, data interface{}) {
	if s.kafkaProducer == nil {
		return
	}

	jsonMsg, err := json.Marshal(dto.KafkaMessage{EventType: eventType, Data: data})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publishEvent").Msg("")
		return
	}

	if _, err = s.kafkaProducer.WriteMessages(kafka.Message{Value: jsonMsg}); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publishEvent").Str("eventType", eventType).Msg("")
	}
}

func productCacheKey(id string) string {
	return "product:" + id
}

func validateProductPayload(payload dto.ProductRequest) error {
	if payload.Name == "" || payload.Description == "" || payload.Category == "" || payload.Brand == "" {
		return errs.ErrClient
	}
	if payload.Price < 0 || payload.Stock < 0 {
		return errs.ErrClient
	}
	if len(payload.SkinType) == 0 {
		return errs.ErrClient
	}
	for _, st := range payload.SkinType {
		if !domain.IsValidSkinType(st) {
			return errs.ErrClient
		}
	}
	return nil
}
