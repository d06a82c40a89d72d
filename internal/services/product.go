package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/henriquedps/uzzestore/internal/cache"
	apperrors "github.com/henriquedps/uzzestore/internal/errors"
	"github.com/henriquedps/uzzestore/internal/models"
	repository "github.com/henriquedps/uzzestore/internal/repositories"
)

const productCacheTTL = 2 * time.Minute

type ProductService interface {
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	ListProducts(ctx context.Context, page, pageSize int) ([]*models.Product, int, error)
}

type productService struct {
	repo  repository.ProductRepository
	cache cache.Cache
}

func NewProductService(repo repository.ProductRepository, c cache.Cache) ProductService {
	return &productService{repo: repo, cache: c}
}

func (s *productService) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {

	cacheKey := cache.Key(cache.ProductKeyPrefix, strconv.FormatInt(id, 10))

	if s.cache != nil {
		var cached models.Product

		if found, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && found {
			return &cached, nil
		}
	}

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, apperrors.NotFoundError("Product not found").WithError(err)
		}

		return nil, apperrors.StorageError("Failed to fetch product").WithError(err)
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, cacheKey, product, productCacheTTL)
	}

	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, page, pageSize int) ([]*models.Product, int, error) {

	if page < 1 {
		page = 1
	}

	if pageSize < 1 || pageSize > 50 {
		pageSize = 20
	}

	products, total, err := s.repo.ListProducts(ctx, page, pageSize)
	if err != nil {
		return nil, 0, apperrors.StorageError("Failed to fetch products").WithError(err)
	}

	return products, total, nil
}
