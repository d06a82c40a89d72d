package service_test

import (
	"context"
	"testing"

	apperrors "github.com/henriquedps/uzzestore/internal/errors"
	"github.com/henriquedps/uzzestore/internal/models"
	repository "github.com/henriquedps/uzzestore/internal/repositories"
	service "github.com/henriquedps/uzzestore/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductService_GetProductByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Cache Miss Reads Storage And Fills The Cache", func(t *testing.T) {
		// Arrange
		mockRepo := NewMockProductRepository()
		mockCache := NewMockCache()
		svc := service.NewProductService(mockRepo, mockCache)

		mockCache.On("Get", ctx, "product:1", mock.AnythingOfType("*models.Product")).Return(false, nil).Once()
		mockRepo.On("GetProductByID", ctx, int64(1)).Return(testProduct(1, "29.90"), nil).Once()
		mockCache.On("Set", ctx, "product:1", mock.AnythingOfType("*models.Product"), mock.AnythingOfType("time.Duration")).
			Return(nil).Once()

		// Act
		product, err := svc.GetProductByID(ctx, 1)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(1), product.ID)
		mockCache.AssertExpectations(t)
	})

	t.Run("Cache Hit Skips Storage", func(t *testing.T) {
		// Arrange
		mockRepo := NewMockProductRepository()
		mockCache := NewMockCache()
		svc := service.NewProductService(mockRepo, mockCache)

		mockCache.On("Get", ctx, "product:1", mock.AnythingOfType("*models.Product")).
			Run(func(args mock.Arguments) {
				*args.Get(2).(*models.Product) = *testProduct(1, "29.90")
			}).Return(true, nil).Once()

		// Act
		product, err := svc.GetProductByID(ctx, 1)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Camiseta Básica", product.Name)
		mockRepo.AssertNotCalled(t, "GetProductByID", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Product", func(t *testing.T) {
		// Arrange
		mockRepo := NewMockProductRepository()
		svc := service.NewProductService(mockRepo, nil)

		mockRepo.On("GetProductByID", ctx, int64(99)).Return(nil, repository.ErrProductNotFound).Once()

		// Act
		_, err := svc.GetProductByID(ctx, 99)

		// Assert
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
	})
}

func TestProductService_ListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("Clamps Page And Page Size", func(t *testing.T) {
		// Arrange
		mockRepo := NewMockProductRepository()
		svc := service.NewProductService(mockRepo, nil)

		mockRepo.On("ListProducts", ctx, 1, 20).
			Return([]*models.Product{testProduct(1, "29.90")}, 1, nil).Once()

		// Act
		products, total, err := svc.ListProducts(ctx, -3, 500)

		// Assert
		require.NoError(t, err)
		assert.Len(t, products, 1)
		assert.Equal(t, 1, total)
		mockRepo.AssertExpectations(t)
	})
}
