package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/henriquedps/uzzestore/internal/api/handlers"
	apperrors "github.com/henriquedps/uzzestore/internal/errors"
	"github.com/henriquedps/uzzestore/internal/models"
	"github.com/henriquedps/uzzestore/internal/testutils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProductHandler_GetProduct(t *testing.T) {

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockService := NewMockProductService()
		handler := handlers.NewProductHandler(mockService)

		product := &models.Product{ID: 1, Name: "Camiseta Básica", Price: decimal.RequireFromString("29.90")}

		mockService.On("GetProductByID", mock.Anything, int64(1)).Return(product, nil).Once()

		req := testutils.CreateTestRequestWithoutSession(http.MethodGet, "/api/v1/products/1", nil,
			map[string]string{"id": "1"})
		rec := httptest.NewRecorder()

		// Act
		handler.GetProduct().ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Non Numeric ID", func(t *testing.T) {
		// Arrange
		mockService := NewMockProductService()
		handler := handlers.NewProductHandler(mockService)

		req := testutils.CreateTestRequestWithoutSession(http.MethodGet, "/api/v1/products/abc", nil,
			map[string]string{"id": "abc"})
		rec := httptest.NewRecorder()

		// Act
		handler.GetProduct().ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "GetProductByID", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Product", func(t *testing.T) {
		// Arrange
		mockService := NewMockProductService()
		handler := handlers.NewProductHandler(mockService)

		mockService.On("GetProductByID", mock.Anything, int64(99)).
			Return(nil, apperrors.NotFoundError("Product not found")).Once()

		req := testutils.CreateTestRequestWithoutSession(http.MethodGet, "/api/v1/products/99", nil,
			map[string]string{"id": "99"})
		rec := httptest.NewRecorder()

		// Act
		handler.GetProduct().ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestProductHandler_ListProducts(t *testing.T) {
	// Arrange
	mockService := NewMockProductService()
	handler := handlers.NewProductHandler(mockService)

	mockService.On("ListProducts", mock.Anything, 2, 10).
		Return([]*models.Product{{ID: 1, Name: "Camiseta Básica"}}, 11, nil).Once()

	req := testutils.CreateTestRequestWithoutSession(http.MethodGet, "/api/v1/products?page=2&pageSize=10", nil, nil)
	rec := httptest.NewRecorder()

	// Act
	handler.ListProducts().ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	mockService.AssertExpectations(t)
}
