package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/henriquedps/uzzestore/internal/api/handlers"
	apperrors "github.com/henriquedps/uzzestore/internal/errors"
	"github.com/henriquedps/uzzestore/internal/models"
	"github.com/henriquedps/uzzestore/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderHandler_GetOrder(t *testing.T) {
	orderID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockService := NewMockOrderService()
		handler := handlers.NewOrderHandler(mockService)

		order := &models.Order{ID: orderID, CustomerRef: "session-1", Status: models.OrderStatusPending}

		mockService.On("GetOrder", mock.Anything, orderID, "session-1").Return(order, nil).Once()

		req := testutils.CreateTestRequestWithSession(http.MethodGet, "/api/v1/orders/"+orderID.String(), nil, "session-1",
			map[string]string{"id": orderID.String()})
		rec := httptest.NewRecorder()

		// Act
		handler.GetOrder().ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Invalid ID Format", func(t *testing.T) {
		// Arrange
		mockService := NewMockOrderService()
		handler := handlers.NewOrderHandler(mockService)

		req := testutils.CreateTestRequestWithSession(http.MethodGet, "/api/v1/orders/not-a-uuid", nil, "session-1",
			map[string]string{"id": "not-a-uuid"})
		rec := httptest.NewRecorder()

		// Act
		handler.GetOrder().ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "GetOrder", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Not Found", func(t *testing.T) {
		// Arrange
		mockService := NewMockOrderService()
		handler := handlers.NewOrderHandler(mockService)

		mockService.On("GetOrder", mock.Anything, orderID, "session-1").
			Return(nil, apperrors.NotFoundError("Order not found")).Once()

		req := testutils.CreateTestRequestWithSession(http.MethodGet, "/api/v1/orders/"+orderID.String(), nil, "session-1",
			map[string]string{"id": orderID.String()})
		rec := httptest.NewRecorder()

		// Act
		handler.GetOrder().ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestOrderHandler_ListOrders(t *testing.T) {
	// Arrange
	mockService := NewMockOrderService()
	handler := handlers.NewOrderHandler(mockService)

	mockService.On("ListOrders", mock.Anything, "session-1").
		Return([]models.Order{{ID: uuid.New(), CustomerRef: "session-1"}}, nil).Once()

	req := testutils.CreateTestRequestWithSession(http.MethodGet, "/api/v1/orders", nil, "session-1", nil)
	rec := httptest.NewRecorder()

	// Act
	handler.ListOrders().ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	require.True(t, resp.Success)
	assert.NotNil(t, resp.Data)
}
