package handlers_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/henriquedps/uzzestore/internal/models"
	service "github.com/henriquedps/uzzestore/internal/services"
	"github.com/stretchr/testify/mock"
)

type MockCartService struct {
	mock.Mock
}

func NewMockCartService() *MockCartService {
	return &MockCartService{}
}

func (m *MockCartService) GetCart(ctx context.Context, sessionID string) (*models.CartView, error) {
	args := m.Called(ctx, sessionID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.CartView), args.Error(1)
}

func (m *MockCartService) AddItem(ctx context.Context, sessionID string, req *models.AddCartItemRequest) (*models.Cart, error) {
	args := m.Called(ctx, sessionID, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCartService) AdjustQuantity(ctx context.Context, sessionID string, req *models.AdjustQuantityRequest) (*models.Cart, error) {
	args := m.Called(ctx, sessionID, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCartService) RemoveItem(ctx context.Context, sessionID string, req *models.RemoveCartItemRequest) (*models.Cart, error) {
	args := m.Called(ctx, sessionID, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCartService) ClearCart(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)

	return args.Error(0)
}

type MockCheckoutService struct {
	mock.Mock
}

func NewMockCheckoutService() *MockCheckoutService {
	return &MockCheckoutService{}
}

func (m *MockCheckoutService) PlaceOrder(ctx context.Context, sessionID string, req *models.CheckoutRequest) (*models.Order, error) {
	args := m.Called(ctx, sessionID, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Order), args.Error(1)
}

type MockOrderService struct {
	mock.Mock
}

func NewMockOrderService() *MockOrderService {
	return &MockOrderService{}
}

func (m *MockOrderService) GetOrder(ctx context.Context, id uuid.UUID, customerRef string) (*models.Order, error) {
	args := m.Called(ctx, id, customerRef)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderService) ListOrders(ctx context.Context, customerRef string) ([]models.Order, error) {
	args := m.Called(ctx, customerRef)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Order), args.Error(1)
}

type MockPaymentService struct {
	mock.Mock
}

func NewMockPaymentService() *MockPaymentService {
	return &MockPaymentService{}
}

func (m *MockPaymentService) GetPaymentCode(ctx context.Context, orderID uuid.UUID, customerRef string) (*models.PaymentCodeResponse, error) {
	args := m.Called(ctx, orderID, customerRef)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.PaymentCodeResponse), args.Error(1)
}

func (m *MockPaymentService) CheckPayment(ctx context.Context, orderID uuid.UUID, customerRef string) (*models.PaymentCheckResult, error) {
	args := m.Called(ctx, orderID, customerRef)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.PaymentCheckResult), args.Error(1)
}

type MockNotificationService struct {
	mock.Mock
}

func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

func (m *MockNotificationService) BuildConfirmation(ctx context.Context, orderID uuid.UUID, customerRef string) (*models.OrderConfirmation, error) {
	args := m.Called(ctx, orderID, customerRef)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.OrderConfirmation), args.Error(1)
}

type MockProductService struct {
	mock.Mock
}

func NewMockProductService() *MockProductService {
	return &MockProductService{}
}

func (m *MockProductService) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductService) ListProducts(ctx context.Context, page, pageSize int) ([]*models.Product, int, error) {
	args := m.Called(ctx, page, pageSize)

	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}

	return args.Get(0).([]*models.Product), args.Int(1), args.Error(2)
}

var _ service.CartService = (*MockCartService)(nil)

var _ service.CheckoutService = (*MockCheckoutService)(nil)

var _ service.OrderService = (*MockOrderService)(nil)

var _ service.PaymentService = (*MockPaymentService)(nil)

var _ service.NotificationService = (*MockNotificationService)(nil)

var _ service.ProductService = (*MockProductService)(nil)
