package service

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/henriquedps/uzzestore/internal/api/middleware"
	apperrors "github.com/henriquedps/uzzestore/internal/errors"
	"github.com/henriquedps/uzzestore/internal/models"
	repository "github.com/henriquedps/uzzestore/internal/repositories"
	"github.com/henriquedps/uzzestore/pkg/pix"
)

// PaymentGateway answers whether an order has been paid. The production
// integration lives outside this service; the built-in implementation is a
// stand-in that confirms at random.
type PaymentGateway interface {
	Confirm(ctx context.Context, order *models.Order) (bool, error)
}

type simulatedGateway struct{}

func NewSimulatedGateway() PaymentGateway {
	return simulatedGateway{}
}

func (simulatedGateway) Confirm(_ context.Context, _ *models.Order) (bool, error) {
	return rand.IntN(2) == 0, nil
}

type PaymentService interface {
	GetPaymentCode(ctx context.Context, orderID uuid.UUID, customerRef string) (*models.PaymentCodeResponse, error)
	CheckPayment(ctx context.Context, orderID uuid.UUID, customerRef string) (*models.PaymentCheckResult, error)
}

type paymentService struct {
	orderRepo repository.OrderRepository
	settings  SettingsService
	gateway   PaymentGateway
}

func NewPaymentService(orderRepo repository.OrderRepository, settings SettingsService, gateway PaymentGateway) PaymentService {
	return &paymentService{orderRepo: orderRepo, settings: settings, gateway: gateway}
}

func (s *paymentService) GetPaymentCode(ctx context.Context, orderID uuid.UUID, customerRef string) (*models.PaymentCodeResponse, error) {

	order, err := ownedOrder(ctx, s.orderRepo, orderID, customerRef)
	if err != nil {
		return nil, err
	}

	payee := s.settings.PixPayee(ctx)

	payload, err := pix.Encode(pix.Payload{
		Key:          payee.Key,
		MerchantName: payee.MerchantName,
		MerchantCity: payee.MerchantCity,
		Reference:    order.Reference(),
		Amount:       order.Total,
	})
	if err != nil {
		return nil, apperrors.EncodingError("Payment settings are incomplete").WithError(err)
	}

	return &models.PaymentCodeResponse{
		OrderID: order.ID.String(),
		Payload: payload,
	}, nil
}

// CheckPayment consults the gateway for pending orders and flips them to
// paid on a positive answer. Paid stays paid, so repeated positive checks
// are harmless.
func (s *paymentService) CheckPayment(ctx context.Context, orderID uuid.UUID, customerRef string) (*models.PaymentCheckResult, error) {

	logger := middleware.LoggerFromContext(ctx)

	order, err := ownedOrder(ctx, s.orderRepo, orderID, customerRef)
	if err != nil {
		return nil, err
	}

	result := &models.PaymentCheckResult{
		OrderID: order.ID.String(),
		Status:  order.Status,
	}

	if order.Status == models.OrderStatusPaid {
		result.Paid = true

		return result, nil
	}

	if order.Status != models.OrderStatusPending {
		return result, nil
	}

	confirmed, err := s.gateway.Confirm(ctx, order)
	if err != nil {
		return nil, apperrors.InternalError("Payment check failed").WithError(err)
	}

	if !confirmed {
		return result, nil
	}

	if err := s.orderRepo.UpdateStatus(ctx, order.ID, models.OrderStatusPaid); err != nil {
		return nil, apperrors.StorageError("Failed to update order status").WithError(err)
	}

	logger.Info("Order confirmed as paid", slog.String("order_id", order.ID.String()))

	result.Paid = true
	result.Status = models.OrderStatusPaid

	return result, nil
}
