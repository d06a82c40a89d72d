package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	apperrors "github.com/henriquedps/uzzestore/internal/errors"
	"github.com/henriquedps/uzzestore/internal/models"
	repository "github.com/henriquedps/uzzestore/internal/repositories"
)

type OrderService interface {
	GetOrder(ctx context.Context, id uuid.UUID, customerRef string) (*models.Order, error)
	ListOrders(ctx context.Context, customerRef string) ([]models.Order, error)
}

type orderService struct {
	repo repository.OrderRepository
}

func NewOrderService(repo repository.OrderRepository) OrderService {
	return &orderService{repo: repo}
}

func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID, customerRef string) (*models.Order, error) {
	return ownedOrder(ctx, s.repo, id, customerRef)
}

func (s *orderService) ListOrders(ctx context.Context, customerRef string) ([]models.Order, error) {

	orders, err := s.repo.ListOrdersByCustomer(ctx, customerRef)
	if err != nil {
		return nil, apperrors.StorageError("Failed to fetch orders").WithError(err)
	}

	return orders, nil
}

// ownedOrder fetches an order and checks it belongs to the caller's
// session. A foreign order is reported as not found rather than forbidden,
// so order ids cannot be probed.
func ownedOrder(ctx context.Context, repo repository.OrderRepository, id uuid.UUID, customerRef string) (*models.Order, error) {

	order, err := repo.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, apperrors.NotFoundError("Order not found").WithError(err)
		}

		return nil, apperrors.StorageError("Failed to fetch order").WithError(err)
	}

	if order.CustomerRef != customerRef {
		return nil, apperrors.NotFoundError("Order not found")
	}

	return order, nil
}
