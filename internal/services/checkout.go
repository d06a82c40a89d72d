package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/henriquedps/uzzestore/internal/api/middleware"
	apperrors "github.com/henriquedps/uzzestore/internal/errors"
	"github.com/henriquedps/uzzestore/internal/models"
	repository "github.com/henriquedps/uzzestore/internal/repositories"
	"github.com/microcosm-cc/bluemonday"
	"github.com/shopspring/decimal"
)

type CheckoutService interface {
	PlaceOrder(ctx context.Context, sessionID string, req *models.CheckoutRequest) (*models.Order, error)
}

type checkoutService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	sanitizer   *bluemonday.Policy
}

func NewCheckoutService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, orderRepo repository.OrderRepository) CheckoutService {
	return &checkoutService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		sanitizer:   bluemonday.StrictPolicy(),
	}
}

// PlaceOrder turns the session's cart into a persisted, immutable order
// snapshot. Prices are always the catalog's current prices, never whatever
// the buyer saw when the item went into the cart. The cart is cleared only
// after the order row is safely written.
func (s *checkoutService) PlaceOrder(ctx context.Context, sessionID string, req *models.CheckoutRequest) (*models.Order, error) {

	logger := middleware.LoggerFromContext(ctx)

	cart, err := s.cartRepo.GetCart(ctx, sessionID)
	if err != nil {
		return nil, apperrors.StorageError("Failed to load cart").WithError(err)
	}

	if cart.IsEmpty() {
		return nil, apperrors.EmptyCartError()
	}

	buyer, address, paymentMethod, err := s.normalizeForm(req)
	if err != nil {
		return nil, err
	}

	items, total, err := s.priceCart(ctx, cart.Snapshot(), logger)
	if err != nil {
		return nil, err
	}

	// Every line pointed at a product that has since vanished. There is
	// nothing left to charge for, so treat it like an empty cart instead
	// of persisting a zero-total order.
	if len(items) == 0 {
		return nil, apperrors.EmptyCartError()
	}

	order := &models.Order{
		ID:            uuid.New(),
		CustomerRef:   sessionID,
		Buyer:         buyer,
		Address:       address,
		PaymentMethod: paymentMethod,
		Total:         total,
		Items:         items,
		Status:        models.OrderStatusPending,
		CreatedAt:     time.Now(),
	}

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		// Cart stays exactly as it was; the buyer can retry.
		return nil, apperrors.StorageError("Failed to place order").WithError(err)
	}

	if err := s.cartRepo.DeleteCart(ctx, sessionID); err != nil {
		// The order exists, so this is not a checkout failure. The stale
		// cart will simply be merged over or expire.
		logger.Error("Order persisted but cart could not be cleared",
			slog.String("order_id", order.ID.String()),
			slog.String("error", err.Error()))
	}

	logger.Info("Order placed",
		slog.String("order_id", order.ID.String()),
		slog.String("total", order.Total.StringFixed(2)),
		slog.Int("items", len(order.Items)))

	return order, nil
}

func (s *checkoutService) priceCart(ctx context.Context, lines []models.CartItem, logger *slog.Logger) ([]models.OrderItem, decimal.Decimal, error) {

	var items []models.OrderItem

	total := decimal.Zero

	for _, line := range lines {
		product, err := s.productRepo.GetProductByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				// Documented behavior: a line whose product no longer
				// resolves is dropped from the order, not an error.
				logger.Warn("Dropping unresolvable cart line",
					slog.Int64("product_id", line.ProductID))

				continue
			}

			return nil, decimal.Zero, apperrors.StorageError("Failed to price order").WithError(err)
		}

		subtotal := product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))

		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  line.Quantity,
			Size:      line.Size,
			Color:     line.Color,
			Subtotal:  subtotal,
		})

		total = total.Add(subtotal)
	}

	return items, total, nil
}

// normalizeForm trims and sanitizes every submitted field and re-checks the
// required ones, since "   " passes the handler's required tag but is still
// blank.
func (s *checkoutService) normalizeForm(req *models.CheckoutRequest) (models.Buyer, models.Address, string, error) {

	clean := func(v string) string {
		return strings.TrimSpace(s.sanitizer.Sanitize(v))
	}

	buyer := models.Buyer{
		Name:  clean(req.Name),
		Email: clean(req.Email),
		Phone: clean(req.Phone),
	}

	address := models.Address{
		ZIP:        clean(req.ZIP),
		Street:     clean(req.Street),
		Number:     clean(req.Number),
		Complement: clean(req.Complement),
		District:   clean(req.District),
		City:       clean(req.City),
		State:      strings.ToUpper(clean(req.State)),
	}

	paymentMethod := clean(req.PaymentMethod)

	required := []struct {
		field string
		value string
	}{
		{"name", buyer.Name},
		{"email", buyer.Email},
		{"zip", address.ZIP},
		{"street", address.Street},
		{"number", address.Number},
		{"district", address.District},
		{"city", address.City},
		{"state", address.State},
		{"payment_method", paymentMethod},
	}

	for _, f := range required {
		if f.value == "" {
			return models.Buyer{}, models.Address{}, "", apperrors.FieldValidationError(f.field, "must not be blank")
		}
	}

	return buyer, address, paymentMethod, nil
}
