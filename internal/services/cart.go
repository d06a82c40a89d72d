package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/henriquedps/uzzestore/internal/api/middleware"
	apperrors "github.com/henriquedps/uzzestore/internal/errors"
	"github.com/henriquedps/uzzestore/internal/models"
	repository "github.com/henriquedps/uzzestore/internal/repositories"
	"github.com/shopspring/decimal"
)

type CartService interface {
	GetCart(ctx context.Context, sessionID string) (*models.CartView, error)
	AddItem(ctx context.Context, sessionID string, req *models.AddCartItemRequest) (*models.Cart, error)
	AdjustQuantity(ctx context.Context, sessionID string, req *models.AdjustQuantityRequest) (*models.Cart, error)
	RemoveItem(ctx context.Context, sessionID string, req *models.RemoveCartItemRequest) (*models.Cart, error)
	ClearCart(ctx context.Context, sessionID string) error
}

type cartService struct {
	repo        repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(repo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{repo: repo, productRepo: productRepo}
}

// GetCart joins the stored lines with current catalog data. Lines whose
// product no longer resolves are shown dropped here exactly as checkout
// would drop them, so the displayed total matches the chargeable total.
func (s *cartService) GetCart(ctx context.Context, sessionID string) (*models.CartView, error) {

	logger := middleware.LoggerFromContext(ctx)

	cart, err := s.repo.GetCart(ctx, sessionID)
	if err != nil {
		return nil, apperrors.StorageError("Failed to load cart").WithError(err)
	}

	view := &models.CartView{
		Items: []models.CartLineView{},
		Total: decimal.Zero,
	}

	for _, item := range cart.Snapshot() {
		product, err := s.productRepo.GetProductByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				logger.Warn("Cart line no longer resolves, hiding it",
					slog.Int64("product_id", item.ProductID))

				continue
			}

			return nil, apperrors.StorageError("Failed to load cart").WithError(err)
		}

		subtotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))

		view.Items = append(view.Items, models.CartLineView{
			CartItem:  item,
			Name:      product.Name,
			ImageURL:  product.ImageURL,
			UnitPrice: product.Price,
			Subtotal:  subtotal,
		})
		view.Total = view.Total.Add(subtotal)
	}

	return view, nil
}

func (s *cartService) AddItem(ctx context.Context, sessionID string, req *models.AddCartItemRequest) (*models.Cart, error) {

	// Adding verifies the product exists right now; stale lines are dealt
	// with later, at display and checkout time.
	if _, err := s.productRepo.GetProductByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, apperrors.NotFoundError("Product not found").WithError(err)
		}

		return nil, apperrors.StorageError("Failed to look up product").WithError(err)
	}

	cart, err := s.repo.GetCart(ctx, sessionID)
	if err != nil {
		return nil, apperrors.StorageError("Failed to load cart").WithError(err)
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	cart.AddItem(req.ProductID, quantity, req.Size, req.Color)

	if err := s.repo.SaveCart(ctx, cart); err != nil {
		return nil, apperrors.StorageError("Failed to update cart").WithError(err)
	}

	return cart, nil
}

func (s *cartService) AdjustQuantity(ctx context.Context, sessionID string, req *models.AdjustQuantityRequest) (*models.Cart, error) {

	cart, err := s.repo.GetCart(ctx, sessionID)
	if err != nil {
		return nil, apperrors.StorageError("Failed to load cart").WithError(err)
	}

	if !cart.AdjustQuantity(req.ProductID, req.Size, req.Color, req.Delta) {
		return nil, apperrors.NotFoundError("Item not found in the cart")
	}

	if err := s.repo.SaveCart(ctx, cart); err != nil {
		return nil, apperrors.StorageError("Failed to update cart").WithError(err)
	}

	return cart, nil
}

func (s *cartService) RemoveItem(ctx context.Context, sessionID string, req *models.RemoveCartItemRequest) (*models.Cart, error) {

	cart, err := s.repo.GetCart(ctx, sessionID)
	if err != nil {
		return nil, apperrors.StorageError("Failed to load cart").WithError(err)
	}

	cart.RemoveItem(req.ProductID, req.Size, req.Color)

	if err := s.repo.SaveCart(ctx, cart); err != nil {
		return nil, apperrors.StorageError("Failed to update cart").WithError(err)
	}

	return cart, nil
}

func (s *cartService) ClearCart(ctx context.Context, sessionID string) error {

	if err := s.repo.DeleteCart(ctx, sessionID); err != nil {
		return apperrors.StorageError("Failed to clear cart").WithError(err)
	}

	return nil
}
