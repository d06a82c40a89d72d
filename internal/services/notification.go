package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/henriquedps/uzzestore/internal/api/middleware"
	apperrors "github.com/henriquedps/uzzestore/internal/errors"
	"github.com/henriquedps/uzzestore/internal/models"
	repository "github.com/henriquedps/uzzestore/internal/repositories"
	"github.com/henriquedps/uzzestore/pkg/email"
	"github.com/henriquedps/uzzestore/pkg/whatsapp"
)

type NotificationService interface {
	BuildConfirmation(ctx context.Context, orderID uuid.UUID, customerRef string) (*models.OrderConfirmation, error)
}

type notificationService struct {
	orderRepo repository.OrderRepository
	settings  SettingsService
	links     whatsapp.LinkBuilder
	email     email.Service
}

// NewNotificationService wires the confirmation composer. emailService may
// be nil when no SendGrid key is configured; the WhatsApp path works
// regardless.
func NewNotificationService(orderRepo repository.OrderRepository, settings SettingsService, links whatsapp.LinkBuilder, emailService email.Service) NotificationService {
	return &notificationService{
		orderRepo: orderRepo,
		settings:  settings,
		links:     links,
		email:     emailService,
	}
}

func (s *notificationService) BuildConfirmation(ctx context.Context, orderID uuid.UUID, customerRef string) (*models.OrderConfirmation, error) {

	logger := middleware.LoggerFromContext(ctx)

	order, err := ownedOrder(ctx, s.orderRepo, orderID, customerRef)
	if err != nil {
		return nil, err
	}

	message := whatsapp.ComposeMessage(order)

	storeNumber := s.settings.StoreWhatsAppNumber(ctx)
	if storeNumber == "" {
		return nil, apperrors.InternalError("Store WhatsApp number is not configured")
	}

	s.sendEmailCopy(ctx, order, logger)

	return &models.OrderConfirmation{
		OrderID:  order.ID.String(),
		Message:  message,
		DeepLink: s.links.OrderLink(storeNumber, message),
	}, nil
}

// sendEmailCopy is best effort. The confirmation page must render even
// when the mail provider is down or unconfigured.
func (s *notificationService) sendEmailCopy(ctx context.Context, order *models.Order, logger *slog.Logger) {
	if s.email == nil || order.Buyer.Email == "" {
		return
	}

	subject := fmt.Sprintf("Pedido #%s recebido", order.Reference())

	if err := s.email.Send(ctx, order.Buyer.Email, subject, whatsapp.ComposeMessage(order)); err != nil {
		logger.Warn("Failed to send confirmation email",
			slog.String("order_id", order.ID.String()),
			slog.String("error", err.Error()))
	}
}
