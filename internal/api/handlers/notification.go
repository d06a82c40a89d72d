package handlers

import (
	"log/slog"
	"net/http"

	"github.com/henriquedps/uzzestore/internal/api/middleware"
	"github.com/henriquedps/uzzestore/internal/errors"
	service "github.com/henriquedps/uzzestore/internal/services"
	"github.com/henriquedps/uzzestore/internal/utils"
	"github.com/henriquedps/uzzestore/internal/utils/response"
)

type NotificationHandler struct {
	notificationService service.NotificationService
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// GetConfirmation godoc
//	@Summary		Get the order confirmation message and deep link
//	@Description	Builds the human-readable order summary and the messaging deep link that opens the store conversation pre-filled with it.
//	@Tags			Notifications
//	@Produce		json
//	@Param			id	path		string	true	"Order ID (UUID)"	Format(uuid)
//	@Success		200	{object}	models.OrderConfirmation
//	@Failure		404	{object}	response.ErrorResponse	"Order not found"
//	@Router			/orders/{id}/confirmation [get]
func (h *NotificationHandler) GetConfirmation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Session required"))

			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)

			return
		}

		confirmation, err := h.notificationService.BuildConfirmation(r.Context(), id, session.ID)
		if err != nil {
			logger.Error("Failed to build confirmation",
				slog.String("order_id", id.String()),
				slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, confirmation)
	}
}
