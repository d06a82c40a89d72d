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

type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// GetPaymentCode godoc
//	@Summary		Get the payment reference for an order
//	@Description	Returns the copy-and-paste payment payload derived from the order total and the store's payee settings.
//	@Tags			Payments
//	@Produce		json
//	@Param			id	path		string	true	"Order ID (UUID)"	Format(uuid)
//	@Success		200	{object}	models.PaymentCodeResponse
//	@Failure		404	{object}	response.ErrorResponse	"Order not found"
//	@Failure		500	{object}	response.ErrorResponse	"Payee settings incomplete"
//	@Router			/orders/{id}/pix [get]
func (h *PaymentHandler) GetPaymentCode() http.HandlerFunc {
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

		code, err := h.paymentService.GetPaymentCode(r.Context(), id, session.ID)
		if err != nil {
			logger.Error("Failed to build payment code",
				slog.String("order_id", id.String()),
				slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, code)
	}
}

// CheckPayment godoc
//	@Summary		Check whether an order has been paid
//	@Description	Polls the payment collaborator; a positive answer moves the order from pending to paid. Re-checking a paid order is a no-op.
//	@Tags			Payments
//	@Produce		json
//	@Param			id	path		string	true	"Order ID (UUID)"	Format(uuid)
//	@Success		200	{object}	models.PaymentCheckResult
//	@Failure		404	{object}	response.ErrorResponse	"Order not found"
//	@Router			/orders/{id}/payment-check [post]
func (h *PaymentHandler) CheckPayment() http.HandlerFunc {
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

		result, err := h.paymentService.CheckPayment(r.Context(), id, session.ID)
		if err != nil {
			logger.Error("Payment check failed",
				slog.String("order_id", id.String()),
				slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, result)
	}
}
