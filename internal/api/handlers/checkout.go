package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/henriquedps/uzzestore/internal/api/middleware"
	"github.com/henriquedps/uzzestore/internal/errors"
	"github.com/henriquedps/uzzestore/internal/models"
	service "github.com/henriquedps/uzzestore/internal/services"
	"github.com/henriquedps/uzzestore/internal/utils"
	"github.com/henriquedps/uzzestore/internal/utils/response"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	validator       *validator.Validate
}

func NewCheckoutHandler(checkoutService service.CheckoutService, validate *validator.Validate) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService, validator: validate}
}

// PlaceOrder godoc
//	@Summary		Place an order from the session's cart
//	@Description	Validates the buyer form, re-prices the cart against the live catalog, persists an immutable order snapshot and clears the cart.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			checkout	body		models.CheckoutRequest	true	"Buyer and delivery details"
//	@Success		201			{object}	models.Order
//	@Failure		400			{object}	response.ErrorResponse	"Validation error"
//	@Failure		409			{object}	response.ErrorResponse	"Cart is empty"
//	@Failure		500			{object}	response.ErrorResponse	"Persistence failure, cart kept intact"
//	@Router			/checkout [post]
func (h *CheckoutHandler) PlaceOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			logger.Warn("Checkout without session")
			response.Error(w, errors.UnauthorizedError("Session required"))

			return
		}

		var req models.CheckoutRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid checkout input")

			return
		}

		order, err := h.checkoutService.PlaceOrder(r.Context(), session.ID, &req)
		if err != nil {
			logger.Error("Checkout failed", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Checkout completed", slog.String("order_id", order.ID.String()))
		response.Success(w, http.StatusCreated, order)
	}
}
