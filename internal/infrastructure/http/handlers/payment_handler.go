package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/BRAITOU555/my-ride-sharing-app/internal/application/payments"
	"github.com/BRAITOU555/my-ride-sharing-app/internal/infrastructure/http/middleware"
)

// PaymentHandler serves POST /create-payment-intent (gated).
type PaymentHandler struct {
	createIntent *payments.CreateIntent
	validate     *validator.Validate
	log          zerolog.Logger
}

func NewPaymentHandler(createIntent *payments.CreateIntent, log zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{createIntent: createIntent, validate: validator.New(), log: log}
}

// CreateIntent exchanges an amount in cents for a processor client secret.
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	claims := middleware.SessionFromContext(r.Context())
	if claims == nil {
		writeErr(w, http.StatusUnauthorized, ErrCodeUnauthorized, "Token not found")
		return
	}
	var body struct {
		Amount int64 `json:"amount" validate:"required,gt=0"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
		return
	}
	result, err := h.createIntent.Execute(r.Context(), payments.CreateIntentInput{AmountCents: body.Amount})
	if err != nil {
		h.log.Error().Err(err).Int64("user_id", claims.UserID).Msg("payment intent failed")
		writeErr(w, http.StatusInternalServerError, ErrCodeInternal, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"clientSecret": result.ClientSecret})
}
