package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/BRAITOU555/my-ride-sharing-app/internal/application/rides"
	"github.com/BRAITOU555/my-ride-sharing-app/internal/infrastructure/http/middleware"
)

// RideHandler serves GET /rides/history (gated).
type RideHandler struct {
	history *rides.History
	log     zerolog.Logger
}

func NewRideHandler(history *rides.History, log zerolog.Logger) *RideHandler {
	return &RideHandler{history: history, log: log}
}

type rideResponse struct {
	ID            int64   `json:"id"`
	DriverID      int64   `json:"driver_id"`
	PassengerID   int64   `json:"passenger_id"`
	StartLocation string  `json:"start_location"`
	EndLocation   string  `json:"end_location"`
	Status        string  `json:"status"`
	Fare          float64 `json:"fare"`
}

// History lists rides where the caller was driver or passenger.
func (h *RideHandler) History(w http.ResponseWriter, r *http.Request) {
	claims := middleware.SessionFromContext(r.Context())
	if claims == nil {
		writeErr(w, http.StatusUnauthorized, ErrCodeUnauthorized, "Token not found")
		return
	}
	list, err := h.history.Execute(r.Context(), claims.UserID)
	if err != nil {
		h.log.Error().Err(err).Int64("user_id", claims.UserID).Msg("ride history failed")
		writeErr(w, http.StatusInternalServerError, ErrCodeInternal, "internal error")
		return
	}
	out := make([]rideResponse, 0, len(list))
	for _, rd := range list {
		out = append(out, rideResponse{
			ID:            rd.ID,
			DriverID:      rd.DriverID,
			PassengerID:   rd.PassengerID,
			StartLocation: rd.StartLocation,
			EndLocation:   rd.EndLocation,
			Status:        rd.Status,
			Fare:          rd.Fare,
		})
	}
	writeJSON(w, http.StatusOK, out)
}
