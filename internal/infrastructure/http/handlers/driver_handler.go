package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/BRAITOU555/my-ride-sharing-app/internal/application/rides"
	"github.com/BRAITOU555/my-ride-sharing-app/internal/domain"
	"github.com/BRAITOU555/my-ride-sharing-app/internal/infrastructure/http/middleware"
)

// DriverHandler serves location reporting and the public location listings.
type DriverHandler struct {
	report   *rides.ReportLocation
	list     *rides.ListLocations
	latest   *rides.LatestLocations
	validate *validator.Validate
	log      zerolog.Logger
}

func NewDriverHandler(report *rides.ReportLocation, list *rides.ListLocations, latest *rides.LatestLocations, log zerolog.Logger) *DriverHandler {
	return &DriverHandler{
		report:   report,
		list:     list,
		latest:   latest,
		validate: validator.New(),
		log:      log,
	}
}

// ReportLocation handles POST /driver/location. The driver id is the claims
// id; a driver_id in the body is ignored.
func (h *DriverHandler) ReportLocation(w http.ResponseWriter, r *http.Request) {
	claims := middleware.SessionFromContext(r.Context())
	if claims == nil {
		writeErr(w, http.StatusUnauthorized, ErrCodeUnauthorized, "Token not found")
		return
	}
	var body struct {
		Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
		Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
		return
	}
	err := h.report.Execute(r.Context(), claims.UserID, rides.ReportLocationInput{
		Latitude:  *body.Latitude,
		Longitude: *body.Longitude,
	})
	if err != nil {
		h.log.Error().Err(err).Int64("driver_id", claims.UserID).Msg("location report failed")
		writeErr(w, http.StatusInternalServerError, ErrCodeInternal, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Location updated successfully"})
}

type locationResponse struct {
	ID        int64   `json:"id,omitempty"`
	DriverID  int64   `json:"driver_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ListLocations handles GET /drivers/locations (public, full history).
func (h *DriverHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	locs, err := h.list.Execute(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list locations failed")
		writeErr(w, http.StatusInternalServerError, ErrCodeInternal, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, toLocationResponses(locs))
}

// LatestLocations handles GET /drivers/locations/latest (public, newest
// position per driver, cache-first).
func (h *DriverHandler) LatestLocations(w http.ResponseWriter, r *http.Request) {
	locs, err := h.latest.Execute(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("latest locations failed")
		writeErr(w, http.StatusInternalServerError, ErrCodeInternal, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, toLocationResponses(locs))
}

func toLocationResponses(locs []domain.DriverLocation) []locationResponse {
	out := make([]locationResponse, 0, len(locs))
	for _, l := range locs {
		out = append(out, locationResponse{
			ID:        l.ID,
			DriverID:  l.DriverID,
			Latitude:  l.Latitude,
			Longitude: l.Longitude,
		})
	}
	return out
}
