package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/BRAITOU555/my-ride-sharing-app/internal/application/reviews"
	domerrors "github.com/BRAITOU555/my-ride-sharing-app/internal/domain/errors"
	"github.com/BRAITOU555/my-ride-sharing-app/internal/infrastructure/http/middleware"
)

// ReviewHandler serves POST /reviews (gated) and GET /reviews/{ride_id}
// (public).
type ReviewHandler struct {
	submit   *reviews.Submit
	list     *reviews.List
	validate *validator.Validate
	log      zerolog.Logger
}

func NewReviewHandler(submit *reviews.Submit, list *reviews.List, log zerolog.Logger) *ReviewHandler {
	return &ReviewHandler{submit: submit, list: list, validate: validator.New(), log: log}
}

// Submit records a review. The author is the claims id; a user_id in the
// body is dropped before the use case sees it.
func (h *ReviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	claims := middleware.SessionFromContext(r.Context())
	if claims == nil {
		writeErr(w, http.StatusUnauthorized, ErrCodeUnauthorized, "Token not found")
		return
	}
	var body struct {
		RideID  int64  `json:"ride_id" validate:"required,gt=0"`
		Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
		Comment string `json:"comment" validate:"max=1000"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
		return
	}
	id, err := h.submit.Execute(r.Context(), claims.UserID, reviews.SubmitInput{
		RideID:  body.RideID,
		Rating:  body.Rating,
		Comment: body.Comment,
	})
	if err != nil {
		if errors.Is(err, domerrors.ErrRideNotFound) {
			writeErr(w, http.StatusBadRequest, ErrCodeNotFound, domerrors.ErrRideNotFound.Error())
			return
		}
		h.log.Error().Err(err).Int64("user_id", claims.UserID).Msg("review submit failed")
		writeErr(w, http.StatusInternalServerError, ErrCodeInternal, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"id": id})
}

type reviewResponse struct {
	ID      int64  `json:"id"`
	UserID  int64  `json:"user_id"`
	RideID  int64  `json:"ride_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// List returns the reviews for one ride.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	rideID, err := strconv.ParseInt(chi.URLParam(r, "ride_id"), 10, 64)
	if err != nil || rideID <= 0 {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid ride id")
		return
	}
	list, err := h.list.Execute(r.Context(), rideID)
	if err != nil {
		h.log.Error().Err(err).Int64("ride_id", rideID).Msg("review list failed")
		writeErr(w, http.StatusInternalServerError, ErrCodeInternal, "internal error")
		return
	}
	out := make([]reviewResponse, 0, len(list))
	for _, rv := range list {
		out = append(out, reviewResponse{
			ID:      rv.ID,
			UserID:  rv.UserID,
			RideID:  rv.RideID,
			Rating:  rv.Rating,
			Comment: rv.Comment,
		})
	}
	writeJSON(w, http.StatusOK, out)
}
