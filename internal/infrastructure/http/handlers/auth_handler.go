package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/BRAITOU555/my-ride-sharing-app/internal/application/auth"
	"github.com/BRAITOU555/my-ride-sharing-app/internal/application/ports"
	domerrors "github.com/BRAITOU555/my-ride-sharing-app/internal/domain/errors"
	"github.com/BRAITOU555/my-ride-sharing-app/internal/infrastructure/http/middleware"
)

// AuthHandler serves /register, /login, and the gated PUT /profile.
type AuthHandler struct {
	register      *auth.Register
	login         *auth.Login
	updateProfile *auth.UpdateProfile
	enqueuer      ports.TaskEnqueuer
	validate      *validator.Validate
	log           zerolog.Logger
}

func NewAuthHandler(register *auth.Register, login *auth.Login, updateProfile *auth.UpdateProfile, enqueuer ports.TaskEnqueuer, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		register:      register,
		login:         login,
		updateProfile: updateProfile,
		enqueuer:      enqueuer,
		validate:      validator.New(),
		log:           log,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string `json:"name" validate:"required,min=3,max=30"`
		Email    string `json:"email" validate:"required,email,max=254"`
		Password string `json:"password" validate:"required,min=6,max=128"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
		return
	}
	email := SanitizeEmail(body.Email)
	password := SanitizePassword(body.Password)
	if email == "" || password == "" {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid email or password length")
		return
	}
	result, err := h.register.Execute(r.Context(), auth.RegisterInput{
		Name:     body.Name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		AuditEmit(h.log, r, h.enqueuer, "user.register", 0, false, err.Error())
		middleware.RecordAuthAttempt("register", false)
		if errors.Is(err, domerrors.ErrEmailTaken) {
			writeErr(w, http.StatusBadRequest, ErrCodeEmailTaken, domerrors.ErrEmailTaken.Error())
			return
		}
		h.log.Error().Err(err).Msg("register failed")
		writeErr(w, http.StatusInternalServerError, ErrCodeInternal, "internal error")
		return
	}
	AuditEmit(h.log, r, h.enqueuer, "user.register", result.ID, true, "")
	middleware.RecordAuthAttempt("register", true)
	writeJSON(w, http.StatusOK, map[string]interface{}{"id": result.ID})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email" validate:"required,email,max=254"`
		Password string `json:"password" validate:"required,min=6,max=128"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
		return
	}
	email := SanitizeEmail(body.Email)
	password := SanitizePassword(body.Password)
	if email == "" || password == "" {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid email or password length")
		return
	}
	result, err := h.login.Execute(r.Context(), auth.LoginInput{Email: email, Password: password})
	if err != nil {
		AuditEmit(h.log, r, h.enqueuer, "user.login", 0, false, err.Error())
		middleware.RecordAuthAttempt("login", false)
		if errors.Is(err, domerrors.ErrInvalidCredentials) {
			// Identical answer for unknown email and wrong password.
			writeErr(w, http.StatusBadRequest, ErrCodeInvalidCredentials, "Invalid credentials")
			return
		}
		h.log.Error().Err(err).Msg("login failed")
		writeErr(w, http.StatusInternalServerError, ErrCodeInternal, "internal error")
		return
	}
	AuditEmit(h.log, r, h.enqueuer, "user.login", 0, true, "")
	middleware.RecordAuthAttempt("login", true)
	writeJSON(w, http.StatusOK, map[string]string{"token": result.Token})
}

// Profile handles PUT /profile. Requires the bearer gate; the target account
// is the one in the verified claims, regardless of anything in the body.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	claims := middleware.SessionFromContext(r.Context())
	if claims == nil {
		writeErr(w, http.StatusUnauthorized, ErrCodeUnauthorized, "Token not found")
		return
	}
	var body struct {
		Name     *string `json:"name" validate:"omitempty,min=3,max=30"`
		Email    *string `json:"email" validate:"omitempty,email,max=254"`
		Password *string `json:"password" validate:"omitempty,min=6,max=128"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
		return
	}
	if body.Email != nil {
		normalized := SanitizeEmail(*body.Email)
		if normalized == "" {
			writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid email")
			return
		}
		body.Email = &normalized
	}
	err := h.updateProfile.Execute(r.Context(), claims.UserID, auth.UpdateProfileInput{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		AuditEmit(h.log, r, h.enqueuer, "profile.update", claims.UserID, false, err.Error())
		middleware.RecordAuthAttempt("profile.update", false)
		if errors.Is(err, domerrors.ErrEmailTaken) {
			writeErr(w, http.StatusBadRequest, ErrCodeEmailTaken, domerrors.ErrEmailTaken.Error())
			return
		}
		if errors.Is(err, domerrors.ErrUserNotFound) {
			writeErr(w, http.StatusNotFound, ErrCodeNotFound, "user not found")
			return
		}
		h.log.Error().Err(err).Msg("profile update failed")
		writeErr(w, http.StatusInternalServerError, ErrCodeInternal, "internal error")
		return
	}
	AuditEmit(h.log, r, h.enqueuer, "profile.update", claims.UserID, true, "")
	middleware.RecordAuthAttempt("profile.update", true)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Profile updated successfully"})
}
