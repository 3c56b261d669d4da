package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/BRAITOU555/my-ride-sharing-app/internal/application/ports"
)

// AuthValidator is the gate in front of every protected handler. A missing
// or ill-shaped Authorization header stops the request with 401 before the
// handler runs; a present-but-rejected token stops it with 403. The verifier
// failure reason goes to the log only, never to the client.
type AuthValidator struct {
	issuer ports.TokenIssuer
	log    zerolog.Logger
}

func NewAuthValidator(issuer ports.TokenIssuer, log zerolog.Logger) *AuthValidator {
	return &AuthValidator{issuer: issuer, log: log}
}

func (m *AuthValidator) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			writeErr(w, http.StatusUnauthorized, "Token not found")
			return
		}
		claims, err := m.issuer.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			m.log.Warn().
				Err(err).
				Str("request_id", chimid.GetReqID(r.Context())).
				Str("path", r.URL.Path).
				Msg("bearer token rejected")
			writeErr(w, http.StatusForbidden, "Token is not valid")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), claims)))
	})
}

func writeErr(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
