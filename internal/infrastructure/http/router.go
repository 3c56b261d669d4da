package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/BRAITOU555/my-ride-sharing-app/internal/infrastructure/http/handlers"
	"github.com/BRAITOU555/my-ride-sharing-app/internal/infrastructure/http/middleware"
)

// RouterConfig wires handlers and middleware into the route table. The paths
// match the original service: /register, /login, /profile, /driver/location,
// /drivers/locations, /reviews, /rides/history, /create-payment-intent.
type RouterConfig struct {
	AuthHandler    *handlers.AuthHandler
	DriverHandler  *handlers.DriverHandler
	ReviewHandler  *handlers.ReviewHandler
	RideHandler    *handlers.RideHandler
	PaymentHandler *handlers.PaymentHandler
	HealthHandler  *handlers.HealthHandler
	RequireAuth    func(http.Handler) http.Handler // bearer-token gate
	Secure         func(http.Handler) http.Handler
	CORS           func(http.Handler) http.Handler
	Log            zerolog.Logger
	Metrics        bool // expose /metrics
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimid.RequestID)
	r.Use(chimid.RealIP)
	r.Use(loggerMiddleware(cfg.Log))
	r.Use(chimid.Recoverer)
	if cfg.Metrics {
		r.Use(middleware.PrometheusMiddleware)
	}
	if cfg.Secure != nil {
		r.Use(cfg.Secure)
	}
	if cfg.CORS != nil {
		r.Use(cfg.CORS)
	}

	if cfg.HealthHandler != nil {
		r.Get("/health", cfg.HealthHandler.ServeHTTP)
	} else {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})
	}
	if cfg.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	// Public routes.
	r.Post("/register", cfg.AuthHandler.Register)
	r.Post("/login", cfg.AuthHandler.Login)
	r.Get("/drivers/locations", cfg.DriverHandler.ListLocations)
	r.Get("/drivers/locations/latest", cfg.DriverHandler.LatestLocations)
	r.Get("/reviews/{ride_id}", cfg.ReviewHandler.List)

	// Protected routes. The gate runs before any handler; a rejected token
	// never reaches one.
	r.Group(func(r chi.Router) {
		r.Use(cfg.RequireAuth)
		r.Put("/profile", cfg.AuthHandler.Profile)
		r.Post("/driver/location", cfg.DriverHandler.ReportLocation)
		r.Post("/reviews", cfg.ReviewHandler.Submit)
		r.Get("/rides/history", cfg.RideHandler.History)
		r.Post("/create-payment-intent", cfg.PaymentHandler.CreateIntent)
	})

	return r
}

func loggerMiddleware(log zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := chimid.GetReqID(r.Context())
			log.Info().
				Str("request_id", reqID).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("request")
			next.ServeHTTP(w, r)
		})
	}
}
