package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/BRAITOU555/my-ride-sharing-app/internal/application/auth"
	"github.com/BRAITOU555/my-ride-sharing-app/internal/application/payments"
	"github.com/BRAITOU555/my-ride-sharing-app/internal/application/ports"
	"github.com/BRAITOU555/my-ride-sharing-app/internal/application/reviews"
	"github.com/BRAITOU555/my-ride-sharing-app/internal/application/rides"
	"github.com/BRAITOU555/my-ride-sharing-app/internal/config"
	infraauth "github.com/BRAITOU555/my-ride-sharing-app/internal/infrastructure/auth"
	"github.com/BRAITOU555/my-ride-sharing-app/internal/infrastructure/cache"
	httprouter "github.com/BRAITOU555/my-ride-sharing-app/internal/infrastructure/http"
	"github.com/BRAITOU555/my-ride-sharing-app/internal/infrastructure/http/handlers"
	"github.com/BRAITOU555/my-ride-sharing-app/internal/infrastructure/http/middleware"
	infrapay "github.com/BRAITOU555/my-ride-sharing-app/internal/infrastructure/payments"
	"github.com/BRAITOU555/my-ride-sharing-app/internal/infrastructure/persistence/postgres"
	"github.com/BRAITOU555/my-ride-sharing-app/internal/infrastructure/queue"
	"github.com/BRAITOU555/my-ride-sharing-app/internal/infrastructure/security"
	"github.com/BRAITOU555/my-ride-sharing-app/internal/infrastructure/webhook"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("ping database")
	}
	if err := postgres.RunMigrations(ctx, cfg.Database.URL); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}

	var redisClient *redis.Client
	if cfg.Redis.URL != "" {
		opt, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("parse REDIS_URL")
		}
		redisClient = redis.NewClient(opt)
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("redis ping failed; continuing without redis")
			redisClient = nil
		}
	}

	healthHandler := handlers.NewHealthHandler(pool, redisClient)

	userRepo := postgres.NewUserRepository(pool)
	rideRepo := postgres.NewRideRepository(pool)
	reviewRepo := postgres.NewReviewRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)

	var emitter ports.WebhookEmitter
	if cfg.Audit.WebhookURL != "" {
		emitter = webhook.NewHTTPEmitter(cfg.Audit.WebhookURL)
	}

	var taskEnqueuer ports.TaskEnqueuer
	var asynqWorker *queue.Worker
	if redisClient != nil {
		redisOpt, _ := redis.ParseURL(cfg.Redis.URL)
		asynqOpt := asynq.RedisClientOpt{Addr: redisOpt.Addr, Password: redisOpt.Password, DB: redisOpt.DB}
		asynqEnq, err := queue.NewAsynqEnqueuer(asynqOpt, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create asynq enqueuer")
		}
		defer asynqEnq.Close()
		taskEnqueuer = asynqEnq
		asynqWorker = queue.NewWorker(asynqOpt, emitter, log)
		go func() {
			if err := asynqWorker.Run(); err != nil {
				log.Warn().Err(err).Msg("asynq worker stopped")
			}
		}()
	} else {
		taskEnqueuer = queue.NewNoopEnqueuer()
	}

	var locationCache ports.LocationCache
	if redisClient != nil {
		locationCache = cache.NewLocationCache(redisClient)
	}

	hasher := security.NewArgon2Hasher(security.Argon2Params{
		Memory:      cfg.Argon2.Memory,
		Iterations:  cfg.Argon2.Iterations,
		Parallelism: cfg.Argon2.Parallelism,
		SaltLength:  16,
		KeyLength:   32,
	})

	issuer, err := infraauth.NewTokenIssuer([]byte(cfg.JWT.Secret), time.Duration(cfg.JWT.TTLSeconds)*time.Second)
	if err != nil {
		log.Fatal().Err(err).Msg("create token issuer")
	}

	registerUC := auth.NewRegister(userRepo, hasher)
	loginUC := auth.NewLogin(userRepo, hasher, issuer)
	updateProfileUC := auth.NewUpdateProfile(userRepo, hasher)
	reportLocationUC := rides.NewReportLocation(locationRepo, locationCache, log)
	listLocationsUC := rides.NewListLocations(locationRepo)
	latestLocationsUC := rides.NewLatestLocations(locationRepo, locationCache)
	historyUC := rides.NewHistory(rideRepo)
	submitReviewUC := reviews.NewSubmit(reviewRepo)
	listReviewsUC := reviews.NewList(reviewRepo)

	processor := infrapay.NewStripeProcessor(cfg.Stripe.SecretKey)
	createIntentUC := payments.NewCreateIntent(processor)

	authHandler := handlers.NewAuthHandler(registerUC, loginUC, updateProfileUC, taskEnqueuer, log)
	driverHandler := handlers.NewDriverHandler(reportLocationUC, listLocationsUC, latestLocationsUC, log)
	reviewHandler := handlers.NewReviewHandler(submitReviewUC, listReviewsUC, log)
	rideHandler := handlers.NewRideHandler(historyUC, log)
	paymentHandler := handlers.NewPaymentHandler(createIntentUC, log)

	requireAuth := middleware.NewAuthValidator(issuer, log).Handler
	secureMiddleware := middleware.NewSecure(middleware.SecureOptions(cfg.Secure.IsDevelopment))

	router := httprouter.NewRouter(httprouter.RouterConfig{
		AuthHandler:    authHandler,
		DriverHandler:  driverHandler,
		ReviewHandler:  reviewHandler,
		RideHandler:    rideHandler,
		PaymentHandler: paymentHandler,
		HealthHandler:  healthHandler,
		RequireAuth:    requireAuth,
		Secure:         secureMiddleware,
		CORS:           middleware.CORS(cfg.CORS.AllowedOrigins),
		Log:            log,
		Metrics:        true,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	if asynqWorker != nil {
		asynqWorker.Shutdown()
	}
	log.Info().Msg("server stopped")
}
