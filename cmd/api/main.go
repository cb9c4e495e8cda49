package main

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/saphirspa/saphir-platform/internal/api/router"
	"github.com/saphirspa/saphir-platform/internal/auth"
	"github.com/saphirspa/saphir-platform/internal/availability"
	"github.com/saphirspa/saphir-platform/internal/booking"
	"github.com/saphirspa/saphir-platform/internal/catalog"
	"github.com/saphirspa/saphir-platform/internal/clients"
	appconfig "github.com/saphirspa/saphir-platform/internal/config"
	"github.com/saphirspa/saphir-platform/internal/giftcard"
	"github.com/saphirspa/saphir-platform/internal/notify"
	"github.com/saphirspa/saphir-platform/internal/observability/metrics"
	"github.com/saphirspa/saphir-platform/internal/realtime"
	"github.com/saphirspa/saphir-platform/internal/reservations"
	"github.com/saphirspa/saphir-platform/pkg/logging"
)

func main() {
	// Load .env in development; ignore if absent.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting saphir-platform API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()

	// Postgres
	if cfg.DatabaseURL == "" {
		logger.Error("DATABASE_URL is required")
		os.Exit(1)
	}
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to create pgx pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	// Redis (draft store)
	redisOpts := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		redisOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	redisClient := redis.NewClient(redisOpts)
	defer func() { _ = redisClient.Close() }()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Error("failed to ping redis", "error", err)
		os.Exit(1)
	}

	// Metrics
	bookingMetrics := metrics.NewBookingMetrics(nil)
	realtimeMetrics := metrics.NewRealtimeMetrics(nil)

	// Repositories and services
	reservationsRepo := reservations.NewRepository(pool)
	clientsRepo := clients.NewRepository(pool)
	giftCardRepo := giftcard.NewRepository(pool)

	hub := realtime.NewHub(logger.Named("realtime"), realtimeMetrics)

	var emailSender notify.EmailSender
	if sender := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.SendGridFromEmail,
		FromName:  cfg.SendGridFromName,
	}, logger.Named("notify")); sender != nil {
		emailSender = sender
	}
	notifier := notify.NewService(emailSender, cfg.NotifyEmails, logger.Named("notify"))

	slots := availability.New(nil, cfg.BookingWindowDays)
	draftStore := booking.NewStore(redisClient, cfg.DraftTTL)
	bookingService := booking.NewService(draftStore, reservationsRepo, slots,
		hub, notifier, bookingMetrics, logger.Named("booking"))

	// Handlers
	routerCfg := &router.Config{
		Logger:              logger,
		CatalogHandler:      catalog.NewHandler(),
		AvailabilityHandler: availability.NewHandler(slots),
		BookingHandler:      booking.NewHandler(bookingService, cfg.WhatsAppNumber, logger.Named("booking")),
		GiftCardHandler:     giftcard.NewHandler(giftCardRepo, logger.Named("giftcard")),
		ReservationsHandler: reservations.NewHandler(reservationsRepo, hub, logger.Named("reservations")),
		ClientsHandler:      clients.NewHandler(clientsRepo, logger.Named("clients")),
		AuthHandler:         auth.NewHandler(cfg.AdminJWTSecret, cfg.AdminPassword, cfg.AdminTokenTTL, logger.Named("auth")),
		Hub:                 hub,
		MetricsHandler:      promhttp.Handler(),
		AdminJWTSecret:      cfg.AdminJWTSecret,
		CORSAllowedOrigins:  cfg.CORSAllowedOrigins,
		RateLimitPerSecond:  cfg.RateLimitPerSecond,
		RateLimitBurst:      cfg.RateLimitBurst,
	}
	r := router.New(routerCfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
