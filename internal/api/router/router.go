package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saphirspa/saphir-platform/internal/auth"
	"github.com/saphirspa/saphir-platform/internal/availability"
	"github.com/saphirspa/saphir-platform/internal/booking"
	"github.com/saphirspa/saphir-platform/internal/catalog"
	"github.com/saphirspa/saphir-platform/internal/clients"
	"github.com/saphirspa/saphir-platform/internal/giftcard"
	httpmiddleware "github.com/saphirspa/saphir-platform/internal/http/middleware"
	"github.com/saphirspa/saphir-platform/internal/realtime"
	"github.com/saphirspa/saphir-platform/internal/reservations"
	"github.com/saphirspa/saphir-platform/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger              *logging.Logger
	CatalogHandler      *catalog.Handler
	AvailabilityHandler *availability.Handler
	BookingHandler      *booking.Handler
	GiftCardHandler     *giftcard.Handler
	ReservationsHandler *reservations.Handler
	ClientsHandler      *clients.Handler
	AuthHandler         *auth.Handler
	Hub                 *realtime.Hub
	MetricsHandler      http.Handler
	AdminJWTSecret      string
	CORSAllowedOrigins  []string
	RateLimitPerSecond  float64
	RateLimitBurst      int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	// Public endpoints
	r.Group(func(public chi.Router) {
		public.Get("/health", healthCheck)
		if cfg.MetricsHandler != nil {
			public.Handle("/metrics", cfg.MetricsHandler)
		}

		public.Route("/api", func(api chi.Router) {
			if cfg.RateLimitPerSecond > 0 {
				api.Use(httpmiddleware.RateLimit(cfg.RateLimitPerSecond, cfg.RateLimitBurst))
			}

			if cfg.CatalogHandler != nil {
				api.Get("/services", cfg.CatalogHandler.ListServices)
				api.Get("/services/{id}", cfg.CatalogHandler.GetService)
				api.Get("/categories", cfg.CatalogHandler.ListCategories)
			}
			if cfg.AvailabilityHandler != nil {
				api.Get("/availability", cfg.AvailabilityHandler.Get)
			}
			if cfg.BookingHandler != nil {
				api.Route("/bookings/drafts", func(drafts chi.Router) {
					drafts.Post("/", cfg.BookingHandler.Start)
					drafts.Route("/{id}", func(draft chi.Router) {
						draft.Get("/", cfg.BookingHandler.Get)
						draft.Delete("/", cfg.BookingHandler.Discard)
						draft.Post("/events", cfg.BookingHandler.ApplyEvent)
						draft.Post("/submit", cfg.BookingHandler.Submit)
					})
				})
			}
			if cfg.GiftCardHandler != nil {
				api.Route("/giftcards", func(cards chi.Router) {
					cards.Get("/amounts", cfg.GiftCardHandler.Amounts)
					cards.Post("/", cfg.GiftCardHandler.Create)
					cards.Get("/{code}", cfg.GiftCardHandler.Get)
				})
			}
		})

		if cfg.AuthHandler != nil {
			public.Post("/admin/login", cfg.AuthHandler.Login)
		}
	})

	// Back-office endpoints, JWT-guarded
	r.Route("/admin", func(admin chi.Router) {
		admin.Use(httpmiddleware.AdminJWT(cfg.AdminJWTSecret))

		if cfg.ReservationsHandler != nil {
			admin.Get("/reservations", cfg.ReservationsHandler.List)
			admin.Patch("/reservations/{id}/status", cfg.ReservationsHandler.UpdateStatus)
			admin.Get("/stats", cfg.ReservationsHandler.Stats)
		}
		if cfg.ClientsHandler != nil {
			admin.Get("/clients", cfg.ClientsHandler.List)
			admin.Get("/clients/{id}", cfg.ClientsHandler.Get)
		}
		if cfg.GiftCardHandler != nil {
			admin.Post("/giftcards/{code}/redeem", cfg.GiftCardHandler.Redeem)
		}
		if cfg.Hub != nil {
			admin.Handle("/ws", cfg.Hub.Handler())
		}
	})

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
