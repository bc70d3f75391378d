package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/daymaker2day/daymaker2day/internal/http/handlers"
	httpmiddleware "github.com/daymaker2day/daymaker2day/internal/http/middleware"
	"github.com/daymaker2day/daymaker2day/pkg/logging"
)

// Config holds router configuration.
type Config struct {
	Logger             *logging.Logger
	Catalog            *handlers.CatalogHandler
	Chat               *handlers.ChatHandler
	Bookings           *handlers.BookingsHandler
	Sessions           *handlers.SessionsHandler
	Live               *handlers.LiveSessionHandler
	Admin              *handlers.AdminHandler
	AdminAuthSecret    string
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
}

// New creates a new Chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

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

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		if cfg.Catalog != nil {
			api.Get("/services", cfg.Catalog.ListServices)
			api.Get("/services/{serviceID}", cfg.Catalog.GetService)
			api.Get("/categories", cfg.Catalog.ListCategories)
			api.Get("/timeslots", cfg.Catalog.ListTimeSlots)
		}
		if cfg.Chat != nil {
			api.With(httpmiddleware.RateLimit(2, 5)).Post("/chat", cfg.Chat.Recommend)
		}
		if cfg.Bookings != nil {
			api.Post("/bookings", cfg.Bookings.Create)
			api.Get("/bookings", cfg.Bookings.List)
			api.Delete("/bookings/{bookingID}", cfg.Bookings.Delete)
		}
		if cfg.Sessions != nil {
			api.Get("/sessions", cfg.Sessions.List)
			api.Get("/sessions/active", cfg.Sessions.Active)
			api.Delete("/sessions/{sessionID}", cfg.Sessions.Cancel)
			api.Get("/sessions/{sessionID}/transcript", cfg.Sessions.Transcript)
		}
		if cfg.Live != nil {
			api.Get("/sessions/{sessionID}/live", cfg.Live.HandleWebSocket)
		}
	})

	if cfg.Admin != nil {
		r.Route("/admin", func(adminRouter chi.Router) {
			adminRouter.Use(httpmiddleware.AdminJWT(cfg.AdminAuthSecret))
			adminRouter.Mount("/", cfg.Admin.Routes())
		})
	}

	return r
}
