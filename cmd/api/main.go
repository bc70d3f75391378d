package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/daymaker2day/daymaker2day/internal/admin"
	"github.com/daymaker2day/daymaker2day/internal/api/router"
	"github.com/daymaker2day/daymaker2day/internal/app"
	"github.com/daymaker2day/daymaker2day/internal/app/bootstrap"
	"github.com/daymaker2day/daymaker2day/internal/booking"
	"github.com/daymaker2day/daymaker2day/internal/bookings"
	"github.com/daymaker2day/daymaker2day/internal/concierge"
	appconfig "github.com/daymaker2day/daymaker2day/internal/config"
	"github.com/daymaker2day/daymaker2day/internal/http/handlers"
	"github.com/daymaker2day/daymaker2day/internal/livesession"
	"github.com/daymaker2day/daymaker2day/internal/observability/metrics"
	"github.com/daymaker2day/daymaker2day/internal/schedule"
	"github.com/daymaker2day/daymaker2day/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting daymaker2day API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metricsHandler, sessionMetrics, conciergeMetrics := setupMetrics()

	// Optional collaborators degrade to in-memory or offline behavior when
	// their backing service is not configured.
	redisClient := bootstrap.BuildRedisClient(ctx, cfg, logger, true)
	transcripts := livesession.NewTranscriptStore(redisClient)

	pool := bootstrap.BuildPgxPool(ctx, cfg, logger)
	var repo bookings.Repository
	if pool != nil {
		repo = bookings.NewPostgresRepository(pool)
		logger.Info("bookings persistence: postgres")
	} else {
		repo = bookings.NewInMemoryRepository()
		logger.Info("bookings persistence: in-memory")
	}
	bookingsSvc := bookings.NewService(repo, logger)

	llm := bootstrap.BuildConciergeLLM(ctx, cfg, logger)
	conciergeSvc := concierge.NewService(llm, conciergeMetrics, logger)

	emailSender := bootstrap.BuildEmailSender(cfg, logger)

	monitor := schedule.NewMonitor(schedule.SystemClock{}, cfg.PollInterval, sessionMetrics, logger)
	go monitor.Run(ctx)

	core := app.New(app.Options{
		Monitor:        monitor,
		Bookings:       bookingsSvc,
		Concierge:      conciergeSvc,
		Transcripts:    transcripts,
		Metrics:        sessionMetrics,
		HostJoinDelay:  cfg.HostJoinDelay,
		AutoReplyDelay: cfg.AutoReplyDelay,
		Capturer:       livesession.SimulatedCapturer{},
		Logger:         logger,
	})

	courier := booking.NewCourier(cfg.PublicBaseURL, emailSender, logger)
	adminSvc := admin.NewService(admin.NewStore(), emailSender, admin.BookingSubscribers{
		List: func(ctx context.Context) ([]admin.Subscriber, error) {
			all, err := bookingsSvc.List(ctx, "")
			if err != nil {
				return nil, err
			}
			subs := make([]admin.Subscriber, 0, len(all))
			for _, b := range all {
				subs = append(subs, admin.Subscriber{Name: b.UserName, Email: b.UserEmail})
			}
			return subs, nil
		},
	}, logger)

	r := router.New(&router.Config{
		Logger:             logger,
		Catalog:            handlers.NewCatalogHandler(),
		Chat:               handlers.NewChatHandler(conciergeSvc, logger),
		Bookings:           handlers.NewBookingsHandler(core, booking.NewSimulatedProcessor(booking.DefaultProcessingDelay), courier, logger),
		Sessions:           handlers.NewSessionsHandler(core, transcripts, logger),
		Live:               handlers.NewLiveSessionHandler(core, logger),
		Admin:              handlers.NewAdminHandler(adminSvc, logger),
		AdminAuthSecret:    cfg.AdminJWTSecret,
		MetricsHandler:     metricsHandler,
		CORSAllowedOrigins: splitOrigins(cfg.CORSAllowedOrigins),
	})

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

	<-ctx.Done()
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	core.Shutdown()
	if llm != nil {
		_ = llm.Close()
	}
	if pool != nil {
		pool.Close()
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}

	logger.Info("server stopped")
}

// setupMetrics registers the app's collectors on a fresh registry and
// returns the scrape handler alongside the typed metric sets.
func setupMetrics() (http.Handler, *metrics.SessionMetrics, *metrics.ConciergeMetrics) {
	registry := prometheus.NewRegistry()
	sessionMetrics := metrics.NewSessionMetrics(registry)
	conciergeMetrics := metrics.NewConciergeMetrics(registry)
	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return handler, sessionMetrics, conciergeMetrics
}

func splitOrigins(raw string) []string {
	var out []string
	for _, origin := range strings.Split(raw, ",") {
		if o := strings.TrimSpace(origin); o != "" {
			out = append(out, o)
		}
	}
	return out
}
