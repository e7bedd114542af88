package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"github.com/vietculture/vnlunar-calendar/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET  /health                     liveness + cache health
//	GET  /metrics                    Prometheus exposition
//	GET  /api/v1/solar-to-lunar      Gregorian -> lunar conversion
//	GET  /api/v1/lunar-to-solar      lunar -> Gregorian conversion
//	GET  /api/v1/solar-term          24-term (Tiết Khí) lookup for a date
//	GET  /api/v1/lucky-hours         six auspicious two-hour windows for a date
//	GET  /api/v1/can-chi             Sexagenary names for a date
func SetupRoutes(handlers *Handlers, cfg *config.Config, logger *slog.Logger, metrics *Metrics) http.Handler {
	r := chi.NewRouter()

	limiter := NewRateLimiter(rate.Limit(20), 40)

	r.Use(chiMiddleware(
		RecoveryMiddleware(logger),
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
		MetricsMiddleware(metrics),
		CORSMiddleware(),
		RateLimitMiddleware(limiter),
	))

	r.Get("/health", handlers.HealthCheck)
	r.Get("/metrics", metrics.Handler().ServeHTTP)

	r.Route("/api/v1", func(api chi.Router) {
		api.Get("/solar-to-lunar", handlers.SolarToLunar)
		api.Get("/lunar-to-solar", handlers.LunarToSolar)
		api.Get("/solar-term", handlers.SolarTerm)
		api.Get("/solar-term/search", handlers.SolarTermSearch)
		api.Get("/lucky-hours", handlers.LuckyHours)
		api.Get("/can-chi", handlers.CanChi)

		admin := api.With(AuthMiddleware(cfg, logger))
		admin.Post("/admin/cache/warm", handlers.WarmCache)
	})

	return r
}

// chiMiddleware adapts our ChainMiddleware-built stack to chi's
// func(http.Handler) http.Handler middleware signature.
func chiMiddleware(mw ...Middleware) func(http.Handler) http.Handler {
	return ChainMiddleware(mw...)
}

// chiRouteContext returns the matched chi route pattern for r, or "" if r
// was not served through a chi router (e.g. directly in a unit test).
func chiRouteContext(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if pattern := rc.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return ""
}
