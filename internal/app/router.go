package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/carbonfootprint-backend/internal/auth"
	"github.com/heartmarshall/carbonfootprint-backend/internal/config"
	"github.com/heartmarshall/carbonfootprint-backend/internal/transport/middleware"
	"github.com/heartmarshall/carbonfootprint-backend/internal/transport/rest"
)

// newRouter registers every route and wraps the mux in the middleware chain:
// Recovery, RequestID, Logger, CORS, then Auth when a JWT secret is set.
// Only the two calculate routes are rate limited.
func newRouter(
	cfg *config.Config,
	logger *slog.Logger,
	fp *rest.FootprintHandler,
	health *rest.HealthHandler,
	limiter *middleware.RateLimiter,
) http.Handler {
	limit := middleware.Chain(middleware.When(cfg.RateLimit.Enabled(), limiter.Limit(cfg.RateLimit.CalculatePerMinute)))

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.Handle("POST /api/calculate/personal", limit(http.HandlerFunc(fp.CalculatePersonal)))
	mux.Handle("POST /api/calculate/industrial", limit(http.HandlerFunc(fp.CalculateIndustrial)))
	mux.HandleFunc("GET /api/emission-factors", fp.Factors)

	mux.HandleFunc("GET /api/emissions/summary", fp.Summary)
	mux.HandleFunc("GET /api/emissions/personal", fp.ListPersonal)
	mux.HandleFunc("GET /api/emissions/personal/{id}", fp.GetPersonal)
	mux.HandleFunc("GET /api/emissions/personal/{id}/report", fp.PersonalReport)
	mux.HandleFunc("GET /api/emissions/industrial", fp.ListIndustrial)
	mux.HandleFunc("GET /api/emissions/industrial/{id}", fp.GetIndustrial)
	mux.HandleFunc("GET /api/emissions/industrial/{id}/report", fp.IndustrialReport)

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.When(cfg.Auth.Enabled(), middleware.Auth(jwt)),
	)(mux)
}
