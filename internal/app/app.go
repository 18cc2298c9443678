package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/carbonfootprint-backend/internal/config"
	"github.com/heartmarshall/carbonfootprint-backend/internal/service/footprint"
	"github.com/heartmarshall/carbonfootprint-backend/internal/service/footprint/engine"
	"github.com/heartmarshall/carbonfootprint-backend/internal/transport/middleware"
	"github.com/heartmarshall/carbonfootprint-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger, opens the configured record store and serves HTTP until ctx
// is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("store", cfg.Store.Driver),
		slog.Bool("auth", cfg.Auth.Enabled()),
	)

	a, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Serve(ctx)
}

// App is a fully wired server.
type App struct {
	cfg     *config.Config
	log     *slog.Logger
	store   *storage
	limiter *middleware.RateLimiter
	handler http.Handler
}

// New wires storage, service and transport. Call Close when done.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	store, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	svc := footprint.NewService(logger, engine.NewStandardCalculator(), store.personal, store.industrial)
	var cleanup time.Duration
	if cfg.RateLimit.Enabled() {
		cleanup = cfg.RateLimit.CleanupInterval
	}
	limiter := middleware.NewRateLimiter(cleanup)

	handler := newRouter(cfg, logger,
		rest.NewFootprintHandler(svc, logger, cfg.Server.MaxBodyBytes),
		rest.NewHealthHandler(BuildVersion(), store.checks...),
		limiter,
	)

	return &App{
		cfg:     cfg,
		log:     logger,
		store:   store,
		limiter: limiter,
		handler: handler,
	}, nil
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler {
	return a.handler
}

// Close releases the rate limiter and the store.
func (a *App) Close() {
	a.limiter.Stop()
	a.store.close()
}

// Serve listens on the configured address until ctx is cancelled.
func (a *App) Serve(ctx context.Context) error {
	addr := net.JoinHostPort(a.cfg.Server.Host, strconv.Itoa(a.cfg.Server.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return a.serve(ctx, ln)
}

// serve runs the HTTP server on ln and shuts it down gracefully once ctx
// is done. A clean shutdown returns nil.
func (a *App) serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      a.handler,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(a.log.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.Info("http server listening", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.log.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
