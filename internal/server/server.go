// Package server собирает HTTP сервер walklog: маршруты, middleware,
// хранилище и фоновую очистку отозванных токенов.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iudanet/walklog/internal/server/config"
	"github.com/iudanet/walklog/internal/server/handlers"
	"github.com/iudanet/walklog/internal/server/jwt"
	"github.com/iudanet/walklog/internal/server/metrics"
	"github.com/iudanet/walklog/internal/server/middleware"
	"github.com/iudanet/walklog/internal/server/storage"
	"github.com/iudanet/walklog/internal/server/storage/postgres"
	"github.com/iudanet/walklog/internal/server/storage/sqlite"
)

const readHeaderTimeout = 10 * time.Second

// Server HTTP сервер walklog
type Server struct {
	storage    storage.Storage
	logger     *slog.Logger
	metrics    *metrics.Metrics
	limiter    *middleware.PathRateLimiter
	httpServer *http.Server
	now        func() time.Time
	cfg        config.Config
}

// New собирает сервер поверх открытого хранилища
func New(cfg config.Config, st storage.Storage, logger *slog.Logger, version string) *Server {
	s := &Server{
		cfg:     cfg,
		storage: st,
		logger:  logger,
		metrics: metrics.New(),
		now:     time.Now,
	}

	s.limiter = middleware.NewPathRateLimiter([]middleware.PathRateLimit{
		{Prefix: "/api/", Requests: cfg.RateLimit.Requests, Window: cfg.RateLimit.Window},
		{Prefix: "/api/auth/register", Requests: cfg.RateLimit.AuthRequests, Window: cfg.RateLimit.Window},
		{Prefix: "/api/auth/login", Requests: cfg.RateLimit.AuthRequests, Window: cfg.RateLimit.Window},
	}, logger)

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.routes(version),
		ReadHeaderTimeout: readHeaderTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return s
}

// routes регистрирует маршруты и оборачивает их в middleware
func (s *Server) routes(version string) http.Handler {
	jwtService := jwt.NewService(s.cfg.JWTSecret, s.cfg.JWTTTL)

	healthHandler := handlers.NewHealthHandler(s.logger, s.storage, version)
	authHandler := handlers.NewAuthHandler(s.logger, s.storage, s.storage, jwtService, s.cfg.BcryptCost, s.metrics)
	walkHandler := handlers.NewWalkHandler(s.logger, s.storage, s.metrics)

	requireAuth := middleware.AuthMiddleware(s.logger, jwtService, s.storage, s.storage)
	protected := func(h http.HandlerFunc) http.Handler {
		return requireAuth(h)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("GET /metrics", s.metrics.Handler())

	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.Handle("GET /api/auth/verify", protected(authHandler.Verify))
	mux.Handle("POST /api/auth/logout", protected(authHandler.Logout))

	mux.Handle("GET /api/walks", protected(walkHandler.List))
	mux.Handle("POST /api/walks", protected(walkHandler.Create))
	mux.Handle("POST /api/walks/sync", protected(walkHandler.Sync))
	mux.Handle("DELETE /api/walks/all", protected(walkHandler.DeleteAll))
	mux.Handle("DELETE /api/walks/{date}", protected(walkHandler.Delete))
	mux.Handle("GET /api/stats", protected(walkHandler.Stats))

	mux.Handle("/", handlers.NotFound(s.logger))

	// metrics должен стоять снаружи limiter и CORS, чтобы видеть шаблон маршрута от ServeMux
	var handler http.Handler = mux
	handler = s.limiter.Middleware(handler)
	handler = middleware.CORSMiddleware(s.cfg.CORSOrigins)(handler)
	handler = middleware.MetricsMiddleware(s.metrics)(handler)
	handler = middleware.LoggingWithSkip(s.logger, []string{"/health", "/metrics"})(handler)
	handler = middleware.RecoveryMiddleware(s.logger)(handler)

	return handler
}

// Handler корневой HTTP handler со всеми middleware
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run слушает cfg.Addr до отмены ctx
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve обслуживает запросы на ln до отмены ctx, затем корректно завершает работу
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer s.limiter.Stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.InfoContext(gctx, "server listening", slog.String("addr", ln.Addr().String()))
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down server", slog.Duration("timeout", s.cfg.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		s.cleanupTokens(gctx)
		return nil
	})

	return g.Wait()
}

// cleanupTokens периодически удаляет истекшие записи об отозванных токенах
func (s *Server) cleanupTokens(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.TokenCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.purgeExpiredTokens(ctx)
		}
	}
}

func (s *Server) purgeExpiredTokens(ctx context.Context) {
	deleted, err := s.storage.DeleteExpiredTokens(ctx, s.now())
	if err != nil {
		if ctx.Err() == nil {
			s.logger.ErrorContext(ctx, "failed to delete expired tokens", slog.Any("error", err))
		}
		return
	}
	if deleted > 0 {
		s.logger.InfoContext(ctx, "expired revoked tokens deleted", slog.Int("count", deleted))
	}
}

// OpenStorage открывает хранилище по cfg.DatabaseURL и применяет миграции
func OpenStorage(ctx context.Context, cfg config.Config) (storage.Storage, error) {
	switch cfg.Driver() {
	case config.DriverPostgres:
		st, err := postgres.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return st, nil
	default:
		st, err := sqlite.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return st, nil
	}
}

// NewLogger создает логгер сервера в формате text или json
func NewLogger(w io.Writer, cfg config.Config) (*slog.Logger, error) {
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// Run открывает хранилище и обслуживает запросы до отмены ctx
func Run(ctx context.Context, cfg config.Config, logger *slog.Logger, version string) error {
	st, err := OpenStorage(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.Error("failed to close storage", slog.Any("error", err))
		}
	}()

	logger.InfoContext(ctx, "storage opened", slog.String("driver", cfg.Driver()))

	return New(cfg, st, logger, version).Run(ctx)
}
