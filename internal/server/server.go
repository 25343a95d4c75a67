// Package server assembles handlers and middleware into the HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/iudanet/gophmedia/internal/server/config"
	"github.com/iudanet/gophmedia/internal/server/handlers"
	"github.com/iudanet/gophmedia/internal/server/middleware"
	"github.com/iudanet/gophmedia/internal/server/site"
	"github.com/iudanet/gophmedia/internal/server/storage"
	"github.com/iudanet/gophmedia/internal/server/stream"
	"github.com/iudanet/gophmedia/internal/server/token"
)

const (
	readHeaderTimeout = 10 * time.Second
	idleTimeout       = 60 * time.Second
	healthPath        = "/api/health"
)

// Storage is everything the API needs from persistence
type Storage interface {
	storage.UserStorage
	storage.SiteStorage
	handlers.Pinger
}

// Options собирает зависимости сервера
type Options struct {
	Logger  *slog.Logger
	Config  *config.Config
	Storage Storage
	State   *site.State
	Codec   *token.Codec
	Tracks  handlers.TrackExtractor
}

// Server is the HTTP front of the media gateway
type Server struct {
	logger  *slog.Logger
	cfg     *config.Config
	limiter *middleware.RateLimiter
	handler http.Handler
}

// New builds the route table and the middleware chain
func New(opts Options) *Server {
	s := &Server{
		logger:  opts.Logger,
		cfg:     opts.Config,
		limiter: middleware.NewRateLimiter(opts.Config.LoginRate, opts.Config.LoginWindow, opts.Logger),
	}

	streamer := stream.NewStreamer(opts.Logger, opts.Config.ChunkSize)

	authHandler := handlers.NewAuthHandler(opts.Logger, opts.Storage, opts.State, opts.Codec, opts.Config.BcryptCost)
	setupHandler := handlers.NewSetupHandler(opts.Logger, opts.Storage, opts.Storage, opts.State, opts.Config.BcryptCost)
	filesHandler := handlers.NewFilesHandler(opts.Logger, opts.State, streamer, opts.Tracks, opts.Config.TextMaxBytes)
	healthHandler := handlers.NewHealthHandler(opts.Logger, opts.Storage)

	session := middleware.SessionMiddleware(opts.Logger, opts.Codec, opts.State)
	protected := func(h http.HandlerFunc) http.Handler { return session(h) }

	mux := http.NewServeMux()

	// Публичные эндпоинты
	mux.HandleFunc("GET "+healthPath, healthHandler.Health)
	mux.HandleFunc("GET /api/setup", setupHandler.Status)
	mux.HandleFunc("POST /api/setup", setupHandler.Setup)
	mux.Handle("POST /api/login", s.limiter.Middleware(opts.Config.TrustProxy)(http.HandlerFunc(authHandler.Login)))

	// refresh проверяет свою cookie сам, signout доступен всегда
	mux.HandleFunc("GET /api/user/refresh", authHandler.Refresh)
	mux.HandleFunc("GET /api/user/signout", authHandler.Signout)

	// Защищенные эндпоинты
	mux.Handle("PUT /api/user/password", protected(authHandler.ChangePassword))
	mux.Handle("GET /api/dir", protected(filesHandler.Dir))
	mux.Handle("GET /api/file/track", protected(filesHandler.Track))
	mux.Handle("GET /api/file/text", protected(filesHandler.Text))
	mux.Handle("GET "+handlers.FilePrefix+"{path...}", protected(filesHandler.File))

	// recovery внутри logging: паника попадает в лог запроса как 500 с request id
	var h http.Handler = mux
	h = middleware.SecurityHeaders(h)
	h = middleware.RecoveryMiddleware(opts.Logger)(h)
	h = middleware.LoggingWithSkip(opts.Logger, []string{healthPath})(h)
	s.handler = h

	return s
}

// Handler returns the fully wrapped API handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Close releases background resources of the middleware chain
func (s *Server) Close() {
	s.limiter.Stop()
}

// Run listens on the configured address until ctx is cancelled
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln. When ctx is cancelled in-flight requests
// get ShutdownTimeout to finish.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer s.Close()

	// WriteTimeout не задан: медленное, но живое воспроизведение не обрывается
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelWarn),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.InfoContext(ctx, "server listening", slog.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", slog.Duration("timeout", s.cfg.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
