package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/dyluth/peyote/internal/beads"
	"github.com/dyluth/peyote/internal/config"
	"go.uber.org/zap"
)

// ResultCache memoizes recommendations. *cache.Client satisfies it.
type ResultCache interface {
	Get(ctx context.Context, n int) (beads.Result, bool, error)
	Put(ctx context.Context, result beads.Result) error
	Ping(ctx context.Context) error
}

// Server serves the bead calculator form, results pages and JSON API.
// It runs in a background goroutine once started and can be gracefully shut down.
type Server struct {
	settings config.ServerConfig
	renderer *Renderer
	cache    ResultCache
	logger   *zap.Logger

	mu       sync.Mutex
	server   *http.Server
	listener net.Listener
}

// Option customizes server construction.
type Option func(*Server)

// WithCache enables result memoization.
func WithCache(c ResultCache) Option {
	return func(s *Server) {
		if c != nil {
			s.cache = c
		}
	}
}

// WithLogger overrides the default no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewServer creates a server for the given listener settings.
//
// Parameters:
//   - settings: listener address and timeouts (already validated)
//   - renderer: parsed page templates
//   - opts: optional cache and logger
func NewServer(settings config.ServerConfig, renderer *Renderer, opts ...Option) (*Server, error) {
	if renderer == nil {
		return nil, fmt.Errorf("renderer cannot be nil")
	}

	s := &Server{
		settings: settings,
		renderer: renderer,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// Handler returns the routed handler wrapped in the standard middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/bead_results", s.handleResults)
	mux.HandleFunc("/api/suggest", s.handleAPISuggest)
	mux.HandleFunc("/healthz", s.handleHealthz)

	return withRequestID(s.withAccessLog(s.withRecovery(mux)))
}

// Start binds the TCP listener and begins serving in a background goroutine.
// Returns an error if the address cannot be bound (e.g., port already in use).
// Serve errors after startup are logged but do not stop the process.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return fmt.Errorf("server already started")
	}

	addr := s.settings.Address()
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	server := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  s.settings.ReadTimeout,
		WriteTimeout: s.settings.WriteTimeout,
		IdleTimeout:  s.settings.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}
	s.listener = listener
	s.server = server

	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("serve error", zap.Error(err))
		}
		s.logger.Debug("server stopped")
	}()

	s.logger.Info("listening", zap.String("addr", listener.Addr().String()))
	return nil
}

// Shutdown stops accepting new connections and waits for in-flight requests.
// The provided context bounds the wait.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.server == nil {
		return nil
	}

	s.logger.Debug("shutting down server")
	err := s.server.Shutdown(ctx)
	s.server = nil
	s.listener = nil
	return err
}

// Addr returns the bound address once started, or "" before that.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}
