package ferrox

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/rdppathak/ferrox/core/logger"
	"github.com/rdppathak/ferrox/core/server"
)

// Server owns the route table lifecycle: it drains a collector, builds the
// frozen registry, and serves HTTP through the transport adapter. The
// registry build completes before the listener accepts its first connection;
// after that the table is read-only for the life of the process.
type Server struct {
	collector *Collector
	log       *slog.Logger
	httpOpts  []server.Option

	mu         sync.Mutex
	dispatcher *Dispatcher
	registry   *Registry
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithCollector uses an explicit collector instead of the package default.
func WithCollector(c *Collector) ServerOption {
	return func(s *Server) {
		s.collector = c
	}
}

// WithLogger sets the logger used by the dispatcher and transport.
func WithLogger(log *slog.Logger) ServerOption {
	return func(s *Server) {
		s.log = log
	}
}

// WithHTTPOptions forwards options to the underlying HTTP server.
func WithHTTPOptions(opts ...server.Option) ServerOption {
	return func(s *Server) {
		s.httpOpts = append(s.httpOpts, opts...)
	}
}

// NewServer creates a server over the default collector. Options may swap
// the collector, the logger, and the HTTP transport settings.
func NewServer(opts ...ServerOption) *Server {
	s := &Server{
		collector: DefaultCollector,
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler drains the collector and builds the frozen registry on first call,
// then returns the transport handler. Later calls reuse the frozen table, so
// matching behavior never changes once traffic is flowing.
func (s *Server) Handler() (http.Handler, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dispatcher == nil {
		reg, err := BuildRegistry(s.collector.Drain())
		if err != nil {
			return nil, err
		}
		for _, rt := range reg.Routes() {
			s.log.Info("route registered", logger.Method(rt.Method), logger.Path(rt.Template))
		}
		s.registry = reg
		s.dispatcher = NewDispatcher(reg, s.log)
	}
	return &transport{dispatcher: s.dispatcher, log: s.log}, nil
}

// Routes builds the registry if needed and returns the registered routes in
// declaration order.
func (s *Server) Routes() ([]Route, error) {
	if _, err := s.Handler(); err != nil {
		return nil, err
	}
	return s.registry.Routes(), nil
}

// Start builds and freezes the registry, then serves on addr until the
// context is canceled or the listener fails. A build failure is returned
// before any connection is accepted.
func (s *Server) Start(ctx context.Context, addr string) error {
	h, err := s.Handler()
	if err != nil {
		return err
	}

	opts := append([]server.Option{server.WithLogger(s.log)}, s.httpOpts...)
	return server.New(addr, opts...).Start(ctx, h)
}
