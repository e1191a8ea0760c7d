package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/hostsctl/hostsctl/src/internal/log"
)

// Server represents the API server
type Server struct {
	httpServer *http.Server
}

// NewServer creates a new API server
func NewServer(bindAddr string, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         bindAddr,
			Handler:      handler,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Serve accepts connections on l until Stop is called.
func (s *Server) Serve(l net.Listener) error {
	log.Infof("[API] Listening on http://%s", l.Addr())

	if err := s.httpServer.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Start listens on the configured address and serves until Stop is called.
func (s *Server) Start() error {
	l, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(l)
}

// Stop gracefully stops the API server
func (s *Server) Stop(ctx context.Context) error {
	log.Infof("[API] Shutting down server...")
	return s.httpServer.Shutdown(ctx)
}
