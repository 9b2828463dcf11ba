package rest

import (
	"context"
	"errors"
	"log/slog"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Server is the HTTP adapter.
type Server struct {
	engine          *gin.Engine
	srv             *http.Server
	shutdownTimeout time.Duration
	log             *slog.Logger
}

// NewServer builds the gin engine around handler. Forwarding headers are
// not trusted, so client IPs in the request log are the peer addresses.
func NewServer(
	addr, allowOrigin string,
	shutdownTimeout time.Duration,
	handler *Handler,
	log *slog.Logger,
) (*Server, error) {
	engine := gin.New()
	if err := engine.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	engine.Use(gin.Recovery(), requestLogger(log), corsMiddleware(allowOrigin))
	handler.Register(engine)

	return &Server{
		engine: engine,
		srv: &http.Server{
			Addr:              addr,
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
		shutdownTimeout: shutdownTimeout,
		log:             log,
	}, nil
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("HTTP server listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	return s.srv.Shutdown(shutdownCtx)
}
