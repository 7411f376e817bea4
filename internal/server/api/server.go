package api

import (
	"context"
	"time"

	"github.com/avarenkov/stockpos/internal/logging"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server runs the echo HTTP server hosting the gateway API.
type Server struct {
	e      *echo.Echo
	addr   string
	logger logging.Logger
}

func NewServer(addr string, logger logging.Logger, handler *Handler) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	handler.Register(e)

	return &Server{e: e, addr: addr, logger: logger}
}

// Run starts the server and blocks until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		errCh <- s.e.Start(s.addr)
	}()

	s.logger.Info(ctx, "gateway listening", "addr", s.addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.e.Shutdown(shutdownCtx)
	}
}
