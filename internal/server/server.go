package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/sstatic/internal/logger"
	"golang.org/x/sync/errgroup"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handler http.Handler, addr string, logger *logger.Logger) (Server, error) {
	if handler == nil {
		return nil, errNoHandler
	}

	logger.Info().Str("address", addr).Msg("creating new server...")
	return &server{
		httpServer: newHTTPServer(handler, addr, logger),
		logger:     logger,
	}, nil
}

func (s *server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	ln, err := net.Listen("tcp", s.httpServer.server.Addr)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", s.httpServer.server.Addr, err)
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.httpServer.serve(ln)
	})

	g.Go(func() error {
		<-gCtx.Done()
		s.logger.Info().Msg("stopping server...")
		return s.httpServer.shutdown()
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}

	s.logger.Info().Msg("server stopped")
	return nil
}
