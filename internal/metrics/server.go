package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/logger"
)

const readHeaderTimeout = 5 * time.Second

// Server exposes /metrics for the background services
type Server struct {
	listenAddress string
}

// NewServer creates a metrics server listening on listenAddress
func NewServer(listenAddress string) *Server {
	return &Server{listenAddress: listenAddress}
}

// Handler returns the Prometheus scrape handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// Run serves until ctx is cancelled
func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())

	httpServer := &http.Server{
		Addr:              s.listenAddress,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()
		if err := httpServer.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to shut down metrics server"))
		}
	}()

	logger.InfoCtx(ctx, "Metrics server started", zap.String("address", s.listenAddress))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve metrics: %w", err)
	}
	return nil
}
