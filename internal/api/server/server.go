package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/api/graphql"
	"github.com/feral-file/ff-market/internal/api/middleware"
	"github.com/feral-file/ff-market/internal/api/rest"
	"github.com/feral-file/ff-market/internal/logger"
	"github.com/feral-file/ff-market/internal/metrics"
)

// Config holds the server configuration
type Config struct {
	Debug            bool
	Host             string
	Port             int
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	IdleTimeout      time.Duration
	CORSAllowOrigins []string
	// MediaDir is served under /media when media is stored locally
	MediaDir string
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	handler    rest.Handler
	graphql    graphql.Handler
	feed       http.HandlerFunc
	guards     []gin.HandlerFunc
	httpServer *http.Server
}

// New creates a new API server. gql serves the read-only GraphQL API and feed the
// websocket live feed, both optional; guards run in order ahead of the wallet session routes.
func New(cfg Config, handler rest.Handler, gql graphql.Handler, feed http.HandlerFunc, guards ...gin.HandlerFunc) *Server {
	return &Server{
		config:  cfg,
		handler: handler,
		graphql: gql,
		feed:    feed,
		guards:  guards,
	}
}

// Router builds the gin engine with every route
func (s *Server) Router() *gin.Engine {
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.Metrics())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS(s.config.CORSAllowOrigins))

	rest.SetupRoutes(router, s.handler, s.guards...)
	if s.graphql != nil {
		graphql.SetupRoutes(router, s.graphql)
	}

	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	if s.feed != nil {
		router.GET("/api/v1/feed", gin.WrapF(s.feed))
	}
	if s.config.MediaDir != "" {
		router.Static("/media", s.config.MediaDir)
	}

	return router
}

// Start serves until Shutdown is called
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server", zap.String("address", addr))

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
