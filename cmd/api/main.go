package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-market/internal/adapter"
	"github.com/feral-file/ff-market/internal/api/graphql"
	"github.com/feral-file/ff-market/internal/api/middleware"
	"github.com/feral-file/ff-market/internal/api/rest"
	"github.com/feral-file/ff-market/internal/api/server"
	"github.com/feral-file/ff-market/internal/api/shared/executor"
	"github.com/feral-file/ff-market/internal/config"
	"github.com/feral-file/ff-market/internal/feed"
	"github.com/feral-file/ff-market/internal/logger"
	"github.com/feral-file/ff-market/internal/marketplace"
	"github.com/feral-file/ff-market/internal/media"
	mediaprovider "github.com/feral-file/ff-market/internal/media/provider"
	"github.com/feral-file/ff-market/internal/providers/cloudflare"
	"github.com/feral-file/ff-market/internal/providers/ethereum"
	"github.com/feral-file/ff-market/internal/ratelimit"
	"github.com/feral-file/ff-market/internal/store"
	"github.com/feral-file/ff-market/internal/wallet"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Feral File Market API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	if err := store.RegisterReadReplica(db, cfg.Database.ReplicaDSN()); err != nil {
		logger.FatalCtx(ctx, "Failed to register read replica", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Bool("read_replica", cfg.Database.ReplicaHost != ""),
	)

	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	hasher := adapter.NewCanonicalHasher()
	fs := adapter.NewFileSystem()
	ethDialer := adapter.NewEthClientDialer()

	// Chain gateway
	ethClient, err := ethDialer.Dial(ctx, cfg.Chain.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to dial chain RPC", zap.Error(err), zap.String("rpc_url", cfg.Chain.RPCURL))
	}
	defer ethClient.Close()
	chainClient, err := ethereum.NewClient(ethereum.NewClientConfig(cfg.Chain), ethClient, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create chain client", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to chain RPC", zap.String("chain", string(cfg.Chain.ChainID)))

	// Wallet session
	network := cfg.Chain.Network.Network()
	walletProvider, err := wallet.NewRPCProvider(ctx, ethDialer, cfg.Chain.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create wallet provider", zap.Error(err))
	}
	defer walletProvider.Close()
	session := wallet.NewSession()
	connector := wallet.NewConnector(cfg.Wallets, network, walletProvider, session, nil)

	// Media storage
	var (
		storage  mediaprovider.Provider
		mediaDir string
	)
	switch cfg.Media.Provider {
	case cloudflare.CLOUDFLARE_PROVIDER_NAME:
		cfClient, err := adapter.NewCloudflareClient(cfg.Media.Cloudflare.APIToken)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create Cloudflare client", zap.Error(err))
		}
		storage = cloudflare.NewMediaProvider(cfClient, cloudflare.Config{AccountID: cfg.Media.Cloudflare.AccountID})
	default:
		storage = mediaprovider.NewLocalProvider(fs, mediaprovider.LocalConfig{
			Dir:           cfg.Media.LocalDir,
			Bucket:        cfg.Media.Bucket,
			PublicBaseURL: cfg.Media.PublicBaseURL,
		})
		mediaDir = cfg.Media.LocalDir
	}
	uploader := media.NewUploader(storage, clock, media.Config{MaxSize: cfg.Media.MaxSize})
	logger.InfoCtx(ctx, "Initialized media storage", zap.String("provider", storage.Name()))

	// Live feed
	listener := feed.NewPGListener(feed.ListenerConfig{
		DSN:     cfg.Database.DSN(),
		Channel: cfg.Feed.Channel,
		MaxWait: cfg.Feed.ReconnectMaxWait,
	}, adapter.NewPGNotifyDialer(), clock)
	hub, err := feed.NewHub(feed.Config{
		ClientBufferSize: cfg.Feed.ClientBufferSize,
		HistoryLimit:     cfg.Feed.HistoryLimit,
		DedupeSize:       cfg.Feed.DedupeSize,
	}, dataStore, listener)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create feed hub", zap.Error(err))
	}
	unsubscribe := session.Subscribe(hub.PublishSession)
	defer unsubscribe()

	// Reconciliation workflows
	service := marketplace.NewService(
		marketplace.Config{
			Chain:        cfg.Chain.ChainID,
			BuyGasLimit:  cfg.Chain.BuyGasLimit,
			AdminAddress: cfg.Admin.Address,
		},
		chainClient,
		dataStore,
		session,
		uploader,
		hasher,
		jsonAdapter,
		clock,
		marketplace.Reporters{marketplace.NewLogReporter(), hub},
	)

	// Guard the routes that drive the wallet session when credentials are configured
	var guard gin.HandlerFunc
	authCfg := middleware.AuthConfig{JWTPublicKey: cfg.Auth.JWTPublicKey, APIKeys: cfg.Auth.APIKeys}
	if authCfg.Enabled() {
		authenticator, err := middleware.NewAuthenticator(authCfg)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create authenticator", zap.Error(err))
		}
		guard = middleware.Auth(authenticator)
	} else {
		logger.WarnCtx(ctx, "No API credentials configured, workflow routes are open")
	}

	// Per-client limits on the workflow routes, shared through Redis when configured
	var limitGuard gin.HandlerFunc
	if cfg.RateLimit.Enabled() {
		var redisClient adapter.RedisClient
		if cfg.RateLimit.RedisAddr != "" {
			redisClient = adapter.NewRedisClient(cfg.RateLimit.RedisAddr, cfg.RateLimit.RedisPassword, cfg.RateLimit.RedisDB)
		}
		limiter, err := ratelimit.NewLimiter(cfg.RateLimit, redisClient, clock)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create rate limiter", zap.Error(err))
		}
		defer limiter.Close()
		limitGuard = middleware.RateLimit(limiter)
	}

	exec := executor.NewExecutor(dataStore, service, connector, network)
	gqlHandler, err := graphql.NewHandler(exec)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create GraphQL handler", zap.Error(err))
	}
	srv := server.New(server.Config{
		Debug:            cfg.Debug,
		Host:             cfg.Server.Host,
		Port:             cfg.Server.Port,
		ReadTimeout:      time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:     time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:      time.Duration(cfg.Server.IdleTimeout) * time.Second,
		CORSAllowOrigins: cfg.Server.CORSAllowOrigins,
		MediaDir:         mediaDir,
	}, rest.NewHandler(exec, cfg.Media.MaxSize), gqlHandler, hub.ServeWS, guard, limitGuard)

	errCh := make(chan error, 2)
	go func() {
		if err := hub.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- fmt.Errorf("feed: %w", err)
		}
	}()
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "api"))
	}
	cancel()

	// The original ctx is cancelled, shut down on a fresh one
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}
	connector.Disconnect()

	logger.Info("API server stopped")
}
