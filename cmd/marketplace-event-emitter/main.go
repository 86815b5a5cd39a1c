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

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-market/internal/adapter"
	"github.com/feral-file/ff-market/internal/config"
	"github.com/feral-file/ff-market/internal/emitter"
	"github.com/feral-file/ff-market/internal/logger"
	"github.com/feral-file/ff-market/internal/metrics"
	"github.com/feral-file/ff-market/internal/providers/ethereum"
	"github.com/feral-file/ff-market/internal/providers/jetstream"
	"github.com/feral-file/ff-market/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadEmitterConfig(*configFile, *envPath)
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
			"service": "marketplace-event-emitter",
			"chain":   string(cfg.Chain.ChainID),
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Marketplace Event Emitter")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	logger.InfoCtx(ctx, "Connected to database")

	dataStore := store.NewPGStore(db)
	cursors := store.NewCursorStore(dataStore)

	// Initialize adapters
	clockAdapter := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	natsJS := adapter.NewNatsJetStream()

	// Log subscriptions need a websocket endpoint; plain RPC still works for catch-up polling
	endpoint := cfg.Chain.WebSocketURL
	if endpoint == "" {
		endpoint = cfg.Chain.RPCURL
		logger.WarnCtx(ctx, "Chain websocket URL not configured, falling back to RPC URL", zap.String("rpc_url", endpoint))
	}
	ethDialer := adapter.NewEthClientDialer()
	adapterEthClient, err := ethDialer.Dial(ctx, endpoint)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to dial chain", zap.Error(err), zap.String("url", endpoint))
	}
	defer adapterEthClient.Close()
	chainClient, err := ethereum.NewClient(ethereum.NewClientConfig(cfg.Chain), adapterEthClient, clockAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create chain client", zap.Error(err))
	}

	// Initialize NATS publisher
	natsPublisher, err := jetstream.NewPublisher(
		ctx,
		jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, natsJS, jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create NATS publisher", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer natsPublisher.Close()
	logger.InfoCtx(ctx, "Connected to NATS JetStream", zap.String("stream", cfg.NATS.StreamName))

	subscriber := ethereum.NewSubscriber(ethereum.SubscriberConfig{ChainID: cfg.Chain.ChainID}, chainClient)
	defer subscriber.Close()

	eventEmitter := emitter.NewEmitter(
		subscriber,
		natsPublisher,
		cursors,
		emitter.Config{
			ChainID:         cfg.Chain.ChainID,
			StartBlock:      cfg.Chain.StartBlock,
			CursorSaveFreq:  uint64(cfg.CursorSaveFreq), //nolint:gosec,G115
			CursorSaveDelay: cfg.CursorSaveDelay,
		},
		clockAdapter,
	)
	defer eventEmitter.Close()

	errCh := make(chan error, 2)
	if cfg.Metrics.ListenAddress != "" {
		go func() {
			if err := metrics.NewServer(cfg.Metrics.ListenAddress).Run(ctx); err != nil {
				errCh <- err
			}
		}()
	}
	go func() {
		if err := eventEmitter.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- err
		}
	}()

	// Wait for shutdown signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case <-natsPublisher.CloseChan():
		logger.InfoCtx(ctx, "NATS connection closed unexpectedly")
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "emitter"))
	}
	cancel()

	// Give some time for graceful shutdown
	time.Sleep(time.Second)

	// Use non-context logger for final shutdown message since context is already canceled
	logger.Info("Marketplace Event Emitter stopped")
}
