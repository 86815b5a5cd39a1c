package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/feral-file/ff-market/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	ReplicaHost     string        `mapstructure:"replica_host"`       // Optional read replica; reads go there when set
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	ConsumerName   string        `mapstructure:"consumer_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
	AckWait        time.Duration `mapstructure:"ack_wait"`
	MaxDeliver     int           `mapstructure:"max_deliver"`
}

// NetworkConfig holds the descriptor used to register the network with a wallet provider
type NetworkConfig struct {
	ChainID      uint64 `mapstructure:"chain_id"`
	Name         string `mapstructure:"name"`
	RPCURL       string `mapstructure:"rpc_url"`
	NativeName   string `mapstructure:"native_name"`
	NativeSymbol string `mapstructure:"native_symbol"`
	ExplorerURL  string `mapstructure:"explorer_url"`
}

// Network converts the configuration into a domain network descriptor
func (c NetworkConfig) Network() domain.Network {
	return domain.Network{
		ChainID:        c.ChainID,
		Name:           c.Name,
		RPCURL:         c.RPCURL,
		NativeName:     c.NativeName,
		NativeSymbol:   c.NativeSymbol,
		NativeDecimals: domain.NATIVE_DECIMALS,
		ExplorerURL:    c.ExplorerURL,
	}
}

// ContractsConfig holds the deployed contract addresses
type ContractsConfig struct {
	Marketplace string `mapstructure:"marketplace"`
	Collection  string `mapstructure:"collection"`
	OfferBook   string `mapstructure:"offer_book"`
}

// BlockCacheConfig holds the chain head and block timestamp cache settings
type BlockCacheConfig struct {
	HeadTTL            time.Duration `mapstructure:"head_ttl"`
	StaleWindow        time.Duration `mapstructure:"stale_window"`
	TimestampCacheSize int           `mapstructure:"timestamp_cache_size"`
}

// ChainConfig holds chain connectivity and contract configuration
type ChainConfig struct {
	WebSocketURL        string           `mapstructure:"websocket_url"`
	RPCURL              string           `mapstructure:"rpc_url"`
	ChainID             domain.Chain     `mapstructure:"chain_id"`
	StartBlock          uint64           `mapstructure:"start_block"`
	ConfirmationTimeout time.Duration    `mapstructure:"confirmation_timeout"`
	BuyGasLimit         uint64           `mapstructure:"buy_gas_limit"`
	BlockCache          BlockCacheConfig `mapstructure:"block_cache"`
	Network             NetworkConfig    `mapstructure:"network"`
	Contracts           ContractsConfig  `mapstructure:"contracts"`
}

// SignerConfig holds the signer backend of one wallet kind.
// Either PrivateKey or KeystorePath must be set for the kind to be usable.
type SignerConfig struct {
	PrivateKey         string `mapstructure:"private_key"`
	KeystorePath       string `mapstructure:"keystore_path"`
	KeystorePassphrase string `mapstructure:"keystore_passphrase"`
}

// Configured reports whether the signer has a backend
func (c SignerConfig) Configured() bool {
	return c.PrivateKey != "" || c.KeystorePath != ""
}

// WalletsConfig holds signer backends keyed by wallet kind
type WalletsConfig struct {
	MetaMask SignerConfig `mapstructure:"metamask"`
	OKX      SignerConfig `mapstructure:"okx"`
	Bitget   SignerConfig `mapstructure:"bitget"`
}

// Signer returns the signer configuration for a wallet kind
func (c WalletsConfig) Signer(kind domain.WalletKind) (SignerConfig, bool) {
	var s SignerConfig
	switch kind {
	case domain.WalletKindMetaMask:
		s = c.MetaMask
	case domain.WalletKindOKX:
		s = c.OKX
	case domain.WalletKindBitget:
		s = c.Bitget
	default:
		return SignerConfig{}, false
	}
	return s, s.Configured()
}

// AdminConfig holds the marketplace administrator settings
type AdminConfig struct {
	Address string `mapstructure:"address"`
}

// TemporalConfig holds Temporal configuration
type TemporalConfig struct {
	HostPort                           string  `mapstructure:"host_port"`
	Namespace                          string  `mapstructure:"namespace"`
	TaskQueue                          string  `mapstructure:"task_queue"`
	MaxConcurrentActivityExecutionSize int     `mapstructure:"max_concurrent_activity_execution_size"`
	WorkerActivitiesPerSecond          float64 `mapstructure:"worker_activities_per_second"`
	MaxConcurrentActivityTaskPollers   int     `mapstructure:"max_concurrent_activity_task_pollers"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds

	// CORSAllowOrigins restricts browser origins; empty allows all
	CORSAllowOrigins []string `mapstructure:"cors_allow_origins"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// RateLimitConfig holds per-client limits for the workflow routes
type RateLimitConfig struct {
	// RedisAddr enables the distributed limiter; empty keeps limits per process
	RedisAddr         string `mapstructure:"redis_addr"`
	RedisPassword     string `mapstructure:"redis_password"`
	RedisDB           int    `mapstructure:"redis_db"`
	KeyPrefix         string `mapstructure:"key_prefix"`
	RequestsPerMinute int    `mapstructure:"requests_per_minute"`
	Burst             int    `mapstructure:"burst"`
	LocalCacheSize    int    `mapstructure:"local_cache_size"`

	HealthCheckInterval time.Duration `mapstructure:"health_check_interval"`
}

// Enabled reports whether workflow routes are rate limited
func (c RateLimitConfig) Enabled() bool {
	return c.RequestsPerMinute > 0
}

// MetadataConfig holds token metadata resolution settings for tokens minted outside the marketplace
type MetadataConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	IPFSGateways    []string      `mapstructure:"ipfs_gateways"`
	ArweaveGateways []string      `mapstructure:"arweave_gateways"`
	HTTPTimeout     time.Duration `mapstructure:"http_timeout"`
	MaxRetryTime    time.Duration `mapstructure:"max_retry_time"`
}

// CloudflareConfig holds Cloudflare Images configuration
type CloudflareConfig struct {
	AccountID string `mapstructure:"account_id"`
	APIToken  string `mapstructure:"api_token"`
}

// MediaConfig holds media upload configuration
type MediaConfig struct {
	// Provider is "local" or "cloudflare"
	Provider      string           `mapstructure:"provider"`
	Bucket        string           `mapstructure:"bucket"`
	LocalDir      string           `mapstructure:"local_dir"`
	PublicBaseURL string           `mapstructure:"public_base_url"`
	MaxSize       int64            `mapstructure:"max_size"`
	Cloudflare    CloudflareConfig `mapstructure:"cloudflare"`
}

// FeedConfig holds live feed configuration
type FeedConfig struct {
	Channel          string        `mapstructure:"channel"`
	ClientBufferSize int           `mapstructure:"client_buffer_size"`
	HistoryLimit     int           `mapstructure:"history_limit"`
	DedupeSize       int           `mapstructure:"dedupe_size"`
	ReconnectMaxWait time.Duration `mapstructure:"reconnect_max_wait"`
}

// MetricsConfig holds the prometheus listener configuration
type MetricsConfig struct {
	ListenAddress string `mapstructure:"listen_address"`
}

// WorkerConfig holds worker pool configuration
type WorkerConfig struct {
	WorkerPoolSize  int `mapstructure:"pool_size"`
	WorkerQueueSize int `mapstructure:"queue_size"`
}

// DriftSweeperConfig holds configuration for the listing/offer drift sweeper
type DriftSweeperConfig struct {
	Interval  time.Duration `mapstructure:"interval"`
	BatchSize int           `mapstructure:"batch_size"`
	// StaleIntentAge is how long an intent may stay pending or submitted before the sweeper settles it
	StaleIntentAge time.Duration `mapstructure:"stale_intent_age"`
	Worker         WorkerConfig  `mapstructure:"worker"`
}

// EmitterConfig holds configuration for marketplace-event-emitter
type EmitterConfig struct {
	BaseConfig      `mapstructure:",squash"`
	Database        DatabaseConfig `mapstructure:"database"`
	NATS            NATSConfig     `mapstructure:"nats"`
	Chain           ChainConfig    `mapstructure:"chain"`
	Metrics         MetricsConfig  `mapstructure:"metrics"`
	CursorSaveFreq  int            `mapstructure:"cursor_save_freq"`
	CursorSaveDelay time.Duration  `mapstructure:"cursor_save_delay"`
}

// EventBridgeConfig holds configuration for event-bridge
type EventBridgeConfig struct {
	BaseConfig `mapstructure:",squash"`
	NATS       NATSConfig     `mapstructure:"nats"`
	Temporal   TemporalConfig `mapstructure:"temporal"`
}

// WorkerCoreConfig holds configuration for worker-core
type WorkerCoreConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	Temporal   TemporalConfig `mapstructure:"temporal"`
	Chain      ChainConfig    `mapstructure:"chain"`
	Metadata   MetadataConfig `mapstructure:"metadata"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig    `mapstructure:"server"`
	Database   DatabaseConfig  `mapstructure:"database"`
	Auth       AuthConfig      `mapstructure:"auth"`
	Chain      ChainConfig     `mapstructure:"chain"`
	Wallets    WalletsConfig   `mapstructure:"wallets"`
	Admin      AdminConfig     `mapstructure:"admin"`
	Media      MediaConfig     `mapstructure:"media"`
	Feed       FeedConfig      `mapstructure:"feed"`
	RateLimit  RateLimitConfig `mapstructure:"rate_limit"`
}

// SweeperConfig holds configuration for the sweeper program
type SweeperConfig struct {
	BaseConfig   `mapstructure:",squash"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Chain        ChainConfig        `mapstructure:"chain"`
	Metrics      MetricsConfig      `mapstructure:"metrics"`
	DriftSweeper DriftSweeperConfig `mapstructure:"drift_sweeper"`
}

// LoadEmitterConfig loads configuration for marketplace-event-emitter
func LoadEmitterConfig(configFile string, envPath string) (*EmitterConfig, error) {
	v := configureViper("marketplace-event-emitter", configFile, envPath)

	setDatabaseDefaults(v)
	setNATSDefaults(v)
	setChainDefaults(v)
	v.SetDefault("cursor_save_freq", 10)
	v.SetDefault("cursor_save_delay", "5s")

	var config EmitterConfig
	if err := readAndUnmarshal(v, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadEventBridgeConfig loads configuration for event-bridge
func LoadEventBridgeConfig(configFile string, envPath string) (*EventBridgeConfig, error) {
	v := configureViper("event-bridge", configFile, envPath)

	setNATSDefaults(v)
	v.SetDefault("nats.consumer_name", "event-bridge")
	v.SetDefault("nats.ack_wait", "30s")
	v.SetDefault("nats.max_deliver", 3)
	setTemporalDefaults(v)

	var config EventBridgeConfig
	if err := readAndUnmarshal(v, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadWorkerCoreConfig loads configuration for worker-core
func LoadWorkerCoreConfig(configFile string, envPath string) (*WorkerCoreConfig, error) {
	v := configureViper("worker-core", configFile, envPath)

	setDatabaseDefaults(v)
	setTemporalDefaults(v)
	setChainDefaults(v)
	v.SetDefault("temporal.max_concurrent_activity_task_pollers", 10)
	v.SetDefault("metadata.enabled", true)
	v.SetDefault("metadata.ipfs_gateways", []string{"https://ipfs.io", "https://dweb.link", "https://nftstorage.link"})
	v.SetDefault("metadata.arweave_gateways", []string{"https://arweave.net"})
	v.SetDefault("metadata.http_timeout", "15s")
	v.SetDefault("metadata.max_retry_time", "30s")

	var config WorkerCoreConfig
	if err := readAndUnmarshal(v, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 120) // workflows wait for confirmations
	v.SetDefault("server.idle_timeout", 120)
	setDatabaseDefaults(v)
	setChainDefaults(v)
	v.SetDefault("media.provider", "local")
	v.SetDefault("media.bucket", domain.DEFAULT_MEDIA_BUCKET)
	v.SetDefault("media.local_dir", "data/media")
	v.SetDefault("media.public_base_url", "http://localhost:8080/media")
	v.SetDefault("media.max_size", 20*1024*1024) // 20MB
	v.SetDefault("feed.channel", "transactions_inserted")
	v.SetDefault("feed.client_buffer_size", 32)
	v.SetDefault("feed.history_limit", 20)
	v.SetDefault("feed.dedupe_size", 4096)
	v.SetDefault("feed.reconnect_max_wait", "30s")
	v.SetDefault("rate_limit.key_prefix", "ff:market:limiter:")
	v.SetDefault("rate_limit.requests_per_minute", 30)
	v.SetDefault("rate_limit.burst", 10)
	v.SetDefault("rate_limit.local_cache_size", 10000)
	v.SetDefault("rate_limit.health_check_interval", "10s")

	var config APIConfig
	if err := readAndUnmarshal(v, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadSweeperConfig loads configuration for the sweeper program
func LoadSweeperConfig(configFile string, envPath string) (*SweeperConfig, error) {
	v := configureViper("sweeper", configFile, envPath)

	setDatabaseDefaults(v)
	setChainDefaults(v)
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	v.SetDefault("drift_sweeper.interval", "5m")
	v.SetDefault("drift_sweeper.batch_size", 100)
	v.SetDefault("drift_sweeper.stale_intent_age", "15m")
	v.SetDefault("drift_sweeper.worker.pool_size", 8)
	v.SetDefault("drift_sweeper.worker.queue_size", 256)

	var cfg SweeperConfig
	if err := readAndUnmarshal(v, &cfg); err != nil {
		return nil, err
	}

	// Validate required fields
	if cfg.Database.Host == "" {
		return nil, errors.New("database.host is required")
	}
	if cfg.Database.DBName == "" {
		return nil, errors.New("database.dbname is required")
	}

	return &cfg, nil
}

func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
}

func setNATSDefaults(v *viper.Viper) {
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "MARKETPLACE_EVENTS")
}

func setTemporalDefaults(v *viper.Viper) {
	v.SetDefault("temporal.host_port", "localhost:7233")
	v.SetDefault("temporal.namespace", "default")
	v.SetDefault("temporal.task_queue", "marketplace-reconcile")
	v.SetDefault("temporal.max_concurrent_activity_execution_size", 50)
	v.SetDefault("temporal.worker_activities_per_second", 50)
}

func setChainDefaults(v *viper.Viper) {
	v.SetDefault("chain.chain_id", string(domain.ChainHeliosTestnet))
	v.SetDefault("chain.rpc_url", domain.HeliosTestnet.RPCURL)
	v.SetDefault("chain.confirmation_timeout", "3m")
	v.SetDefault("chain.buy_gas_limit", 300000)
	v.SetDefault("chain.block_cache.head_ttl", "2s")
	v.SetDefault("chain.block_cache.stale_window", "30s")
	v.SetDefault("chain.block_cache.timestamp_cache_size", 4096)
	v.SetDefault("chain.network.chain_id", domain.HeliosTestnet.ChainID)
	v.SetDefault("chain.network.name", domain.HeliosTestnet.Name)
	v.SetDefault("chain.network.rpc_url", domain.HeliosTestnet.RPCURL)
	v.SetDefault("chain.network.native_name", domain.HeliosTestnet.NativeName)
	v.SetDefault("chain.network.native_symbol", domain.HeliosTestnet.NativeSymbol)
	v.SetDefault("chain.network.explorer_url", domain.HeliosTestnet.ExplorerURL)
	v.SetDefault("chain.contracts.marketplace", domain.DEFAULT_MARKETPLACE_ADDRESS)
	v.SetDefault("chain.contracts.collection", domain.DEFAULT_COLLECTION_ADDRESS)
	v.SetDefault("chain.contracts.offer_book", domain.DEFAULT_OFFER_BOOK_ADDRESS)
}

// readAndUnmarshal reads the config file, tolerating a missing one, and decodes it into out
func readAndUnmarshal(v *viper.Viper, out interface{}) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		var pathErr *os.PathError
		if !errors.As(err, &notFound) && !errors.As(err, &pathErr) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use environment variables
	}

	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("FF_MARKET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.replica_host",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.consumer_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"nats.ack_wait",
		"nats.max_deliver",
		// Chain
		"chain.websocket_url",
		"chain.rpc_url",
		"chain.chain_id",
		"chain.start_block",
		"chain.confirmation_timeout",
		"chain.buy_gas_limit",
		"chain.block_cache.head_ttl",
		"chain.block_cache.stale_window",
		"chain.block_cache.timestamp_cache_size",
		"chain.network.chain_id",
		"chain.network.name",
		"chain.network.rpc_url",
		"chain.network.native_name",
		"chain.network.native_symbol",
		"chain.network.explorer_url",
		"chain.contracts.marketplace",
		"chain.contracts.collection",
		"chain.contracts.offer_book",
		// Temporal
		"temporal.host_port",
		"temporal.namespace",
		"temporal.task_queue",
		"temporal.max_concurrent_activity_execution_size",
		"temporal.worker_activities_per_second",
		"temporal.max_concurrent_activity_task_pollers",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.cors_allow_origins",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Admin
		"admin.address",
		// Media
		"media.provider",
		"media.bucket",
		"media.local_dir",
		"media.public_base_url",
		"media.max_size",
		"media.cloudflare.account_id",
		"media.cloudflare.api_token",
		// Feed
		"feed.channel",
		"feed.client_buffer_size",
		"feed.history_limit",
		"feed.dedupe_size",
		"feed.reconnect_max_wait",
		// Metadata
		"metadata.enabled",
		"metadata.ipfs_gateways",
		"metadata.arweave_gateways",
		"metadata.http_timeout",
		"metadata.max_retry_time",
		// Rate limit
		"rate_limit.redis_addr",
		"rate_limit.redis_password",
		"rate_limit.redis_db",
		"rate_limit.key_prefix",
		"rate_limit.requests_per_minute",
		"rate_limit.burst",
		"rate_limit.local_cache_size",
		"rate_limit.health_check_interval",
		// Metrics
		"metrics.listen_address",
		// Emitter
		"cursor_save_freq",
		"cursor_save_delay",
		// Drift sweeper
		"drift_sweeper.interval",
		"drift_sweeper.batch_size",
		"drift_sweeper.stale_intent_age",
		"drift_sweeper.worker.pool_size",
		"drift_sweeper.worker.queue_size",
	}

	for _, kind := range []domain.WalletKind{domain.WalletKindMetaMask, domain.WalletKindOKX, domain.WalletKindBitget} {
		keys = append(keys,
			fmt.Sprintf("wallets.%s.private_key", kind),
			fmt.Sprintf("wallets.%s.keystore_path", kind),
			fmt.Sprintf("wallets.%s.keystore_passphrase", kind),
		)
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		_ = godotenv.Overload(filepath.Join(envPath, envFile)) // later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// ReplicaDSN returns the read replica connection string, empty when no replica is configured
func (c *DatabaseConfig) ReplicaDSN() string {
	if c.ReplicaHost == "" {
		return ""
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.ReplicaHost, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
