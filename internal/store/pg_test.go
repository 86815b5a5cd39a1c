package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	testDB *gorm.DB
	// testDBUnavailable holds the reason the mirror database could not be started
	testDBUnavailable string
)

// TestMain starts the mirror database once for the package. FF_MARKET_TEST_DSN points the
// tests at an existing database instead of a container.
func TestMain(m *testing.M) {
	ctx := context.Background()

	dsn, terminate, err := startTestDatabase(ctx)
	if err == nil {
		testDB, err = openTestDatabase(dsn)
	}
	if err != nil {
		fmt.Printf("Mirror database unavailable, store tests will skip: %v\n", err)
		testDBUnavailable = err.Error()
	}

	code := m.Run()
	terminate()
	os.Exit(code)
}

func startTestDatabase(ctx context.Context) (string, func(), error) {
	if dsn := os.Getenv("FF_MARKET_TEST_DSN"); dsn != "" {
		return dsn, func() {}, nil
	}

	return recoverDockerPanic(func() (string, func(), error) {
		return startPostgresContainer(ctx)
	})
}

// recoverDockerPanic turns the panic testcontainers raises when no Docker host can be found
// into an error
func recoverDockerPanic(start func() (string, func(), error)) (dsn string, terminate func(), err error) {
	defer func() {
		if r := recover(); r != nil {
			dsn, terminate, err = "", func() {}, fmt.Errorf("docker unavailable: %v", r)
		}
	}()
	return start()
}

func startPostgresContainer(ctx context.Context) (string, func(), error) {
	container, err := postgres.Run(ctx,
		"postgres:18-alpine",
		postgres.WithDatabase("ff_market_test"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return "", func() {}, fmt.Errorf("failed to start PostgreSQL container: %w", err)
	}

	terminate := func() {
		if err := container.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
		}
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		terminate()
		return "", func() {}, fmt.Errorf("failed to get connection string: %w", err)
	}

	return dsn, terminate, nil
}

// openTestDatabase connects and applies db/init_pg_db.sql, the same schema the services run on
func openTestDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	schemaSQL, err := os.ReadFile(filepath.Join("..", "..", "db", "init_pg_db.sql")) //nolint:gosec,G304
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if _, err := sqlDB.Exec(string(schemaSQL)); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return db, nil
}

// initPGTestDB returns a store bound to a transaction that is rolled back when the test ends
func initPGTestDB(t *testing.T) Store {
	tx := testDB.Begin()
	require.NoError(t, tx.Error)
	t.Cleanup(func() {
		tx.Rollback()
	})

	return NewPGStore(tx)
}

func TestRecoverDockerPanic(t *testing.T) {
	dsn, terminate, err := recoverDockerPanic(func() (string, func(), error) {
		panic("rootless Docker not found")
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "docker unavailable")
	require.Empty(t, dsn)
	require.NotPanics(t, terminate)

	dsn, _, err = recoverDockerPanic(func() (string, func(), error) {
		return "postgres://localhost/ff_market_test", func() {}, nil
	})
	require.NoError(t, err)
	require.Equal(t, "postgres://localhost/ff_market_test", dsn)
}

// TestPostgreSQLStore runs all store tests against PostgreSQL
func TestPostgreSQLStore(t *testing.T) {
	if testDBUnavailable != "" {
		t.Skipf("PostgreSQL unavailable: %s", testDBUnavailable)
	}

	RunStoreTests(t, initPGTestDB, func(*testing.T) {})
}
