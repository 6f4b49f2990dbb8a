package testdb

import (
	"context"
	"sync"
	"testing"
	"time"

	"edu-turkish-backend/internal/config"
	"edu-turkish-backend/internal/database"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	sharedContainer *PostgresContainer
	sharedErr       error
	sharedOnce      sync.Once
)

// PostgresContainer wraps the postgres testcontainer and a migrated gorm handle.
type PostgresContainer struct {
	Container *postgres.PostgresContainer
	DB        *database.Database
	DSN       string
}

// SetupSharedPostgres starts one PostgreSQL container for the whole test binary
// and runs the catalog migrations on it. Tests are skipped in -short mode and
// when no container runtime is available.
//
// Tests using the shared container cannot run in parallel.
func SetupSharedPostgres(t *testing.T) *PostgresContainer {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	sharedOnce.Do(func() {
		sharedContainer, sharedErr = start(context.Background())
	})
	require.NoError(t, sharedErr)

	return sharedContainer
}

func start(ctx context.Context) (*PostgresContainer, error) {
	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, err
	}

	gdb, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, err
	}

	if err := database.Migrate(gdb); err != nil {
		return nil, err
	}

	return &PostgresContainer{
		Container: pgContainer,
		DB:        database.New(gdb, config.DatabaseConfig{QueryTimeout: 10 * time.Second}),
		DSN:       dsn,
	}, nil
}

// CleanupTables truncates the given tables and resets their sequences.
func CleanupTables(t *testing.T, db *gorm.DB, tables ...string) {
	t.Helper()

	for _, table := range tables {
		err := db.Exec("TRUNCATE " + table + " RESTART IDENTITY CASCADE").Error
		require.NoError(t, err, "failed to truncate table: %s", table)
	}
}
