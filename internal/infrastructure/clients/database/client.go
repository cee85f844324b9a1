package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/medora/tenant-seeder/pkg/config"
	apperrors "github.com/medora/tenant-seeder/pkg/errors"
	"github.com/medora/tenant-seeder/pkg/retry"
)

// Client represents a connection pool to one tenant schema
type Client struct {
	db     *sqlx.DB
	driver string
}

// NewClient opens a small fixed-size pool against cfg.Schema and verifies it
// with exponential backoff
func NewClient(ctx context.Context, cfg *config.DatabaseConfig) (*Client, error) {
	if cfg.Schema == "" {
		return nil, apperrors.NewUsageError("tenant schema name is required")
	}

	db, err := sqlx.Open(cfg.Driver, cfg.DSN())
	if err != nil {
		return nil, apperrors.NewConnectionError("failed to open database connection", err)
	}

	poolSize := cfg.PoolSize
	if poolSize <= 0 {
		poolSize = 1
	}
	db.SetMaxOpenConns(poolSize)
	db.SetMaxIdleConns(poolSize)
	db.SetConnMaxLifetime(30 * time.Minute)

	err = retry.Do(ctx, retry.DefaultConfig(), cfg.Driver,
		func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			return db.PingContext(pingCtx)
		},
		func(attempt int, err error, nextDelay time.Duration) {
			log.Warn().Err(err).Int("attempt", attempt).Dur("retry_in", nextDelay).
				Str("host", cfg.Host).Str("schema", cfg.Schema).
				Msg("database connection attempt failed")
		},
	)
	if err != nil {
		db.Close()
		return nil, apperrors.NewConnectionError(fmt.Sprintf("failed to connect to schema %s", cfg.Schema), err)
	}

	log.Debug().Str("driver", cfg.Driver).Str("host", cfg.Host).Str("schema", cfg.Schema).
		Int("pool_size", poolSize).Msg("connected to tenant schema")
	return &Client{db: db, driver: cfg.Driver}, nil
}

// NewClientFromDB wraps an already opened handle
func NewClientFromDB(db *sql.DB, driver string) *Client {
	return &Client{db: sqlx.NewDb(db, driver), driver: driver}
}

// DB returns the underlying pool
func (c *Client) DB() *sqlx.DB {
	return c.db
}

// Driver returns the driver name, which is also the goqu dialect name
func (c *Client) Driver() string {
	return c.driver
}

// Conn checks out the single connection a seeding run uses from start to finish
func (c *Client) Conn(ctx context.Context) (*sqlx.Conn, error) {
	conn, err := c.db.Connx(ctx)
	if err != nil {
		return nil, apperrors.NewConnectionError("failed to acquire connection", err)
	}
	return conn, nil
}

// Close closes the pool
func (c *Client) Close() error {
	return c.db.Close()
}
