package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"

	"github.com/yigit/campushub/internal/config"
	"github.com/yigit/campushub/internal/pkg/helpers"
	"github.com/yigit/campushub/internal/pkg/logger"
)

// PostgresDB database connection structure
type PostgresDB struct {
	Pool *pgxpool.Pool
}

// NewPostgresDB creates a new PostgreSQL connection pool. The initial
// connection attempt is retried a bounded number of times with a fixed delay,
// which covers the case where the database container is still starting up.
// Exhausting the retries fails startup.
func NewPostgresDB(cfg *config.Config) (*PostgresDB, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgxpool config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.Database.MaxConns)
	poolConfig.MinConns = int32(cfg.Database.MinConns)
	poolConfig.MaxConnLifetime = helpers.ParseDuration(cfg.Database.ConnMaxLifetime, time.Hour)

	if cfg.Database.LogQueries {
		poolConfig.ConnConfig.Tracer = &tracelog.TraceLog{
			Logger:   &queryLogger{},
			LogLevel: tracelog.LogLevelDebug,
		}
	}

	retries := cfg.Database.ConnectRetries
	delay := cfg.RetryDelayDuration()

	var pool *pgxpool.Pool
	for attempt := 1; ; attempt++ {
		pool, err = connect(poolConfig)
		if err == nil {
			break
		}

		if attempt >= retries {
			return nil, fmt.Errorf("database unreachable after %d attempts: %w", retries, err)
		}

		logger.Warn().Err(err).
			Int("attempt", attempt).
			Int("retries", retries).
			Dur("delay", delay).
			Msg("Database connection failed, retrying")
		time.Sleep(delay)
	}

	return &PostgresDB{Pool: pool}, nil
}

// connect creates a pool and smoke-tests the connection.
func connect(poolConfig *pgxpool.Config) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	return pool, nil
}

// Close closing method
func (db *PostgresDB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}

// TransactionFn is a function that executes within a transaction
type TransactionFn func(ctx context.Context, tx pgx.Tx) error

// WithTransaction runs a function within a transaction. The transaction is
// rolled back when fn returns an error or panics, committed otherwise.
func (db *PostgresDB) WithTransaction(ctx context.Context, fn TransactionFn) error {
	// Add timeout to context if not already present
	_, hasDeadline := ctx.Deadline()
	if !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
	}

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Rollback on panic
	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			logger.Error().Err(rbErr).Msg("Failed to rollback transaction")
			return fmt.Errorf("error: %v, rollback error: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// queryLogger adapts zerolog to the pgx tracelog interface so SQL statements
// can be echoed when log_queries is enabled.
type queryLogger struct{}

func (l *queryLogger) Log(ctx context.Context, level tracelog.LogLevel, msg string, data map[string]interface{}) {
	var event *zerolog.Event
	switch level {
	case tracelog.LogLevelTrace, tracelog.LogLevelDebug:
		event = logger.Debug()
	case tracelog.LogLevelInfo:
		event = logger.Info()
	case tracelog.LogLevelWarn:
		event = logger.Warn()
	default:
		event = logger.Error()
	}

	event.Fields(data).Msg(msg)
}
