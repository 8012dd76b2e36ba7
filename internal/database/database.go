package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/polyglot-quiz/backend/internal/config"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Connect opens the Postgres pool. The returned error reports a failed ping;
// the handle is still usable and will reconnect lazily, so callers may keep
// serving and let individual queries fail.
func Connect(cfg config.Database) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return db, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Migrate applies the embedded schema migrations.
func Migrate(db *sql.DB) error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

var migrateFn = Migrate

// MigrateUntilApplied retries Migrate every interval until it succeeds or ctx
// is done. onErr, when set, sees each failed attempt. It lets a server that
// booted while Postgres was unreachable pick up its schema once the database
// comes back.
func MigrateUntilApplied(ctx context.Context, db *sql.DB, interval time.Duration, onErr func(error)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		err := migrateFn(db)
		if err == nil {
			return nil
		}
		if onErr != nil {
			onErr(err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// ConnectMongo creates a client for the given URI. Like Connect, a failed
// ping is reported alongside a usable client.
func ConnectMongo(ctx context.Context, cfg config.Mongo) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return client, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return client, nil
}
