// Package pgtest starts a disposable PostgreSQL container with the schema migrated,
// for the store-backed test suites.
package pgtest

import (
	"context"
	"fmt"
	"time"

	"logistics/migrations"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Database is a running container and a GORM handle connected to it.
type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
}

// Start runs postgres:15-alpine, opens GORM with error translation and applies migrations.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	d := &Database{Container: container}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = d.Terminate(ctx)
		return nil, err
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		_ = d.Terminate(ctx)
		return nil, err
	}
	d.DB = db

	sqlDB, err := db.DB()
	if err != nil {
		_ = d.Terminate(ctx)
		return nil, err
	}
	if _, err = migrations.Up(ctx, sqlDB); err != nil {
		_ = d.Terminate(ctx)
		return nil, err
	}

	return d, nil
}

// Truncate empties every table and resets the id sequences.
func (d *Database) Truncate(ctx context.Context) error {
	return d.DB.WithContext(ctx).Exec(`
		TRUNCATE TABLE route_assignments, shipment_metrics, shipment_status_history,
			shipments, routes, users
		RESTART IDENTITY CASCADE
	`).Error
}

// SeedUser inserts a user and returns its id.
func (d *Database) SeedUser(ctx context.Context, name, email, role string) (int64, error) {
	var id int64
	err := d.DB.WithContext(ctx).Raw(
		"INSERT INTO users (name, email, role) VALUES (?, ?, ?) RETURNING id",
		name, email, role,
	).Scan(&id).Error
	return id, err
}

// SeedRoute inserts a route and returns its id.
func (d *Database) SeedRoute(ctx context.Context, name string) (int64, error) {
	var id int64
	err := d.DB.WithContext(ctx).Raw(
		"INSERT INTO routes (name) VALUES (?) RETURNING id", name,
	).Scan(&id).Error
	return id, err
}

func (d *Database) Terminate(ctx context.Context) error {
	if d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}
