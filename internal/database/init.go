package database

import (
	"database/sql"
	"fmt"
	"time"

	"contrib.go.opencensus.io/integrations/ocsql"
	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/courseloop/growthplane/config"
	"github.com/courseloop/growthplane/internal/database/schema"
)

// Connect opens the database connection pool. With tracing enabled the
// pq driver is wrapped so every query carries a span.
func Connect(cfg *config.DatabaseConfig, tracingEnabled bool) (*sql.DB, error) {
	driverName := "postgres"
	if tracingEnabled {
		var err error
		driverName, err = ocsql.Register(driverName, ocsql.WithAllTraceOptions())
		if err != nil {
			return nil, fmt.Errorf("failed to register traced sql driver: %w", err)
		}
	}

	db, err := sql.Open(driverName, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(20 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// InitializeDatabase creates all tables and indexes if they don't exist
func InitializeDatabase(db *sql.DB) error {
	for _, query := range schema.TableDefinitions {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	for _, query := range schema.IndexDefinitions {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}
