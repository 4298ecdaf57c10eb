package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL log store
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"           // PostgreSQL log store
	_ "github.com/mattn/go-sqlite3" // SQLite log store (default, file-backed)
)

// New creates a new database connection. The driver is detected from the URL:
// postgres:// and postgresql:// use PostgreSQL, a DSN containing @tcp( uses
// MySQL, anything else is treated as a SQLite file path.
func New(databaseURL string) (*sqlx.DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable not set")
	}

	driver := driverFor(databaseURL)

	db, err := sqlx.Open(driver, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Connection pool settings
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func driverFor(databaseURL string) string {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"),
		strings.HasPrefix(databaseURL, "postgresql://"):
		return "postgres"
	case strings.Contains(databaseURL, "@tcp("):
		return "mysql"
	default:
		return "sqlite3"
	}
}
