package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"mailassist/internal/models"

	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned when a requested log row does not exist.
var ErrNotFound = errors.New("email log not found")

const logColumns = "id, user_input, email_type, recipient, context, response_to, tone, length, subject, body, created_at"

// LogStore persists email generation log rows. Rows are append-only; nothing
// updates them after creation.
type LogStore struct {
	db     *sqlx.DB
	driver string
}

// NewLogStore creates a log store and ensures its table exists
func NewLogStore(db *sqlx.DB) (*LogStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required for log store")
	}

	store := &LogStore{db: db, driver: db.DriverName()}
	if err := store.createTable(); err != nil {
		return nil, fmt.Errorf("failed to create email_logs table: %w", err)
	}
	return store, nil
}

func (s *LogStore) createTable() error {
	idColumn := "id INTEGER PRIMARY KEY AUTOINCREMENT"
	switch s.driver {
	case "postgres":
		idColumn = "id BIGSERIAL PRIMARY KEY"
	case "mysql":
		idColumn = "id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY"
	}

	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS email_logs (
		%s,
		user_input TEXT NOT NULL,
		email_type VARCHAR(64) NOT NULL,
		recipient VARCHAR(255) NOT NULL,
		context TEXT NOT NULL,
		response_to TEXT NOT NULL,
		tone VARCHAR(32) NOT NULL,
		length VARCHAR(16) NOT NULL,
		subject TEXT NOT NULL,
		body TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`, idColumn)

	if _, err := s.db.Exec(query); err != nil {
		return err
	}

	// MySQL has no IF NOT EXISTS for indexes; a duplicate-index error here is
	// harmless on restart.
	indexQuery := `CREATE INDEX IF NOT EXISTS idx_email_logs_created_at ON email_logs(created_at)`
	if s.driver == "mysql" {
		indexQuery = `CREATE INDEX idx_email_logs_created_at ON email_logs(created_at)`
	}
	_, _ = s.db.Exec(indexQuery)

	return nil
}

// Create durably stores one log row and returns it with the server-assigned
// identifier and creation timestamp filled in.
func (s *LogStore) Create(ctx context.Context, record models.EmailLog) (*models.EmailLog, error) {
	record.CreatedAt = time.Now().UTC()

	query := `INSERT INTO email_logs
		(user_input, email_type, recipient, context, response_to, tone, length, subject, body, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	args := []interface{}{
		record.UserInput, record.EmailType, record.Recipient, record.Context,
		record.ResponseTo, record.Tone, record.Length, record.Subject,
		record.Body, record.CreatedAt,
	}

	if s.driver == "postgres" {
		query = s.db.Rebind(query + " RETURNING id")
		if err := s.db.QueryRowxContext(ctx, query, args...).Scan(&record.ID); err != nil {
			return nil, fmt.Errorf("failed to create email log: %w", err)
		}
		return &record, nil
	}

	result, err := s.db.ExecContext(ctx, s.db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to create email log: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read email log id: %w", err)
	}
	record.ID = id

	return &record, nil
}

// ListRecent returns up to limit rows, newest first.
func (s *LogStore) ListRecent(ctx context.Context, limit int) ([]models.EmailLog, error) {
	if limit <= 0 {
		limit = 20
	}

	query := s.db.Rebind(fmt.Sprintf(
		`SELECT %s FROM email_logs ORDER BY created_at DESC, id DESC LIMIT ?`, logColumns))

	var logs []models.EmailLog
	if err := s.db.SelectContext(ctx, &logs, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list email logs: %w", err)
	}

	// Return an empty slice, not nil
	if logs == nil {
		logs = []models.EmailLog{}
	}
	return logs, nil
}

// Get returns one log row by id, or ErrNotFound.
func (s *LogStore) Get(ctx context.Context, id int64) (*models.EmailLog, error) {
	query := s.db.Rebind(fmt.Sprintf(`SELECT %s FROM email_logs WHERE id = ?`, logColumns))

	var record models.EmailLog
	if err := s.db.GetContext(ctx, &record, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get email log: %w", err)
	}
	return &record, nil
}

// Count returns the total number of log rows.
func (s *LogStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM email_logs`); err != nil {
		return 0, fmt.Errorf("failed to count email logs: %w", err)
	}
	return count, nil
}

// CountByField groups rows by the given column and returns per-value counts,
// highest first. Only known grouping columns are accepted.
func (s *LogStore) CountByField(ctx context.Context, field string) ([]models.FieldCount, error) {
	switch field {
	case "email_type", "tone":
	default:
		return nil, fmt.Errorf("unsupported grouping field: %s", field)
	}

	query := fmt.Sprintf(
		`SELECT %s AS value, COUNT(*) AS count FROM email_logs GROUP BY %s ORDER BY count DESC, value ASC`,
		field, field)

	var counts []models.FieldCount
	if err := s.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("failed to aggregate email logs by %s: %w", field, err)
	}
	return counts, nil
}
