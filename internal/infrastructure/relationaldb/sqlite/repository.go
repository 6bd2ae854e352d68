// Package sqlite provides a SQLite implementation of the EventJournal interface.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ersonp/dragon-clan/internal/domain/entities"
	"github.com/ersonp/dragon-clan/internal/domain/ports"
)

// generateUUID returns a new UUID string.
func generateUUID() string {
	return uuid.New().String()
}

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// Repository implements ports.EventJournal using SQLite.
type Repository struct {
	db    *sql.DB
	path  string
	runID string
}

// NewRepository opens the journal database at path. ":memory:" is accepted for tests.
func NewRepository(path string) (*Repository, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// A single connection keeps ":memory:" databases alive across queries.
	db.SetMaxOpenConns(1)

	// Enable foreign keys for referential integrity
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	// Enable WAL mode for better concurrent read/write performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// RunID returns the current run, empty before StartRun.
func (r *Repository) RunID() string {
	return r.runID
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- Simulation runs (one per CLI session)
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		clan_name TEXT NOT NULL,
		seed TEXT NOT NULL,
		started_at TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);

	-- Clan events (append only)
	CREATE TABLE IF NOT EXISTS events (
		id TEXT PRIMARY KEY,
		run_id TEXT REFERENCES runs(id) ON DELETE CASCADE,
		kind TEXT NOT NULL,
		payload TEXT,
		created_at TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_events_run ON events(run_id);
	CREATE INDEX IF NOT EXISTS idx_events_kind ON events(kind);
	CREATE INDEX IF NOT EXISTS idx_events_created ON events(created_at);
	`

	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// StartRun records a new run and tags subsequent events with it.
func (r *Repository) StartRun(ctx context.Context, clanName string, seed uint64) (string, error) {
	id := generateUUID()
	query := `INSERT INTO runs (id, clan_name, seed, started_at) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, id, clanName, strconv.FormatUint(seed, 10), timeNow().UTC()); err != nil {
		return "", fmt.Errorf("starting run: %w", err)
	}
	r.runID = id
	return id, nil
}

// ListRuns returns recorded runs with their event counts, newest first.
func (r *Repository) ListRuns(ctx context.Context, limit int) ([]entities.Run, error) {
	if limit <= 0 {
		limit = -1
	}
	query := `
		SELECT r.id, r.clan_name, r.seed, r.started_at, COUNT(e.id)
		FROM runs r
		LEFT JOIN events e ON e.run_id = r.id
		GROUP BY r.id
		ORDER BY r.started_at DESC, r.rowid DESC
		LIMIT ?
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []entities.Run
	for rows.Next() {
		var run entities.Run
		var seed string
		if err := rows.Scan(&run.ID, &run.ClanName, &seed, &run.StartedAt, &run.Events); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if run.Seed, err = strconv.ParseUint(seed, 10, 64); err != nil {
			return nil, fmt.Errorf("parsing run seed: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Emit appends an event to the journal.
func (r *Repository) Emit(ctx context.Context, kind entities.EventKind, payload map[string]any) error {
	var payloadJSON sql.NullString
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshaling payload: %w", err)
		}
		payloadJSON = sql.NullString{String: string(data), Valid: true}
	}

	var runID sql.NullString
	if r.runID != "" {
		runID = sql.NullString{String: r.runID, Valid: true}
	}

	query := `INSERT INTO events (id, run_id, kind, payload, created_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, generateUUID(), runID, string(kind), payloadJSON, timeNow().UTC())
	if err != nil {
		return fmt.Errorf("journaling %s event: %w", kind, err)
	}
	return nil
}

// List returns events matching filter, newest first.
func (r *Repository) List(ctx context.Context, filter ports.EventFilter) ([]entities.Event, error) {
	var (
		where []string
		args  []any
	)
	if filter.Kind != "" {
		where = append(where, "kind = ?")
		args = append(args, string(filter.Kind))
	}
	if filter.RunID != "" {
		where = append(where, "run_id LIKE ?")
		args = append(args, filter.RunID+"%")
	}

	query := `SELECT id, run_id, kind, payload, created_at FROM events`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, rowid DESC LIMIT ?"

	limit := filter.Limit
	if limit <= 0 {
		limit = -1
	}
	args = append(args, limit)

	return r.queryEvents(ctx, query, filter.Limit, args...)
}

// Count returns the number of events of kind, or of every kind when kind is empty.
func (r *Repository) Count(ctx context.Context, kind entities.EventKind) (int, error) {
	query := `SELECT COUNT(*) FROM events`
	var args []any
	if kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, string(kind))
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting events: %w", err)
	}
	return count, nil
}

// queryEvents is a helper to execute event queries.
func (r *Repository) queryEvents(ctx context.Context, query string, capacity int, args ...any) ([]entities.Event, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	var events []entities.Event
	if capacity > 0 {
		events = make([]entities.Event, 0, capacity)
	}

	for rows.Next() {
		var event entities.Event
		var kind string
		var runID, payload sql.NullString

		if err := rows.Scan(
			&event.ID,
			&runID,
			&kind,
			&payload,
			&event.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}

		event.Kind = entities.EventKind(kind)
		event.RunID = runID.String

		if payload.Valid && payload.String != "" {
			if err := json.Unmarshal([]byte(payload.String), &event.Payload); err != nil {
				return nil, fmt.Errorf("unmarshaling payload: %w", err)
			}
		}

		events = append(events, event)
	}
	return events, rows.Err()
}
