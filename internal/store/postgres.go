// Package store provides storage backends for Healing Guru.
//
// This file implements a PostgreSQL-backed store.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "embed"

	_ "github.com/lib/pq"
	"github.com/rootedlightwithin-create/Healing-Guru/internal/models"
)

// Database connection pool configuration constants
const (
	// DefaultMaxOpenConns is the default maximum number of open connections to the database
	DefaultMaxOpenConns = 25
	// DefaultMaxIdleConns is the default maximum number of idle connections in the pool
	DefaultMaxIdleConns = 25
	// DefaultConnMaxLifetime is the default maximum amount of time a connection may be reused
	DefaultConnMaxLifetime = 5 * time.Minute
)

//go:embed migrations_postgres.sql
var postgresMigrations string

type PostgresStore struct {
	db *sql.DB
}

// Compile-time check that PostgresStore implements Store.
var _ Store = (*PostgresStore)(nil)

// NewPostgresStore creates a new Postgres store based on provided options.
func NewPostgresStore(opts ...Option) (*PostgresStore, error) {
	// Apply options
	var cfg Opts
	for _, opt := range opts {
		opt(&cfg)
	}
	slog.Debug("PostgresStore.NewPostgresStore: creating Postgres store", "DSN_set", cfg.DSN != "")
	// Determine DSN (required)
	dsn := cfg.DSN
	if dsn == "" {
		slog.Error("PostgresStore DSN not set")
		return nil, fmt.Errorf("database DSN not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		slog.Error("Failed to open Postgres connection", "error", err)
		return nil, err
	}

	// Configure connection pool for better performance
	db.SetMaxOpenConns(DefaultMaxOpenConns)
	db.SetMaxIdleConns(DefaultMaxIdleConns)
	db.SetConnMaxLifetime(DefaultConnMaxLifetime)

	if err := db.Ping(); err != nil {
		slog.Error("Postgres ping failed", "error", err)
		db.Close()
		return nil, err
	}
	slog.Debug("Postgres ping successful")

	if _, err := db.Exec(postgresMigrations); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	slog.Debug("Postgres migrations applied successfully")
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) AddMessage(ctx context.Context, m models.Message) error {
	if m.UserID == "" {
		return ErrUserRequired
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO messages (user_id, role, content, timestamp) VALUES ($1, $2, $3, $4)`,
		m.UserID, string(m.Role), m.Content, stamp(m.Timestamp))
	if err != nil {
		slog.Error("PostgresStore AddMessage failed", "error", err, "user_id", m.UserID)
		return fmt.Errorf("failed to insert message for %s: %w", m.UserID, err)
	}
	return nil
}

func (s *PostgresStore) RecentMessages(ctx context.Context, userID string, limit int) ([]models.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, role, content, timestamp FROM messages WHERE user_id = $1 ORDER BY id DESC`+limitClause(limit), userID)
	if err != nil {
		slog.Error("PostgresStore RecentMessages query failed", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()
	return scanMessages(rows, userID)
}

func (s *PostgresStore) ListMessages(ctx context.Context, userID string) ([]models.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, role, content, timestamp FROM messages WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		slog.Error("PostgresStore ListMessages query failed", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()
	return scanMessages(rows, userID)
}

func (s *PostgresStore) AddInsight(ctx context.Context, in models.Insight) error {
	if in.UserID == "" {
		return ErrUserRequired
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO insights (user_id, pattern_type, description, detected_at) VALUES ($1, $2, $3, $4)`,
		in.UserID, in.PatternType, nilIfEmpty(in.Description), stamp(in.DetectedAt))
	if err != nil {
		slog.Error("PostgresStore AddInsight failed", "error", err, "user_id", in.UserID)
		return fmt.Errorf("failed to insert insight: %w", err)
	}
	return nil
}

func (s *PostgresStore) InsightSummary(ctx context.Context, userID string) ([]models.InsightSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT pattern_type, COUNT(*) AS count, MAX(detected_at) AS last_seen
		FROM insights WHERE user_id = $1
		GROUP BY pattern_type ORDER BY count DESC, last_seen DESC`, userID)
	if err != nil {
		slog.Error("PostgresStore InsightSummary query failed", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to query insights: %w", err)
	}
	defer rows.Close()
	return scanInsightSummaries(rows)
}

func (s *PostgresStore) AddJournalEntry(ctx context.Context, j models.JournalEntry) (int64, error) {
	if j.UserID == "" {
		return 0, ErrUserRequired
	}
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO journal (user_id, emotion, intensity, content, timestamp)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		j.UserID, nilIfEmpty(j.Emotion), j.Intensity, j.Content, stamp(j.Timestamp)).Scan(&id)
	if err != nil {
		slog.Error("PostgresStore AddJournalEntry failed", "error", err, "user_id", j.UserID)
		return 0, fmt.Errorf("failed to insert journal entry: %w", err)
	}
	return id, nil
}

func (s *PostgresStore) ListJournalEntries(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, emotion, intensity, content, timestamp FROM journal WHERE user_id = $1 ORDER BY id DESC`, userID)
	if err != nil {
		slog.Error("PostgresStore ListJournalEntries query failed", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer rows.Close()
	return scanJournal(rows, userID)
}

func (s *PostgresStore) AddCheckIn(ctx context.Context, c models.CheckIn) (int64, error) {
	if c.UserID == "" {
		return 0, ErrUserRequired
	}
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO checkins (user_id, emotion, intensity, trigger, body_sensations, thoughts, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		c.UserID, c.Emotion, c.Intensity, nilIfEmpty(c.Trigger), nilIfEmpty(c.BodySensations),
		nilIfEmpty(c.Thoughts), stamp(c.Timestamp)).Scan(&id)
	if err != nil {
		slog.Error("PostgresStore AddCheckIn failed", "error", err, "user_id", c.UserID)
		return 0, fmt.Errorf("failed to insert check-in: %w", err)
	}
	return id, nil
}

func (s *PostgresStore) ListCheckIns(ctx context.Context, userID string) ([]models.CheckIn, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, emotion, intensity, trigger, body_sensations, thoughts, timestamp
		FROM checkins WHERE user_id = $1 ORDER BY id DESC`, userID)
	if err != nil {
		slog.Error("PostgresStore ListCheckIns query failed", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to query check-ins: %w", err)
	}
	defer rows.Close()
	return scanCheckIns(rows, userID)
}

func (s *PostgresStore) UpsertPattern(ctx context.Context, userID, patternType string) error {
	if userID == "" {
		return ErrUserRequired
	}
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO patterns (user_id, pattern_type, description, frequency, first_noticed, last_occurred)
		VALUES ($1, $2, $3, 1, $4, $4)
		ON CONFLICT (user_id, pattern_type)
		DO UPDATE SET frequency = patterns.frequency + 1, last_occurred = EXCLUDED.last_occurred`,
		userID, patternType, patternDescription(patternType), now)
	if err != nil {
		slog.Error("PostgresStore UpsertPattern failed", "error", err, "user_id", userID, "pattern", patternType)
		return fmt.Errorf("failed to upsert pattern %s: %w", patternType, err)
	}
	return nil
}

func (s *PostgresStore) ListPatterns(ctx context.Context, userID string) ([]models.PatternRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT pattern_type, description, frequency, first_noticed, last_occurred
		FROM patterns WHERE user_id = $1 ORDER BY frequency DESC, pattern_type`, userID)
	if err != nil {
		slog.Error("PostgresStore ListPatterns query failed", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to query patterns: %w", err)
	}
	defer rows.Close()
	return scanPatterns(rows, userID)
}

func (s *PostgresStore) AddProgress(ctx context.Context, p models.ProgressEntry) error {
	if p.UserID == "" {
		return ErrUserRequired
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO progress (user_id, tool_used, effectiveness, notes, timestamp) VALUES ($1, $2, $3, $4, $5)`,
		p.UserID, p.ToolUsed, p.Effectiveness, nilIfEmpty(p.Notes), stamp(p.Timestamp))
	if err != nil {
		slog.Error("PostgresStore AddProgress failed", "error", err, "user_id", p.UserID)
		return fmt.Errorf("failed to insert progress: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListProgress(ctx context.Context, userID string, limit int) ([]models.ProgressEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, tool_used, effectiveness, notes, timestamp FROM progress WHERE user_id = $1 ORDER BY id DESC`+limitClause(limit), userID)
	if err != nil {
		slog.Error("PostgresStore ListProgress query failed", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to query progress: %w", err)
	}
	defer rows.Close()
	return scanProgress(rows, userID)
}

// DeleteUserData removes every row for userID in a single transaction.
func (s *PostgresStore) DeleteUserData(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrUserRequired
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete failed: %w", err)
	}
	defer tx.Rollback()
	for _, stmt := range deleteUserStatements("$1") {
		if _, err := tx.ExecContext(ctx, stmt, userID); err != nil {
			slog.Error("PostgresStore DeleteUserData failed", "error", err, "user_id", userID)
			return fmt.Errorf("delete user data failed: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete failed: %w", err)
	}
	slog.Debug("PostgresStore DeleteUserData succeeded", "user_id", userID)
	return nil
}

// Close closes the PostgreSQL database connection.
func (s *PostgresStore) Close() error {
	slog.Debug("Closing PostgreSQL database connection")
	err := s.db.Close()
	if err != nil {
		slog.Error("Failed to close PostgreSQL database", "error", err)
	} else {
		slog.Debug("PostgreSQL database connection closed successfully")
	}
	return err
}
