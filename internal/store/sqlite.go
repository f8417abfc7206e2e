// Package store provides storage backends for Healing Guru.
//
// This file implements an SQLite-backed store for conversations, check-ins and progress.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "embed"

	"github.com/mattn/go-sqlite3"
	"github.com/rootedlightwithin-create/Healing-Guru/internal/models"
)

// Constants for SQLite store configuration
const (
	// DefaultDirPermissions defines the default permissions for database directories
	DefaultDirPermissions = 0755
)

//go:embed migrations_sqlite.sql
var sqliteMigrations string

type SQLiteStore struct {
	db *sql.DB
}

// Compile-time check that SQLiteStore implements Store.
var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore creates a new SQLite store with the given DSN.
// The DSN should be a file path to the SQLite database file.
// If the directory doesn't exist, it will be created.
func NewSQLiteStore(opts ...Option) (*SQLiteStore, error) {
	// Apply options
	var cfg Opts
	for _, opt := range opts {
		opt(&cfg)
	}
	slog.Debug("NewSQLiteStore invoked", "DSN_set", cfg.DSN != "")

	// Determine DSN (required)
	dsn := cfg.DSN
	if dsn == "" {
		slog.Error("SQLiteStore DSN not set")
		return nil, fmt.Errorf("database DSN not set")
	}

	// Ensure the directory exists
	dir := filepath.Dir(dsn)
	if err := os.MkdirAll(dir, DefaultDirPermissions); err != nil {
		slog.Error("Failed to create database directory", "error", err, "dir", dir)
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}
	slog.Debug("SQLite database directory verified/created", "dir", dir)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		slog.Error("Failed to open SQLite connection", "error", err)
		return nil, err
	}
	// SQLite allows a single writer; one connection avoids SQLITE_BUSY under concurrent chats.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		slog.Error("SQLite ping failed", "error", err)
		db.Close()
		return nil, err
	}
	slog.Debug("SQLite ping successful")

	if _, err := db.Exec(sqliteMigrations); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	slog.Debug("SQLite migrations applied successfully")

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) AddMessage(ctx context.Context, m models.Message) error {
	if m.UserID == "" {
		return ErrUserRequired
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO messages (user_id, role, content, timestamp) VALUES (?, ?, ?, ?)`,
		m.UserID, string(m.Role), m.Content, stamp(m.Timestamp))
	if err != nil {
		slog.Error("SQLiteStore AddMessage failed", "error", err, "user_id", m.UserID)
		return fmt.Errorf("failed to insert message for %s: %w", m.UserID, err)
	}
	return nil
}

func (s *SQLiteStore) RecentMessages(ctx context.Context, userID string, limit int) ([]models.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, role, content, timestamp FROM messages WHERE user_id = ? ORDER BY id DESC`+limitClause(limit), userID)
	if err != nil {
		slog.Error("SQLiteStore RecentMessages query failed", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()
	return scanMessages(rows, userID)
}

func (s *SQLiteStore) ListMessages(ctx context.Context, userID string) ([]models.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, role, content, timestamp FROM messages WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		slog.Error("SQLiteStore ListMessages query failed", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()
	return scanMessages(rows, userID)
}

func (s *SQLiteStore) AddInsight(ctx context.Context, in models.Insight) error {
	if in.UserID == "" {
		return ErrUserRequired
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO insights (user_id, pattern_type, description, detected_at) VALUES (?, ?, ?, ?)`,
		in.UserID, in.PatternType, nilIfEmpty(in.Description), stamp(in.DetectedAt))
	if err != nil {
		slog.Error("SQLiteStore AddInsight failed", "error", err, "user_id", in.UserID)
		return fmt.Errorf("failed to insert insight: %w", err)
	}
	return nil
}

// InsightSummary groups insights by pattern. MAX() loses the column type in
// SQLite, so last_seen comes back as text and is parsed here.
func (s *SQLiteStore) InsightSummary(ctx context.Context, userID string) ([]models.InsightSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT pattern_type, COUNT(*) AS count, MAX(detected_at) AS last_seen
		FROM insights WHERE user_id = ?
		GROUP BY pattern_type ORDER BY count DESC, last_seen DESC`, userID)
	if err != nil {
		slog.Error("SQLiteStore InsightSummary query failed", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to query insights: %w", err)
	}
	defer rows.Close()

	var out []models.InsightSummary
	for rows.Next() {
		var sum models.InsightSummary
		var lastSeen sql.NullString
		if err := rows.Scan(&sum.Pattern, &sum.Count, &lastSeen); err != nil {
			return nil, fmt.Errorf("scan insight summary failed: %w", err)
		}
		sum.LastSeen = parseSQLiteTime(lastSeen.String)
		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate insight summaries failed: %w", err)
	}
	return out, nil
}

// parseSQLiteTime parses text in any of the layouts the sqlite3 driver writes.
func parseSQLiteTime(v string) time.Time {
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if t, err := time.ParseInLocation(layout, v, time.UTC); err == nil {
			return t
		}
	}
	return time.Time{}
}

func (s *SQLiteStore) AddJournalEntry(ctx context.Context, j models.JournalEntry) (int64, error) {
	if j.UserID == "" {
		return 0, ErrUserRequired
	}
	res, err := s.db.ExecContext(ctx, `INSERT INTO journal (user_id, emotion, intensity, content, timestamp) VALUES (?, ?, ?, ?, ?)`,
		j.UserID, nilIfEmpty(j.Emotion), j.Intensity, j.Content, stamp(j.Timestamp))
	if err != nil {
		slog.Error("SQLiteStore AddJournalEntry failed", "error", err, "user_id", j.UserID)
		return 0, fmt.Errorf("failed to insert journal entry: %w", err)
	}
	return res.LastInsertId()
}

func (s *SQLiteStore) ListJournalEntries(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, emotion, intensity, content, timestamp FROM journal WHERE user_id = ? ORDER BY id DESC`, userID)
	if err != nil {
		slog.Error("SQLiteStore ListJournalEntries query failed", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer rows.Close()
	return scanJournal(rows, userID)
}

func (s *SQLiteStore) AddCheckIn(ctx context.Context, c models.CheckIn) (int64, error) {
	if c.UserID == "" {
		return 0, ErrUserRequired
	}
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO checkins (user_id, emotion, intensity, trigger, body_sensations, thoughts, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.UserID, c.Emotion, c.Intensity, nilIfEmpty(c.Trigger), nilIfEmpty(c.BodySensations),
		nilIfEmpty(c.Thoughts), stamp(c.Timestamp))
	if err != nil {
		slog.Error("SQLiteStore AddCheckIn failed", "error", err, "user_id", c.UserID)
		return 0, fmt.Errorf("failed to insert check-in: %w", err)
	}
	return res.LastInsertId()
}

func (s *SQLiteStore) ListCheckIns(ctx context.Context, userID string) ([]models.CheckIn, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, emotion, intensity, trigger, body_sensations, thoughts, timestamp
		FROM checkins WHERE user_id = ? ORDER BY id DESC`, userID)
	if err != nil {
		slog.Error("SQLiteStore ListCheckIns query failed", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to query check-ins: %w", err)
	}
	defer rows.Close()
	return scanCheckIns(rows, userID)
}

func (s *SQLiteStore) UpsertPattern(ctx context.Context, userID, patternType string) error {
	if userID == "" {
		return ErrUserRequired
	}
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO patterns (user_id, pattern_type, description, frequency, first_noticed, last_occurred)
		VALUES (?, ?, ?, 1, ?, ?)
		ON CONFLICT(user_id, pattern_type)
		DO UPDATE SET frequency = frequency + 1, last_occurred = excluded.last_occurred`,
		userID, patternType, patternDescription(patternType), now, now)
	if err != nil {
		slog.Error("SQLiteStore UpsertPattern failed", "error", err, "user_id", userID, "pattern", patternType)
		return fmt.Errorf("failed to upsert pattern %s: %w", patternType, err)
	}
	return nil
}

func (s *SQLiteStore) ListPatterns(ctx context.Context, userID string) ([]models.PatternRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT pattern_type, description, frequency, first_noticed, last_occurred
		FROM patterns WHERE user_id = ? ORDER BY frequency DESC, pattern_type`, userID)
	if err != nil {
		slog.Error("SQLiteStore ListPatterns query failed", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to query patterns: %w", err)
	}
	defer rows.Close()
	return scanPatterns(rows, userID)
}

func (s *SQLiteStore) AddProgress(ctx context.Context, p models.ProgressEntry) error {
	if p.UserID == "" {
		return ErrUserRequired
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO progress (user_id, tool_used, effectiveness, notes, timestamp) VALUES (?, ?, ?, ?, ?)`,
		p.UserID, p.ToolUsed, p.Effectiveness, nilIfEmpty(p.Notes), stamp(p.Timestamp))
	if err != nil {
		slog.Error("SQLiteStore AddProgress failed", "error", err, "user_id", p.UserID)
		return fmt.Errorf("failed to insert progress: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ListProgress(ctx context.Context, userID string, limit int) ([]models.ProgressEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, tool_used, effectiveness, notes, timestamp FROM progress WHERE user_id = ? ORDER BY id DESC`+limitClause(limit), userID)
	if err != nil {
		slog.Error("SQLiteStore ListProgress query failed", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to query progress: %w", err)
	}
	defer rows.Close()
	return scanProgress(rows, userID)
}

// DeleteUserData removes every row for userID in a single transaction.
func (s *SQLiteStore) DeleteUserData(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrUserRequired
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete failed: %w", err)
	}
	defer tx.Rollback()
	for _, stmt := range deleteUserStatements("?") {
		if _, err := tx.ExecContext(ctx, stmt, userID); err != nil {
			slog.Error("SQLiteStore DeleteUserData failed", "error", err, "user_id", userID)
			return fmt.Errorf("delete user data failed: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete failed: %w", err)
	}
	slog.Debug("SQLiteStore DeleteUserData succeeded", "user_id", userID)
	return nil
}

// Close closes the SQLite database connection.
func (s *SQLiteStore) Close() error {
	slog.Debug("Closing SQLite database connection")
	err := s.db.Close()
	if err != nil {
		slog.Error("Failed to close SQLite database", "error", err)
	} else {
		slog.Debug("SQLite database connection closed successfully")
	}
	return err
}
