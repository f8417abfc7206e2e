// Package store provides storage backends for Healing Guru.
//
// It includes an in-memory store used by tests and the "memory" DSN, plus
// SQLite and PostgreSQL backends selected by DSN. Every record is keyed by the
// opaque user id assigned to a browser session or chat sender.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rootedlightwithin-create/Healing-Guru/internal/models"
)

// MemoryDSN selects the in-memory store.
const MemoryDSN = "memory"

// ErrUserRequired is returned when a store method is called without a user id.
var ErrUserRequired = errors.New("user id is required")

// Store is the persistence contract shared by every backend.
type Store interface {
	AddMessage(ctx context.Context, m models.Message) error
	// RecentMessages returns up to limit messages, newest first.
	RecentMessages(ctx context.Context, userID string, limit int) ([]models.Message, error)
	// ListMessages returns every message, oldest first.
	ListMessages(ctx context.Context, userID string) ([]models.Message, error)

	AddInsight(ctx context.Context, in models.Insight) error
	InsightSummary(ctx context.Context, userID string) ([]models.InsightSummary, error)

	AddJournalEntry(ctx context.Context, j models.JournalEntry) (int64, error)
	ListJournalEntries(ctx context.Context, userID string) ([]models.JournalEntry, error)

	AddCheckIn(ctx context.Context, c models.CheckIn) (int64, error)
	ListCheckIns(ctx context.Context, userID string) ([]models.CheckIn, error)
	// UpsertPattern increments the frequency of a check-in pattern, creating it on first sight.
	UpsertPattern(ctx context.Context, userID, patternType string) error
	ListPatterns(ctx context.Context, userID string) ([]models.PatternRecord, error)

	AddProgress(ctx context.Context, p models.ProgressEntry) error
	// ListProgress returns up to limit entries, newest first. A limit of zero returns all.
	ListProgress(ctx context.Context, userID string, limit int) ([]models.ProgressEntry, error)

	// DeleteUserData erases everything stored for userID.
	DeleteUserData(ctx context.Context, userID string) error

	DedupRepo

	Close() error
}

// Opts holds configuration for store backends.
type Opts struct {
	DSN string
}

// Option configures a store backend.
type Option func(*Opts)

// WithSQLiteDSN sets the SQLite database file path.
func WithSQLiteDSN(dsn string) Option {
	return func(o *Opts) { o.DSN = dsn }
}

// WithPostgresDSN sets the PostgreSQL connection string.
func WithPostgresDSN(dsn string) Option {
	return func(o *Opts) { o.DSN = dsn }
}

// WithDSN sets a DSN for whichever backend New selects.
func WithDSN(dsn string) Option {
	return func(o *Opts) { o.DSN = dsn }
}

// DetectDSNType returns the database/sql driver name for dsn: "postgres" for
// URL and key=value connection strings, "sqlite3" otherwise.
func DetectDSNType(dsn string) string {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return "postgres"
	}
	if strings.Contains(lower, "host=") || strings.Contains(lower, "dbname=") || strings.Contains(lower, "user=") {
		return "postgres"
	}
	return "sqlite3"
}

// New opens the backend selected by the configured DSN.
func New(opts ...Option) (Store, error) {
	var cfg Opts
	for _, opt := range opts {
		opt(&cfg)
	}
	switch {
	case cfg.DSN == MemoryDSN:
		slog.Debug("store.New: using in-memory store")
		return NewInMemoryStore(), nil
	case cfg.DSN == "":
		return nil, fmt.Errorf("database DSN not set")
	case DetectDSNType(cfg.DSN) == "postgres":
		slog.Debug("store.New: using Postgres store")
		return NewPostgresStore(WithPostgresDSN(cfg.DSN))
	default:
		slog.Debug("store.New: using SQLite store", "dsn", cfg.DSN)
		return NewSQLiteStore(WithSQLiteDSN(cfg.DSN))
	}
}

// InMemoryStore keeps everything in mutex-guarded slices.
type InMemoryStore struct {
	mu       sync.RWMutex
	nextID   int64
	messages []models.Message
	insights []models.Insight
	journal  []models.JournalEntry
	checkins []models.CheckIn
	patterns map[string]map[string]*models.PatternRecord
	progress []models.ProgressEntry
	inbound  map[string]*DedupRecord
}

// Compile-time check that InMemoryStore implements Store.
var _ Store = (*InMemoryStore)(nil)

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		patterns: make(map[string]map[string]*models.PatternRecord),
		inbound:  make(map[string]*DedupRecord),
	}
}

func (s *InMemoryStore) id() int64 {
	s.nextID++
	return s.nextID
}

func stamp(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t
}

func (s *InMemoryStore) AddMessage(_ context.Context, m models.Message) error {
	if m.UserID == "" {
		return ErrUserRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = s.id()
	m.Timestamp = stamp(m.Timestamp)
	s.messages = append(s.messages, m)
	return nil
}

func (s *InMemoryStore) RecentMessages(_ context.Context, userID string, limit int) ([]models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Message
	for i := len(s.messages) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		if s.messages[i].UserID == userID {
			out = append(out, s.messages[i])
		}
	}
	return out, nil
}

func (s *InMemoryStore) ListMessages(_ context.Context, userID string) ([]models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Message
	for _, m := range s.messages {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *InMemoryStore) AddInsight(_ context.Context, in models.Insight) error {
	if in.UserID == "" {
		return ErrUserRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	in.ID = s.id()
	in.DetectedAt = stamp(in.DetectedAt)
	s.insights = append(s.insights, in)
	return nil
}

func (s *InMemoryStore) InsightSummary(_ context.Context, userID string) ([]models.InsightSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	byPattern := make(map[string]*models.InsightSummary)
	var order []string
	for _, in := range s.insights {
		if in.UserID != userID {
			continue
		}
		sum, ok := byPattern[in.PatternType]
		if !ok {
			sum = &models.InsightSummary{Pattern: in.PatternType}
			byPattern[in.PatternType] = sum
			order = append(order, in.PatternType)
		}
		sum.Count++
		if in.DetectedAt.After(sum.LastSeen) {
			sum.LastSeen = in.DetectedAt
		}
	}
	out := make([]models.InsightSummary, 0, len(order))
	for _, p := range order {
		out = append(out, *byPattern[p])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out, nil
}

func (s *InMemoryStore) AddJournalEntry(_ context.Context, j models.JournalEntry) (int64, error) {
	if j.UserID == "" {
		return 0, ErrUserRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	j.ID = s.id()
	j.Timestamp = stamp(j.Timestamp)
	s.journal = append(s.journal, j)
	return j.ID, nil
}

func (s *InMemoryStore) ListJournalEntries(_ context.Context, userID string) ([]models.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.JournalEntry
	for i := len(s.journal) - 1; i >= 0; i-- {
		if s.journal[i].UserID == userID {
			out = append(out, s.journal[i])
		}
	}
	return out, nil
}

func (s *InMemoryStore) AddCheckIn(_ context.Context, c models.CheckIn) (int64, error) {
	if c.UserID == "" {
		return 0, ErrUserRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.id()
	c.Timestamp = stamp(c.Timestamp)
	s.checkins = append(s.checkins, c)
	return c.ID, nil
}

func (s *InMemoryStore) ListCheckIns(_ context.Context, userID string) ([]models.CheckIn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.CheckIn
	for i := len(s.checkins) - 1; i >= 0; i-- {
		if s.checkins[i].UserID == userID {
			out = append(out, s.checkins[i])
		}
	}
	return out, nil
}

func (s *InMemoryStore) UpsertPattern(_ context.Context, userID, patternType string) error {
	if userID == "" {
		return ErrUserRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	byType, ok := s.patterns[userID]
	if !ok {
		byType = make(map[string]*models.PatternRecord)
		s.patterns[userID] = byType
	}
	if rec, ok := byType[patternType]; ok {
		rec.Frequency++
		rec.LastOccurred = now
		return nil
	}
	byType[patternType] = &models.PatternRecord{
		UserID:       userID,
		PatternType:  patternType,
		Description:  patternDescription(patternType),
		Frequency:    1,
		FirstNoticed: now,
		LastOccurred: now,
	}
	return nil
}

func (s *InMemoryStore) ListPatterns(_ context.Context, userID string) ([]models.PatternRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.PatternRecord
	for _, rec := range s.patterns[userID] {
		out = append(out, *rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Frequency != out[j].Frequency {
			return out[i].Frequency > out[j].Frequency
		}
		return out[i].PatternType < out[j].PatternType
	})
	return out, nil
}

func (s *InMemoryStore) AddProgress(_ context.Context, p models.ProgressEntry) error {
	if p.UserID == "" {
		return ErrUserRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.id()
	p.Timestamp = stamp(p.Timestamp)
	s.progress = append(s.progress, p)
	return nil
}

func (s *InMemoryStore) ListProgress(_ context.Context, userID string, limit int) ([]models.ProgressEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.ProgressEntry
	for i := len(s.progress) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		if s.progress[i].UserID == userID {
			out = append(out, s.progress[i])
		}
	}
	return out, nil
}

func (s *InMemoryStore) DeleteUserData(_ context.Context, userID string) error {
	if userID == "" {
		return ErrUserRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = filterUser(s.messages, userID, func(m models.Message) string { return m.UserID })
	s.insights = filterUser(s.insights, userID, func(in models.Insight) string { return in.UserID })
	s.journal = filterUser(s.journal, userID, func(j models.JournalEntry) string { return j.UserID })
	s.checkins = filterUser(s.checkins, userID, func(c models.CheckIn) string { return c.UserID })
	s.progress = filterUser(s.progress, userID, func(p models.ProgressEntry) string { return p.UserID })
	delete(s.patterns, userID)
	for id, rec := range s.inbound {
		if rec.UserID == userID {
			delete(s.inbound, id)
		}
	}
	return nil
}

func filterUser[T any](items []T, userID string, owner func(T) string) []T {
	kept := items[:0]
	for _, item := range items {
		if owner(item) != userID {
			kept = append(kept, item)
		}
	}
	return kept
}

func (s *InMemoryStore) RecordInbound(_ context.Context, messageID, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.inbound[messageID]; ok {
		return false, nil
	}
	s.inbound[messageID] = &DedupRecord{MessageID: messageID, UserID: userID, ReceivedAt: time.Now().UTC()}
	return true, nil
}

func (s *InMemoryStore) MarkProcessed(_ context.Context, messageID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.inbound[messageID]; ok {
		now := time.Now().UTC()
		rec.ProcessedAt = &now
	}
	return nil
}

func (s *InMemoryStore) Close() error { return nil }
