package store

import (
	"database/sql"
	"fmt"

	"github.com/rootedlightwithin-create/Healing-Guru/internal/models"
)

// nilIfEmpty returns nil if s is empty, otherwise returns s.
// Used for nullable database columns.
func nilIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// patternDescription is the description stored with a newly seen check-in pattern.
func patternDescription(patternType string) string {
	return fmt.Sprintf("Detected %s pattern", patternType)
}

// userTables lists every table holding per-user rows, in deletion order.
var userTables = []string{"messages", "insights", "journal", "checkins", "patterns", "progress", "inbound_dedup"}

// deleteUserStatements builds one DELETE per user table using the given placeholder.
func deleteUserStatements(placeholder string) []string {
	stmts := make([]string, len(userTables))
	for i, table := range userTables {
		stmts[i] = fmt.Sprintf("DELETE FROM %s WHERE user_id = %s", table, placeholder)
	}
	return stmts
}

// scanMessages reads role, content and timestamp rows into messages for userID.
func scanMessages(rows *sql.Rows, userID string) ([]models.Message, error) {
	var out []models.Message
	for rows.Next() {
		m := models.Message{UserID: userID}
		var role string
		if err := rows.Scan(&m.ID, &role, &m.Content, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("scan message failed: %w", err)
		}
		m.Role = models.Role(role)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages failed: %w", err)
	}
	return out, nil
}

func scanInsightSummaries(rows *sql.Rows) ([]models.InsightSummary, error) {
	var out []models.InsightSummary
	for rows.Next() {
		var sum models.InsightSummary
		if err := rows.Scan(&sum.Pattern, &sum.Count, &sum.LastSeen); err != nil {
			return nil, fmt.Errorf("scan insight summary failed: %w", err)
		}
		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate insight summaries failed: %w", err)
	}
	return out, nil
}

func scanJournal(rows *sql.Rows, userID string) ([]models.JournalEntry, error) {
	var out []models.JournalEntry
	for rows.Next() {
		j := models.JournalEntry{UserID: userID}
		var emotion sql.NullString
		if err := rows.Scan(&j.ID, &emotion, &j.Intensity, &j.Content, &j.Timestamp); err != nil {
			return nil, fmt.Errorf("scan journal entry failed: %w", err)
		}
		j.Emotion = emotion.String
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journal failed: %w", err)
	}
	return out, nil
}

func scanCheckIns(rows *sql.Rows, userID string) ([]models.CheckIn, error) {
	var out []models.CheckIn
	for rows.Next() {
		c := models.CheckIn{UserID: userID}
		var trigger, body, thoughts sql.NullString
		if err := rows.Scan(&c.ID, &c.Emotion, &c.Intensity, &trigger, &body, &thoughts, &c.Timestamp); err != nil {
			return nil, fmt.Errorf("scan check-in failed: %w", err)
		}
		c.Trigger, c.BodySensations, c.Thoughts = trigger.String, body.String, thoughts.String
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate check-ins failed: %w", err)
	}
	return out, nil
}

func scanPatterns(rows *sql.Rows, userID string) ([]models.PatternRecord, error) {
	var out []models.PatternRecord
	for rows.Next() {
		p := models.PatternRecord{UserID: userID}
		if err := rows.Scan(&p.PatternType, &p.Description, &p.Frequency, &p.FirstNoticed, &p.LastOccurred); err != nil {
			return nil, fmt.Errorf("scan pattern failed: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate patterns failed: %w", err)
	}
	return out, nil
}

func scanProgress(rows *sql.Rows, userID string) ([]models.ProgressEntry, error) {
	var out []models.ProgressEntry
	for rows.Next() {
		p := models.ProgressEntry{UserID: userID}
		var notes sql.NullString
		if err := rows.Scan(&p.ID, &p.ToolUsed, &p.Effectiveness, &notes, &p.Timestamp); err != nil {
			return nil, fmt.Errorf("scan progress failed: %w", err)
		}
		p.Notes = notes.String
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate progress failed: %w", err)
	}
	return out, nil
}

// limitClause returns a LIMIT clause for positive limits.
func limitClause(limit int) string {
	if limit <= 0 {
		return ""
	}
	return fmt.Sprintf(" LIMIT %d", limit)
}
