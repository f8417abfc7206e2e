// Package models defines the core data structures for Healing Guru.
//
// It includes the API envelope, the records persisted by the store and the
// request payloads accepted by the HTTP surface, which are shared across modules.
package models

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// Validation constants for input validation
const (
	// MaxMessageLength is the maximum number of runes accepted in a chat message.
	MaxMessageLength = 2000
	// MaxInsightDescriptionLength is the number of message runes kept with an insight.
	MaxInsightDescriptionLength = 200
	// MaxJournalLength is the maximum number of runes in a journal entry.
	MaxJournalLength = 10000
	// MaxIntensity is the upper bound of user-reported intensity.
	MaxIntensity = 10
	// MinEffectiveness and MaxEffectiveness bound a logged tool rating.
	MinEffectiveness = 1
	MaxEffectiveness = 10
)

// Error variables for better error handling and testability
var (
	ErrEmptyMessage         = errors.New("message cannot be empty")
	ErrMessageTooLong       = errors.New("message exceeds maximum length")
	ErrInvalidEmotion       = errors.New("emotion is required")
	ErrInvalidIntensity     = errors.New("intensity must be between 0 and 10")
	ErrEmptyToolName        = errors.New("tool name cannot be empty")
	ErrInvalidEffectiveness = errors.New("effectiveness must be between 1 and 10")
	ErrEmptyJournalContent  = errors.New("journal content cannot be empty")
	ErrJournalTooLong       = errors.New("journal content exceeds maximum length")
	ErrSessionRequired      = errors.New("session is required")
)

// IsValidationError reports whether err is one of the input validation errors
// above, as opposed to a storage or transport failure.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrEmptyMessage, ErrMessageTooLong, ErrInvalidEmotion, ErrInvalidIntensity,
		ErrEmptyToolName, ErrInvalidEffectiveness, ErrEmptyJournalContent, ErrJournalTooLong,
		ErrSessionRequired,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Role identifies who authored a stored message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// APIStatus represents the status of an API response.
type APIStatus string

const (
	// APIStatusOK indicates an API request completed successfully.
	APIStatusOK APIStatus = "ok"
	// APIStatusError indicates an API request failed with an error.
	APIStatusError APIStatus = "error"
	// APIStatusRecorded indicates data was successfully recorded via API.
	APIStatusRecorded APIStatus = "recorded"
)

// APIResponse represents a standard API response with a status and optional data.
type APIResponse struct {
	Status  string      `json:"status"`            // status of the API response
	Message string      `json:"message,omitempty"` // optional message for error responses or additional info
	Result  interface{} `json:"result,omitempty"`  // optional result data for successful responses
}

// APIResponseBuilder provides a fluent interface for building API responses.
type APIResponseBuilder struct {
	response APIResponse
}

// NewAPIResponseBuilder creates a new APIResponseBuilder instance.
func NewAPIResponseBuilder() *APIResponseBuilder {
	return &APIResponseBuilder{
		response: APIResponse{},
	}
}

// WithStatus sets the status of the API response.
func (b *APIResponseBuilder) WithStatus(status APIStatus) *APIResponseBuilder {
	b.response.Status = string(status)
	return b
}

// WithMessage sets the message of the API response.
func (b *APIResponseBuilder) WithMessage(message string) *APIResponseBuilder {
	b.response.Message = message
	return b
}

// WithResult sets the result data of the API response.
func (b *APIResponseBuilder) WithResult(result interface{}) *APIResponseBuilder {
	b.response.Result = result
	return b
}

// Build constructs and returns the final APIResponse.
func (b *APIResponseBuilder) Build() APIResponse {
	return b.response
}

// Success creates a successful API response with optional result data.
func Success(result interface{}) APIResponse {
	return NewAPIResponseBuilder().
		WithStatus(APIStatusOK).
		WithResult(result).
		Build()
}

// SuccessWithMessage creates a successful API response with a message and optional result data.
func SuccessWithMessage(message string, result interface{}) APIResponse {
	return NewAPIResponseBuilder().
		WithStatus(APIStatusOK).
		WithMessage(message).
		WithResult(result).
		Build()
}

// Error creates an error API response with a message.
func Error(message string) APIResponse {
	return NewAPIResponseBuilder().
		WithStatus(APIStatusError).
		WithMessage(message).
		Build()
}

// Recorded creates a recorded API response.
func Recorded() APIResponse {
	return NewAPIResponseBuilder().
		WithStatus(APIStatusRecorded).
		Build()
}

// RecordedWithResult creates a recorded API response carrying a message and result data.
func RecordedWithResult(message string, result interface{}) APIResponse {
	return NewAPIResponseBuilder().
		WithStatus(APIStatusRecorded).
		WithMessage(message).
		WithResult(result).
		Build()
}

// Message is one stored conversation turn.
type Message struct {
	ID        int64     `json:"-"`
	UserID    string    `json:"-"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Insight records that a response category was detected for a user message.
type Insight struct {
	ID          int64     `json:"-"`
	UserID      string    `json:"-"`
	PatternType string    `json:"pattern_type"`
	Description string    `json:"description"`
	DetectedAt  time.Time `json:"detected_at"`
}

// InsightSummary is the grouped count of one pattern type.
type InsightSummary struct {
	Pattern  string    `json:"pattern"`
	Count    int       `json:"count"`
	LastSeen time.Time `json:"last_seen"`
}

// JournalEntry is a free-form journal note.
type JournalEntry struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"-"`
	Emotion   string    `json:"emotion"`
	Intensity int       `json:"intensity"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Validate checks a journal entry before it is stored.
func (j *JournalEntry) Validate() error {
	if strings.TrimSpace(j.Content) == "" {
		return ErrEmptyJournalContent
	}
	if utf8.RuneCountInString(j.Content) > MaxJournalLength {
		return ErrJournalTooLong
	}
	if j.Intensity < 0 || j.Intensity > MaxIntensity {
		return ErrInvalidIntensity
	}
	return nil
}

// CheckIn is a structured daily check-in.
type CheckIn struct {
	ID             int64     `json:"id"`
	UserID         string    `json:"-"`
	Emotion        string    `json:"emotion"`
	Intensity      int       `json:"intensity"`
	Trigger        string    `json:"trigger,omitempty"`
	BodySensations string    `json:"body_sensations,omitempty"`
	Thoughts       string    `json:"thoughts,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

// Validate checks a check-in before it is stored.
func (c *CheckIn) Validate() error {
	if strings.TrimSpace(c.Emotion) == "" {
		return ErrInvalidEmotion
	}
	if c.Intensity < 0 || c.Intensity > MaxIntensity {
		return ErrInvalidIntensity
	}
	return nil
}

// CheckInTool is a coping tool recommended after a check-in.
type CheckInTool struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	WhenToUse   string `json:"when_to_use"`
}

// CheckInResult is returned after a check-in is recorded.
type CheckInResult struct {
	Patterns     []string      `json:"patterns"`
	Affirmations []string      `json:"affirmations"`
	Tools        []CheckInTool `json:"tools"`
	Message      string        `json:"message"`
}

// PatternRecord tracks how often a check-in pattern has been seen for a user.
type PatternRecord struct {
	UserID       string    `json:"-"`
	PatternType  string    `json:"type"`
	Description  string    `json:"description"`
	Frequency    int       `json:"frequency"`
	FirstNoticed time.Time `json:"first_noticed"`
	LastOccurred time.Time `json:"last_occurred"`
}

// ProgressEntry logs how effective a coping tool was.
type ProgressEntry struct {
	ID            int64     `json:"-"`
	UserID        string    `json:"-"`
	ToolUsed      string    `json:"tool"`
	Effectiveness int       `json:"effectiveness"`
	Notes         string    `json:"notes,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// Validate checks a progress entry before it is stored.
func (p *ProgressEntry) Validate() error {
	if strings.TrimSpace(p.ToolUsed) == "" {
		return ErrEmptyToolName
	}
	if p.Effectiveness < MinEffectiveness || p.Effectiveness > MaxEffectiveness {
		return ErrInvalidEffectiveness
	}
	return nil
}

// InboundMessage is a chat message received from a messaging channel.
type InboundMessage struct {
	// ID is the channel's message id, used to drop redeliveries. It may be empty.
	ID      string `json:"id,omitempty"`
	Channel string `json:"channel"`
	From    string `json:"from"`
	Body    string `json:"body"`
	Time    int64  `json:"time"`
}
