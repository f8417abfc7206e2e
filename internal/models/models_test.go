package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestChatRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    error
	}{
		{"ok", "hello", nil},
		{"empty", "", ErrEmptyMessage},
		{"blank", "   \n\t", ErrEmptyMessage},
		{"at limit", strings.Repeat("é", MaxMessageLength), nil},
		{"too long", strings.Repeat("a", MaxMessageLength+1), ErrMessageTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ChatRequest{Message: tt.message}
			if err := r.Validate(); err != tt.want {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCheckInValidate(t *testing.T) {
	tests := []struct {
		name string
		c    CheckIn
		want error
	}{
		{"ok", CheckIn{Emotion: "anxiety", Intensity: 6}, nil},
		{"missing emotion", CheckIn{Intensity: 3}, ErrInvalidEmotion},
		{"negative", CheckIn{Emotion: "sadness", Intensity: -1}, ErrInvalidIntensity},
		{"too high", CheckIn{Emotion: "sadness", Intensity: 11}, ErrInvalidIntensity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.c.Validate(); err != tt.want {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestProgressEntryValidate(t *testing.T) {
	if err := (&ProgressEntry{ToolUsed: "Box Breathing", Effectiveness: 7}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (&ProgressEntry{ToolUsed: " ", Effectiveness: 7}).Validate(); err != ErrEmptyToolName {
		t.Errorf("expected ErrEmptyToolName, got %v", err)
	}
	if err := (&ProgressEntry{ToolUsed: "Body Scan", Effectiveness: 0}).Validate(); err != ErrInvalidEffectiveness {
		t.Errorf("expected ErrInvalidEffectiveness, got %v", err)
	}
}

func TestJournalEntryValidate(t *testing.T) {
	if err := (&JournalEntry{Content: "wrote it down", Intensity: 0}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (&JournalEntry{Content: ""}).Validate(); err != ErrEmptyJournalContent {
		t.Errorf("expected ErrEmptyJournalContent, got %v", err)
	}
	if err := (&JournalEntry{Content: "x", Intensity: 12}).Validate(); err != ErrInvalidIntensity {
		t.Errorf("expected ErrInvalidIntensity, got %v", err)
	}
}

func TestChatReplyOmitsEmptyTools(t *testing.T) {
	b, err := json.Marshal(ChatReply{Message: "hi"})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(b), "urgent_tools") {
		t.Errorf("expected urgent_tools to be omitted, got %s", b)
	}
}

func TestAPIResponseHelpers(t *testing.T) {
	if r := Success(1); r.Status != "ok" || r.Result != 1 {
		t.Errorf("Success() = %+v", r)
	}
	if r := Error("bad"); r.Status != "error" || r.Message != "bad" {
		t.Errorf("Error() = %+v", r)
	}
	if r := RecordedWithResult("done", "x"); r.Status != "recorded" || r.Message != "done" || r.Result != "x" {
		t.Errorf("RecordedWithResult() = %+v", r)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("héllo", 2); got != "hé" {
		t.Errorf("Truncate() = %q", got)
	}
	if got := Truncate("hi", 200); got != "hi" {
		t.Errorf("Truncate() = %q", got)
	}
	if got := Truncate("hi", 0); got != "" {
		t.Errorf("Truncate() = %q", got)
	}
}

func TestEmotionOrDefault(t *testing.T) {
	r := EmotionRequest{Emotion: "  Anxiety "}
	if got := r.EmotionOrDefault("stress"); got != "anxiety" {
		t.Errorf("EmotionOrDefault() = %q", got)
	}
	r.Emotion = ""
	if got := r.EmotionOrDefault("stress"); got != "stress" {
		t.Errorf("EmotionOrDefault() = %q", got)
	}
}

func TestIsValidationError(t *testing.T) {
	if !IsValidationError(ErrInvalidEffectiveness) {
		t.Error("expected ErrInvalidEffectiveness to be a validation error")
	}
	if !IsValidationError(fmt.Errorf("check-in: %w", ErrInvalidIntensity)) {
		t.Error("expected wrapped validation error to match")
	}
	if IsValidationError(errors.New("database is locked")) {
		t.Error("storage errors are not validation errors")
	}
	if IsValidationError(nil) {
		t.Error("nil is not a validation error")
	}
}
