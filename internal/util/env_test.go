package util

import (
	"log/slog"
	"testing"
)

func TestParseBoolEnv(t *testing.T) {
	tests := []struct {
		val  string
		def  bool
		want bool
	}{
		{"", true, true},
		{"yes", false, true},
		{"ON", false, true},
		{"0", true, false},
		{"off", true, false},
		{"maybe", true, true},
	}
	for _, tt := range tests {
		t.Setenv("HG_TEST_BOOL", tt.val)
		if got := ParseBoolEnv("HG_TEST_BOOL", tt.def); got != tt.want {
			t.Errorf("ParseBoolEnv(%q, %v) = %v, want %v", tt.val, tt.def, got, tt.want)
		}
	}
}

func TestParseIntEnv(t *testing.T) {
	t.Setenv("HG_TEST_INT", " 12 ")
	if got := ParseIntEnv("HG_TEST_INT", 3); got != 12 {
		t.Errorf("expected 12, got %d", got)
	}
	t.Setenv("HG_TEST_INT", "twelve")
	if got := ParseIntEnv("HG_TEST_INT", 3); got != 3 {
		t.Errorf("expected default, got %d", got)
	}
	t.Setenv("HG_TEST_INT", "")
	if got := ParseIntEnv("HG_TEST_INT", 3); got != 3 {
		t.Errorf("expected default, got %d", got)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   slog.Level
		wantOK bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"", slog.LevelInfo, true},
		{"warning", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"loud", slog.LevelInfo, false},
	}
	for _, tt := range tests {
		got, ok := ParseLogLevel(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseLogLevel(%q) = %v, %v", tt.in, got, ok)
		}
	}
}
