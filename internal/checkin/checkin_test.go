package checkin

import (
	"context"
	"reflect"
	"testing"

	"github.com/rootedlightwithin-create/Healing-Guru/internal/models"
	"github.com/rootedlightwithin-create/Healing-Guru/internal/store"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"It has to be perfect", []string{"perfectionism"}},
		{"I felt like a failure", []string{"perfectionism", "self_criticism"}},
		{"I can't say no, what will others think", []string{"people_pleasing"}},
		{"I'll deal with it later", []string{"avoidance"}},
		{"I need to know the plan", []string{"control"}},
		{"a quiet afternoon", nil},
	}
	for _, tt := range tests {
		if got := Analyze(tt.text); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Analyze(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestAffirmations(t *testing.T) {
	got := Affirmations("Anxiety", []string{"perfectionism", "unknown"})
	if len(got) != 6 {
		t.Fatalf("expected 5 emotion + 1 pattern affirmation, got %d", len(got))
	}
	if got[0] != "I am safe in this moment" {
		t.Errorf("unexpected first affirmation %q", got[0])
	}
	if got[5] != "Progress over perfection. I am enough as I am." {
		t.Errorf("unexpected pattern affirmation %q", got[5])
	}

	fallback := Affirmations("joy", nil)
	if fallback[0] != "I can handle one moment at a time" {
		t.Errorf("expected stress fallback, got %q", fallback[0])
	}
}

func TestAffirmationsDoesNotMutateTable(t *testing.T) {
	before := len(affirmations["sadness"])
	Affirmations("sadness", []string{"control", "avoidance"})
	Affirmations("sadness", []string{"control"})
	if len(affirmations["sadness"]) != before {
		t.Errorf("affirmation table grew from %d to %d", before, len(affirmations["sadness"]))
	}
}

func TestRecommendTools(t *testing.T) {
	names := func(tools []models.CheckInTool) []string {
		out := make([]string, len(tools))
		for i, tool := range tools {
			out[i] = tool.Name
		}
		return out
	}
	tests := []struct {
		intensity int
		want      []string
	}{
		{9, []string{"5-4-3-2-1 Grounding", "Box Breathing", "Cold Water Reset"}},
		{8, []string{"5-4-3-2-1 Grounding", "Box Breathing", "Cold Water Reset"}},
		{5, []string{"Box Breathing", "Body Scan", "Progressive Muscle Relaxation"}},
		{4, []string{"Emotional Journaling", "Body Scan"}},
		{0, []string{"Emotional Journaling", "Body Scan"}},
	}
	for _, tt := range tests {
		if got := names(RecommendTools(tt.intensity)); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("RecommendTools(%d) = %v, want %v", tt.intensity, got, tt.want)
		}
	}
}

func TestTools(t *testing.T) {
	all := Tools()
	if len(all) != 6 || all[0].Name != "5-4-3-2-1 Grounding" || all[5].Name != "Cold Water Reset" {
		t.Errorf("unexpected catalog: %+v", all)
	}
}

func TestServiceRecord(t *testing.T) {
	ctx := context.Background()
	st := store.NewInMemoryStore()
	svc := NewService(st)

	res, err := svc.Record(ctx, "u1", models.CheckIn{
		Emotion:   "anxiety",
		Intensity: 8,
		Trigger:   "deadline at work",
		Thoughts:  "it must be perfect or it's a disaster",
	})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if !reflect.DeepEqual(res.Patterns, []string{"perfectionism", "catastrophizing"}) {
		t.Errorf("unexpected patterns %v", res.Patterns)
	}
	if len(res.Affirmations) != 7 {
		t.Errorf("expected 7 affirmations, got %d", len(res.Affirmations))
	}
	if len(res.Tools) != 3 || res.Message != RecordedMessage {
		t.Errorf("unexpected result %+v", res)
	}

	if _, err := svc.Record(ctx, "u1", models.CheckIn{Emotion: "anxiety", Intensity: 3, Thoughts: "must"}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	patterns, _ := st.ListPatterns(ctx, "u1")
	if len(patterns) != 2 || patterns[0].PatternType != "perfectionism" || patterns[0].Frequency != 2 {
		t.Errorf("unexpected pattern frequencies %+v", patterns)
	}
	checkins, _ := st.ListCheckIns(ctx, "u1")
	if len(checkins) != 2 {
		t.Errorf("expected 2 stored check-ins, got %d", len(checkins))
	}
}

func TestServiceRecordValidation(t *testing.T) {
	svc := NewService(store.NewInMemoryStore())
	if _, err := svc.Record(context.Background(), "", models.CheckIn{Emotion: "anxiety"}); err != models.ErrSessionRequired {
		t.Errorf("expected ErrSessionRequired, got %v", err)
	}
	if _, err := svc.Record(context.Background(), "u1", models.CheckIn{Intensity: 3}); err != models.ErrInvalidEmotion {
		t.Errorf("expected ErrInvalidEmotion, got %v", err)
	}
	res, err := svc.Record(context.Background(), "u1", models.CheckIn{Emotion: "calm", Intensity: 2})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if res.Patterns == nil || len(res.Patterns) != 0 {
		t.Errorf("expected empty non-nil patterns, got %#v", res.Patterns)
	}
}
