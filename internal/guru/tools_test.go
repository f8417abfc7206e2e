package guru

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toolNames(tools []CopingTool) []string {
	names := make([]string, len(tools))
	for i, t := range tools {
		names[i] = t.Name
	}
	return names
}

func TestSelectTools(t *testing.T) {
	tests := []struct {
		name  string
		score int
		state string
		want  []string
	}{
		{"state and intensity", 2, "numb_disconnected", []string{"Name the Need", "Emotional Naming"}},
		{"intensity only", 10, "", []string{"Butterfly Hug", "Physiological Sigh"}},
		{"unknown state falls back to intensity", 10, "life_topic_work", []string{"Butterfly Hug", "Physiological Sigh"}},
		{"below the catalog uses band defaults", -1, "", []string{"Name the Need", "One Tiny Step"}},
		{"above every band uses the default tool", 42, "", []string{"Box Breathing"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectTools(firstPicker, tt.score, tt.state)
			assert.Equal(t, tt.want, toolNames(got))
		})
	}
}

func TestSelectToolsSamplesWithoutReplacement(t *testing.T) {
	last := PickerFunc(func(n int) int { return n - 1 })
	got := SelectTools(last, 5, "")
	require.Len(t, got, 2)
	assert.NotEqual(t, got[0].Name, got[1].Name)
}

func TestSelectToolsClampsBadPicker(t *testing.T) {
	bad := PickerFunc(func(n int) int { return n + 7 })
	got := SelectTools(bad, 2, "numb_disconnected")
	assert.Equal(t, []string{"Name the Need", "Emotional Naming"}, toolNames(got))
}

func TestFormatToolOffer(t *testing.T) {
	box := mustTool(t, "Box Breathing")
	sigh := mustTool(t, "Physiological Sigh")

	high := FormatToolOffer([]CopingTool{box, sigh}, 8)
	assert.True(t, strings.HasPrefix(high, "Let me offer something that might help ground you right now:\n\n"))
	assert.Contains(t, high, "**1. Box Breathing**\n"+box.Description+"\n\n")
	assert.Contains(t, high, "**2. Physiological Sigh**\n")
	assert.True(t, strings.HasSuffix(high, "Would you like me to guide you through one of these?"))

	mid := FormatToolOffer([]CopingTool{box}, 5)
	assert.True(t, strings.HasPrefix(mid, "Here are some tools that might help:"))
	assert.True(t, strings.HasSuffix(mid, "or if you want to talk more first."))

	low := FormatToolOffer([]CopingTool{box}, 1)
	assert.True(t, strings.HasPrefix(low, "You might find one of these helpful:"))
}

func TestToolsForEmotion(t *testing.T) {
	for _, tool := range ToolsForEmotion("panic") {
		assert.Contains(t, strings.ToLower(tool.When), "panic")
	}
	assert.Equal(t, toolNames(toolCatalog[:2]), toolNames(ToolsForEmotion("zzz")))
}

func TestToolsReturnsCopies(t *testing.T) {
	tools := Tools()
	require.Len(t, tools, len(toolCatalog))
	tools[0].States[0] = "mutated"
	assert.NotEqual(t, "mutated", toolCatalog[0].States[0])
}
