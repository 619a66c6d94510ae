package config

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEmbeddedMessagesMatchDefault(t *testing.T) {
	cfg, err := LoadMessageConfig("../../data/messages.yaml")
	if err != nil {
		t.Fatalf("failed to load data/messages.yaml: %v", err)
	}

	if diff := cmp.Diff(DefaultMessageConfig(), cfg); diff != "" {
		t.Errorf("data/messages.yaml differs from DefaultMessageConfig (-want +got):\n%s", diff)
	}
}

func TestWinMessage(t *testing.T) {
	cfg := DefaultMessageConfig()

	if got := cfg.WinMessage("hard"); !strings.Contains(got, "Hard mode") {
		t.Errorf("unexpected hard message %q", got)
	}
	if got := cfg.WinMessage("easy"); !strings.HasPrefix(got, "Great job!") {
		t.Errorf("unexpected easy message %q", got)
	}
	// normal 未单独配置，使用默认胜利文案
	if got := cfg.WinMessage("normal"); got != cfg.DefaultWinMessage {
		t.Errorf("expected default win message, got %q", got)
	}
	// 文案使用排版撇号 ’，与原版一致
	if got := cfg.WinMessage("normal"); !strings.Contains(got, "still don’t have") || strings.Contains(got, "'") {
		t.Errorf("normal win message should use the typographic apostrophe, got %q", got)
	}
}

func TestParseMessageConfigSortsMilestones(t *testing.T) {
	cfg, err := ParseMessageConfig([]byte(`
milestones:
  - {score: 80, message: c}
  - {score: 10, message: a}
  - {score: 50, message: b}
defaultWinMessage: win
loseMessage: lose
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Milestone{{10, "a"}, {50, "b"}, {80, "c"}}
	if diff := cmp.Diff(want, cfg.Milestones); diff != "" {
		t.Errorf("milestones not sorted (-want +got):\n%s", diff)
	}
}

func TestParseMessageConfigErrors(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		errContains string
	}{
		{
			name:        "zero score",
			yamlContent: "milestones: [{score: 0, message: a}]\ndefaultWinMessage: w\nloseMessage: l\n",
			errContains: "score must be > 0",
		},
		{
			name:        "empty message",
			yamlContent: "milestones: [{score: 10}]\ndefaultWinMessage: w\nloseMessage: l\n",
			errContains: "message cannot be empty",
		},
		{
			name:        "duplicate score",
			yamlContent: "milestones: [{score: 10, message: a}, {score: 10, message: b}]\ndefaultWinMessage: w\nloseMessage: l\n",
			errContains: "duplicate score 10",
		},
		{
			name:        "missing lose message",
			yamlContent: "defaultWinMessage: w\n",
			errContains: "loseMessage cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMessageConfig([]byte(tt.yamlContent))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
			}
		})
	}
}
