package game

import (
	"testing"

	"github.com/decker502/cleandrop/pkg/components"
	"github.com/decker502/cleandrop/pkg/config"
)

const (
	C = components.DropClean
	D = components.DropDirty
)

func newTestTracker() *ProgressTracker {
	return NewProgressTracker(100, config.ScoringConfig{CleanGain: 10, DirtyPenalty: 15},
		config.DefaultMessageConfig().Milestones)
}

// applyAll 依次接住水滴，返回每一步的结果
func applyAll(tr *ProgressTracker, kinds ...components.DropKind) []CatchOutcome {
	outcomes := make([]CatchOutcome, 0, len(kinds))
	for _, k := range kinds {
		outcomes = append(outcomes, tr.Apply(k))
	}
	return outcomes
}

func TestProgressTrackerSequences(t *testing.T) {
	tests := []struct {
		name         string
		catches      []components.DropKind
		wantProgress float64
		wantResult   RoundResult
	}{
		{"ten clean drops win", []components.DropKind{C, C, C, C, C, C, C, C, C, C}, 100, ResultWin},
		{"dirty at empty start does not lose", []components.DropKind{D, D}, 0, ResultNone},
		{"emptied after filling loses", []components.DropKind{C, D}, 0, ResultLose},
		{"partial drain keeps playing", []components.DropKind{C, C, D}, 5, ResultNone},
		{"drain to zero from five loses", []components.DropKind{C, C, D, D}, 0, ResultLose},
		{"mixed run", []components.DropKind{C, C, C, D, C, C}, 35, ResultNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestTracker()
			applyAll(tr, tt.catches...)

			if tr.Progress() != tt.wantProgress {
				t.Errorf("progress = %g, want %g", tr.Progress(), tt.wantProgress)
			}
			if tr.Result() != tt.wantResult {
				t.Errorf("result = %s, want %s", tr.Result(), tt.wantResult)
			}
		})
	}
}

func TestProgressStaysInRange(t *testing.T) {
	tr := newTestTracker()

	// 任意序列下进度都保持在 [0, winGoal]
	seq := []components.DropKind{D, C, D, D, C, C, C, D, C, C, C, C, C, C, C, C, C, C, C}
	for i, k := range seq {
		out := tr.Apply(k)
		if out.Current < 0 || out.Current > tr.WinGoal() {
			t.Fatalf("step %d: progress %g out of range", i, out.Current)
		}
	}
}

func TestProgressSaturatesAtWinGoal(t *testing.T) {
	tr := NewProgressTracker(95, config.ScoringConfig{CleanGain: 10, DirtyPenalty: 15}, nil)

	outcomes := applyAll(tr, C, C, C, C, C, C, C, C, C, C)
	last := outcomes[len(outcomes)-1]

	if last.Current != 95 {
		t.Errorf("expected progress clamped to 95, got %g", last.Current)
	}
	if last.Delta() != 5 {
		t.Errorf("expected saturated delta 5, got %g", last.Delta())
	}
	if last.Result != ResultWin {
		t.Errorf("expected win, got %s", last.Result)
	}
}

func TestProgressIgnoresCatchesAfterRoundEnds(t *testing.T) {
	tr := newTestTracker()
	applyAll(tr, C, D) // lose

	out := tr.Apply(C)
	if out.Current != 0 || out.Delta() != 0 {
		t.Errorf("catch after round end must not change progress, got %+v", out)
	}
	if out.Result != ResultNone {
		t.Errorf("expected ResultNone after round end, got %s", out.Result)
	}
	if tr.Result() != ResultLose {
		t.Errorf("tracker result must stay lose, got %s", tr.Result())
	}
}

func TestMilestonesFireOncePerCrossing(t *testing.T) {
	tr := newTestTracker()

	fired := make(map[int][]float64)
	seq := []components.DropKind{C, C, D, C, C, C, C, C, C, C, C}
	for i, k := range seq {
		for _, m := range tr.Apply(k).Milestones {
			fired[i] = append(fired[i], m.Score)
		}
	}

	// 进度: 10 20 5 15 25 35 45 55 65 75 85
	want := map[int][]float64{
		0:  {10}, // 0 -> 10
		7:  {50}, // 45 -> 55
		10: {80}, // 75 -> 85
	}

	if len(fired) != len(want) {
		t.Fatalf("expected milestones at steps %v, got %v", want, fired)
	}
	for step, scores := range want {
		got := fired[step]
		if len(got) != len(scores) || got[0] != scores[0] {
			t.Errorf("step %d: expected %v, got %v", step, scores, got)
		}
	}
}

func TestMilestoneMessages(t *testing.T) {
	tr := newTestTracker()
	out := tr.Apply(C)

	if len(out.Milestones) != 1 || out.Milestones[0].Message != "Great start!" {
		t.Errorf("expected 'Great start!', got %+v", out.Milestones)
	}
}

func TestRatio(t *testing.T) {
	tr := NewProgressTracker(200, config.ScoringConfig{CleanGain: 50, DirtyPenalty: 15}, nil)
	tr.Apply(C)
	if tr.Ratio() != 0.25 {
		t.Errorf("expected ratio 0.25, got %g", tr.Ratio())
	}
}
