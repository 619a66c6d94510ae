package systems

import (
	"testing"

	"github.com/decker502/cleandrop/pkg/components"
	"github.com/decker502/cleandrop/pkg/config"
	"github.com/decker502/cleandrop/pkg/ecs"
	"github.com/decker502/cleandrop/pkg/game"
)

// fakeInput 固定输入
type fakeInput struct {
	steps int
	drag  float64
}

func (f fakeInput) Steps() int          { return f.steps }
func (f fakeInput) DragDelta() float64 { return f.drag }

func TestBucketControlSystem(t *testing.T) {
	tests := []struct {
		name   string
		startX float64
		input  BucketInput
		wantX  float64
	}{
		{"向左一步", 100, fakeInput{steps: -1}, 76},
		{"向右两步", 100, fakeInput{steps: 2}, 148},
		{"拖动", 100, fakeInput{drag: -13.5}, 86.5},
		{"按键与拖动叠加", 100, fakeInput{steps: 1, drag: 6}, 130},
		{"左边界", 10, fakeInput{steps: -1}, 0},
		{"右边界", 250, fakeInput{drag: 100}, config.FieldWidth - testBucketW},
		{"无输入", 100, nil, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			gs := newFixedState(100, 2, 1000, 0)
			id := addBucket(em, tt.startX, testBucketTop, testBucketW)
			s := NewBucketControlSystem(em, gs, tt.input, config.FieldWidth)

			s.Update(tick)

			pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
			if pos.X != tt.wantX {
				t.Errorf("bucket x = %g, want %g", pos.X, tt.wantX)
			}
		})
	}
}

func TestBucketControlSystemIgnoresInputAfterRound(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newFixedState(100, 2, 1000, 0)
	id := addBucket(em, 100, testBucketTop, testBucketW)
	s := NewBucketControlSystem(em, gs, nil, config.FieldWidth)
	s.SetInput(fakeInput{steps: 1})

	gs.EndRound(game.ResultWin)
	s.Update(tick)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 100 {
		t.Errorf("bucket moved after round end: x = %g", pos.X)
	}
}
