package systems

import (
	"testing"

	"github.com/decker502/cleandrop/pkg/components"
	"github.com/decker502/cleandrop/pkg/config"
	"github.com/decker502/cleandrop/pkg/ecs"
	"github.com/decker502/cleandrop/pkg/game"
)

const tick = 1.0 / config.TicksPerSecond

// recordingSounds 记录播放过的音效
type recordingSounds struct {
	played []game.SoundID
}

func (r *recordingSounds) PlaySound(id game.SoundID) bool {
	r.played = append(r.played, id)
	return true
}

// newRunningState 按内置难度表开始一个回合
func newRunningState(t *testing.T, difficulty string) *game.GameState {
	t.Helper()
	cfg := config.DefaultDifficultyConfig()
	preset, err := cfg.Preset(difficulty)
	if err != nil {
		t.Fatalf("Preset(%q): %v", difficulty, err)
	}
	gs := game.NewGameState()
	gs.StartRound(difficulty, *preset, cfg.Scoring, config.DefaultMessageConfig().Milestones)
	return gs
}

// newFixedState 开始一个不漂移的自定义回合
func newFixedState(winGoal, speed, intervalMs, dirtyRatio float64) *game.GameState {
	gs := game.NewGameState()
	gs.StartRound("fixed", config.DifficultyPreset{
		WinGoal:         winGoal,
		DropSpeed:       speed,
		SpawnIntervalMs: intervalMs,
		DirtyRatio:      dirtyRatio,
		Drift: config.DriftConfig{
			DirtyRatioMax:    dirtyRatio,
			DropSpeedMax:     speed,
			SpawnIntervalMin: intervalMs,
		},
	}, config.ScoringConfig{CleanGain: 10, DirtyPenalty: 15}, config.DefaultMessageConfig().Milestones)
	return gs
}

// addDrop 直接放置一个水滴
func addDrop(em *ecs.EntityManager, kind components.DropKind, x, y, width float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.DropComponent{Kind: kind, Width: width, Height: width})
	return id
}

// addBucket 直接放置一个水桶
func addBucket(em *ecs.EntityManager, x, top, width float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: top})
	ecs.AddComponent(em, id, &components.BucketComponent{Width: width, Height: 60})
	return id
}

func countDrops(em *ecs.EntityManager) int {
	return len(ecs.GetEntitiesWith1[*components.DropComponent](em))
}
