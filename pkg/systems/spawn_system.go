package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/cleandrop/pkg/components"
	"github.com/decker502/cleandrop/pkg/config"
	"github.com/decker502/cleandrop/pkg/ecs"
	"github.com/decker502/cleandrop/pkg/entities"
	"github.com/decker502/cleandrop/pkg/game"
)

// SpawnSystem 水滴生成系统
//
// 以 GameState.SpawnIntervalMs 为周期生成水滴。每次生成前先执行一次难度漂移，
// 漂移后的间隔决定下一个周期的长度。
type SpawnSystem struct {
	em         *ecs.EntityManager
	gameState  *game.GameState
	rng        *rand.Rand
	fieldWidth float64

	elapsedMs float64 // 当前周期已累计的时间（毫秒）
}

// NewSpawnSystem 创建水滴生成系统
//
// 参数:
//   - em: 实体管理器
//   - gs: 回合状态（读取并漂移生成参数）
//   - rng: 随机源；固定种子可复现整局水滴序列
//   - fieldWidth: 场地宽度
func NewSpawnSystem(em *ecs.EntityManager, gs *game.GameState, rng *rand.Rand, fieldWidth float64) *SpawnSystem {
	return &SpawnSystem{
		em:         em,
		gameState:  gs,
		rng:        rng,
		fieldWidth: fieldWidth,
	}
}

// Reset 清零计时（新回合开始时调用）
func (s *SpawnSystem) Reset() {
	s.elapsedMs = 0
}

// Update 累计时间，到达周期时生成水滴
// 回合结束后不再生成
func (s *SpawnSystem) Update(deltaTime float64) {
	if !s.gameState.IsRunning() {
		return
	}

	s.elapsedMs += deltaTime * 1000

	// 单帧时间很长（例如窗口被拖动）时可能连续生成多个
	for s.gameState.IsRunning() {
		interval := s.gameState.SpawnIntervalMs
		if interval <= 0 || s.elapsedMs < interval {
			return
		}
		s.elapsedMs -= interval
		s.spawn()
	}
}

// spawn 漂移难度并生成一个水滴
func (s *SpawnSystem) spawn() {
	gs := s.gameState
	gs.ApplyDrift()

	width := config.DropWidthFor(s.fieldWidth)
	x := s.rng.Float64() * (s.fieldWidth - width)

	kind := components.DropClean
	if s.rng.Float64() < gs.DirtyRatio {
		kind = components.DropDirty
	}

	if _, err := entities.NewDropEntity(s.em, kind, x, width); err != nil {
		log.Printf("[SpawnSystem] Warning: failed to spawn drop: %v", err)
		return
	}

	gs.Stats.Spawned++
	if kind == components.DropDirty {
		gs.Stats.DirtySpawn++
	}
}
