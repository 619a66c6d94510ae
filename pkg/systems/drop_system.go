package systems

import (
	"log"

	"github.com/decker502/cleandrop/pkg/components"
	"github.com/decker502/cleandrop/pkg/config"
	"github.com/decker502/cleandrop/pkg/ecs"
	"github.com/decker502/cleandrop/pkg/entities"
	"github.com/decker502/cleandrop/pkg/game"
)

// DropSystem 水滴下落与接住判定
//
// 每帧：
//  1. 所有水滴按当前下落速度下移（像素/帧，按 TicksPerSecond 换算）
//  2. 接住判定：drop.y >= 桶上沿，且水滴水平中心落在 [桶左, 桶左+桶宽] 内
//  3. 未接住且 drop.y > 场地高度的水滴视为漏接
//  4. 遍历结束后统一删除接住/漏接的水滴，再依次处理接住事件
//
// 接住事件驱动进度状态机，并触发水花、进度条闪烁、里程碑横幅和音效。
// 分出胜负后结束回合：停止生成、清除所有水滴和水桶。
type DropSystem struct {
	em          *ecs.EntityManager
	gameState   *game.GameState
	sounds      game.SoundPlayer
	fieldHeight float64

	onRoundEnd func(result game.RoundResult)
}

// caughtDrop 本帧被接住的水滴
type caughtDrop struct {
	kind      components.DropKind
	x         float64
	bucketTop float64
}

// NewDropSystem 创建水滴系统
//
// 参数:
//   - em: 实体管理器
//   - gs: 回合状态（下落速度、进度状态机）
//   - sounds: 音效播放器，nil 时静音
//   - fieldHeight: 场地高度（漏接判定）
func NewDropSystem(em *ecs.EntityManager, gs *game.GameState, sounds game.SoundPlayer, fieldHeight float64) *DropSystem {
	if sounds == nil {
		sounds = game.NopSoundPlayer{}
	}
	return &DropSystem{
		em:          em,
		gameState:   gs,
		sounds:      sounds,
		fieldHeight: fieldHeight,
	}
}

// SetRoundEndHandler 设置回合结束回调（场景切换、彩纸）
func (s *DropSystem) SetRoundEndHandler(handler func(result game.RoundResult)) {
	s.onRoundEnd = handler
}

// Update 移动水滴并处理接住/漏接
func (s *DropSystem) Update(deltaTime float64) {
	gs := s.gameState
	if !gs.IsRunning() {
		return
	}

	bucketID, bucket, bucketPos := s.findBucket()
	dy := gs.FallSpeed * deltaTime * config.TicksPerSecond

	var caught []caughtDrop
	var removed []ecs.EntityID

	for _, id := range ecs.GetEntitiesWith2[*components.DropComponent, *components.PositionComponent](s.em) {
		if s.em.IsMarkedForDestroy(id) {
			continue
		}
		drop, _ := ecs.GetComponent[*components.DropComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)

		pos.Y += dy

		if bucketID != 0 && pos.Y >= bucketPos.Y && bucket.Contains(bucketPos.X, drop.CenterX(pos.X)) {
			caught = append(caught, caughtDrop{kind: drop.Kind, x: pos.X, bucketTop: bucketPos.Y})
			removed = append(removed, id)
			continue
		}

		if pos.Y > s.fieldHeight {
			gs.Stats.Missed++
			removed = append(removed, id)
		}
	}

	for _, id := range removed {
		s.em.DestroyEntity(id)
	}

	for _, c := range caught {
		if !gs.IsRunning() {
			break
		}
		s.handleCatch(c)
	}
}

// findBucket 返回水桶实体（没有水桶时 ID 为 0）
func (s *DropSystem) findBucket() (ecs.EntityID, *components.BucketComponent, *components.PositionComponent) {
	for _, id := range ecs.GetEntitiesWith2[*components.BucketComponent, *components.PositionComponent](s.em) {
		if s.em.IsMarkedForDestroy(id) {
			continue
		}
		bucket, _ := ecs.GetComponent[*components.BucketComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		return id, bucket, pos
	}
	return 0, nil, nil
}

// handleCatch 处理一次接住
func (s *DropSystem) handleCatch(c caughtDrop) {
	gs := s.gameState
	outcome := gs.Progress.Apply(c.kind)

	if c.kind == components.DropDirty {
		gs.Stats.DirtyCaught++
	} else {
		gs.Stats.CleanCaught++
	}

	if _, err := entities.NewSplashEntity(s.em, c.kind, c.x, c.bucketTop); err != nil {
		log.Printf("[DropSystem] Warning: failed to create splash: %v", err)
	}
	TriggerFlash(s.em, FlashColorFor(c.kind))
	SetProgressTarget(s.em, gs.Progress.Ratio(), false)

	for _, m := range outcome.Milestones {
		if _, err := entities.ShowMilestoneBanner(s.em, m.Message); err != nil {
			log.Printf("[DropSystem] Warning: failed to show milestone: %v", err)
		}
		log.Printf("[DropSystem] Milestone %.0f reached: %s", m.Score, m.Message)
	}

	s.sounds.PlaySound(game.SoundWater)

	if outcome.Result != game.ResultNone {
		s.endRound(outcome.Result)
	}
}

// endRound 结束回合：清除水滴和水桶，播放结算音效
func (s *DropSystem) endRound(result game.RoundResult) {
	s.gameState.EndRound(result)
	ClearPlayfield(s.em)

	if result == game.ResultWin {
		s.sounds.PlaySound(game.SoundWin)
	} else {
		s.sounds.PlaySound(game.SoundLose)
	}

	if s.onRoundEnd != nil {
		s.onRoundEnd(result)
	}
}

// ClearPlayfield 标记删除所有水滴和水桶
func ClearPlayfield(em *ecs.EntityManager) {
	for _, id := range ecs.GetEntitiesWith1[*components.DropComponent](em) {
		em.DestroyEntity(id)
	}
	for _, id := range ecs.GetEntitiesWith1[*components.BucketComponent](em) {
		em.DestroyEntity(id)
	}
}
