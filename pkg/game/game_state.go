package game

import (
	"log"
	"math"

	"github.com/google/uuid"

	"github.com/decker502/cleandrop/pkg/config"
)

// Phase 回合阶段
type Phase int

const (
	PhaseIdle    Phase = iota // 未开始（标题画面）
	PhaseRunning              // 水滴下落中
	PhaseEnded                // 已分出胜负
)

// RoundStats 回合统计
type RoundStats struct {
	Spawned     int
	DirtySpawn  int
	CleanCaught int
	DirtyCaught int
	Missed      int
}

// GameState 存储一个回合的共享可变状态
//
// 生成系统、水滴系统和进度状态机通过它耦合：
// 当前下落速度、生成间隔、污水概率会随时间漂移，进度决定胜负。
type GameState struct {
	RoundID    string // 回合ID（日志关联）
	Difficulty string // 难度名
	Preset     config.DifficultyPreset

	// 随时间漂移的参数
	FallSpeed       float64 // 像素/帧
	SpawnIntervalMs float64 // 毫秒
	DirtyRatio      float64 // 生成污水的概率

	Progress *ProgressTracker
	Phase    Phase
	IsPaused bool // 暂停中：World 不推进
	Result   RoundResult
	Elapsed  float64 // 回合已进行时间（秒）
	Stats    RoundStats
}

// NewGameState 创建空闲状态的 GameState
func NewGameState() *GameState {
	return &GameState{Phase: PhaseIdle}
}

// StartRound 按难度预设开始新回合
// 预设按值复制：回合进行中难度表被热重载不会影响本回合
func (gs *GameState) StartRound(difficulty string, preset config.DifficultyPreset, scoring config.ScoringConfig, milestones []config.Milestone) {
	gs.RoundID = uuid.NewString()
	gs.Difficulty = difficulty
	gs.Preset = preset

	gs.FallSpeed = preset.DropSpeed
	gs.SpawnIntervalMs = preset.SpawnIntervalMs
	gs.DirtyRatio = preset.DirtyRatio

	gs.Progress = NewProgressTracker(preset.WinGoal, scoring, milestones)
	gs.Phase = PhaseRunning
	gs.IsPaused = false
	gs.Result = ResultNone
	gs.Elapsed = 0
	gs.Stats = RoundStats{}

	log.Printf("[GameState] Round %s started: difficulty=%s speed=%.2f interval=%.0fms dirty=%.2f",
		gs.RoundID, difficulty, gs.FallSpeed, gs.SpawnIntervalMs, gs.DirtyRatio)
}

// ApplyDrift 执行一次难度漂移（每生成一个水滴前调用）
// 污水率和下落速度递增至上限，生成间隔递减至下限
func (gs *GameState) ApplyDrift() {
	d := gs.Preset.Drift
	gs.DirtyRatio = math.Min(d.DirtyRatioMax, gs.DirtyRatio+d.DirtyRatioStep)
	gs.FallSpeed = math.Min(d.DropSpeedMax, gs.FallSpeed+d.DropSpeedStep)
	gs.SpawnIntervalMs = math.Max(d.SpawnIntervalMin, gs.SpawnIntervalMs-d.SpawnIntervalStep)
}

// IsRunning 回合是否进行中
func (gs *GameState) IsRunning() bool {
	return gs.Phase == PhaseRunning
}

// SetPaused 设置暂停状态，只有进行中的回合可以暂停
func (gs *GameState) SetPaused(paused bool) {
	gs.IsPaused = paused && gs.IsRunning()
}

// Tick 累加回合时间
func (gs *GameState) Tick(deltaTime float64) {
	if gs.IsRunning() && !gs.IsPaused {
		gs.Elapsed += deltaTime
	}
}

// EndRound 结束回合
// 重复调用只记录第一次的结果
func (gs *GameState) EndRound(result RoundResult) {
	if gs.Phase != PhaseRunning {
		return
	}
	gs.Phase = PhaseEnded
	gs.IsPaused = false
	gs.Result = result

	log.Printf("[GameState] Round %s ended: result=%s progress=%.0f elapsed=%.1fs caught=%d/%d missed=%d",
		gs.RoundID, result, gs.Progress.Progress(), gs.Elapsed,
		gs.Stats.CleanCaught, gs.Stats.DirtyCaught, gs.Stats.Missed)
}
