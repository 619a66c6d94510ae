// Package world 把一个回合的实体管理器、回合状态和全部系统组装在一起
//
// World 与前端无关：ebiten 场景、终端版和 dropsim 模拟器都通过它推进回合，
// 只是各自提供不同的输入（systems.BucketInput）和音效（game.SoundPlayer）。
package world

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/decker502/cleandrop/pkg/config"
	"github.com/decker502/cleandrop/pkg/ecs"
	"github.com/decker502/cleandrop/pkg/entities"
	"github.com/decker502/cleandrop/pkg/game"
	"github.com/decker502/cleandrop/pkg/systems"
)

// DifficultySource 提供当前难度表
// config.DifficultyStore 实现此接口（支持热重载），每个回合开始时读取一次
type DifficultySource interface {
	Load() *config.DifficultyConfig
}

// staticDifficulty 固定难度表
type staticDifficulty struct {
	cfg *config.DifficultyConfig
}

func (s staticDifficulty) Load() *config.DifficultyConfig { return s.cfg }

// Options World 构造参数，零值字段使用默认值
type Options struct {
	FieldWidth   float64 // 默认 config.FieldWidth
	FieldHeight  float64 // 默认 config.FieldHeight
	ScreenWidth  float64 // 彩纸覆盖范围，默认逻辑屏幕宽度
	ScreenHeight float64 // 默认逻辑屏幕高度

	Difficulty DifficultySource     // 默认内置难度表
	Messages   *config.MessageConfig // 默认内置文案表
	Sounds     game.SoundPlayer      // 默认静音
	Input      systems.BucketInput   // 可为 nil
	Seed       int64                 // 随机种子
}

// updater 系统的统一接口
type updater interface {
	Update(deltaTime float64)
}

// World 一个回合的模拟
type World struct {
	EntityManager *ecs.EntityManager
	GameState     *game.GameState

	opts       Options
	difficulty DifficultySource
	messages   *config.MessageConfig
	rng        *rand.Rand

	spawnSystem  *systems.SpawnSystem
	dropSystem   *systems.DropSystem
	bucketSystem *systems.BucketControlSystem

	// 按固定顺序更新：输入 -> 生成 -> 下落/接住 -> 特效
	systems []updater

	onRoundEnd func(result game.RoundResult)
}

// New 创建 World
func New(opts Options) *World {
	if opts.FieldWidth <= 0 {
		opts.FieldWidth = config.FieldWidth
	}
	if opts.FieldHeight <= 0 {
		opts.FieldHeight = config.FieldHeight
	}
	if opts.ScreenWidth <= 0 {
		opts.ScreenWidth = float64(config.GameWindowWidth)
	}
	if opts.ScreenHeight <= 0 {
		opts.ScreenHeight = float64(config.GameWindowHeight)
	}
	if opts.Difficulty == nil {
		opts.Difficulty = staticDifficulty{cfg: config.DefaultDifficultyConfig()}
	}
	if opts.Messages == nil {
		opts.Messages = config.DefaultMessageConfig()
	}
	if opts.Sounds == nil {
		opts.Sounds = game.NopSoundPlayer{}
	}

	em := ecs.NewEntityManager()
	gs := game.NewGameState()
	rng := rand.New(rand.NewSource(opts.Seed))

	w := &World{
		EntityManager: em,
		GameState:     gs,
		opts:          opts,
		difficulty:    opts.Difficulty,
		messages:      opts.Messages,
		rng:           rng,
	}

	w.bucketSystem = systems.NewBucketControlSystem(em, gs, opts.Input, opts.FieldWidth)
	w.spawnSystem = systems.NewSpawnSystem(em, gs, rng, opts.FieldWidth)
	w.dropSystem = systems.NewDropSystem(em, gs, opts.Sounds, opts.FieldHeight)
	w.dropSystem.SetRoundEndHandler(w.handleRoundEnd)

	w.systems = []updater{
		w.bucketSystem,
		w.spawnSystem,
		w.dropSystem,
		systems.NewLifetimeSystem(em),
		systems.NewFlashEffectSystem(em),
		systems.NewProgressBarSystem(em),
		systems.NewConfettiSystem(em),
	}

	return w
}

// SetInput 更换水桶输入
func (w *World) SetInput(input systems.BucketInput) {
	w.bucketSystem.SetInput(input)
}

// SetRoundEndHandler 设置回合结束回调（在彩纸生成之后调用）
func (w *World) SetRoundEndHandler(handler func(result game.RoundResult)) {
	w.onRoundEnd = handler
}

// FieldSize 返回场地尺寸
func (w *World) FieldSize() (width, height float64) {
	return w.opts.FieldWidth, w.opts.FieldHeight
}

// Difficulty 返回当前生效的难度表
func (w *World) Difficulty() *config.DifficultyConfig {
	return w.difficulty.Load()
}

// Messages 返回文案表
func (w *World) Messages() *config.MessageConfig {
	return w.messages
}

// Sounds 返回音效播放器
func (w *World) Sounds() game.SoundPlayer {
	return w.opts.Sounds
}

// StartRound 以指定难度开始新回合
//
// 清除上一回合留下的所有实体，水桶居中，进度归零。
// 难度名为空时使用难度表的默认难度。
func (w *World) StartRound(difficulty string) error {
	table := w.difficulty.Load()
	if difficulty == "" {
		difficulty = table.Default
	}
	preset, err := table.Preset(difficulty)
	if err != nil {
		return fmt.Errorf("failed to start round: %w", err)
	}

	em := w.EntityManager
	em.DestroyAll()
	em.RemoveMarkedEntities()

	if _, err := entities.NewBucketEntity(em, w.opts.FieldWidth, w.opts.FieldHeight); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	if _, err := entities.NewProgressBarEntity(em,
		config.ProgressBarX, config.ProgressBarY, config.ProgressBarWidth, config.ProgressBarHeight); err != nil {
		return fmt.Errorf("failed to create progress bar: %w", err)
	}

	w.GameState.StartRound(difficulty, *preset, table.Scoring, w.messages.Milestones)
	w.spawnSystem.Reset()
	systems.SetProgressTarget(em, 0, true)

	return nil
}

// Step 推进一帧
// 回合结束后特效（水花、横幅、彩纸）继续播放，生成与下落停止；暂停时什么都不做
func (w *World) Step(deltaTime float64) {
	if w.GameState.IsPaused {
		return
	}
	w.GameState.Tick(deltaTime)
	for _, s := range w.systems {
		s.Update(deltaTime)
	}
	w.EntityManager.RemoveMarkedEntities()
}

// EndMessage 返回当前回合的结算文案
func (w *World) EndMessage() string {
	return game.EndMessage(w.GameState.Result, w.GameState.Difficulty, w.messages)
}

// handleRoundEnd 胜利时撒彩纸，再通知外部
func (w *World) handleRoundEnd(result game.RoundResult) {
	if result == game.ResultWin {
		if _, err := entities.NewConfettiBurst(w.EntityManager, w.rng, w.opts.ScreenWidth, w.opts.ScreenHeight); err != nil {
			log.Printf("[World] Warning: failed to create confetti: %v", err)
		}
	}
	if w.onRoundEnd != nil {
		w.onRoundEnd(result)
	}
}
