// Package tui 终端版前端：tcell 绘制和输入，beep 播放音效
//
// 与 ebiten 版共用 world.World，只替换输入、绘制和声音。
package tui

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/cleandrop/pkg/config"
	"github.com/decker502/cleandrop/pkg/game"
	"github.com/decker502/cleandrop/pkg/world"
)

// EndDelay 回合结束后停留在场地画面的时间（秒）
const EndDelay = 0.6

const playHint = "←/→ move  p pause  m mute  esc menu  q quit"

type mode int

const (
	modeTitle mode = iota
	modePlaying
	modeEnded
)

// muter 可切换静音的音效播放器
type muter interface {
	SetMuted(bool)
	IsMuted() bool
}

// Options 终端版配置
type Options struct {
	Difficulty string                 // 非空时跳过标题画面
	Tuning     world.DifficultySource // 默认内置难度表
	Messages   *config.MessageConfig
	Sounds     game.SoundPlayer
	Seed       int64
}

// Game 终端版游戏循环
type Game struct {
	screen tcell.Screen
	world  *world.World
	input  *Input

	view    Viewport
	viewErr error

	mode       mode
	names      []string
	labels     []string
	selected   int
	difficulty string

	ending   bool
	endTimer float64
	headline string
	message  string
}

// NewGame 创建终端版游戏，screen 需已 Init
func NewGame(screen tcell.Screen, opts Options) (*Game, error) {
	w := world.New(world.Options{
		FieldWidth:   config.FieldWidth,
		FieldHeight:  config.FieldHeight,
		ScreenWidth:  config.FieldWidth,
		ScreenHeight: config.FieldHeight,
		Difficulty:   opts.Tuning,
		Messages:     opts.Messages,
		Sounds:       opts.Sounds,
		Seed:         opts.Seed,
	})

	g := &Game{
		screen:     screen,
		world:      w,
		input:      NewInput(1),
		difficulty: w.Difficulty().Default,
	}
	w.SetInput(g.input)
	w.SetRoundEndHandler(g.onRoundEnd)
	g.resize()
	g.showTitle()

	if opts.Difficulty != "" {
		g.difficulty = opts.Difficulty
		if err := g.startRound(); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// World 返回底层模拟
func (g *Game) World() *world.World {
	return g.world
}

// resize 按终端尺寸重新计算场地区域
func (g *Game) resize() {
	w, h := g.screen.Size()
	fw, fh := g.world.FieldSize()
	g.view, g.viewErr = FitViewport(w, h, fw, fh)
	if g.viewErr == nil {
		g.input.SetCellWidth(g.view.CellWidth())
	}
}

// showTitle 回到标题画面，菜单按当前难度表重建（热重载后生效）
func (g *Game) showTitle() {
	table := g.world.Difficulty()
	g.names = table.PresetNames()
	g.labels = make([]string, len(g.names))
	g.selected = 0
	for i, name := range g.names {
		g.labels[i] = name
		if p, err := table.Preset(name); err == nil && p.Label != "" {
			g.labels[i] = p.Label
		}
		if name == g.difficulty {
			g.selected = i
		}
	}
	g.mode = modeTitle
}

// startRound 以选中的难度开始回合
func (g *Game) startRound() error {
	if err := g.world.StartRound(g.difficulty); err != nil {
		return err
	}
	g.input.Reset()
	g.ending = false
	g.mode = modePlaying
	return nil
}

// onRoundEnd 回合结束回调
func (g *Game) onRoundEnd(result game.RoundResult) {
	g.ending = true
	g.endTimer = EndDelay
	g.headline = game.Headline(result)
	g.message = g.world.EndMessage()
}

// HandleEvent 处理一个终端事件，返回 false 表示退出
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		g.resize()

	case *tcell.EventKey:
		return g.handleKey(ev)

	case *tcell.EventMouse:
		if g.mode == modePlaying && !g.world.GameState.IsPaused {
			g.input.HandleMouse(ev)
		}
	}
	return true
}

func (g *Game) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return false
	}
	if ev.Key() == tcell.KeyRune {
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case 'm', 'M':
			if m, ok := g.world.Sounds().(muter); ok {
				m.SetMuted(!m.IsMuted())
			}
			return true
		}
	}

	switch g.mode {
	case modeTitle:
		if ev.Key() == tcell.KeyEscape {
			return false
		}
		if dir := menuDirection(ev); dir != 0 && len(g.names) > 0 {
			n := len(g.names)
			g.selected = ((g.selected+dir)%n + n) % n
		}
		if isConfirm(ev) && len(g.names) > 0 {
			g.difficulty = g.names[g.selected]
			if err := g.startRound(); err != nil {
				log.Printf("[TUI] Error: %v", err)
			}
		}

	case modePlaying:
		gs := g.world.GameState
		if ev.Key() == tcell.KeyEscape {
			gs.EndRound(game.ResultNone)
			g.showTitle()
			return true
		}
		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'p' || ev.Rune() == 'P') {
			gs.SetPaused(!gs.IsPaused)
			g.input.Reset()
			return true
		}
		if !gs.IsPaused {
			g.input.HandleKey(ev)
		}

	case modeEnded:
		if isConfirm(ev) || ev.Key() == tcell.KeyEscape {
			g.showTitle()
		}
	}
	return true
}

// Tick 推进一帧
// 结算画面仍推进 World，让彩纸落完
func (g *Game) Tick(deltaTime float64) {
	switch g.mode {
	case modePlaying:
		g.input.Latch()
		g.world.Step(deltaTime)
		if g.ending {
			g.endTimer -= deltaTime
			if g.endTimer <= 0 {
				g.mode = modeEnded
			}
		}
	case modeEnded:
		g.world.Step(deltaTime)
	}
}

// Draw 绘制当前画面
func (g *Game) Draw() {
	g.screen.Clear()
	defer g.screen.Show()

	if g.viewErr != nil {
		drawText(g.screen, 0, 0, g.viewErr.Error(), styleText)
		return
	}

	v := g.view
	switch g.mode {
	case modeTitle:
		DrawBorder(g.screen, v, "↑/↓ choose  enter start  q quit")
		DrawMenu(g.screen, v, g.labels, g.selected)

	case modePlaying:
		DrawHUD(g.screen, v, g.world.EntityManager, g.world.GameState)
		DrawBorder(g.screen, v, playHint)
		DrawField(g.screen, v, g.world.EntityManager)
		if g.world.GameState.IsPaused {
			drawCentered(g.screen, v.Left, v.Cols, v.Top+v.Rows/2-2, " PAUSED ", styleBanner)
		}

	case modeEnded:
		DrawHUD(g.screen, v, g.world.EntityManager, g.world.GameState)
		DrawBorder(g.screen, v, "enter menu  q quit")
		DrawEnd(g.screen, v, g.headline, g.message)
		DrawConfetti(g.screen, v, g.world.EntityManager)
	}
}

// Run 运行游戏循环直到退出键或 ctx 取消
func (g *Game) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second / config.TicksPerSecond)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	const dt = 1.0 / config.TicksPerSecond
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			if !g.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			g.Tick(dt)
			g.Draw()
		}
	}
}
