// Package modules 放置由多个系统和 UI 组合而成、可在场景间复用的功能模块
package modules

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/cleandrop/pkg/game"
	"github.com/decker502/cleandrop/pkg/input"
	"github.com/decker502/cleandrop/pkg/render"
)

// 暂停菜单布局
const (
	pauseButtonWidth  = 180
	pauseButtonHeight = 36
	pauseButtonGap    = 12
)

// PauseMenuModule 暂停菜单模块
// 封装暂停状态的控制（暂停/恢复）、菜单按钮的交互和渲染（遮罩、按钮）。
// 暂停状态保存在 GameState.IsPaused，World 暂停时不推进。
type PauseMenuModule struct {
	gameState *game.GameState
	fonts     *render.Fonts

	buttons  []pauseButton
	selected int

	callbacks PauseMenuCallbacks

	// 上一帧的激活状态（检测外部修改 IsPaused）
	wasActive bool

	windowWidth  int
	windowHeight int
}

// PauseMenuCallbacks 暂停菜单回调函数集合
type PauseMenuCallbacks struct {
	OnContinue func() // "继续"
	OnRestart  func() // "重新开始"（同一难度的新回合）
	OnMainMenu func() // "返回标题"
}

type pauseButton struct {
	label string
	rect  image.Rectangle
	run   func()
}

// NewPauseMenuModule 创建暂停菜单模块
// 三个按钮在窗口中央纵向排列，初始为隐藏
func NewPauseMenuModule(gs *game.GameState, fonts *render.Fonts, windowWidth, windowHeight int, callbacks PauseMenuCallbacks) *PauseMenuModule {
	m := &PauseMenuModule{
		gameState:    gs,
		fonts:        fonts,
		callbacks:    callbacks,
		windowWidth:  windowWidth,
		windowHeight: windowHeight,
	}

	labels := []string{"Continue", "Restart", "Main menu"}
	actions := []func(){callbacks.OnContinue, callbacks.OnRestart, callbacks.OnMainMenu}

	total := len(labels)*pauseButtonHeight + (len(labels)-1)*pauseButtonGap
	x := (windowWidth - pauseButtonWidth) / 2
	y := (windowHeight-total)/2 + 20
	for i, label := range labels {
		m.buttons = append(m.buttons, pauseButton{
			label: label,
			rect:  image.Rect(x, y, x+pauseButtonWidth, y+pauseButtonHeight),
			run:   actions[i],
		})
		y += pauseButtonHeight + pauseButtonGap
	}
	return m
}

// Update 处理菜单输入
// 暂停状态被外部修改时同步选中项
func (m *PauseMenuModule) Update(deltaTime float64) {
	if !m.syncState() {
		return
	}

	m.move(input.MenuDirection())
	for i, b := range m.buttons {
		if input.ClickedIn(b.rect) {
			m.Activate(i)
			return
		}
	}
	if input.ConfirmPressed() {
		m.Activate(m.selected)
	}
}

// syncState 同步外部修改的暂停状态，返回是否激活
func (m *PauseMenuModule) syncState() bool {
	active := m.IsActive()
	if active != m.wasActive {
		m.wasActive = active
		m.selected = 0
	}
	return active
}

// move 移动选中项（循环）
func (m *PauseMenuModule) move(dir int) {
	n := len(m.buttons)
	if dir == 0 || n == 0 {
		return
	}
	m.selected = ((m.selected+dir)%n + n) % n
}

// Activate 执行第 i 个按钮：先恢复游戏，再调用回调
func (m *PauseMenuModule) Activate(i int) {
	if i < 0 || i >= len(m.buttons) {
		return
	}
	m.Hide()
	if run := m.buttons[i].run; run != nil {
		run()
	}
}

// Draw 渲染暂停菜单（遮罩、标题、按钮）
func (m *PauseMenuModule) Draw(screen *ebiten.Image) {
	if !m.IsActive() {
		return
	}

	vector.DrawFilledRect(screen, 0, 0, float32(m.windowWidth), float32(m.windowHeight), render.ColorBanner, false)

	if m.fonts == nil {
		return
	}
	top := float64(m.buttons[0].rect.Min.Y) - 48
	render.DrawCenteredLines(screen, m.fonts.Large, []string{"Paused"}, float64(m.windowWidth)/2, top, render.ColorBannerTxt)
	for i, b := range m.buttons {
		render.DrawButton(screen, m.fonts.Regular, b.rect, b.label, i == m.selected)
	}
}

// Show 显示暂停菜单并暂停游戏
func (m *PauseMenuModule) Show() {
	m.gameState.SetPaused(true)
	m.wasActive = m.gameState.IsPaused
	m.selected = 0
	if m.wasActive {
		log.Printf("[PauseMenuModule] Pause menu shown")
	}
}

// Hide 隐藏暂停菜单并恢复游戏
func (m *PauseMenuModule) Hide() {
	m.gameState.SetPaused(false)
	m.wasActive = false
	log.Printf("[PauseMenuModule] Pause menu hidden")
}

// Toggle 切换暂停菜单显示/隐藏（ESC / P 键）
func (m *PauseMenuModule) Toggle() {
	if m.gameState.IsPaused {
		m.Hide()
	} else {
		m.Show()
	}
}

// IsActive 暂停菜单是否激活
func (m *PauseMenuModule) IsActive() bool {
	return m.gameState.IsPaused
}
