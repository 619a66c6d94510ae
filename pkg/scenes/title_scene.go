package scenes

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/cleandrop/pkg/config"
	"github.com/decker502/cleandrop/pkg/input"
	"github.com/decker502/cleandrop/pkg/render"
)

// 标题画面布局
const (
	titleY         = 70.0
	menuTop        = 170
	menuButtonW    = 200
	menuButtonH    = 38
	menuButtonGap  = 12
	startButtonGap = 28
)

// TitleScene 标题画面：选择难度后开始
type TitleScene struct {
	session  *Session
	names    []string
	labels   []string
	selected int

	options []image.Rectangle
	start   image.Rectangle
}

// NewTitleScene 创建标题画面
// 难度按难度表的显示顺序排列，默认选中上一次选择的难度
func NewTitleScene(session *Session) *TitleScene {
	table := session.World.Difficulty()
	names := table.PresetNames()

	labels := make([]string, len(names))
	selected := 0
	for i, name := range names {
		labels[i] = name
		if preset, err := table.Preset(name); err == nil && preset.Label != "" {
			labels[i] = preset.Label
		}
		if name == session.Difficulty {
			selected = i
		}
	}

	options, start := titleLayout(len(names), config.GameWindowWidth)
	return &TitleScene{
		session:  session,
		names:    names,
		labels:   labels,
		selected: selected,
		options:  options,
		start:    start,
	}
}

// titleLayout 计算难度按钮与开始按钮的位置（纵向居中排列）
func titleLayout(count, screenWidth int) (options []image.Rectangle, start image.Rectangle) {
	x := (screenWidth - menuButtonW) / 2
	y := menuTop
	for i := 0; i < count; i++ {
		options = append(options, image.Rect(x, y, x+menuButtonW, y+menuButtonH))
		y += menuButtonH + menuButtonGap
	}
	y += startButtonGap - menuButtonGap
	start = image.Rect(x, y, x+menuButtonW, y+menuButtonH)
	return options, start
}

// Selected 返回当前选中的难度名
func (s *TitleScene) Selected() string {
	if len(s.names) == 0 {
		return ""
	}
	return s.names[s.selected]
}

// move 移动选中项（循环）
func (s *TitleScene) move(dir int) {
	n := len(s.names)
	if n == 0 || dir == 0 {
		return
	}
	s.selected = ((s.selected+dir)%n + n) % n
}

// startGame 以选中的难度进入游戏画面
func (s *TitleScene) startGame() {
	s.session.Difficulty = s.Selected()
	s.session.Manager.LoadScene(SceneGame)
}

// Update 处理菜单输入
func (s *TitleScene) Update(deltaTime float64) {
	s.move(input.MenuDirection())

	for i, r := range s.options {
		if input.ClickedIn(r) {
			s.selected = i
		}
	}

	if input.ConfirmPressed() || input.ClickedIn(s.start) {
		s.startGame()
	}
}

// Draw 绘制标题画面
func (s *TitleScene) Draw(screen *ebiten.Image) {
	screen.Fill(render.ColorBackground)
	fonts := s.session.Fonts
	cx := float64(config.GameWindowWidth) / 2

	y := render.DrawCenteredLines(screen, fonts.Large, []string{"Clean Drop"}, cx, titleY, render.ColorText)
	render.DrawCenteredLines(screen, fonts.Regular,
		render.WrapText("Catch the clean drops. Dodge the dirty ones.", fonts.Regular, float64(config.GameWindowWidth)-40),
		cx, y+4, render.ColorTextMuted)

	for i, r := range s.options {
		render.DrawButton(screen, fonts.Regular, r, s.labels[i], i == s.selected)
	}
	render.DrawButton(screen, fonts.Regular, s.start, "Start", false)

	render.DrawCenteredLines(screen, fonts.Small,
		[]string{"Move: Left/Right, A/D or drag", "Esc/P: pause   M: mute   F11: fullscreen"},
		cx, float64(s.start.Max.Y)+24, render.ColorTextMuted)
}
