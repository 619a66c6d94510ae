package render

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/cleandrop/pkg/components"
	"github.com/decker502/cleandrop/pkg/ecs"
	"github.com/decker502/cleandrop/pkg/game"
)

// HUDRenderSystem 绘制顶部 HUD：难度、进度条和百分比
type HUDRenderSystem struct {
	em        *ecs.EntityManager
	gameState *game.GameState
	fonts     *Fonts

	Width, Height float64
}

// NewHUDRenderSystem 创建 HUD 渲染系统
func NewHUDRenderSystem(em *ecs.EntityManager, gs *game.GameState, fonts *Fonts, width, height float64) *HUDRenderSystem {
	return &HUDRenderSystem{
		em:        em,
		gameState: gs,
		fonts:     fonts,
		Width:     width,
		Height:    height,
	}
}

// Draw 绘制 HUD
func (s *HUDRenderSystem) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(s.Width), float32(s.Height), ColorHUD, false)

	for _, id := range ecs.GetEntitiesWith1[*components.ProgressBarComponent](s.em) {
		bar, _ := ecs.GetComponent[*components.ProgressBarComponent](s.em, id)
		flash, _ := ecs.GetComponent[*components.FlashEffectComponent](s.em, id)

		x, y := float32(bar.X), float32(bar.Y)
		w, h := float32(bar.Width), float32(bar.Height)

		vector.DrawFilledRect(screen, x, y, w, h, ColorBarTrack, true)
		if fill := float32(bar.Fill) * w; fill > 0 {
			vector.DrawFilledRect(screen, x, y, fill, h, BarFillColor(flash), true)
		}
		vector.StrokeRect(screen, x, y, w, h, 1, ColorTextMuted, true)

		if s.fonts != nil {
			s.drawLabels(screen, bar)
		}
	}
}

// drawLabels 进度条上方的难度和百分比
func (s *HUDRenderSystem) drawLabels(screen *ebiten.Image, bar *components.ProgressBarComponent) {
	face := s.fonts.Small
	labelY := bar.Y - FontSizeSmall - 6

	left := &text.DrawOptions{}
	left.GeoM.Translate(bar.X, labelY)
	left.ColorScale.ScaleWithColor(ColorTextMuted)
	text.Draw(screen, DifficultyLabel(s.gameState), face, left)

	right := &text.DrawOptions{}
	right.GeoM.Translate(bar.X+bar.Width, labelY)
	right.PrimaryAlign = text.AlignEnd
	right.ColorScale.ScaleWithColor(ColorText)
	text.Draw(screen, PercentLabel(bar.Target), face, right)
}

// PercentLabel 进度百分比文字
func PercentLabel(ratio float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(ratio*100)))
}

// DifficultyLabel HUD 左上角的难度文字
func DifficultyLabel(gs *game.GameState) string {
	if gs == nil || gs.Difficulty == "" {
		return ""
	}
	label := gs.Preset.Label
	if label == "" {
		label = gs.Difficulty
	}
	return "Difficulty: " + label
}
