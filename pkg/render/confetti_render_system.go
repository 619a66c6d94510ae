package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/cleandrop/pkg/components"
	"github.com/decker502/cleandrop/pkg/config"
	"github.com/decker502/cleandrop/pkg/ecs"
)

// ConfettiRenderSystem 绘制胜利彩纸（屏幕坐标）
type ConfettiRenderSystem struct {
	em *ecs.EntityManager
}

// NewConfettiRenderSystem 创建彩纸渲染系统
func NewConfettiRenderSystem(em *ecs.EntityManager) *ConfettiRenderSystem {
	return &ConfettiRenderSystem{em: em}
}

// Draw 绘制所有彩纸
// 圆形纸片上画一条高光线，旋转时高光随之转动
func (s *ConfettiRenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.ConfettiComponent](s.em) {
		piece, _ := ecs.GetComponent[*components.ConfettiComponent](s.em, id)

		r := piece.Size / 2
		cx := piece.X + r
		cy := piece.Y + r
		clr := withAlpha(piece.Color, config.ConfettiAlpha)

		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r), clr, true)

		dx, dy := ConfettiHighlight(piece.Rotation, r*0.7)
		vector.StrokeLine(screen,
			float32(cx-dx), float32(cy-dy), float32(cx+dx), float32(cy+dy),
			1.5, withAlpha(ColorHUD, 0.6), true)
	}
}

// ConfettiHighlight 返回旋转 rotation 度后高光线半长的 x/y 分量
func ConfettiHighlight(rotation, halfLength float64) (dx, dy float64) {
	rad := rotation * math.Pi / 180
	return math.Cos(rad) * halfLength, math.Sin(rad) * halfLength
}
