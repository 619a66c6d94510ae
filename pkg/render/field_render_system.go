package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/cleandrop/pkg/components"
	"github.com/decker502/cleandrop/pkg/ecs"
	"github.com/decker502/cleandrop/pkg/utils"
)

// FieldRenderSystem 绘制场地：水滴、水桶、水花和里程碑横幅
// 场地坐标整体下移 OffsetY（HUD 高度）后绘制到屏幕
type FieldRenderSystem struct {
	em    *ecs.EntityManager
	fonts *Fonts

	OffsetY     float64
	FieldWidth  float64
	FieldHeight float64
}

// NewFieldRenderSystem 创建场地渲染系统
func NewFieldRenderSystem(em *ecs.EntityManager, fonts *Fonts, offsetY, fieldWidth, fieldHeight float64) *FieldRenderSystem {
	return &FieldRenderSystem{
		em:          em,
		fonts:       fonts,
		OffsetY:     offsetY,
		FieldWidth:  fieldWidth,
		FieldHeight: fieldHeight,
	}
}

// Draw 绘制场地
func (s *FieldRenderSystem) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, float32(s.OffsetY), float32(s.FieldWidth), float32(s.FieldHeight), ColorField, false)

	s.drawDrops(screen)
	s.drawBucket(screen)
	s.drawSplashes(screen)
	s.drawBanner(screen)
}

// drawDrops 水滴：底部圆 + 逐渐变细的上部
func (s *FieldRenderSystem) drawDrops(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.DropComponent, *components.PositionComponent](s.em) {
		drop, _ := ecs.GetComponent[*components.DropComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)

		clr := DropColor(drop.Kind)
		cx := float32(drop.CenterX(pos.X))
		top := float32(pos.Y + s.OffsetY)
		r := float32(drop.Width / 2)
		h := float32(drop.Height)

		vector.DrawFilledCircle(screen, cx, top+h-r, r, clr, true)
		vector.DrawFilledCircle(screen, cx, top+h-1.7*r, r*0.65, clr, true)
		vector.DrawFilledCircle(screen, cx, top+r*0.35, r*0.3, clr, true)
	}
}

// drawBucket 水桶：桶身 + 桶口
func (s *FieldRenderSystem) drawBucket(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.BucketComponent, *components.PositionComponent](s.em) {
		bucket, _ := ecs.GetComponent[*components.BucketComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)

		x := float32(pos.X)
		y := float32(pos.Y + s.OffsetY)
		w := float32(bucket.Width)
		h := float32(bucket.Height)
		rim := float32(6)

		vector.DrawFilledRect(screen, x+3, y+rim, w-6, h-rim, ColorBucket, true)
		vector.DrawFilledRect(screen, x, y, w, rim, ColorBucketRim, true)
	}
}

// drawSplashes 水花：扩散并淡出的圆环
func (s *FieldRenderSystem) drawSplashes(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith3[*components.SplashComponent, *components.PositionComponent, *components.LifetimeComponent](s.em) {
		splash, _ := ecs.GetComponent[*components.SplashComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.em, id)

		radius, alpha := SplashShape(splash.Size, lifetime.Progress())
		clr := withAlpha(DropColor(splash.Kind), alpha)
		cx := float32(pos.X + splash.Size/2)
		cy := float32(pos.Y + s.OffsetY)

		vector.StrokeCircle(screen, cx, cy, float32(radius), 3, clr, true)
	}
}

// drawBanner 里程碑横幅
func (s *FieldRenderSystem) drawBanner(screen *ebiten.Image) {
	if s.fonts == nil {
		return
	}
	for _, id := range ecs.GetEntitiesWith2[*components.MilestoneBannerComponent, *components.LifetimeComponent](s.em) {
		banner, _ := ecs.GetComponent[*components.MilestoneBannerComponent](s.em, id)
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.em, id)

		alpha := BannerAlpha(lifetime.Progress())
		face := s.fonts.Large
		tw, th := text.Measure(banner.Message, face, 0)

		cx := s.FieldWidth / 2
		cy := s.OffsetY + s.FieldHeight/2
		pad := 12.0

		vector.DrawFilledRect(screen,
			float32(cx-tw/2-pad), float32(cy-th/2-pad/2),
			float32(tw+2*pad), float32(th+pad),
			withAlpha(ColorBanner, alpha), true)

		op := &text.DrawOptions{}
		op.GeoM.Translate(cx, cy-th/2)
		op.PrimaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(ColorBannerTxt)
		op.ColorScale.ScaleAlpha(float32(alpha))
		text.Draw(screen, banner.Message, face, op)
	}
}

// SplashShape 返回水花在生命周期 progress 时的半径和不透明度
// 半径以缓出曲线从 size/4 扩散到 size/2，不透明度线性淡出
func SplashShape(size, progress float64) (radius, alpha float64) {
	p := utils.Clamp01(progress)
	radius = utils.Lerp(size/4, size/2, utils.EaseOutCubic(p))
	alpha = 1 - p
	return radius, alpha
}

// BannerAlpha 横幅不透明度：最后 20% 的时间淡出
func BannerAlpha(progress float64) float64 {
	const fadeStart = 0.8
	p := utils.Clamp01(progress)
	if p <= fadeStart {
		return 1
	}
	return math.Max(0, (1-p)/(1-fadeStart))
}
