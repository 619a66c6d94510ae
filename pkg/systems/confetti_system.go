package systems

import (
	"github.com/decker502/cleandrop/pkg/components"
	"github.com/decker502/cleandrop/pkg/ecs"
	"github.com/decker502/cleandrop/pkg/utils"
)

// ConfettiSystem 胜利彩纸动画
// 彩纸以缓入曲线下落并旋转，删除交给 LifetimeSystem
type ConfettiSystem struct {
	em *ecs.EntityManager
}

// NewConfettiSystem 创建彩纸系统
func NewConfettiSystem(em *ecs.EntityManager) *ConfettiSystem {
	return &ConfettiSystem{em: em}
}

// Update 推进所有彩纸的动画
func (s *ConfettiSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.ConfettiComponent](s.em) {
		piece, _ := ecs.GetComponent[*components.ConfettiComponent](s.em, id)
		piece.Age += deltaTime

		t := 1.0
		if piece.Duration > 0 {
			t = utils.Clamp01(piece.Age / piece.Duration)
		}
		eased := utils.EaseInQuad(t)

		piece.Y = piece.StartY + piece.FallDistance*eased
		piece.Rotation = piece.Spin * eased
	}
}
