package entities

import (
	"fmt"

	"github.com/decker502/cleandrop/pkg/components"
	"github.com/decker502/cleandrop/pkg/ecs"
)

// NewProgressBarEntity 创建 HUD 进度条实体
// 进度条带一个未激活的闪烁组件，接住水滴时由 FlashEffectSystem 触发
func NewProgressBarEntity(em *ecs.EntityManager, x, y, width, height float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("invalid progress bar size %gx%g", width, height)
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.ProgressBarComponent{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	})
	ecs.AddComponent(em, entityID, &components.FlashEffectComponent{})

	return entityID, nil
}
