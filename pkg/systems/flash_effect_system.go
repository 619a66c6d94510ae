package systems

import (
	"github.com/decker502/cleandrop/pkg/components"
	"github.com/decker502/cleandrop/pkg/config"
	"github.com/decker502/cleandrop/pkg/ecs"
)

// FlashEffectSystem 闪烁效果系统
// 管理进度条接住水滴时的闪绿/闪红
type FlashEffectSystem struct {
	entityManager *ecs.EntityManager
}

// NewFlashEffectSystem 创建闪烁效果系统
func NewFlashEffectSystem(em *ecs.EntityManager) *FlashEffectSystem {
	return &FlashEffectSystem{
		entityManager: em,
	}
}

// Update 更新所有闪烁效果
// 参数：
//   - dt: 时间增量（秒）
func (s *FlashEffectSystem) Update(dt float64) {
	entities := ecs.GetEntitiesWith1[*components.FlashEffectComponent](s.entityManager)

	for _, entity := range entities {
		flashComp, ok := ecs.GetComponent[*components.FlashEffectComponent](s.entityManager, entity)
		if !ok || !flashComp.IsActive {
			continue
		}

		flashComp.Elapsed += dt

		// 闪烁结束，保留组件供下次触发
		if flashComp.Elapsed >= flashComp.Duration {
			flashComp.IsActive = false
			flashComp.Elapsed = 0
		}
	}
}

// TriggerFlash 让所有带闪烁组件的实体开始闪烁
// 闪烁进行中再次触发会换成新颜色并重新计时
func TriggerFlash(em *ecs.EntityManager, color components.FlashColor) {
	for _, entity := range ecs.GetEntitiesWith1[*components.FlashEffectComponent](em) {
		flashComp, ok := ecs.GetComponent[*components.FlashEffectComponent](em, entity)
		if !ok {
			continue
		}
		flashComp.Color = color
		flashComp.Duration = config.FlashDuration
		flashComp.Elapsed = 0
		flashComp.IsActive = true
	}
}

// FlashColorFor 返回水滴类型对应的闪烁颜色
func FlashColorFor(kind components.DropKind) components.FlashColor {
	if kind == components.DropDirty {
		return components.FlashRed
	}
	return components.FlashGreen
}
