package systems

import (
	"github.com/decker502/cleandrop/pkg/components"
	"github.com/decker502/cleandrop/pkg/ecs"
)

// LifetimeSystem 管理短暂实体（水花、里程碑横幅、彩纸）的生命周期
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
	}
}

// Update 更新所有拥有生命周期组件的实体
// 过期实体只做删除标记，由回合循环末尾的 RemoveMarkedEntities 统一清理
func (s *LifetimeSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager)

	for _, id := range entities {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok {
			continue
		}

		lifetime.CurrentLifetime += deltaTime

		if lifetime.CurrentLifetime >= lifetime.MaxLifetime {
			lifetime.IsExpired = true
		}

		if lifetime.IsExpired {
			s.entityManager.DestroyEntity(id)
		}
	}
}
