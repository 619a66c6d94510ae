package entities

import (
	"fmt"

	"github.com/decker502/cleandrop/pkg/components"
	"github.com/decker502/cleandrop/pkg/config"
	"github.com/decker502/cleandrop/pkg/ecs"
)

// NewDropEntity 创建一个从场地顶部开始下落的水滴实体
//
// 参数:
//   - em: 实体管理器
//   - kind: 净水或污水
//   - x: 水滴左边缘的场地坐标
//   - width: 水滴宽度（config.DropWidthFor 计算），高度按比例推出
//
// 返回:
//   - ecs.EntityID: 创建的水滴实体ID，如果失败返回 0
//   - error: 参数无效时返回错误
func NewDropEntity(em *ecs.EntityManager, kind components.DropKind, x, width float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if width <= 0 {
		return 0, fmt.Errorf("drop width must be > 0, got %g", width)
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: 0})
	ecs.AddComponent(em, entityID, &components.DropComponent{
		Kind:   kind,
		Width:  width,
		Height: width * config.DropHeightRatio,
	})

	return entityID, nil
}
