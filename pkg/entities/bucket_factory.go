package entities

import (
	"fmt"

	"github.com/decker502/cleandrop/pkg/components"
	"github.com/decker502/cleandrop/pkg/config"
	"github.com/decker502/cleandrop/pkg/ecs"
)

// NewBucketEntity 创建水桶实体
// 水桶宽度按场地宽度计算，水平居中，上沿距场地底边 BucketBottomMargin + 桶高
func NewBucketEntity(em *ecs.EntityManager, fieldWidth, fieldHeight float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if fieldWidth <= 0 || fieldHeight <= 0 {
		return 0, fmt.Errorf("invalid field size %gx%g", fieldWidth, fieldHeight)
	}

	width := config.BucketWidthFor(fieldWidth)
	height := width * config.BucketHeightRatio

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{
		X: (fieldWidth - width) / 2,
		Y: config.BucketTopFor(fieldHeight, height),
	})
	ecs.AddComponent(em, entityID, &components.BucketComponent{
		Width:  width,
		Height: height,
	})

	return entityID, nil
}
