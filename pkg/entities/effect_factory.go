package entities

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/decker502/cleandrop/pkg/components"
	"github.com/decker502/cleandrop/pkg/config"
	"github.com/decker502/cleandrop/pkg/ecs"
)

// NewSplashEntity 创建接住水滴时的水花实体
// 水花出现在水滴的 x 位置、水桶上沿，SplashDuration 后由 LifetimeSystem 删除
func NewSplashEntity(em *ecs.EntityManager, kind components.DropKind, x, bucketTop float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: bucketTop})
	ecs.AddComponent(em, entityID, &components.SplashComponent{
		Kind: kind,
		Size: config.SplashSize,
	})
	ecs.AddComponent(em, entityID, &components.LifetimeComponent{
		MaxLifetime: config.SplashDuration,
	})

	return entityID, nil
}

// ShowMilestoneBanner 在场地中央显示里程碑横幅
//
// 同一时间只有一个横幅：已有横幅时替换文字并重新计时，否则新建实体。
// 返回横幅实体ID。
func ShowMilestoneBanner(em *ecs.EntityManager, message string) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	for _, id := range ecs.GetEntitiesWith2[*components.MilestoneBannerComponent, *components.LifetimeComponent](em) {
		if em.IsMarkedForDestroy(id) {
			continue
		}
		banner, _ := ecs.GetComponent[*components.MilestoneBannerComponent](em, id)
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
		banner.Message = message
		lifetime.CurrentLifetime = 0
		lifetime.IsExpired = false
		return id, nil
	}

	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.MilestoneBannerComponent{Message: message})
	ecs.AddComponent(em, entityID, &components.LifetimeComponent{
		MaxLifetime: config.MilestoneBannerDuration,
	})

	return entityID, nil
}

// NewConfettiBurst 创建胜利彩纸
//
// 参数:
//   - em: 实体管理器
//   - rng: 随机源（位置、颜色、时长、旋转方向）
//   - screenWidth, screenHeight: 彩纸覆盖的屏幕尺寸
//
// 返回创建的彩纸实体ID列表。
// 每片彩纸的存在时间为动画时长 + ConfettiLinger。
func NewConfettiBurst(em *ecs.EntityManager, rng *rand.Rand, screenWidth, screenHeight float64) ([]ecs.EntityID, error) {
	if em == nil {
		return nil, fmt.Errorf("entity manager cannot be nil")
	}
	if rng == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}

	ids := make([]ecs.EntityID, 0, config.ConfettiCount)
	for i := 0; i < config.ConfettiCount; i++ {
		duration := config.ConfettiMinDuration + rng.Float64()*(config.ConfettiMaxDuration-config.ConfettiMinDuration)
		spin := 360.0
		if rng.Intn(2) == 0 {
			spin = -360.0
		}

		entityID := em.CreateEntity()
		ecs.AddComponent(em, entityID, &components.ConfettiComponent{
			X:            rng.Float64() * (screenWidth - config.ConfettiSize),
			StartY:       config.ConfettiStartY,
			FallDistance: screenHeight * config.ConfettiFallRatio,
			Size:         config.ConfettiSize,
			Color:        paletteColor(config.ConfettiPalette[rng.Intn(len(config.ConfettiPalette))]),
			Spin:         spin,
			Duration:     duration,
			Y:            config.ConfettiStartY,
		})
		ecs.AddComponent(em, entityID, &components.LifetimeComponent{
			MaxLifetime: duration + config.ConfettiLinger,
		})
		ids = append(ids, entityID)
	}

	return ids, nil
}

// paletteColor 将 0xRRGGBB 转为不透明 RGBA
func paletteColor(rgb uint32) color.RGBA {
	return color.RGBA{
		R: uint8(rgb >> 16),
		G: uint8(rgb >> 8),
		B: uint8(rgb),
		A: 0xff,
	}
}
