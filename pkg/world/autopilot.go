package world

import (
	"math"

	"github.com/decker502/cleandrop/pkg/components"
	"github.com/decker502/cleandrop/pkg/ecs"
)

// DefaultAutopilotSpeed 自动驾驶每帧最大移动距离（像素）
const DefaultAutopilotSpeed = 6.0

// dodgeLookahead 污水距桶口小于此距离时开始躲避
const dodgeLookahead = 48.0

// Autopilot 自动控制水桶（dropsim 模拟器、终端版演示模式）
//
// 策略：追最接近桶口的净水；污水即将落入桶中时向空间更大的一侧躲开。
// 每帧移动量不超过 MaxSpeed，模拟真实玩家的手速。
type Autopilot struct {
	em         *ecs.EntityManager
	fieldWidth float64

	// MaxSpeed 每帧最大移动距离（像素）
	MaxSpeed float64
	// DodgeDirty 是否躲避污水
	DodgeDirty bool
}

// NewAutopilot 创建自动驾驶
func NewAutopilot(em *ecs.EntityManager, fieldWidth float64) *Autopilot {
	return &Autopilot{
		em:         em,
		fieldWidth: fieldWidth,
		MaxSpeed:   DefaultAutopilotSpeed,
		DodgeDirty: true,
	}
}

// Steps 自动驾驶不使用方向键
func (a *Autopilot) Steps() int { return 0 }

// DragDelta 返回本帧水桶的水平位移
func (a *Autopilot) DragDelta() float64 {
	bucket, bucketPos, ok := a.bucket()
	if !ok {
		return 0
	}
	center := bucketPos.X + bucket.Width/2

	target, ok := a.target(bucket, bucketPos)
	if !ok {
		return 0
	}

	delta := target - center
	if math.Abs(delta) > a.MaxSpeed {
		delta = math.Copysign(a.MaxSpeed, delta)
	}
	return delta
}

// target 返回水桶中心的目标位置
func (a *Autopilot) target(bucket *components.BucketComponent, bucketPos *components.PositionComponent) (float64, bool) {
	top := bucketPos.Y

	if a.DodgeDirty {
		if x, ok := a.dodgeTarget(bucket, bucketPos); ok {
			return x, true
		}
	}

	// 最接近桶口、仍在桶口上方的净水
	bestY := math.Inf(-1)
	bestX := 0.0
	for _, id := range ecs.GetEntitiesWith2[*components.DropComponent, *components.PositionComponent](a.em) {
		drop, _ := ecs.GetComponent[*components.DropComponent](a.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](a.em, id)
		if drop.Kind != components.DropClean || pos.Y >= top {
			continue
		}
		if pos.Y > bestY {
			bestY = pos.Y
			bestX = drop.CenterX(pos.X)
		}
	}

	if math.IsInf(bestY, -1) {
		return 0, false
	}
	return bestX, true
}

// dodgeTarget 有污水即将落入桶中时，返回躲开后的水桶中心
func (a *Autopilot) dodgeTarget(bucket *components.BucketComponent, bucketPos *components.PositionComponent) (float64, bool) {
	top := bucketPos.Y

	for _, id := range ecs.GetEntitiesWith2[*components.DropComponent, *components.PositionComponent](a.em) {
		drop, _ := ecs.GetComponent[*components.DropComponent](a.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](a.em, id)
		if drop.Kind != components.DropDirty || pos.Y >= top || top-pos.Y > dodgeLookahead {
			continue
		}

		cx := drop.CenterX(pos.X)
		if !bucket.Contains(bucketPos.X, cx) {
			continue
		}

		// 污水中心左右两侧都留出半个桶宽 + 1 像素
		half := bucket.Width/2 + 1
		left, right := cx-half, cx+half
		if left-bucket.Width/2 >= 0 && (cx > a.fieldWidth/2 || right+bucket.Width/2 > a.fieldWidth) {
			return left, true
		}
		return right, true
	}

	return 0, false
}

// bucket 返回水桶组件
func (a *Autopilot) bucket() (*components.BucketComponent, *components.PositionComponent, bool) {
	for _, id := range ecs.GetEntitiesWith2[*components.BucketComponent, *components.PositionComponent](a.em) {
		bucket, _ := ecs.GetComponent[*components.BucketComponent](a.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](a.em, id)
		return bucket, pos, true
	}
	return nil, nil, false
}
