package systems

import (
	"github.com/decker502/cleandrop/pkg/components"
	"github.com/decker502/cleandrop/pkg/config"
	"github.com/decker502/cleandrop/pkg/ecs"
	"github.com/decker502/cleandrop/pkg/game"
	"github.com/decker502/cleandrop/pkg/utils"
)

// BucketInput 水桶移动输入
// 桌面端由 input.Controller（键盘/鼠标/触摸）实现，终端版由 tui 实现，模拟器使用 world.Autopilot
type BucketInput interface {
	// Steps 本帧的方向键步数：负数向左，正数向右
	Steps() int
	// DragDelta 本帧指针拖动的水平位移（场地像素）
	DragDelta() float64
}

// BucketControlSystem 根据输入移动水桶，并将其限制在场地内
type BucketControlSystem struct {
	em         *ecs.EntityManager
	gameState  *game.GameState
	input      BucketInput
	fieldWidth float64
}

// NewBucketControlSystem 创建水桶控制系统
// input 为 nil 时水桶保持不动
func NewBucketControlSystem(em *ecs.EntityManager, gs *game.GameState, input BucketInput, fieldWidth float64) *BucketControlSystem {
	return &BucketControlSystem{
		em:         em,
		gameState:  gs,
		input:      input,
		fieldWidth: fieldWidth,
	}
}

// SetInput 更换输入源
func (s *BucketControlSystem) SetInput(input BucketInput) {
	s.input = input
}

// Update 读取输入并移动水桶
func (s *BucketControlSystem) Update(deltaTime float64) {
	if s.input == nil || !s.gameState.IsRunning() {
		return
	}

	dx := float64(s.input.Steps())*config.BucketKeyStep + s.input.DragDelta()
	if dx == 0 {
		return
	}

	for _, id := range ecs.GetEntitiesWith2[*components.BucketComponent, *components.PositionComponent](s.em) {
		bucket, _ := ecs.GetComponent[*components.BucketComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		pos.X = utils.Clamp(pos.X+dx, 0, s.fieldWidth-bucket.Width)
	}
}
