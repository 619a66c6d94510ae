// Package input 读取 ebiten 的键盘、鼠标和触摸输入
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 按键重复（以帧计）
const (
	KeyRepeatDelay    = 15 // 按住 250ms 后开始重复
	KeyRepeatInterval = 4  // 之后每 4 帧移动一步
)

var (
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
)

// Controller 水桶控制输入（实现 systems.BucketInput）
//
// 键盘：左右方向键或 A/D，按下移动一步，按住后按系统键盘的节奏重复。
// 鼠标/触摸：按住拖动，水桶跟随指针的水平位移。
// 每帧先调用 Update，再由 BucketControlSystem 读取 Steps/DragDelta。
type Controller struct {
	steps int
	drag  float64

	dragging bool
	lastX    int
	touchID  ebiten.TouchID
	touching bool
}

// NewController 创建输入控制器
func NewController() *Controller {
	return &Controller{}
}

// Steps 本帧方向键步数
func (c *Controller) Steps() int {
	return c.steps
}

// DragDelta 本帧拖动位移
func (c *Controller) DragDelta() float64 {
	return c.drag
}

// Update 采集本帧输入
func (c *Controller) Update() {
	c.steps = keySteps(maxPressDuration(rightKeys)) - keySteps(maxPressDuration(leftKeys))
	c.drag = c.updateDrag()
}

// Reset 清除拖动状态（回合开始时调用）
func (c *Controller) Reset() {
	c.steps = 0
	c.drag = 0
	c.dragging = false
	c.touching = false
}

// updateDrag 返回指针本帧的水平位移
// 触摸优先于鼠标；一次拖动只跟踪按下时的那根手指
func (c *Controller) updateDrag() float64 {
	if c.touching {
		if inpututil.IsTouchJustReleased(c.touchID) {
			c.touching = false
			return 0
		}
		x, _ := ebiten.TouchPosition(c.touchID)
		return c.advance(x)
	}

	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		c.touchID = ids[0]
		c.touching = true
		c.dragging = false
		x, _ := ebiten.TouchPosition(c.touchID)
		return c.advance(x)
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, _ := ebiten.CursorPosition()
		return c.advance(x)
	}

	c.dragging = false
	return 0
}

// advance 记录指针位置，返回相对上一帧的位移；拖动的第一帧位移为 0
func (c *Controller) advance(x int) float64 {
	if !c.dragging {
		c.dragging = true
		c.lastX = x
		return 0
	}
	dx := x - c.lastX
	c.lastX = x
	return float64(dx)
}

// maxPressDuration 返回一组按键中按住最久的帧数
func maxPressDuration(keys []ebiten.Key) int {
	longest := 0
	for _, k := range keys {
		if d := inpututil.KeyPressDuration(k); d > longest {
			longest = d
		}
	}
	return longest
}

// keySteps 按住 duration 帧的按键本帧是否移动一步
func keySteps(duration int) int {
	if RepeatFires(duration, KeyRepeatDelay, KeyRepeatInterval) {
		return 1
	}
	return 0
}

// RepeatFires 判断按住 duration 帧时本帧是否触发
// 第 1 帧触发，之后从 delay 帧开始每 interval 帧触发一次
func RepeatFires(duration, delay, interval int) bool {
	if duration <= 0 {
		return false
	}
	if duration == 1 {
		return true
	}
	if interval <= 0 || duration < delay {
		return false
	}
	return (duration-delay)%interval == 0
}
