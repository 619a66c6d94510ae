package tui

import (
	"github.com/gdamore/tcell/v2"
)

// Input 终端水桶输入（实现 systems.BucketInput）
//
// 终端自己产生按键重复，所以每个方向键事件移动一步。
// 事件在两帧之间累积，Latch 把累积值交给本帧。
type Input struct {
	cellWidth float64

	pendingSteps int
	pendingDrag  float64
	steps        int
	drag         float64

	dragging bool
	lastX    int
}

// NewInput 创建输入，cellWidth 为一列对应的场地宽度（鼠标拖动换算）
func NewInput(cellWidth float64) *Input {
	return &Input{cellWidth: cellWidth}
}

// SetCellWidth 终端尺寸变化后更新换算比例
func (in *Input) SetCellWidth(w float64) {
	in.cellWidth = w
}

// Steps 本帧方向键步数
func (in *Input) Steps() int { return in.steps }

// DragDelta 本帧拖动位移（场地像素）
func (in *Input) DragDelta() float64 { return in.drag }

// Latch 结束一帧的事件累积
func (in *Input) Latch() {
	in.steps, in.pendingSteps = in.pendingSteps, 0
	in.drag, in.pendingDrag = in.pendingDrag, 0
}

// Reset 丢弃所有累积输入
func (in *Input) Reset() {
	*in = Input{cellWidth: in.cellWidth}
}

// HandleKey 处理方向键，返回是否消费了事件
func (in *Input) HandleKey(ev *tcell.EventKey) bool {
	switch moveDirection(ev) {
	case -1:
		in.pendingSteps--
	case 1:
		in.pendingSteps++
	default:
		return false
	}
	return true
}

// HandleMouse 左键按住拖动
func (in *Input) HandleMouse(ev *tcell.EventMouse) {
	x, _ := ev.Position()
	if ev.Buttons()&tcell.Button1 == 0 {
		in.dragging = false
		return
	}
	if in.dragging {
		in.pendingDrag += float64(x-in.lastX) * in.cellWidth
	}
	in.dragging = true
	in.lastX = x
}

// moveDirection 左右移动键：←/→、a/d、h/l
func moveDirection(ev *tcell.EventKey) int {
	switch ev.Key() {
	case tcell.KeyLeft:
		return -1
	case tcell.KeyRight:
		return 1
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A', 'h':
			return -1
		case 'd', 'D', 'l':
			return 1
		}
	}
	return 0
}

// menuDirection 菜单上下移动键：↑/↓、w/s、k/j
func menuDirection(ev *tcell.EventKey) int {
	switch ev.Key() {
	case tcell.KeyUp:
		return -1
	case tcell.KeyDown:
		return 1
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W', 'k':
			return -1
		case 's', 'S', 'j':
			return 1
		}
	}
	return 0
}

// isConfirm 回车或空格
func isConfirm(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == ' ')
}
