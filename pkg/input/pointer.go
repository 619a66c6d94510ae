package input

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// GetPointerPosition 获取当前指针位置（触摸优先）
func GetPointerPosition() (int, int) {
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		return ebiten.TouchPosition(ids[0])
	}
	return ebiten.CursorPosition()
}

// ClickedIn 本帧是否点击/触摸了矩形区域
func ClickedIn(r image.Rectangle) bool {
	ok, x, y := IsJustTouchedOrClicked()
	return ok && image.Pt(x, y).In(r)
}

// IsAnyKeyJustPressed 任一按键本帧是否刚按下
func IsAnyKeyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// ConfirmPressed 确认键（回车/空格）
func ConfirmPressed() bool {
	return IsAnyKeyJustPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeySpace)
}

// MenuDirection 菜单左右选择：-1 向左（上），1 向右（下），0 无
func MenuDirection() int {
	switch {
	case IsAnyKeyJustPressed(ebiten.KeyArrowLeft, ebiten.KeyArrowUp, ebiten.KeyA, ebiten.KeyW):
		return -1
	case IsAnyKeyJustPressed(ebiten.KeyArrowRight, ebiten.KeyArrowDown, ebiten.KeyD, ebiten.KeyS):
		return 1
	}
	return 0
}
