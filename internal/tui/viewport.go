package tui

import (
	"fmt"
	"math"
)

// 终端布局：两行 HUD、场地上边框、场地、下边框、一行提示
const (
	hudRows      = 2
	fieldTopRow  = hudRows + 1
	chromeRows   = fieldTopRow + 2
	maxFieldCols = 48
	maxFieldRows = 30
	minFieldCols = 20
	minFieldRows = 10
)

// Viewport 把场地坐标映射到终端字符格
// Left/Top 是场地内部左上角所在的列和行，Cols×Rows 是场地内部的格数
type Viewport struct {
	Left, Top  int
	Cols, Rows int
	FieldW     float64
	FieldH     float64
}

// FitViewport 按终端尺寸计算场地区域（水平居中）
func FitViewport(screenW, screenH int, fieldW, fieldH float64) (Viewport, error) {
	cols := min(screenW-2, maxFieldCols)
	rows := min(screenH-chromeRows, maxFieldRows)
	if cols < minFieldCols || rows < minFieldRows {
		return Viewport{}, fmt.Errorf("terminal too small: %dx%d, need at least %dx%d",
			screenW, screenH, minFieldCols+2, minFieldRows+chromeRows)
	}
	return Viewport{
		Left:   (screenW - cols) / 2,
		Top:    fieldTopRow,
		Cols:   cols,
		Rows:   rows,
		FieldW: fieldW,
		FieldH: fieldH,
	}, nil
}

// CellWidth 一个字符格对应的场地宽度
func (v Viewport) CellWidth() float64 {
	return v.FieldW / float64(v.Cols)
}

// Col 场地 X 坐标对应的列（夹在场地内）
func (v Viewport) Col(x float64) int {
	c := int(math.Floor(x / v.CellWidth()))
	return v.Left + max(0, min(v.Cols-1, c))
}

// Row 场地 Y 坐标对应的行，ok 为 false 表示在场地外
func (v Viewport) Row(y float64) (row int, ok bool) {
	r := int(math.Floor(y / (v.FieldH / float64(v.Rows))))
	if r < 0 || r >= v.Rows {
		return 0, false
	}
	return v.Top + r, true
}

// Span 场地水平区间 [x, x+w) 覆盖的列（至少一列）
func (v Viewport) Span(x, w float64) (from, to int) {
	from = v.Col(x)
	to = v.Col(x + w - v.CellWidth()/2)
	if to < from {
		to = from
	}
	return from, to
}
