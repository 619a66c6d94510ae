package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/cleandrop/pkg/components"
	"github.com/decker502/cleandrop/pkg/ecs"
	"github.com/decker502/cleandrop/pkg/game"
)

// Canvas 可绘制的字符网格，tcell.Screen 实现此接口
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// 样式
var (
	styleText      = tcell.StyleDefault
	styleMuted     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBorder    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleClean     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x2E, 0x9D, 0xF7))
	styleDirty     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x7A, 0x5C, 0x32))
	styleBucket    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xFF, 0xC9, 0x07))
	styleBarTrack  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBarFill   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x2E, 0x9D, 0xF7))
	styleFlashGood = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x4F, 0xCB, 0x53))
	styleFlashBad  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xF5, 0x40, 0x2C))
	styleBanner    = tcell.StyleDefault.Reverse(true).Bold(true)
	styleSelected  = tcell.StyleDefault.Reverse(true)
)

// 字符
const (
	runeDrop     = '●'
	runeBucket   = '▀'
	runeSplash   = '*'
	runeBarFill  = '█'
	runeBarTrack = '░'
	runeConfetti = '✦'
)

// drawText 从 (x, y) 开始绘制文字，返回结束列
func drawText(c Canvas, x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		c.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// drawCentered 在 [left, left+width) 内居中绘制
func drawCentered(c Canvas, left, width, y int, s string, style tcell.Style) {
	n := len([]rune(s))
	drawText(c, left+max(0, (width-n)/2), y, s, style)
}

// dropStyle 水滴颜色
func dropStyle(kind components.DropKind) tcell.Style {
	if kind == components.DropDirty {
		return styleDirty
	}
	return styleClean
}

// barStyle 进度条填充颜色：闪烁中用闪烁色
func barStyle(flash *components.FlashEffectComponent) tcell.Style {
	if flash == nil || !flash.IsActive {
		return styleBarFill
	}
	if flash.Color == components.FlashRed {
		return styleFlashBad
	}
	return styleFlashGood
}

// BarCells 进度条填充格数
func BarCells(ratio float64, width int) int {
	if ratio <= 0 || width <= 0 {
		return 0
	}
	return min(width, int(math.Round(ratio*float64(width))))
}

// DrawHUD 绘制难度、百分比和进度条
func DrawHUD(c Canvas, v Viewport, em *ecs.EntityManager, gs *game.GameState) {
	left := v.Left - 1
	width := v.Cols + 2

	label := "Difficulty: " + gs.Preset.Label
	if gs.Preset.Label == "" {
		label = "Difficulty: " + gs.Difficulty
	}
	drawText(c, left, 0, label, styleText)

	ratio := 0.0
	var flash *components.FlashEffectComponent
	for _, id := range ecs.GetEntitiesWith1[*components.ProgressBarComponent](em) {
		bar, _ := ecs.GetComponent[*components.ProgressBarComponent](em, id)
		ratio = bar.Fill
		flash, _ = ecs.GetComponent[*components.FlashEffectComponent](em, id)
		break
	}

	percent := fmt.Sprintf("%3d%%", int(math.Round(ratio*100)))
	drawText(c, left+width-len(percent), 0, percent, styleText)

	filled := BarCells(ratio, width)
	fill := barStyle(flash)
	for i := 0; i < width; i++ {
		if i < filled {
			c.SetContent(left+i, 1, runeBarFill, nil, fill)
		} else {
			c.SetContent(left+i, 1, runeBarTrack, nil, styleBarTrack)
		}
	}
}

// DrawBorder 绘制场地边框和底部提示
func DrawBorder(c Canvas, v Viewport, hint string) {
	top, bottom := v.Top-1, v.Top+v.Rows
	left, right := v.Left-1, v.Left+v.Cols

	for x := v.Left; x < right; x++ {
		c.SetContent(x, top, '─', nil, styleBorder)
		c.SetContent(x, bottom, '─', nil, styleBorder)
	}
	for y := v.Top; y < bottom; y++ {
		c.SetContent(left, y, '│', nil, styleBorder)
		c.SetContent(right, y, '│', nil, styleBorder)
	}
	c.SetContent(left, top, '┌', nil, styleBorder)
	c.SetContent(right, top, '┐', nil, styleBorder)
	c.SetContent(left, bottom, '└', nil, styleBorder)
	c.SetContent(right, bottom, '┘', nil, styleBorder)

	drawCentered(c, left, v.Cols+2, bottom+1, hint, styleMuted)
}

// DrawField 绘制水滴、水桶、水花和里程碑横幅
func DrawField(c Canvas, v Viewport, em *ecs.EntityManager) {
	for _, id := range ecs.GetEntitiesWith2[*components.DropComponent, *components.PositionComponent](em) {
		drop, _ := ecs.GetComponent[*components.DropComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		row, ok := v.Row(pos.Y + drop.Height/2)
		if !ok {
			continue
		}
		c.SetContent(v.Col(drop.CenterX(pos.X)), row, runeDrop, nil, dropStyle(drop.Kind))
	}

	for _, id := range ecs.GetEntitiesWith2[*components.BucketComponent, *components.PositionComponent](em) {
		bucket, _ := ecs.GetComponent[*components.BucketComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		row, ok := v.Row(pos.Y)
		if !ok {
			row = v.Top + v.Rows - 1
		}
		from, to := v.Span(pos.X, bucket.Width)
		for col := from; col <= to; col++ {
			c.SetContent(col, row, runeBucket, nil, styleBucket)
		}
	}

	for _, id := range ecs.GetEntitiesWith2[*components.SplashComponent, *components.PositionComponent](em) {
		splash, _ := ecs.GetComponent[*components.SplashComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		row, ok := v.Row(pos.Y)
		if !ok {
			continue
		}
		c.SetContent(v.Col(pos.X), row-1, runeSplash, nil, dropStyle(splash.Kind))
	}

	for _, id := range ecs.GetEntitiesWith1[*components.MilestoneBannerComponent](em) {
		banner, _ := ecs.GetComponent[*components.MilestoneBannerComponent](em, id)
		drawCentered(c, v.Left, v.Cols, v.Top+v.Rows/2, " "+banner.Message+" ", styleBanner)
	}
}

// DrawConfetti 绘制彩纸（与场地共用坐标）
func DrawConfetti(c Canvas, v Viewport, em *ecs.EntityManager) {
	for _, id := range ecs.GetEntitiesWith1[*components.ConfettiComponent](em) {
		piece, _ := ecs.GetComponent[*components.ConfettiComponent](em, id)
		row, ok := v.Row(piece.Y)
		if !ok {
			continue
		}
		clr := tcell.NewRGBColor(int32(piece.Color.R), int32(piece.Color.G), int32(piece.Color.B))
		c.SetContent(v.Col(piece.X), row, runeConfetti, nil, tcell.StyleDefault.Foreground(clr))
	}
}

// DrawMenu 绘制标题画面
func DrawMenu(c Canvas, v Viewport, labels []string, selected int) {
	left, width := v.Left, v.Cols
	y := v.Top + 1

	drawCentered(c, left, width, y, "CLEAN DROP", styleText.Bold(true))
	drawCentered(c, left, width, y+2, "Catch the clean drops.", styleMuted)
	drawCentered(c, left, width, y+3, "Dodge the dirty ones.", styleMuted)

	y += 6
	for i, label := range labels {
		style := styleText
		if i == selected {
			style = styleSelected
		}
		drawCentered(c, left, width, y+i*2, fmt.Sprintf("  %-8s  ", label), style)
	}

	drawCentered(c, left, width, y+len(labels)*2+1, "Enter: start", styleMuted)
}

// DrawEnd 绘制结算文案（自动折行）
func DrawEnd(c Canvas, v Viewport, headline, message string) {
	y := v.Top + v.Rows/4
	drawCentered(c, v.Left, v.Cols, y, headline, styleText.Bold(true))
	y += 2
	for _, line := range Wrap(message, v.Cols-2) {
		drawCentered(c, v.Left, v.Cols, y, line, styleText)
		y++
	}
	drawCentered(c, v.Left, v.Cols, y+1, "Enter: play again", styleMuted)
}

// Wrap 按字符数折行，保留原有换行
func Wrap(s string, width int) []string {
	var lines []string
	for _, paragraph := range strings.Split(s, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, word := range words[1:] {
			if len([]rune(line))+1+len([]rune(word)) > width {
				lines = append(lines, line)
				line = word
				continue
			}
			line += " " + word
		}
		lines = append(lines, line)
	}
	return lines
}
