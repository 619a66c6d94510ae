package render

import (
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawButton 绘制按钮：selected 时加粗描边
func DrawButton(screen *ebiten.Image, face *text.GoTextFace, r image.Rectangle, label string, selected bool) {
	x, y := float32(r.Min.X), float32(r.Min.Y)
	w, h := float32(r.Dx()), float32(r.Dy())

	vector.DrawFilledRect(screen, x, y, w, h, ColorButton, true)
	if selected {
		vector.StrokeRect(screen, x, y, w, h, 3, ColorSelected, true)
	} else {
		vector.StrokeRect(screen, x, y, w, h, 1, ColorBucketRim, true)
	}

	if face == nil {
		return
	}
	_, th := text.Measure(label, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(r.Min.X)+float64(r.Dx())/2, float64(r.Min.Y)+(float64(r.Dy())-th)/2)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(ColorButtonText)
	text.Draw(screen, label, face, op)
}

// DrawCenteredLines 从 y 开始逐行居中绘制文字，返回绘制结束的 y
func DrawCenteredLines(screen *ebiten.Image, face *text.GoTextFace, lines []string, centerX, y float64, clr color.Color) float64 {
	lineHeight := face.Size * 1.35
	for _, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(centerX, y)
		op.PrimaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(screen, line, face, op)
		y += lineHeight
	}
	return y
}

// WrapText 按宽度折行
// 文字中的换行符保留为段落分隔；单个超长单词独占一行
func WrapText(s string, face *text.GoTextFace, maxWidth float64) []string {
	var lines []string
	for _, paragraph := range strings.Split(s, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		line := words[0]
		for _, word := range words[1:] {
			candidate := line + " " + word
			if w, _ := text.Measure(candidate, face, 0); w > maxWidth {
				lines = append(lines, line)
				line = word
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}
