// Package render 使用 ebiten 绘制场地、HUD 和彩纸
package render

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// 字号
const (
	FontSizeSmall   = 12.0
	FontSizeRegular = 16.0
	FontSizeLarge   = 26.0
)

// Fonts 游戏使用的字体
type Fonts struct {
	Small   *text.GoTextFace
	Regular *text.GoTextFace
	Large   *text.GoTextFace
}

// LoadFonts 从内置的 Go Regular 字体创建各字号字体
func LoadFonts() (*Fonts, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source: %w", err)
	}

	face := func(size float64) *text.GoTextFace {
		return &text.GoTextFace{
			Source:    source,
			Size:      size,
			Direction: text.DirectionLeftToRight,
		}
	}

	return &Fonts{
		Small:   face(FontSizeSmall),
		Regular: face(FontSizeRegular),
		Large:   face(FontSizeLarge),
	}, nil
}
