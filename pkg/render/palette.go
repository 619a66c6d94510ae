package render

import (
	"image/color"

	"github.com/decker502/cleandrop/pkg/components"
)

// 配色
var (
	ColorBackground = color.RGBA{0xFF, 0xF7, 0xE0, 0xFF} // 页面底色
	ColorField      = color.RGBA{0xD8, 0xEF, 0xFA, 0xFF} // 场地
	ColorHUD        = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	ColorText       = color.RGBA{0x1A, 0x1A, 0x1A, 0xFF}
	ColorTextMuted  = color.RGBA{0x6B, 0x6B, 0x6B, 0xFF}

	ColorCleanDrop = color.RGBA{0x2E, 0x9D, 0xF7, 0xFF}
	ColorDirtyDrop = color.RGBA{0x7A, 0x5C, 0x32, 0xFF}

	ColorBucket     = color.RGBA{0xFF, 0xC9, 0x07, 0xFF}
	ColorBucketRim  = color.RGBA{0xC8, 0x9A, 0x00, 0xFF}
	ColorBarTrack   = color.RGBA{0xE3, 0xE3, 0xE3, 0xFF}
	ColorBarFill    = color.RGBA{0x2E, 0x9D, 0xF7, 0xFF}
	ColorFlashGreen = color.RGBA{0x4F, 0xCB, 0x53, 0xFF}
	ColorFlashRed   = color.RGBA{0xF5, 0x40, 0x2C, 0xFF}

	ColorBanner    = color.RGBA{0x00, 0x00, 0x00, 0xB0}
	ColorBannerTxt = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}

	ColorButton     = color.RGBA{0xFF, 0xC9, 0x07, 0xFF}
	ColorButtonText = color.RGBA{0x1A, 0x1A, 0x1A, 0xFF}
	ColorSelected   = color.RGBA{0x2E, 0x9D, 0xF7, 0xFF}
)

// DropColor 返回水滴颜色
func DropColor(kind components.DropKind) color.RGBA {
	if kind == components.DropDirty {
		return ColorDirtyDrop
	}
	return ColorCleanDrop
}

// FlashColor 返回闪烁颜色
func FlashColor(c components.FlashColor) color.RGBA {
	if c == components.FlashRed {
		return ColorFlashRed
	}
	return ColorFlashGreen
}

// BarFillColor 返回进度条填充色：闪烁中用闪烁色
func BarFillColor(flash *components.FlashEffectComponent) color.RGBA {
	if flash != nil && flash.IsActive {
		return FlashColor(flash.Color)
	}
	return ColorBarFill
}

// withAlpha 按比例缩放颜色的不透明度（预乘 alpha）
func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha <= 0 {
		return color.RGBA{}
	}
	if alpha >= 1 {
		return c
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
