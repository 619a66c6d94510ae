package config

import "math"

// 布局配置常量
// 本文件定义了游戏画面的布局参数：水滴下落区域（场地）、顶部 HUD、水桶与水滴尺寸。
// 场地坐标以场地左上角为原点，向下为 Y 正方向。

const (
	// FieldWidth 是场地宽度（逻辑像素）
	FieldWidth = 340.0

	// FieldHeight 是场地高度（逻辑像素）
	FieldHeight = 400.0

	// HUDHeight 是场地上方 HUD（进度条）的高度
	HUDHeight = 56.0

	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = int(FieldWidth)

	// GameWindowHeight 逻辑屏幕高度 = HUD + 场地
	GameWindowHeight = int(HUDHeight + FieldHeight)

	// WindowScale 桌面窗口相对逻辑屏幕的放大倍数
	WindowScale = 2

	// TicksPerSecond 固定逻辑帧率
	// 水滴速度以"像素/帧"表示，按此帧率换算
	TicksPerSecond = 60
)

// 水桶（接水容器）
const (
	// BucketWidthRatio 水桶宽度占场地宽度的比例
	BucketWidthRatio = 0.22
	// BucketMinWidth 水桶最小宽度
	BucketMinWidth = 75.0
	// BucketMaxWidth 水桶最大宽度
	BucketMaxWidth = 110.0
	// BucketHeightRatio 水桶高度 = 宽度 × 比例（水壶图片的宽高比）
	BucketHeightRatio = 0.8
	// BucketBottomMargin 水桶底部距场地底边的距离
	BucketBottomMargin = 10.0
	// BucketKeyStep 每次方向键移动的距离
	BucketKeyStep = 24.0
)

// 水滴
const (
	// DropWidthRatio 水滴宽度占场地宽度的比例
	DropWidthRatio = 0.11
	// DropMinWidth 水滴最小宽度（窄屏下保证可见）
	DropMinWidth = 34.0
	// DropMaxWidth 水滴最大宽度
	DropMaxWidth = 90.0
	// DropHeightRatio 水滴高度 = 宽度 × 比例（水滴图形略高于宽）
	DropHeightRatio = 1.25
)

// 反馈特效
const (
	// SplashSize 水花尺寸
	SplashSize = 32.0
	// SplashDuration 水花存在时间（秒）
	SplashDuration = 0.4
	// FlashDuration 进度条闪烁时间（秒）
	FlashDuration = 0.2
	// MilestoneBannerDuration 里程碑横幅显示时间（秒）
	MilestoneBannerDuration = 1.5
	// ProgressBarEaseRate 进度条填充追踪速度（每秒逼近剩余差值的比例）
	ProgressBarEaseRate = 12.0
)

// HUD 进度条（屏幕坐标）
const (
	ProgressBarX      = 20.0
	ProgressBarY      = 28.0
	ProgressBarWidth  = FieldWidth - 2*ProgressBarX
	ProgressBarHeight = 16.0
)

// 胜利彩纸
const (
	ConfettiCount       = 30
	ConfettiSize        = 12.0
	ConfettiStartY      = -20.0
	ConfettiFallRatio   = 0.8 // 下落距离占屏幕高度的比例
	ConfettiMinDuration = 1.2
	ConfettiMaxDuration = 2.4
	ConfettiLinger      = 0.2 // 动画结束后停留时间
	ConfettiAlpha       = 0.85
)

// ConfettiPalette 彩纸颜色（RGB 十六进制）
var ConfettiPalette = []uint32{
	0xFFC907, 0x2E9DF7, 0x8BD1CB, 0x4FCB53, 0xFF902A, 0xF5402C, 0xF16061,
}

// BucketWidthFor 根据场地宽度计算水桶宽度
// 公式：clamp(fieldWidth × 0.22, 75, 110)
func BucketWidthFor(fieldWidth float64) float64 {
	return math.Max(BucketMinWidth, math.Min(BucketMaxWidth, fieldWidth*BucketWidthRatio))
}

// DropWidthFor 根据场地宽度计算水滴宽度
// 公式：clamp(round(fieldWidth × 0.11), 34, 90)
func DropWidthFor(fieldWidth float64) float64 {
	return math.Max(DropMinWidth, math.Min(DropMaxWidth, math.Round(fieldWidth*DropWidthRatio)))
}

// BucketTopFor 返回水桶上沿的 Y 坐标
func BucketTopFor(fieldHeight, bucketHeight float64) float64 {
	return fieldHeight - BucketBottomMargin - bucketHeight
}
