package components

import "image/color"

// ConfettiComponent 胜利彩纸片（纯数据）
// 从 StartY 开始以缓入曲线下落 FallDistance，同时旋转 Spin 度
type ConfettiComponent struct {
	X            float64
	StartY       float64
	FallDistance float64
	Size         float64
	Color        color.RGBA
	Spin         float64 // 总旋转角度（±360）
	Duration     float64 // 动画时长（秒）
	Age          float64 // 已播放时间（秒）

	// 当前帧状态，由 ConfettiSystem 写入
	Y        float64
	Rotation float64
}
