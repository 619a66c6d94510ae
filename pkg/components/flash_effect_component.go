package components

// FlashColor 闪烁颜色
type FlashColor int

const (
	FlashGreen FlashColor = iota // 接住净水
	FlashRed                     // 接住污水
)

// FlashEffectComponent 闪烁效果组件
// 挂在进度条实体上，接住水滴时短暂闪绿/闪红
type FlashEffectComponent struct {
	// Color 闪烁颜色
	Color FlashColor

	// Duration 闪烁持续时间（秒）
	Duration float64

	// Elapsed 已经过的时间（秒）
	Elapsed float64

	// IsActive 是否激活
	IsActive bool
}
