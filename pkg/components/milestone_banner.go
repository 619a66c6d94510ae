package components

// MilestoneBannerComponent 里程碑横幅，显示在场地中央
// 同一时间只有一个横幅；新里程碑替换文字并重置 LifetimeComponent
type MilestoneBannerComponent struct {
	Message string
}
