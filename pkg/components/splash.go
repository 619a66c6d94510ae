package components

// SplashComponent 接住水滴时在桶口出现的水花
// 位置由 PositionComponent 给出，存在时间由 LifetimeComponent 控制
type SplashComponent struct {
	Kind DropKind // 净水/污水水花使用不同颜色
	Size float64
}
