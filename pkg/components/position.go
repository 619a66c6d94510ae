package components

// PositionComponent 存储实体在场地中的位置（左上角，场地坐标）
type PositionComponent struct {
	X float64
	Y float64
}
