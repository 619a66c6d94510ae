package components

// BucketComponent 玩家控制的水桶
// 位置由 PositionComponent 给出：X 为左边缘，Y 为上沿
type BucketComponent struct {
	Width  float64 // 水平接水范围宽度
	Height float64 // 绘制高度
}

// Contains 判断水平坐标 x 是否落在水桶范围 [left, left+Width] 内（含端点）
func (b *BucketComponent) Contains(left, x float64) bool {
	return x >= left && x <= left+b.Width
}
