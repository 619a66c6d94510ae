package components

// DropKind 水滴类型
type DropKind int

const (
	DropClean DropKind = iota // 净水：接住增加进度
	DropDirty                 // 污水：接住扣除进度
)

// String 返回水滴类型名称（日志用）
func (k DropKind) String() string {
	if k == DropDirty {
		return "dirty"
	}
	return "clean"
}

// DropComponent 标记实体为下落中的水滴
// 所有水滴共用 GameState 中的当前下落速度，本组件只记录外形和类型
type DropComponent struct {
	Kind   DropKind
	Width  float64 // 宽度（像素）
	Height float64 // 高度（像素），仅用于绘制
}

// CenterX 返回水滴水平中心（接住判定使用）
func (d *DropComponent) CenterX(x float64) float64 {
	return x + d.Width/2
}
