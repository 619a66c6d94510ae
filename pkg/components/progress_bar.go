package components

// ProgressBarComponent 进度条（纯数据）
//
// Target 是进度状态机给出的真实进度比例，Fill 是渲染用的平滑值，
// 由 ProgressBarSystem 逐帧追踪 Target。
type ProgressBarComponent struct {
	X, Y          float64 // 屏幕坐标（左上角）
	Width, Height float64

	Target float64 // 真实进度 [0, 1]
	Fill   float64 // 渲染进度 [0, 1]
}
