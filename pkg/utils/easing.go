// Package utils 提供与前端无关的数学工具函数
package utils

import "math"

// Easing Functions (缓动函数)
//
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
//
// 参考：https://easings.net/

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（水花扩散）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInQuad 二次方缓入
// 特点：开始慢，结束较快（彩纸下落）
// 公式：f(t) = t²
func EaseInQuad(t float64) float64 {
	return t * t
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp 将 v 限制在 [lo, hi] 区间
// lo > hi 时返回 lo（例如场地比水桶还窄）
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Clamp01 将 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	return Clamp(t, 0, 1)
}
