package systems

import (
	"math"

	"github.com/decker502/cleandrop/pkg/components"
	"github.com/decker502/cleandrop/pkg/config"
	"github.com/decker502/cleandrop/pkg/ecs"
	"github.com/decker502/cleandrop/pkg/utils"
)

// progressSnapEpsilon 填充与目标差距小于此值时直接对齐
const progressSnapEpsilon = 0.001

// ProgressBarSystem 进度条填充动画
// 渲染用的 Fill 以指数方式逼近真实进度 Target
type ProgressBarSystem struct {
	em *ecs.EntityManager
}

// NewProgressBarSystem 创建进度条系统
func NewProgressBarSystem(em *ecs.EntityManager) *ProgressBarSystem {
	return &ProgressBarSystem{em: em}
}

// Update 推进所有进度条的填充动画
func (s *ProgressBarSystem) Update(deltaTime float64) {
	step := utils.Clamp01(config.ProgressBarEaseRate * deltaTime)

	for _, id := range ecs.GetEntitiesWith1[*components.ProgressBarComponent](s.em) {
		bar, _ := ecs.GetComponent[*components.ProgressBarComponent](s.em, id)
		bar.Fill = utils.Lerp(bar.Fill, bar.Target, step)
		if math.Abs(bar.Target-bar.Fill) < progressSnapEpsilon {
			bar.Fill = bar.Target
		}
	}
}

// SetProgressTarget 设置所有进度条的目标进度
// snap 为 true 时立即对齐（新回合开始）
func SetProgressTarget(em *ecs.EntityManager, ratio float64, snap bool) {
	ratio = utils.Clamp01(ratio)
	for _, id := range ecs.GetEntitiesWith1[*components.ProgressBarComponent](em) {
		bar, _ := ecs.GetComponent[*components.ProgressBarComponent](em, id)
		bar.Target = ratio
		if snap {
			bar.Fill = ratio
		}
	}
}
