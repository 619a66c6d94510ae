package game

import (
	"math"

	"github.com/decker502/cleandrop/pkg/components"
	"github.com/decker502/cleandrop/pkg/config"
)

// RoundResult 回合结果
type RoundResult int

const (
	ResultNone RoundResult = iota // 回合进行中
	ResultWin                     // 进度达到目标
	ResultLose                    // 装过水后又被倒空
)

// String 返回回合结果名称（日志用）
func (r RoundResult) String() string {
	switch r {
	case ResultWin:
		return "win"
	case ResultLose:
		return "lose"
	default:
		return "none"
	}
}

// CatchOutcome 一次接住水滴后的状态变化
type CatchOutcome struct {
	Kind       components.DropKind
	Previous   float64            // 接住前的进度
	Current    float64            // 接住后的进度
	Milestones []config.Milestone // 本次越过的里程碑（按分数升序）
	Result     RoundResult
}

// Delta 返回本次进度变化量（饱和后的实际值）
func (o CatchOutcome) Delta() float64 {
	return o.Current - o.Previous
}

// ProgressTracker 进度状态机
//
// 进度是 [0, winGoal] 区间内的饱和累加器：
//   - 净水：progress = min(winGoal, progress + cleanGain)
//   - 污水：progress = max(0, progress - dirtyPenalty)
//   - progress >= winGoal 判定胜利
//   - progress <= 0 且上一次接住后的进度 > 0 判定失败（"装过水又被倒空"）
//
// 回合开始时进度为 0，此时接住污水不会判负。
type ProgressTracker struct {
	winGoal      float64
	cleanGain    float64
	dirtyPenalty float64

	progress float64
	lastFill float64 // 上一次接住后的进度
	result   RoundResult

	milestones []config.Milestone
	shown      map[float64]bool
}

// NewProgressTracker 创建进度状态机
// milestones 需按分数升序（config.ParseMessageConfig 已排序）
func NewProgressTracker(winGoal float64, scoring config.ScoringConfig, milestones []config.Milestone) *ProgressTracker {
	return &ProgressTracker{
		winGoal:      winGoal,
		cleanGain:    scoring.CleanGain,
		dirtyPenalty: scoring.DirtyPenalty,
		milestones:   milestones,
		shown:        make(map[float64]bool, len(milestones)),
	}
}

// Apply 处理一次接住事件
// 回合已结束时不再改变状态，返回的 Result 为 ResultNone
func (t *ProgressTracker) Apply(kind components.DropKind) CatchOutcome {
	outcome := CatchOutcome{Kind: kind, Previous: t.progress, Current: t.progress}
	if t.result != ResultNone {
		return outcome
	}

	if kind == components.DropDirty {
		t.progress = math.Max(0, t.progress-t.dirtyPenalty)
	} else {
		t.progress = math.Min(t.winGoal, t.progress+t.cleanGain)
	}
	outcome.Current = t.progress

	// 里程碑：从下方越过分数线时触发，每回合一次
	for _, m := range t.milestones {
		if t.shown[m.Score] {
			continue
		}
		if outcome.Previous < m.Score && t.progress >= m.Score {
			t.shown[m.Score] = true
			outcome.Milestones = append(outcome.Milestones, m)
		}
	}

	switch {
	case t.progress >= t.winGoal:
		t.result = ResultWin
	case t.progress <= 0 && t.lastFill > 0:
		t.result = ResultLose
	}
	t.lastFill = t.progress

	outcome.Result = t.result
	return outcome
}

// Progress 返回当前进度
func (t *ProgressTracker) Progress() float64 {
	return t.progress
}

// Ratio 返回进度比例 [0, 1]（进度条宽度）
func (t *ProgressTracker) Ratio() float64 {
	if t.winGoal <= 0 {
		return 0
	}
	return t.progress / t.winGoal
}

// WinGoal 返回胜利目标
func (t *ProgressTracker) WinGoal() float64 {
	return t.winGoal
}

// Result 返回回合结果
func (t *ProgressTracker) Result() RoundResult {
	return t.result
}
