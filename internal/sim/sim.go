// Package sim 用自动驾驶批量模拟回合，评估难度表的平衡性
package sim

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/decker502/cleandrop/pkg/config"
	"github.com/decker502/cleandrop/pkg/game"
	"github.com/decker502/cleandrop/pkg/world"
)

const tick = 1.0 / config.TicksPerSecond

// Options 模拟参数
type Options struct {
	Rounds     int     // 每个难度的回合数
	Seed       int64   // 第 i 个回合使用 Seed+i
	MaxSeconds float64 // 单回合上限，超时记为未分胜负
	Dodge      bool    // 自动驾驶是否躲避污水
	Table      *config.DifficultyConfig
}

// RoundSummary 单个回合的结果
type RoundSummary struct {
	RoundID    string
	Difficulty string
	Seed       int64
	Result     game.RoundResult
	Duration   float64
	Stats      game.RoundStats
	TimedOut   bool
}

// Report 一个难度的汇总
type Report struct {
	Difficulty   string
	Rounds       int
	Wins         int
	Losses       int
	Timeouts     int
	MeanDuration float64 // 已分胜负回合的平均时长（秒）
	MeanClean    float64
	MeanDirty    float64
	MeanMissed   float64
}

// WinRate 胜率
func (r Report) WinRate() float64 {
	if r.Rounds == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Rounds)
}

// PlayRound 用自动驾驶玩一个回合
func PlayRound(table *config.DifficultyConfig, difficulty string, seed int64, maxSeconds float64, dodge bool) (RoundSummary, error) {
	w := world.New(world.Options{
		Difficulty: config.NewDifficultyStore(table),
		Seed:       seed,
	})
	fieldW, _ := w.FieldSize()
	pilot := world.NewAutopilot(w.EntityManager, fieldW)
	pilot.DodgeDirty = dodge
	w.SetInput(pilot)

	if err := w.StartRound(difficulty); err != nil {
		return RoundSummary{}, err
	}

	gs := w.GameState
	for i := 0; i < int(maxSeconds*config.TicksPerSecond) && gs.IsRunning(); i++ {
		w.Step(tick)
	}

	return RoundSummary{
		RoundID:    gs.RoundID,
		Difficulty: gs.Difficulty,
		Seed:       seed,
		Result:     gs.Result,
		Duration:   gs.Elapsed,
		Stats:      gs.Stats,
		TimedOut:   gs.IsRunning(),
	}, nil
}

// Run 模拟一个难度的多个回合并汇总
func Run(difficulty string, opts Options) (Report, []RoundSummary, error) {
	if opts.Rounds <= 0 {
		return Report{}, nil, fmt.Errorf("rounds must be > 0, got %d", opts.Rounds)
	}
	if opts.MaxSeconds <= 0 {
		return Report{}, nil, fmt.Errorf("max seconds must be > 0, got %g", opts.MaxSeconds)
	}
	table := opts.Table
	if table == nil {
		table = config.DefaultDifficultyConfig()
	}

	rounds := make([]RoundSummary, 0, opts.Rounds)
	for i := 0; i < opts.Rounds; i++ {
		r, err := PlayRound(table, difficulty, opts.Seed+int64(i), opts.MaxSeconds, opts.Dodge)
		if err != nil {
			return Report{}, nil, err
		}
		rounds = append(rounds, r)
	}
	return Summarize(difficulty, rounds), rounds, nil
}

// RunAll 并行模拟多个难度，报告顺序与 difficulties 一致
func RunAll(ctx context.Context, difficulties []string, opts Options) ([]Report, error) {
	reports := make([]Report, len(difficulties))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range difficulties {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report, _, err := Run(name, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// Summarize 汇总回合结果
func Summarize(difficulty string, rounds []RoundSummary) Report {
	r := Report{Difficulty: difficulty, Rounds: len(rounds)}
	if len(rounds) == 0 {
		return r
	}

	decided := 0
	var duration, clean, dirty, missed float64
	for _, s := range rounds {
		switch {
		case s.TimedOut:
			r.Timeouts++
		case s.Result == game.ResultWin:
			r.Wins++
		case s.Result == game.ResultLose:
			r.Losses++
		}
		if !s.TimedOut {
			decided++
			duration += s.Duration
		}
		clean += float64(s.Stats.CleanCaught)
		dirty += float64(s.Stats.DirtyCaught)
		missed += float64(s.Stats.Missed)
	}

	n := float64(len(rounds))
	if decided > 0 {
		r.MeanDuration = duration / float64(decided)
	}
	r.MeanClean = clean / n
	r.MeanDirty = dirty / n
	r.MeanMissed = missed / n
	return r
}
