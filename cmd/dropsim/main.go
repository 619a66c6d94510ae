// Command dropsim 用自动驾驶批量模拟回合，输出每个难度的胜率和平均时长
//
// 用法：
//
//	dropsim -rounds 200 -tuning data/difficulty.yaml
//	dropsim -difficulty hard -rounds 50 -dodge=false
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/decker502/cleandrop/internal/sim"
	"github.com/decker502/cleandrop/pkg/config"
)

func main() {
	rounds := flag.Int("rounds", 100, "rounds per difficulty")
	seed := flag.Int64("seed", 1, "seed of the first round")
	maxSeconds := flag.Float64("max-seconds", 300, "give up on a round after this many simulated seconds")
	difficulty := flag.String("difficulty", "", "comma separated difficulties (default: all, in table order)")
	tuning := flag.String("tuning", "", "difficulty table on disk (default: built-in table)")
	dodge := flag.Bool("dodge", true, "autopilot dodges dirty drops")
	verbose := flag.Bool("verbose", false, "log every round")
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	table := config.DefaultDifficultyConfig()
	if *tuning != "" {
		cfg, err := config.LoadDifficultyFile(*tuning)
		if err != nil {
			fmt.Fprintf(os.Stderr, "dropsim: %v\n", err)
			os.Exit(1)
		}
		table = cfg
	}

	names := table.PresetNames()
	if *difficulty != "" {
		names = strings.Split(*difficulty, ",")
	}

	reports, err := sim.RunAll(context.Background(), names, sim.Options{
		Rounds:     *rounds,
		Seed:       *seed,
		MaxSeconds: *maxSeconds,
		Dodge:      *dodge,
		Table:      table,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "dropsim: %v\n", err)
		os.Exit(1)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "difficulty\trounds\twin%\tlose\ttimeout\tavg s\tclean\tdirty\tmissed\t")
	for _, r := range reports {
		fmt.Fprintf(tw, "%s\t%d\t%.1f\t%d\t%d\t%.1f\t%.1f\t%.1f\t%.1f\t\n",
			r.Difficulty, r.Rounds, 100*r.WinRate(), r.Losses, r.Timeouts,
			r.MeanDuration, r.MeanClean, r.MeanDirty, r.MeanMissed)
	}
	tw.Flush()
}
