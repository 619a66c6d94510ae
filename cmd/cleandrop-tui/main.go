// Command cleandrop-tui 终端版：在终端里接水滴
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/cleandrop/internal/tui"
	"github.com/decker502/cleandrop/pkg/config"
	"github.com/decker502/cleandrop/pkg/game"
)

func main() {
	difficulty := flag.String("difficulty", "", "start directly at this difficulty (easy, normal, hard)")
	tuning := flag.String("tuning", "", "difficulty table on disk (default: built-in table)")
	watch := flag.Bool("watch", false, "reload the -tuning file when it changes")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	mute := flag.Bool("mute", false, "disable sound")
	logFile := flag.String("log", "", "write logs to this file (the terminal is used for drawing)")
	flag.Parse()

	if err := run(*difficulty, *tuning, *watch, *seed, *mute, *logFile); err != nil {
		fmt.Fprintf(os.Stderr, "cleandrop-tui: %v\n", err)
		os.Exit(1)
	}
}

func run(difficulty, tuning string, watch bool, seed int64, mute bool, logFile string) error {
	// 终端用于绘制，日志只能写文件
	log.SetOutput(io.Discard)
	if logFile != "" {
		f, err := os.Create(logFile)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	// 终端版不带内嵌资源，默认使用内置难度表
	table := config.DefaultDifficultyConfig()
	if tuning != "" {
		cfg, err := config.LoadDifficultyFile(tuning)
		if err != nil {
			return err
		}
		table = cfg
	}
	store := config.NewDifficultyStore(table)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if watch && tuning != "" {
		watcher, err := config.NewTuningWatcher(tuning, store.Store)
		if err != nil {
			return err
		}
		watcher.Start(ctx)
		defer watcher.Close()
	}

	// -mute 只是初始静音，游戏中按 m 仍可打开声音
	var sounds game.SoundPlayer = game.NopSoundPlayer{}
	spk, err := tui.NewSpeaker(mute)
	if err != nil {
		// 没有声卡时静音运行
		log.Printf("[Main] Warning: %v", err)
	} else {
		defer spk.Close()
		sounds = spk
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	g, err := tui.NewGame(screen, tui.Options{
		Difficulty: difficulty,
		Tuning:     store,
		Messages:   config.DefaultMessageConfig(),
		Sounds:     sounds,
		Seed:       seed,
	})
	if err != nil {
		return err
	}

	g.Run(ctx)
	return nil
}
