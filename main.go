// Command cleandrop 桌面版：接住净水、避开污水，把水桶装满
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/cleandrop/pkg/app"
	"github.com/decker502/cleandrop/pkg/config"
	"github.com/decker502/cleandrop/pkg/embedded"
)

func main() {
	var cfg app.Config
	flag.BoolVar(&cfg.Verbose, "verbose", false, "enable verbose logging")
	flag.StringVar(&cfg.Difficulty, "difficulty", "", "start directly at this difficulty (easy, normal, hard)")
	flag.StringVar(&cfg.TuningPath, "tuning", "", "difficulty table on disk (default: built-in data/difficulty.yaml)")
	flag.BoolVar(&cfg.Watch, "watch", false, "reload the -tuning file when it changes")
	flag.Int64Var(&cfg.Seed, "seed", 0, "random seed (0 = time based)")
	flag.BoolVar(&cfg.Mute, "mute", false, "start muted")
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}
	defer gameApp.Close()

	ebiten.SetWindowSize(config.GameWindowWidth*config.WindowScale, config.GameWindowHeight*config.WindowScale)
	ebiten.SetWindowTitle("Clean Drop")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
