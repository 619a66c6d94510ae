// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	gameaudio "github.com/decker502/cleandrop/pkg/audio"
	"github.com/decker502/cleandrop/pkg/config"
	"github.com/decker502/cleandrop/pkg/input"
	"github.com/decker502/cleandrop/pkg/render"
	"github.com/decker502/cleandrop/pkg/scenes"
	"github.com/decker502/cleandrop/pkg/world"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Difficulty 指定难度并跳过标题画面，为空则显示标题画面
	Difficulty string
	// TuningPath 磁盘上的难度表，为空则使用内嵌的 data/difficulty.yaml
	TuningPath string
	// Watch 监视 TuningPath，修改后下一回合生效
	Watch bool
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// Mute 启动时静音
	Mute bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *scenes.SceneManager
	audioManager *gameaudio.AudioManager
	watcher      *config.TuningWatcher
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(48000)
	audioManager, err := gameaudio.NewAudioManager(audioContext)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize audio: %w", err)
	}
	audioManager.SetMuted(cfg.Mute)
	log.Printf("[App] AudioManager initialized (muted=%v)", cfg.Mute)

	// 难度表：-tuning 指定磁盘文件，否则使用内嵌资源
	tuningPath := cfg.TuningPath
	if tuningPath == "" {
		tuningPath = config.DefaultDifficultyPath
	}
	store := config.NewDifficultyStore(config.LoadDifficultyConfigOrDefault(tuningPath))

	if cfg.Difficulty != "" {
		if _, err := store.Load().Preset(cfg.Difficulty); err != nil {
			return nil, err
		}
	}

	messages := config.LoadMessageConfigOrDefault(config.DefaultMessagesPath)

	fonts, err := render.LoadFonts()
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Seed: %d", seed)

	w := world.New(world.Options{
		Difficulty: store,
		Messages:   messages,
		Sounds:     audioManager,
		Seed:       seed,
	})

	// 创建场景管理器
	sceneManager := scenes.NewSceneManager()
	session, err := scenes.NewSession(w, fonts, input.NewController(), sceneManager)
	if err != nil {
		return nil, err
	}

	// 根据配置决定启动场景
	if cfg.Difficulty != "" {
		log.Printf("[App] Difficulty %q given, skipping title screen", cfg.Difficulty)
		session.Difficulty = cfg.Difficulty
		sceneManager.LoadScene(scenes.SceneGame)
	} else {
		sceneManager.LoadScene(scenes.SceneTitle)
	}

	var watcher *config.TuningWatcher
	if cfg.Watch {
		if cfg.TuningPath == "" {
			log.Printf("[App] Warning: -watch requires a tuning file on disk, ignoring")
		} else {
			watcher, err = config.NewTuningWatcher(cfg.TuningPath, store.Store)
			if err != nil {
				return nil, fmt.Errorf("failed to watch tuning file: %w", err)
			}
			watcher.Start(context.Background())
		}
	}

	return &App{
		sceneManager: sceneManager,
		audioManager: audioManager,
		watcher:      watcher,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth*config.WindowScale, config.GameWindowHeight*config.WindowScale)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	// M 切换静音
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.audioManager.SetMuted(!a.audioManager.IsMuted())
	}

	a.sceneManager.Update(1.0 / config.TicksPerSecond)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Close 停止难度表监视
func (a *App) Close() error {
	if a.watcher != nil {
		return a.watcher.Close()
	}
	return nil
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
