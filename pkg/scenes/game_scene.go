package scenes

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/cleandrop/pkg/config"
	"github.com/decker502/cleandrop/pkg/game"
	"github.com/decker502/cleandrop/pkg/input"
	"github.com/decker502/cleandrop/pkg/modules"
	"github.com/decker502/cleandrop/pkg/render"
)

// EndSceneDelay 回合结束后停留在游戏画面的时间（秒），让最后的水花和横幅播完
const EndSceneDelay = 0.6

// GameScene 游戏画面：HUD 在上，场地在下
type GameScene struct {
	session *Session

	hud   *render.HUDRenderSystem
	field *render.FieldRenderSystem

	pauseMenu *modules.PauseMenuModule

	ended    bool
	endTimer float64

	// wasPaused 上一帧处于暂停，恢复时需要清除暂停前的拖动状态
	wasPaused bool

	// pausePressed 暂停键（测试中替换）
	pausePressed func() bool
}

// NewGameScene 以会话中选择的难度开始新回合
func NewGameScene(session *Session) (*GameScene, error) {
	w := session.World
	if err := w.StartRound(session.Difficulty); err != nil {
		return nil, fmt.Errorf("failed to create game scene: %w", err)
	}

	session.Input.Reset()
	w.SetInput(session.Input)

	fieldW, fieldH := w.FieldSize()
	s := &GameScene{
		session: session,
		hud:     render.NewHUDRenderSystem(w.EntityManager, w.GameState, session.Fonts, fieldW, config.HUDHeight),
		field:   render.NewFieldRenderSystem(w.EntityManager, session.Fonts, config.HUDHeight, fieldW, fieldH),
	}
	s.pausePressed = func() bool {
		return input.IsAnyKeyJustPressed(ebiten.KeyEscape, ebiten.KeyP)
	}
	s.pauseMenu = modules.NewPauseMenuModule(w.GameState, session.Fonts, config.GameWindowWidth, config.GameWindowHeight,
		modules.PauseMenuCallbacks{
			OnRestart: func() {
				session.Manager.LoadScene(SceneGame)
			},
			OnMainMenu: func() {
				w.GameState.EndRound(game.ResultNone)
				session.Manager.LoadScene(SceneTitle)
			},
		})
	w.SetRoundEndHandler(s.onRoundEnd)
	return s, nil
}

// onRoundEnd 回合结束回调，延迟切换到结算画面
func (s *GameScene) onRoundEnd(result game.RoundResult) {
	s.ended = true
	s.endTimer = EndSceneDelay
	log.Printf("[GameScene] Round over (%s)", result)
}

// Update 采集输入并推进一帧
func (s *GameScene) Update(deltaTime float64) {
	if !s.ended && s.pausePressed != nil && s.pausePressed() {
		s.pauseMenu.Toggle()
		s.wasPaused = true
		return
	}
	if s.pauseMenu.IsActive() {
		s.wasPaused = true
		s.pauseMenu.Update(deltaTime)
		return
	}
	if s.wasPaused {
		s.wasPaused = false
		s.session.Input.Reset()
	}

	if !s.ended {
		s.session.Input.Update()
	}
	s.session.World.Step(deltaTime)

	if s.ended {
		s.endTimer -= deltaTime
		if s.endTimer <= 0 {
			s.session.Manager.LoadScene(SceneEnd)
		}
	}
}

// Draw 绘制 HUD 和场地
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(render.ColorBackground)
	s.hud.Draw(screen)
	s.field.Draw(screen)
	s.pauseMenu.Draw(screen)
}
