package scenes

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/cleandrop/pkg/config"
	"github.com/decker502/cleandrop/pkg/game"
	"github.com/decker502/cleandrop/pkg/input"
	"github.com/decker502/cleandrop/pkg/render"
)

// EndScene 结算画面：结果文案 + 再玩一次
// 胜利时彩纸继续飘落，所以每帧仍推进 World（回合已结束，不会生成新水滴）
type EndScene struct {
	session  *Session
	headline string
	message  string
	again    image.Rectangle
	confetti *render.ConfettiRenderSystem
}

// NewEndScene 创建结算画面
func NewEndScene(session *Session) *EndScene {
	w := session.World
	x := (config.GameWindowWidth - menuButtonW) / 2
	y := config.GameWindowHeight - 90

	return &EndScene{
		session:  session,
		headline: game.Headline(w.GameState.Result),
		message:  w.EndMessage(),
		again:    image.Rect(x, y, x+menuButtonW, y+menuButtonH),
		confetti: render.NewConfettiRenderSystem(w.EntityManager),
	}
}

// Update 推进彩纸动画，处理"再玩一次"
func (s *EndScene) Update(deltaTime float64) {
	s.session.World.Step(deltaTime)

	if input.ConfirmPressed() || input.ClickedIn(s.again) {
		s.session.Manager.LoadScene(SceneTitle)
	}
}

// Draw 绘制结算画面
func (s *EndScene) Draw(screen *ebiten.Image) {
	screen.Fill(render.ColorBackground)
	fonts := s.session.Fonts
	cx := float64(config.GameWindowWidth) / 2
	maxW := float64(config.GameWindowWidth) - 40

	y := render.DrawCenteredLines(screen, fonts.Large, render.WrapText(s.headline, fonts.Large, maxW), cx, 90, render.ColorText)
	render.DrawCenteredLines(screen, fonts.Regular, render.WrapText(s.message, fonts.Regular, maxW), cx, y+20, render.ColorTextMuted)

	render.DrawButton(screen, fonts.Regular, s.again, "Play again", true)

	s.confetti.Draw(screen)
}
