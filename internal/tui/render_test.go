package tui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/cleandrop/pkg/components"
	"github.com/decker502/cleandrop/pkg/ecs"
	"github.com/decker502/cleandrop/pkg/game"
)

// grid 记录 SetContent 的测试画布
type grid map[[2]int]rune

func (g grid) SetContent(x, y int, primary rune, _ []rune, _ tcell.Style) {
	g[[2]int{x, y}] = primary
}

func (g grid) row(y, from, to int) string {
	var b strings.Builder
	for x := from; x < to; x++ {
		if r, ok := g[[2]int{x, y}]; ok {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

func (g grid) count(r rune) int {
	n := 0
	for _, v := range g {
		if v == r {
			n++
		}
	}
	return n
}

func testViewport(t *testing.T) Viewport {
	t.Helper()
	v, err := FitViewport(80, 40, 340, 400)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestBarCells(t *testing.T) {
	tests := []struct {
		ratio float64
		width int
		want  int
	}{
		{0, 50, 0},
		{-0.2, 50, 0},
		{0.5, 50, 25},
		{0.333, 50, 17},
		{1, 50, 50},
		{1.5, 50, 50},
		{0.5, 0, 0},
	}
	for _, tt := range tests {
		if got := BarCells(tt.ratio, tt.width); got != tt.want {
			t.Errorf("BarCells(%g, %d) = %d, want %d", tt.ratio, tt.width, got, tt.want)
		}
	}
}

func TestDrawField(t *testing.T) {
	v := testViewport(t)
	em := ecs.NewEntityManager()

	bucket := em.CreateEntity()
	ecs.AddComponent(em, bucket, &components.PositionComponent{X: 132.5, Y: 330})
	ecs.AddComponent(em, bucket, &components.BucketComponent{Width: 75, Height: 60})

	clean := em.CreateEntity()
	ecs.AddComponent(em, clean, &components.PositionComponent{X: 0, Y: 100})
	ecs.AddComponent(em, clean, &components.DropComponent{Kind: components.DropClean, Width: 37, Height: 46})

	// 尚未进入场地的水滴不绘制
	above := em.CreateEntity()
	ecs.AddComponent(em, above, &components.PositionComponent{X: 50, Y: -80})
	ecs.AddComponent(em, above, &components.DropComponent{Kind: components.DropDirty, Width: 37, Height: 46})

	banner := em.CreateEntity()
	ecs.AddComponent(em, banner, &components.MilestoneBannerComponent{Message: "Halfway there!"})

	g := grid{}
	DrawField(g, v, em)

	if got := g.count(runeDrop); got != 1 {
		t.Errorf("drew %d drops, want 1", got)
	}
	bucketRow, _ := v.Row(330)
	from, to := v.Span(132.5, 75)
	if got := strings.Count(g.row(bucketRow, v.Left, v.Left+v.Cols), string(runeBucket)); got != to-from+1 {
		t.Errorf("bucket row has %d cells, want %d", got, to-from+1)
	}
	if !strings.Contains(g.row(v.Top+v.Rows/2, v.Left, v.Left+v.Cols), "Halfway there!") {
		t.Error("milestone banner not drawn in the middle row")
	}
}

func TestDrawHUD(t *testing.T) {
	v := testViewport(t)
	em := ecs.NewEntityManager()
	bar := em.CreateEntity()
	ecs.AddComponent(em, bar, &components.ProgressBarComponent{Fill: 0.5, Target: 0.5})

	gs := game.NewGameState()
	gs.Difficulty = "hard"
	gs.Preset.Label = "Hard"

	g := grid{}
	DrawHUD(g, v, em, gs)

	top := g.row(0, 0, 80)
	if !strings.Contains(top, "Difficulty: Hard") {
		t.Errorf("HUD row = %q, want difficulty label", top)
	}
	if !strings.Contains(top, " 50%") {
		t.Errorf("HUD row = %q, want percentage", top)
	}
	width := v.Cols + 2
	if got := strings.Count(g.row(1, 0, 80), string(runeBarFill)); got != width/2 {
		t.Errorf("bar filled %d of %d cells", got, width)
	}
}

func TestDrawBorderAndMenu(t *testing.T) {
	v := testViewport(t)
	g := grid{}

	DrawBorder(g, v, "hint")
	DrawMenu(g, v, []string{"Easy", "Normal", "Hard"}, 1)

	if g[[2]int{v.Left - 1, v.Top - 1}] != '┌' || g[[2]int{v.Left + v.Cols, v.Top + v.Rows}] != '┘' {
		t.Error("border corners missing")
	}
	if !strings.Contains(g.row(v.Top+v.Rows+1, 0, 80), "hint") {
		t.Error("hint line missing")
	}
	if !strings.Contains(g.row(v.Top+1, 0, 80), "CLEAN DROP") {
		t.Error("title missing")
	}
}

func TestWrap(t *testing.T) {
	lines := Wrap("Congratulations!\nEvery drop matters. Millions still don't have access to clean water.", 30)

	if lines[0] != "Congratulations!" {
		t.Errorf("first line = %q", lines[0])
	}
	for _, l := range lines {
		if len([]rune(l)) > 30 {
			t.Errorf("line %q longer than 30", l)
		}
	}
	if got := strings.Join(lines[1:], " "); got != "Every drop matters. Millions still don't have access to clean water." {
		t.Errorf("rejoined = %q", got)
	}
}
