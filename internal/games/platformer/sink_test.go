package platformer

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

func TestCellSinkScale(t *testing.T) {
	s := newCellSink(900, 500)
	scr := core.NewScreen(90, 25)
	s.begin(scr)
	if s.cellW != 10 || s.cellH != 20 {
		t.Fatalf("cell size = %vx%v, want 10x20", s.cellW, s.cellH)
	}

	s.FillRect(core.NewRectF(0, 460, 1600, 40), world.PaintPlatform)
	for x := 0; x < 90; x++ {
		if c := scr.GetCell(x, 23); c.Rune != '█' || c.Color != core.ColorGreen {
			t.Fatalf("ground cell %d = %+v", x, c)
		}
	}
}

func TestCellSinkTriangle(t *testing.T) {
	s := newCellSink(900, 500)
	scr := core.NewScreen(90, 25)
	s.begin(scr)

	sp := core.NewRectF(500, 440, 30, 20)
	s.Triangle(
		core.Point{X: sp.X, Y: sp.Bottom()},
		core.Point{X: sp.X + 15, Y: sp.Y},
		core.Point{X: sp.Right(), Y: sp.Bottom()},
		world.PaintSpike,
	)
	for x := 50; x <= 52; x++ {
		if scr.Get(x, 22) != '▲' {
			t.Errorf("cell (%d, 22) = %q, want spike", x, scr.Get(x, 22))
		}
	}
	if scr.Get(53, 22) == '▲' || scr.Get(49, 22) == '▲' {
		t.Error("spike spilled outside its base")
	}
}

func TestCellSinkCircle(t *testing.T) {
	tests := []struct {
		name   string
		screen [2]int
		radius int
		want   int // filled cells
	}{
		{"coarse grid keeps centre", [2]int{90, 25}, 3, 1},
		{"unit grid radius 1", [2]int{900, 500}, 1, 5},
		{"unit grid radius 2", [2]int{900, 500}, 2, 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newCellSink(900, 500)
			scr := core.NewScreen(tt.screen[0], tt.screen[1])
			s.begin(scr)
			s.Circle(core.Point{X: 450, Y: 250}, tt.radius, world.PaintSpark)

			filled := 0
			for y := 0; y < scr.Height(); y++ {
				for x := 0; x < scr.Width(); x++ {
					if scr.Get(x, y) == '*' {
						filled++
					}
				}
			}
			if filled != tt.want {
				t.Errorf("filled = %d, want %d", filled, tt.want)
			}
		})
	}
}

func TestCellSinkText(t *testing.T) {
	s := newCellSink(900, 500)
	scr := core.NewScreen(90, 25)
	s.begin(scr)
	s.Text(10, 36, "Health: 3", world.PaintHUD)

	if got := scr.Row(1)[1:10]; got != "Health: 3" {
		t.Errorf("row 1 = %q", scr.Row(1))
	}
	if c := scr.GetCell(1, 1); c.Color != core.ColorBrightWhite {
		t.Errorf("HUD colour = %v", c.Color)
	}
}

func TestCellSinkSkipsOffScreenRects(t *testing.T) {
	s := newCellSink(900, 500)
	scr := core.NewScreen(90, 25)
	s.begin(scr)

	s.FillRect(core.NewRectF(-200, 300, 40, 40), world.PaintPlayer)
	s.FillRect(core.NewRectF(-15, 300, 40, 40), world.PaintPlayer)

	filled := 0
	for y := 0; y < scr.Height(); y++ {
		for x := 0; x < scr.Width(); x++ {
			if scr.GetCell(x, y).Color == core.ColorBlue {
				filled++
			}
		}
	}
	// Only the partly visible box lands: columns 0..1 across rows 15..16.
	if filled != 4 {
		t.Errorf("filled = %d, want 4", filled)
	}
}

func TestCenteredMessageInsideBox(t *testing.T) {
	scr := core.NewScreen(41, 11)
	drawCenteredMessage(scr, "PAUSED", "Press P to resume")

	// Box is 21 wide, 5 high, at (10, 3).
	if scr.Get(10, 3) != '┌' || scr.Get(30, 7) != '┘' {
		t.Fatalf("box corners = %q %q", scr.Get(10, 3), scr.Get(30, 7))
	}
	lines := []struct {
		x, y int
		text string
	}{
		{17, 4, "PAUSED"},
		{12, 6, "Press P to resume"},
	}
	for _, l := range lines {
		for i, r := range l.text {
			if got := scr.Get(l.x+i, l.y); got != r {
				t.Errorf("row %d: cell %d = %q, want %q (%q)", l.y, l.x+i, got, r, scr.Row(l.y))
				break
			}
		}
	}
}
