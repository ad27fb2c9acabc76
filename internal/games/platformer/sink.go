package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

// glyph is how one paint kind looks in the terminal.
type glyph struct {
	r rune
	c core.Color
}

var glyphs = map[world.Paint]glyph{
	world.PaintPlatform:       {'█', core.ColorGreen},
	world.PaintMovingPlatform: {'▓', core.ColorBrightGreen},
	world.PaintGem:            {'◆', core.ColorBrightRed},
	world.PaintSpike:          {'▲', core.ColorGray},
	world.PaintEnemy:          {'█', core.ColorMagenta},
	world.PaintHPBack:         {'▁', core.ColorGray},
	world.PaintHPFill:         {'▁', core.ColorRed},
	world.PaintBullet:         {'━', core.ColorBrightYellow},
	world.PaintSpark:          {'*', core.ColorOrange},
	world.PaintPlayer:         {'█', core.ColorBlue},
	world.PaintHUD:            {' ', core.ColorBrightWhite},
}

// cellSink rasterises world draw calls onto a terminal screen. The logical
// view is stretched to fill the screen, so one cell covers cellW x cellH
// world units.
type cellSink struct {
	viewW, viewH float64
	cellW, cellH float64
	dst          *core.Screen
}

func newCellSink(viewW, viewH float64) *cellSink {
	return &cellSink{viewW: viewW, viewH: viewH, cellW: 1, cellH: 1}
}

// begin binds the sink to dst for one frame, recomputing the scale in case
// the terminal was resized.
func (s *cellSink) begin(dst *core.Screen) {
	s.dst = dst
	s.cellW = s.viewW / float64(max(dst.Width(), 1))
	s.cellH = s.viewH / float64(max(dst.Height(), 1))
}

func (s *cellSink) FillRect(r core.RectF, p world.Paint) {
	cells := r.Cells(s.cellW, s.cellH)
	if !cells.Intersects(core.NewRect(0, 0, s.dst.Width(), s.dst.Height())) {
		return
	}
	g := glyphs[p]
	s.dst.FillRect(cells, g.r, g.c)
}

// Triangle fills an upward triangle given its base corners a, c and apex b.
// Each cell row is filled across the triangle's width at that height.
func (s *cellSink) Triangle(a, b, c core.Point, p world.Paint) {
	g := glyphs[p]
	top := int(math.Floor(b.Y / s.cellH))
	bottom := int(math.Ceil(a.Y/s.cellH)) - 1
	if bottom < top {
		bottom = top
	}
	rows := bottom - top + 1
	for i := 0; i < rows; i++ {
		// Fraction of the base width covered on this row, apex row first.
		frac := float64(i+1) / float64(rows)
		half := (c.X - a.X) / 2 * frac
		x0 := int(math.Floor((b.X - half) / s.cellW))
		x1 := int(math.Floor((b.X + half) / s.cellW))
		for x := x0; x <= max(x0, x1-1); x++ {
			s.dst.SetColored(x, top+i, g.r, g.c)
		}
	}
}

// Circle fills the cells whose centres fall inside the circle, always
// covering at least the centre cell.
func (s *cellSink) Circle(center core.Point, radius int, p world.Paint) {
	g := glyphs[p]
	cx := int(math.Floor(center.X / s.cellW))
	cy := int(math.Floor(center.Y / s.cellH))
	s.dst.SetColored(cx, cy, g.r, g.c)

	rx := int(float64(radius) / s.cellW)
	ry := int(float64(radius) / s.cellH)
	rr := float64(radius * radius)
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			wx := float64(dx) * s.cellW
			wy := float64(dy) * s.cellH
			if wx*wx+wy*wy <= rr {
				s.dst.SetColored(cx+dx, cy+dy, g.r, g.c)
			}
		}
	}
}

// Text places HUD text at the cell containing (x, y).
func (s *cellSink) Text(x, y int, text string, p world.Paint) {
	g := glyphs[p]
	cx := int(float64(x) / s.cellW)
	cy := int(float64(y) / s.cellH)
	s.dst.DrawTextColored(cx, cy, text, g.c)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}
