package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// palette maps core.Color to ANSI 256 colour codes.
var palette = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// colorStyles holds one lipgloss style per palette entry.
var colorStyles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
	for c, code := range palette {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if s, ok := colorStyles[c]; ok {
		return s
	}
	return colorStyles[core.ColorDefault]
}

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	pausedStyle = statusStyle.
			Background(lipgloss.Color("130"))
	helpBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Runs of same-coloured cells share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}

// statusBar renders the one-line bar under the playfield: run stats on the
// left, key help filling the rest.
func (m Model) statusBar() string {
	style := statusStyle
	label := "RUN"
	if m.gameState.Paused {
		style = pausedStyle
		label = "PAUSED"
	}

	stats := fmt.Sprintf("%s  score %d  hp %d", label, m.gameState.Score, m.gameState.Health)
	if wg, ok := m.game.(worldGame); ok && wg.World() != nil {
		w := wg.World()
		stats += fmt.Sprintf("  x %d  seed %d", int(w.PlayerWorldX()), w.Seed())
	}
	left := style.Render(stats)

	h := m.help
	h.Width = max(m.width-lipgloss.Width(left)-1, 0)
	right := helpBarStyle.Render(h.View(m.keys))

	bar := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
	if m.width > 0 && lipgloss.Width(bar) > m.width {
		return left
	}
	return bar
}
