package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// KeyMap binds physical keys to game actions.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Jump       key.Binding
	Shoot      key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Shoot, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump, k.Shoot},
		{k.Pause, k.Restart, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "space", "up", "w"),
			key.WithHelp("space", "jump"),
		),
		Shoot: key.NewBinding(
			key.WithKeys("f", "x"),
			key.WithHelp("f/x", "shoot"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a game action.
// Screenshot is handled by the model and maps to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.Shoot):
		return core.ActionShoot
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// HoldTracker turns key presses into held actions.
// Terminals report presses and auto-repeats but never releases, so a held
// action stays active for decay ticks after its most recent press.
type HoldTracker struct {
	decay int
	until map[core.Action]int
}

// NewHoldTracker creates a tracker whose actions expire decayTicks after
// the last press.
func NewHoldTracker(decayTicks int) *HoldTracker {
	if decayTicks < 1 {
		decayTicks = 1
	}
	return &HoldTracker{
		decay: decayTicks,
		until: make(map[core.Action]int),
	}
}

// IsHeld reports whether the action is one the tracker keeps alive.
// Jump, Pause and Restart are edge-triggered.
func IsHeld(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionShoot:
		return true
	}
	return false
}

// Press records a press at tick. Pressing a direction cancels the
// opposite one so reversing does not stall the player.
func (h *HoldTracker) Press(a core.Action, tick int) {
	if !IsHeld(a) {
		return
	}
	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
	}
	h.until[a] = tick + h.decay
}

// Apply sets every action still held at tick on the frame and forgets
// expired ones.
func (h *HoldTracker) Apply(frame *core.InputFrame, tick int) {
	for a, until := range h.until {
		if tick > until {
			delete(h.until, a)
			continue
		}
		frame.Set(a)
	}
}

// Held reports whether a is active at tick.
func (h *HoldTracker) Held(a core.Action, tick int) bool {
	until, ok := h.until[a]
	return ok && tick <= until
}

// Release drops every held action.
func (h *HoldTracker) Release() {
	clear(h.until)
}
