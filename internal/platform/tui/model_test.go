package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/storage"
	"github.com/vovakirdan/tui-platformer/internal/telemetry"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

const fakeSeed = 7

// fakeGame drives a real world but lets tests inject finished runs and
// record the frames the model sends.
type fakeGame struct {
	w        *world.World
	events   []world.Event
	frames   []core.InputFrame
	finished []core.RunSummary
	summary  core.RunSummary
	resets   int
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake Runner" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.w = world.New(world.DefaultParams(), fakeSeed)
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	g.events = g.w.Step(world.Input{})
	res := core.StepResult{State: g.State(), Finished: g.finished}
	g.finished = nil
	return res
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState {
	return core.GameState{Score: g.summary.Score, Health: 3}
}

func (g *fakeGame) World() *world.World      { return g.w }
func (g *fakeGame) Events() []world.Event    { return g.events }
func (g *fakeGame) Summary() core.RunSummary { return g.summary }

func (g *fakeGame) lastFrame() core.InputFrame {
	return g.frames[len(g.frames)-1]
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func TestNewModelResetsGame(t *testing.T) {
	g := &fakeGame{}
	NewModel(g, nil, testConfig())
	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
}

func TestModelHeldKeyDecays(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testConfig(), WithHoldDecay(3))

	m, _ = send(t, m, runeKey('d'))
	for tick := 1; tick <= 6; tick++ {
		m, _ = send(t, m, TickMsg{})
		want := tick <= 4
		if got := g.lastFrame().Has(core.ActionRight); got != want {
			t.Errorf("tick %d: right = %v, want %v", tick, got, want)
		}
	}
}

func TestModelEdgeActionLastsOneTick(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testConfig())

	m, _ = send(t, m, runeKey(' '))
	m, _ = send(t, m, TickMsg{})
	if !g.lastFrame().Has(core.ActionJump) {
		t.Error("jump should reach the next tick")
	}
	m, _ = send(t, m, TickMsg{})
	if g.lastFrame().Has(core.ActionJump) {
		t.Error("jump should not repeat on the following tick")
	}
}

func TestModelRestartReleasesHeldKeys(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testConfig(), WithHoldDecay(30))

	m, _ = send(t, m, runeKey('d'))
	m, _ = send(t, m, runeKey('r'))
	m, _ = send(t, m, TickMsg{})
	if f := g.lastFrame(); !f.Has(core.ActionRestart) || !f.Has(core.ActionRight) {
		t.Fatalf("first tick should carry restart and right, got %v", f.Actions)
	}
	m, _ = send(t, m, TickMsg{})
	if g.lastFrame().Has(core.ActionRight) {
		t.Error("held right should be dropped after a restart")
	}
}

func TestModelSavesFinishedRuns(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{}
	m := NewModel(g, store, testConfig())

	g.finished = []core.RunSummary{
		{Score: 12, MaxWorldX: 2400, EnemiesKilled: 2, Deaths: 3, Ticks: 900},
		{Score: 0, MaxWorldX: 50, Ticks: 10},
	}
	m, _ = send(t, m, TickMsg{})

	if m.RunsSaved() != 1 {
		t.Errorf("RunsSaved = %d, want 1", m.RunsSaved())
	}
	runs, err := store.TopRuns("fake", 10)
	if err != nil {
		t.Fatalf("TopRuns failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs = %d, want 1", len(runs))
	}
	if runs[0].Score != 12 || runs[0].MaxWorldX != 2400 || runs[0].Seed != fakeSeed {
		t.Errorf("saved run = %+v", runs[0])
	}
}

func TestModelQuitRecordsRunInProgress(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{}
	m := NewModel(g, store, testConfig())

	g.summary = core.RunSummary{MaxWorldX: 900, Ticks: 300}
	m, cmd := send(t, m, runeKey('q'))
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if !m.Quitting() {
		t.Error("model should be quitting")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}

	runs, err := store.TopRuns("fake", 10)
	if err != nil {
		t.Fatalf("TopRuns failed: %v", err)
	}
	if len(runs) != 1 || runs[0].MaxWorldX != 900 {
		t.Errorf("runs = %+v, want one run at 900", runs)
	}
}

func TestModelQuitSkipsIdleRun(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{}
	m := NewModel(g, store, testConfig())

	g.summary = core.RunSummary{MaxWorldX: 100}
	send(t, m, runeKey('q'))

	runs, err := store.TopRuns("fake", 10)
	if err != nil {
		t.Fatalf("TopRuns failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("idle run should not be saved, got %+v", runs)
	}
}

func TestModelTelemetry(t *testing.T) {
	dir := t.TempDir()
	w, err := telemetry.NewWriter(dir)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	g := &fakeGame{}
	m := NewModel(g, nil, testConfig(), WithTelemetry(telemetry.NewCollector(2, 60), w))
	for range 4 {
		m, _ = send(t, m, TickMsg{})
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	rows, err := telemetry.ReadAll(w.Path())
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("rows = %d, want 2", len(rows))
	}
}

func TestModelViewFitsTerminal(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testConfig())

	view := m.View()
	if got := strings.Count(view, "\n") + 1; got != 24 {
		t.Errorf("view lines = %d, want 24", got)
	}
	if !strings.Contains(view, "fake") || !strings.Contains(view, "score") {
		t.Errorf("view missing playfield or status bar:\n%s", view)
	}

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	view = m.View()
	if got := strings.Count(view, "\n") + 1; got != 30 {
		t.Errorf("view lines after resize = %d, want 30", got)
	}
	if g.resets != 1 {
		t.Error("resize must not reset the run")
	}
}
