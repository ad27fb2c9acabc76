package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
	"github.com/vovakirdan/tui-platformer/internal/telemetry"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

// statusBarHeight is the number of terminal rows below the playfield.
const statusBarHeight = 1

// worldGame is implemented by games built on world.World. The model uses
// it to record runs and feed telemetry.
type worldGame interface {
	registry.Game
	World() *world.World
	Events() []world.Event
	Summary() core.RunSummary
}

// Model is the Bubble Tea model for running the platformer.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	hold       *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	tick       int
	collector  *telemetry.Collector
	telemetry  *telemetry.Writer
	logger     *log.Logger
	width      int
	height     int
	quitting   bool
	runsSaved  int
}

// ModelOption customises a Model.
type ModelOption func(*Model)

// WithLogger sets the logger for run and telemetry errors.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithTelemetry feeds every tick's events into c and appends closed windows
// to w. A nil writer disables telemetry.
func WithTelemetry(c *telemetry.Collector, w *telemetry.Writer) ModelOption {
	return func(m *Model) {
		m.collector = c
		m.telemetry = w
	}
}

// WithHoldDecay overrides how many ticks a held key stays active after its
// last press.
func WithHoldDecay(ticks int) ModelOption {
	return func(m *Model) {
		m.hold = NewHoldTracker(ticks)
	}
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-statusBarHeight, 1)),
		store:      store,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		hold:       NewHoldTracker(cfg.TickRate / 3),
		inputFrame: core.NewInputFrame(),
		logger:     log.New(io.Discard),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.help.Width = cfg.ScreenW

	// Reset here rather than in Init: Init has a value receiver and the
	// game pointer is shared either way.
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.finishRun()
		m.quitting = true
		return m, tea.Quit
	}

	if IsHeld(action) {
		m.hold.Press(action, m.tick+1)
	} else {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize adapts the screen buffer. The world is in logical units, so
// the run carries on at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-statusBarHeight, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes one simulation tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.tick++
	m.hold.Apply(&m.inputFrame, m.tick)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if m.inputFrame.Has(core.ActionRestart) || m.gameState.Paused {
		m.hold.Release()
	}

	for _, run := range result.Finished {
		m.saveRun(run)
	}
	m.observe()

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// observe feeds the last tick into telemetry.
func (m *Model) observe() {
	if m.collector == nil || m.telemetry == nil {
		return
	}
	wg, ok := m.game.(worldGame)
	if !ok || wg.World() == nil {
		return
	}
	stats, flushed := m.collector.Observe(wg.World(), wg.Events())
	if !flushed {
		return
	}
	if err := m.telemetry.Write(stats); err != nil {
		m.logger.Warn("telemetry write failed", "err", err)
	}
}

// finishRun records the run in progress when the player quits.
func (m *Model) finishRun() {
	wg, ok := m.game.(worldGame)
	if !ok {
		if m.store != nil && m.gameState.Score > 0 {
			if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
				m.logger.Warn("save score failed", "err", err)
			}
		}
		return
	}
	m.saveRun(wg.Summary())
}

// saveRun stores a finished run if anything happened in it.
func (m *Model) saveRun(run core.RunSummary) {
	if m.store == nil || !m.worthRecording(run) {
		return
	}
	var seed int64
	if wg, ok := m.game.(worldGame); ok && wg.World() != nil {
		seed = wg.World().Seed()
	}
	id, err := m.store.SaveRun(m.game.ID(), seed, run)
	if err != nil {
		m.logger.Warn("save run failed", "err", err)
		return
	}
	m.runsSaved++
	m.logger.Debug("run saved", "id", id, "score", run.Score, "max_x", run.MaxWorldX)
}

// worthRecording reports whether the run scored or got past the spawn
// point.
func (m *Model) worthRecording(run core.RunSummary) bool {
	if run.Score > 0 {
		return true
	}
	wg, ok := m.game.(worldGame)
	if !ok || wg.World() == nil {
		return false
	}
	return float64(run.MaxWorldX) > wg.World().Params().SpawnX
}

// saveScreenshot writes the current playfield to ~/.arcade/screenshots.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: home dir: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: create dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: write: %w", err)
	}
	return path, nil
}

// View renders the playfield and the status bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.statusBar()
}

// Quitting reports whether the user asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

// RunsSaved returns how many runs this model wrote to the store.
func (m Model) RunsSaved() int {
	return m.runsSaved
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
