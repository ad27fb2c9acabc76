// Package platformer adapts the chunk-streamed world to the registry.Game
// interface: it maps platform actions to world input, drives the tick clock
// for the shot cooldown, and rasterises the world's draw list onto a
// core.Screen.
package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

// ID is the registry and score-table key for this game.
const ID = "platformer"

// Package-level wiring set once by the CLI before games are created.
var (
	configPath    string
	templateCache world.TemplateCache
	logger        world.Logger
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetTemplateCache shares a chunk template cache between every game
// instance. Pass nil to disable.
func SetTemplateCache(c world.TemplateCache) {
	templateCache = c
}

// SetLogger routes world logging for every game instance.
func SetLogger(l world.Logger) {
	logger = l
}

// Game implements registry.Game on top of world.World.
type Game struct {
	world   *world.World
	cfg     config.PlatformerConfig
	runtime core.RuntimeConfig
	sink    *cellSink
	paused  bool
	ticks   int64
	events  []world.Event
}

// New creates a new platformer instance. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Chunk Runner"
}

// Reset builds a fresh world. A zero runtime seed falls back to the
// configured world seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.Load(configPath)
	if err != nil && logger != nil {
		logger.Warn("using default config", "err", err)
	}
	g.ResetWithConfig(runtime, cfg)
}

// ResetWithConfig is Reset with an explicit config instead of the search
// order.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.PlatformerConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	seed := runtime.Seed
	if seed == 0 {
		seed = cfg.World.Seed
	}

	var opts []world.Option
	if logger != nil {
		opts = append(opts, world.WithLogger(logger))
	}
	if templateCache != nil {
		opts = append(opts, world.WithTemplateCache(templateCache))
	}

	g.cfg = cfg
	g.runtime = runtime
	g.world = world.New(ParamsFromConfig(cfg), seed, opts...)
	g.sink = newCellSink(float64(cfg.View.Width), float64(cfg.View.Height))
	g.paused = false
	g.ticks = 0
	g.events = nil
}

// Step advances the world by one tick. Pause toggles on ActionPause and
// freezes the tick clock, so cooldowns do not elapse while paused.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		g.events = nil
		return core.StepResult{State: g.State()}
	}

	g.ticks++
	g.events = g.world.Step(world.Input{
		Left:    in.Has(core.ActionLeft),
		Right:   in.Has(core.ActionRight),
		Jump:    in.Has(core.ActionJump),
		Shoot:   in.Has(core.ActionShoot),
		Restart: in.Has(core.ActionRestart),
		NowMs:   g.ticks * 1000 / int64(g.runtime.TickRate),
	})

	result := core.StepResult{State: g.State()}
	for _, e := range g.events {
		if e.Kind == world.EventReset {
			result.Finished = append(result.Finished, e.Run)
		}
	}
	return result
}

// Render draws the world into dst, scaling the logical view to the
// screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.sink.begin(dst)
	world.Draw(g.world, g.sink)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// State returns the current game state. The world is endless, so GameOver
// is never set; runs end through resets instead.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:  g.world.Score(),
		Health: g.world.Health(),
		Paused: g.paused,
	}
}

// World exposes the underlying world.
func (g *Game) World() *world.World {
	return g.world
}

// Events returns what happened during the last Step.
func (g *Game) Events() []world.Event {
	return g.events
}

// Summary reports the run in progress.
func (g *Game) Summary() core.RunSummary {
	if g.world == nil {
		return core.RunSummary{}
	}
	return g.world.Summary()
}

// ParamsFromConfig maps the YAML config onto simulation parameters.
func ParamsFromConfig(cfg config.PlatformerConfig) world.Params {
	return world.Params{
		ChunkWidth:       cfg.World.ChunkWidth,
		ActiveRadius:     cfg.World.ActiveRadius,
		ViewWidth:        float64(cfg.View.Width),
		ViewHeight:       float64(cfg.View.Height),
		Gravity:          cfg.Physics.Gravity,
		MoveSpeed:        cfg.Physics.MoveSpeed,
		JumpImpulse:      cfg.Physics.JumpImpulse,
		SpawnX:           cfg.Player.SpawnX,
		SpawnY:           cfg.Player.SpawnY,
		PlayerW:          cfg.Player.Width,
		PlayerH:          cfg.Player.Height,
		MaxHealth:        cfg.Player.MaxHealth,
		BulletSpeed:      cfg.Combat.BulletSpeed,
		BulletW:          cfg.Combat.BulletWidth,
		BulletH:          cfg.Combat.BulletHeight,
		ShotCooldownMs:   cfg.Combat.ShotCooldownMs,
		TrailLifetime:    cfg.Combat.TrailLifetime,
		TrailCap:         cfg.Combat.TrailCap,
		SparkCap:         cfg.Combat.SparkCap,
		ExplosionSparks:  cfg.Combat.ExplosionSparks,
		ExplosionJitter:  cfg.Combat.ExplosionJitter,
		ExplosionLifeMin: cfg.Combat.ExplosionLifeMin,
		ExplosionLifeMax: cfg.Combat.ExplosionLifeMax,
		GemPoints:        cfg.Combat.GemPoints,
		KillPoints:       cfg.Combat.KillPoints,
		DetectRange:      cfg.Enemies.DetectRange,
		ScrollRight:      cfg.Camera.ScrollRight,
		ScrollLeft:       cfg.Camera.ScrollLeft,
	}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
