package world

import (
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Input is the player's intent for one tick. NowMs is the caller's clock in
// milliseconds; the shot cooldown is measured against it. Restart abandons
// the current run and spends the tick on a full reset.
type Input struct {
	Left    bool
	Right   bool
	Jump    bool
	Shoot   bool
	Restart bool
	NowMs   int64
}

// Player is the controllable box. Rect is in screen space; the player's
// world X is Rect.X plus the camera scroll.
type Player struct {
	Rect     core.RectF
	VY       float64
	OnGround bool
}

type runStats struct {
	maxWorldX float64
	kills     int
	gems      int
	deaths    int
	ticks     int
}

// World is the whole game state for one session: chunk store, player,
// camera, projectiles, particles and the score/health pair. It is not safe
// for concurrent use; run one World per session.
type World struct {
	params Params
	seed   int64

	store   *Store
	player  Player
	scroll  float64
	bullets []Bullet
	sparks  *SparkPool
	rng     *rand.Rand

	score      int
	health     int
	lastShotMs int64
	tick       int
	stats      runStats

	events []Event
	logger Logger
}

// Option customises a World at construction.
type Option func(*World)

// WithLogger routes chunk and run lifecycle logging to l.
func WithLogger(l Logger) Option {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithTemplateCache lets the chunk store reuse pristine chunks.
func WithTemplateCache(c TemplateCache) Option {
	return func(w *World) {
		w.store.SetCache(c)
	}
}

// New creates a world for seed and loads the chunks around the spawn point.
func New(p Params, seed int64, opts ...Option) *World {
	w := &World{
		params: p,
		seed:   seed,
		store:  NewStore(seed, p),
		sparks: NewSparkPool(p.TrailCap, p.SparkCap),
		rng:    rand.New(rand.NewSource(seed)),
		health: p.MaxHealth,
		logger: nopLogger{},
	}
	for _, opt := range opts {
		opt(w)
	}
	w.store.SetLogger(w.logger)
	w.placeAtSpawn()
	w.store.Refresh(w.PlayerWorldX())
	w.stats.maxWorldX = w.PlayerWorldX()
	w.logger.Info("world created", "seed", seed, "chunks", w.store.Len())
	return w
}

// Step advances the simulation by one tick and returns what happened.
func (w *World) Step(in Input) []Event {
	w.events = nil
	w.tick++

	if in.Restart {
		w.Reset()
		return w.events
	}
	w.stats.ticks++

	w.movePlayer(in)
	w.jump(in)
	w.shoot(in)
	w.refreshChunks()
	w.updateMovingPlatforms()
	w.updateEnemies()
	w.applyGravity()
	w.updateBullets()
	w.resolveCollisions()
	w.sparks.Update()

	if x := w.PlayerWorldX(); x > w.stats.maxWorldX {
		w.stats.maxWorldX = x
	}
	return w.events
}

func (w *World) emit(e Event) {
	e.Tick = w.tick
	w.events = append(w.events, e)
}

func (w *World) refreshChunks() {
	loaded, evicted := w.store.Refresh(w.PlayerWorldX())
	for _, ci := range loaded {
		w.emit(Event{Kind: EventChunkLoaded, Chunk: ci})
	}
	for _, ci := range evicted {
		w.emit(Event{Kind: EventChunkEvicted, Chunk: ci})
	}
}

// Params returns the tuning the world was built with.
func (w *World) Params() Params { return w.params }

// Seed returns the world seed.
func (w *World) Seed() int64 { return w.seed }

// Store exposes the chunk store for inspection.
func (w *World) Store() *Store { return w.store }

// Player returns a copy of the player state.
func (w *World) Player() Player { return w.player }

// PlayerWorldX returns the player's left edge in world space.
func (w *World) PlayerWorldX() float64 { return w.scroll + w.player.Rect.X }

// Scroll returns the camera offset. It is never negative.
func (w *World) Scroll() float64 { return w.scroll }

// Score returns the current score.
func (w *World) Score() int { return w.score }

// Health returns the remaining lives.
func (w *World) Health() int { return w.health }

// Tick returns the number of steps taken.
func (w *World) Tick() int { return w.tick }

// Bullets returns the live bullets. The slice is owned by the world.
func (w *World) Bullets() []Bullet { return w.bullets }

// Sparks returns the spark pool.
func (w *World) Sparks() *SparkPool { return w.sparks }

// Summary reports the run so far.
func (w *World) Summary() core.RunSummary {
	return core.RunSummary{
		Score:         w.score,
		MaxWorldX:     int(w.stats.maxWorldX),
		EnemiesKilled: w.stats.kills,
		GemsCollected: w.stats.gems,
		Deaths:        w.stats.deaths,
		Ticks:         w.stats.ticks,
	}
}
