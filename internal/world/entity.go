package world

import "github.com/vovakirdan/tui-platformer/internal/core"

// Platform is a static, solid-from-above rectangle.
type Platform struct {
	Rect core.RectF
}

// MovingPlatform oscillates horizontally between RangeMin and RangeMax.
// Dir is +1 or -1; the flip happens after the bound is crossed, so the
// platform overshoots by up to one step.
type MovingPlatform struct {
	Rect     core.RectF
	Dir      float64
	RangeMin float64
	RangeMax float64
	Speed    float64
}

// Spike is a ground hazard.
type Spike struct {
	Rect core.RectF
}

// Gem is a pickup worth points.
type Gem struct {
	Rect core.RectF
}

// Enemy patrols between PatrolMin and PatrolMax. Speed is signed: patrol
// flips its sign at the bounds, chasing never writes it.
type Enemy struct {
	Rect       core.RectF
	Speed      float64
	PatrolMin  float64
	PatrolMax  float64
	Aggressive bool
	HP         int
}

// Bullet travels horizontally in world space.
type Bullet struct {
	Rect core.RectF
	VX   float64
}

// EnemyHandle addresses one enemy slot inside a loaded chunk. Load is the
// chunk's load serial, so a handle taken before an eviction never matches
// the regenerated chunk.
type EnemyHandle struct {
	Chunk int
	Load  uint64
	Slot  int
}

// GemHandle addresses one gem slot inside a loaded chunk.
type GemHandle struct {
	Chunk int
	Load  uint64
	Slot  int
}

// EnemyRef pairs a handle with the live enemy it addresses.
type EnemyRef struct {
	Handle EnemyHandle
	Enemy  *Enemy
}

// GemRef pairs a handle with the live gem it addresses.
type GemRef struct {
	Handle GemHandle
	Gem    *Gem
}
