package world

import (
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Fixed chunk geometry. Vertical placement is tied to the 500-unit logical
// view, so these do not scale with Params.
const (
	groundY    = 460
	groundH    = 40
	platformH  = 20
	movingH    = 16
	spikeY     = 440
	spikeW     = 30
	spikeH     = 20
	gemSize    = 12
	enemyY     = 420
	enemySize  = 36
	enemyMaxHP = 3
)

var enemySpeeds = [...]float64{1.0, 1.5, 2.0}

// Generate builds chunk ci for seed. It is a pure function of
// (seed, ci, p.ChunkWidth): the RNG is seeded with seed+ci and drawn in a
// fixed order, so calling it twice yields identical chunks.
func Generate(seed int64, ci int, p Params) *Chunk {
	rng := rand.New(rand.NewSource(seed + int64(ci)))
	cw := p.ChunkWidth
	base := float64(ci * cw)

	c := &Chunk{Index: ci}
	c.Platforms = append(c.Platforms, Platform{Rect: core.NewRectF(base, groundY, float64(cw), groundH)})

	for i, n := 0, randint(rng, 2, 6); i < n; i++ {
		w := randint(rng, 100, 220)
		x := base + float64(randint(rng, 50, cw-200))
		y := randint(rng, 220, 380)
		c.Platforms = append(c.Platforms, Platform{Rect: core.NewRectF(x, float64(y), float64(w), platformH)})
	}

	for i, n := 0, randint(rng, 0, 3); i < n; i++ {
		w := randint(rng, 100, 160)
		x := base + float64(randint(rng, 50, cw-200))
		y := randint(rng, 200, 360)
		dir := 1.0
		if rng.Intn(2) == 0 {
			dir = -1
		}
		lo := x - float64(randint(rng, 50, 150))
		hi := x + float64(randint(rng, 50, 150))
		speed := 0.6 + rng.Float64()*1.2
		c.Moving = append(c.Moving, &MovingPlatform{
			Rect:     core.NewRectF(x, float64(y), float64(w), movingH),
			Dir:      dir,
			RangeMin: lo,
			RangeMax: hi,
			Speed:    speed,
		})
	}

	for i, n := 0, randint(rng, 0, 3); i < n; i++ {
		x := base + float64(randint(rng, 50, cw-40))
		c.Spikes = append(c.Spikes, Spike{Rect: core.NewRectF(x, spikeY, spikeW, spikeH)})
	}

	for i, n := 0, randint(rng, 1, 5); i < n; i++ {
		x := base + float64(randint(rng, 50, cw-30))
		y := randint(rng, 200, 420)
		c.Gems = append(c.Gems, &Gem{Rect: core.NewRectF(x, float64(y), gemSize, gemSize)})
	}

	for i, n := 0, randint(rng, 0, 4); i < n; i++ {
		x := base + float64(randint(rng, 100, cw-100))
		speed := enemySpeeds[rng.Intn(len(enemySpeeds))]
		lo := x - float64(randint(rng, 80, 180))
		hi := x + float64(randint(rng, 80, 180))
		aggressive := rng.Float64() < 0.5
		hp := randint(rng, 1, enemyMaxHP)
		c.Enemies = append(c.Enemies, &Enemy{
			Rect:       core.NewRectF(x, enemyY, enemySize, enemySize),
			Speed:      speed,
			PatrolMin:  lo,
			PatrolMax:  hi,
			Aggressive: aggressive,
			HP:         hp,
		})
	}

	return c
}

// randint returns a uniform integer in [lo, hi], both ends inclusive.
func randint(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
