package world

import "math/rand"

// Spark is a short-lived visual particle in world space.
type Spark struct {
	X, Y float64
	Life int
}

// SparkPool holds live sparks under two caps: bullet trails only spawn
// while the pool is below trailCap, explosions only while below totalCap.
type SparkPool struct {
	Sparks   []Spark
	trailCap int
	totalCap int
}

// NewSparkPool creates a pool with the given caps.
func NewSparkPool(trailCap, totalCap int) *SparkPool {
	return &SparkPool{
		Sparks:   make([]Spark, 0, totalCap),
		trailCap: trailCap,
		totalCap: totalCap,
	}
}

// EmitTrail adds one trail spark if the pool is under the trail cap.
func (p *SparkPool) EmitTrail(x, y float64, life int) bool {
	if len(p.Sparks) >= p.trailCap {
		return false
	}
	p.Sparks = append(p.Sparks, Spark{X: x, Y: y, Life: life})
	return true
}

// EmitBurst scatters up to n sparks around (x, y), each offset by up to
// jitter on both axes with a lifetime in [lifeMin, lifeMax]. Sparks past the
// total cap are dropped without drawing from rng.
func (p *SparkPool) EmitBurst(rng *rand.Rand, x, y float64, n, jitter, lifeMin, lifeMax int) int {
	added := 0
	for i := 0; i < n; i++ {
		if len(p.Sparks) >= p.totalCap {
			continue
		}
		dx := randint(rng, -jitter, jitter)
		dy := randint(rng, -jitter, jitter)
		life := randint(rng, lifeMin, lifeMax)
		p.Sparks = append(p.Sparks, Spark{X: x + float64(dx), Y: y + float64(dy), Life: life})
		added++
	}
	return added
}

// Update ages every spark by one tick and compacts out the dead ones.
func (p *SparkPool) Update() {
	alive := 0
	for i := range p.Sparks {
		s := &p.Sparks[i]
		s.Life--
		if s.Life <= 0 {
			continue
		}
		p.Sparks[alive] = *s
		alive++
	}
	p.Sparks = p.Sparks[:alive]
}

// Clear drops every spark.
func (p *SparkPool) Clear() {
	p.Sparks = p.Sparks[:0]
}

// Count returns the number of live sparks.
func (p *SparkPool) Count() int {
	return len(p.Sparks)
}
