package telemetry

import "github.com/vovakirdan/tui-platformer/internal/world"

// Collector accumulates events within tick windows and produces WindowStats.
type Collector struct {
	windowTicks int
	tickRate    int

	windowStartTick int

	chunksLoaded  int
	chunksEvicted int
	shots         int
	enemyHits     int
	kills         int
	gems          int
	playerHits    int
	respawns      int
	resets        int
}

// NewCollector creates a collector that closes a window every windowTicks
// ticks. tickRate converts ticks to seconds for the sim_time column.
func NewCollector(windowTicks, tickRate int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	if tickRate < 1 {
		tickRate = 60
	}
	return &Collector{windowTicks: windowTicks, tickRate: tickRate}
}

// Record counts the events of one tick.
func (c *Collector) Record(events []world.Event) {
	for _, e := range events {
		switch e.Kind {
		case world.EventChunkLoaded:
			c.chunksLoaded++
		case world.EventChunkEvicted:
			c.chunksEvicted++
		case world.EventShot:
			c.shots++
		case world.EventEnemyHit:
			c.enemyHits++
		case world.EventEnemyKilled:
			c.kills++
		case world.EventGemCollected:
			c.gems++
		case world.EventPlayerHit:
			c.playerHits++
		case world.EventRespawn:
			c.respawns++
		case world.EventReset:
			c.resets++
		}
	}
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int, g Gauges) WindowStats {
	var hitRate float64
	if c.shots > 0 {
		hitRate = float64(c.enemyHits) / float64(c.shots)
	}

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) / float64(c.tickRate),
		ChunksLoaded:    c.chunksLoaded,
		ChunksEvicted:   c.chunksEvicted,
		Shots:           c.shots,
		EnemyHits:       c.enemyHits,
		Kills:           c.kills,
		Gems:            c.gems,
		PlayerHits:      c.playerHits,
		Respawns:        c.respawns,
		Resets:          c.resets,
		HitRate:         hitRate,
		ActiveChunks:    g.ActiveChunks,
		Bullets:         g.Bullets,
		Sparks:          g.Sparks,
		Score:           g.Score,
		Health:          g.Health,
		WorldX:          g.WorldX,
	}

	*c = Collector{windowTicks: c.windowTicks, tickRate: c.tickRate, windowStartTick: currentTick}
	return stats
}

// Observe records one tick of w and, when the window is full, returns the
// closed window.
func (c *Collector) Observe(w *world.World, events []world.Event) (WindowStats, bool) {
	c.Record(events)
	if !c.ShouldFlush(w.Tick()) {
		return WindowStats{}, false
	}
	return c.Flush(w.Tick(), GaugesOf(w)), true
}

// GaugesOf samples w.
func GaugesOf(w *world.World) Gauges {
	return Gauges{
		ActiveChunks: w.Store().Len(),
		Bullets:      len(w.Bullets()),
		Sparks:       w.Sparks().Count(),
		Score:        w.Score(),
		Health:       w.Health(),
		WorldX:       w.PlayerWorldX(),
	}
}
