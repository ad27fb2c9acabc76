// Package telemetry aggregates world events into fixed tick windows and
// writes one CSV row per window.
package telemetry

// WindowStats is one telemetry row.
type WindowStats struct {
	WindowStartTick int     `csv:"-"`
	WindowEndTick   int     `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Events during window
	ChunksLoaded  int `csv:"chunks_loaded"`
	ChunksEvicted int `csv:"chunks_evicted"`
	Shots         int `csv:"shots"`
	EnemyHits     int `csv:"enemy_hits"`
	Kills         int `csv:"kills"`
	Gems          int `csv:"gems"`
	PlayerHits    int `csv:"player_hits"`
	Respawns      int `csv:"respawns"`
	Resets        int `csv:"resets"`

	HitRate float64 `csv:"hit_rate"`

	// Sampled at window end
	ActiveChunks int     `csv:"active_chunks"`
	Bullets      int     `csv:"bullets"`
	Sparks       int     `csv:"sparks"`
	Score        int     `csv:"score"`
	Health       int     `csv:"health"`
	WorldX       float64 `csv:"world_x"`
}

// Gauges are the instantaneous values sampled when a window closes.
type Gauges struct {
	ActiveChunks int
	Bullets      int
	Sparks       int
	Score        int
	Health       int
	WorldX       float64
}
