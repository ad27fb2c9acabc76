package world

import "github.com/vovakirdan/tui-platformer/internal/core"

// EventKind tags what happened during a Step.
type EventKind int

const (
	EventChunkLoaded EventKind = iota
	EventChunkEvicted
	EventShot
	EventEnemyHit
	EventEnemyKilled
	EventGemCollected
	EventPlayerHit
	EventRespawn
	EventReset
)

var eventNames = [...]string{
	EventChunkLoaded:  "chunk_loaded",
	EventChunkEvicted: "chunk_evicted",
	EventShot:         "shot",
	EventEnemyHit:     "enemy_hit",
	EventEnemyKilled:  "enemy_killed",
	EventGemCollected: "gem_collected",
	EventPlayerHit:    "player_hit",
	EventRespawn:      "respawn",
	EventReset:        "reset",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

// HitCause says what damaged the player.
type HitCause int

const (
	CauseNone HitCause = iota
	CauseSpike
	CauseEnemy
)

func (c HitCause) String() string {
	switch c {
	case CauseSpike:
		return "spike"
	case CauseEnemy:
		return "enemy"
	}
	return "none"
}

// Event is one thing that happened during a Step. Chunk is set for chunk
// and enemy/gem events, Cause for player hits, Run for resets.
type Event struct {
	Kind  EventKind
	Tick  int
	Chunk int
	Cause HitCause
	Run   core.RunSummary
}
