package world

// hurtPlayer takes one life. At zero the whole run resets, otherwise the
// player respawns in place.
func (w *World) hurtPlayer(cause HitCause) {
	w.health--
	w.stats.deaths++
	w.emit(Event{Kind: EventPlayerHit, Cause: cause, Chunk: w.store.ChunkIndex(w.PlayerWorldX())})
	if w.health <= 0 {
		w.Reset()
		return
	}
	w.Respawn()
}

// Respawn puts the player back at the spawn point of the current view,
// SpawnX units right of the camera, which stays where it is. Chunks, score
// and remaining health are untouched.
func (w *World) Respawn() {
	w.placeAtSpawn()
	w.scroll = max(0, w.PlayerWorldX()-w.params.SpawnX)
	w.emit(Event{Kind: EventRespawn, Chunk: w.store.ChunkIndex(w.PlayerWorldX())})
}

// Reset ends the current run and starts over from the seed: full health, no
// score, no projectiles, and every chunk regenerated on the next refresh.
// The finished run is reported in an EventReset.
func (w *World) Reset() {
	run := w.Summary()
	w.logger.Info("run finished", "score", run.Score, "max_x", run.MaxWorldX, "kills", run.EnemiesKilled, "ticks", run.Ticks)

	w.health = w.params.MaxHealth
	w.score = 0
	w.bullets = w.bullets[:0]
	w.sparks.Clear()
	w.store.Clear()
	w.scroll = 0
	w.placeAtSpawn()
	w.stats = runStats{maxWorldX: w.PlayerWorldX()}

	w.emit(Event{Kind: EventReset, Run: run})
}

func (w *World) placeAtSpawn() {
	w.player.Rect.X = w.params.SpawnX
	w.player.Rect.Y = w.params.SpawnY
	w.player.Rect.W = w.params.PlayerW
	w.player.Rect.H = w.params.PlayerH
	w.player.VY = 0
	w.player.OnGround = false
}
