package world

// resolveCollisions runs the cross-entity checks in a fixed order: bullets
// against enemies, player against gems, spikes, then enemies. Each removal
// works from a snapshot so the live chunk slices are never edited mid-scan.
func (w *World) resolveCollisions() {
	w.resolveBulletHits()
	w.collectGems()

	if w.touchingSpike() {
		w.hurtPlayer(CauseSpike)
	}
	if w.touchingEnemy() {
		w.hurtPlayer(CauseEnemy)
	}
}

// resolveBulletHits lets each bullet damage the first enemy it overlaps.
func (w *World) resolveBulletHits() {
	if len(w.bullets) == 0 {
		return
	}
	enemies := w.store.EnemyRefs()
	kept := w.bullets[:0]
	for _, b := range w.bullets {
		hit := false
		for _, ref := range enemies {
			e := ref.Enemy
			if e.HP <= 0 || !b.Rect.Intersects(e.Rect) {
				continue
			}
			c := e.Rect.Center()
			w.sparks.EmitBurst(w.rng, c.X, c.Y,
				w.params.ExplosionSparks, w.params.ExplosionJitter,
				w.params.ExplosionLifeMin, w.params.ExplosionLifeMax)
			e.HP--
			w.emit(Event{Kind: EventEnemyHit, Chunk: ref.Handle.Chunk})
			if e.HP <= 0 {
				w.store.RemoveEnemy(ref.Handle)
				w.score += w.params.KillPoints
				w.stats.kills++
				w.emit(Event{Kind: EventEnemyKilled, Chunk: ref.Handle.Chunk})
			}
			hit = true
			break
		}
		if !hit {
			kept = append(kept, b)
		}
	}
	w.bullets = kept
}

func (w *World) collectGems() {
	pr := w.player.Rect
	for _, ref := range w.store.GemRefs() {
		if !pr.Intersects(ref.Gem.Rect.Move(-w.scroll, 0)) {
			continue
		}
		if w.store.RemoveGem(ref.Handle) {
			w.score += w.params.GemPoints
			w.stats.gems++
			w.emit(Event{Kind: EventGemCollected, Chunk: ref.Handle.Chunk})
		}
	}
}

func (w *World) touchingSpike() bool {
	pr := w.player.Rect
	for s := range w.store.Spikes() {
		if pr.Intersects(s.Rect.Move(-w.scroll, 0)) {
			return true
		}
	}
	return false
}

func (w *World) touchingEnemy() bool {
	pr := w.player.Rect
	for _, e := range w.store.Enemies() {
		if pr.Intersects(e.Rect.Move(-w.scroll, 0)) {
			return true
		}
	}
	return false
}
