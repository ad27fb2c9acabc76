package world

import "math"

func (w *World) updateMovingPlatforms() {
	for mp := range w.store.MovingPlatforms() {
		mp.Rect.X += mp.Dir * mp.Speed
		if mp.Rect.X < mp.RangeMin || mp.Rect.X > mp.RangeMax {
			mp.Dir = -mp.Dir
		}
	}
}

// updateEnemies moves every enemy. An aggressive enemy within DetectRange
// steps toward the player at its patrol speed without touching the stored
// sign, so when the player leaves range it resumes its last patrol
// direction.
func (w *World) updateEnemies() {
	pwx := w.PlayerWorldX()
	for _, e := range w.store.Enemies() {
		if e.Aggressive && math.Abs(pwx-e.Rect.X) < w.params.DetectRange {
			step := math.Abs(e.Speed)
			if pwx > e.Rect.X {
				e.Rect.X += step
			} else {
				e.Rect.X -= step
			}
			continue
		}
		e.Rect.X += e.Speed
		if e.Rect.X < e.PatrolMin || e.Rect.X > e.PatrolMax {
			e.Speed = -e.Speed
		}
	}
}

// updateBullets advances bullets, lays a trail spark behind each and drops
// the ones that strayed too far from the player.
func (w *World) updateBullets() {
	pwx := w.PlayerWorldX()
	limit := w.params.bulletRange()
	kept := w.bullets[:0]
	for _, b := range w.bullets {
		b.Rect.X += b.VX
		w.sparks.EmitTrail(b.Rect.X, b.Rect.Y+2, w.params.TrailLifetime)
		if math.Abs(b.Rect.X-pwx) > limit {
			continue
		}
		kept = append(kept, b)
	}
	w.bullets = kept
}
