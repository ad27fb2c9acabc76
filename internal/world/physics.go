package world

// applyGravity integrates the player's vertical motion and lands it on any
// platform it falls into. Platforms are solid from above only: a rising
// player passes through.
func (w *World) applyGravity() {
	p := &w.player
	p.VY += w.params.Gravity
	p.Rect.Y += p.VY
	p.OnGround = false

	for plat := range w.store.Platforms() {
		if p.VY <= 0 {
			break
		}
		if p.Rect.Intersects(plat.Move(-w.scroll, 0)) {
			p.Rect.Y = plat.Y - p.Rect.H
			p.VY = 0
			p.OnGround = true
		}
	}
}
