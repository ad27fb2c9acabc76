package world

import "github.com/vovakirdan/tui-platformer/internal/core"

// movePlayer applies horizontal input and the camera dead zone. The player
// moves in screen space; once it passes the right edge of the dead zone the
// world scrolls instead, and left of the zone the camera pulls back until
// scroll reaches zero. Past that the player may walk on into negative world
// X.
func (w *World) movePlayer(in Input) {
	speed := w.params.MoveSpeed
	r := &w.player.Rect

	if in.Left {
		r.X -= speed
	}
	if in.Right {
		r.X += speed
	}

	if r.X > w.params.ViewWidth*w.params.ScrollRight {
		w.scroll += speed
		r.X -= speed
	}
	if r.X < w.params.ViewWidth*w.params.ScrollLeft && w.scroll > 0 {
		d := min(speed, w.scroll)
		w.scroll -= d
		r.X += d
	}
}

func (w *World) jump(in Input) {
	if in.Jump && w.player.OnGround {
		w.player.VY = w.params.JumpImpulse
	}
}

// shoot fires one bullet from the player's right edge when the cooldown has
// strictly elapsed.
func (w *World) shoot(in Input) {
	if !in.Shoot || in.NowMs-w.lastShotMs <= w.params.ShotCooldownMs {
		return
	}
	r := w.player.Rect
	w.bullets = append(w.bullets, Bullet{
		Rect: core.NewRectF(w.PlayerWorldX()+r.W, r.Y+r.H/2, w.params.BulletW, w.params.BulletH),
		VX:   w.params.BulletSpeed,
	})
	w.lastShotMs = in.NowMs
	w.emit(Event{Kind: EventShot, Chunk: w.store.ChunkIndex(w.PlayerWorldX())})
}
