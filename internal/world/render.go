package world

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Paint names what is being drawn; the sink picks colours and glyphs.
type Paint int

const (
	PaintPlatform Paint = iota
	PaintMovingPlatform
	PaintGem
	PaintSpike
	PaintEnemy
	PaintHPBack
	PaintHPFill
	PaintBullet
	PaintSpark
	PaintPlayer
	PaintHUD
)

// Sink receives draw calls in screen space (the logical view, not
// terminal cells).
type Sink interface {
	FillRect(r core.RectF, p Paint)
	Triangle(a, b, c core.Point, p Paint)
	Circle(center core.Point, radius int, p Paint)
	Text(x, y int, s string, p Paint)
}

const (
	hpBarOffset = 6
	hpBarHeight = 4
	sparkMargin = 50
)

// Draw emits one frame: terrain, pickups, hazards, enemies with hp bars,
// bullets, sparks, the player and the HUD, in that order.
func Draw(w *World, s Sink) {
	view := core.NewRectF(0, 0, w.params.ViewWidth, w.params.ViewHeight)
	onScreen := func(r core.RectF) bool {
		return r.Intersects(view)
	}

	for p := range w.store.StaticPlatforms() {
		if sr := p.Rect.Move(-w.scroll, 0); onScreen(sr) {
			s.FillRect(sr, PaintPlatform)
		}
	}
	for mp := range w.store.MovingPlatforms() {
		if sr := mp.Rect.Move(-w.scroll, 0); onScreen(sr) {
			s.FillRect(sr, PaintMovingPlatform)
		}
	}
	for _, g := range w.store.Gems() {
		if sr := g.Rect.Move(-w.scroll, 0); onScreen(sr) {
			s.FillRect(sr, PaintGem)
		}
	}
	for sp := range w.store.Spikes() {
		sr := sp.Rect.Move(-w.scroll, 0)
		if !onScreen(sr) {
			continue
		}
		s.Triangle(
			core.Point{X: sr.X, Y: sr.Bottom()},
			core.Point{X: sr.X + float64(int(sr.W)/2), Y: sr.Y},
			core.Point{X: sr.Right(), Y: sr.Bottom()},
			PaintSpike,
		)
	}
	for _, e := range w.store.Enemies() {
		er := e.Rect.Move(-w.scroll, 0)
		if !onScreen(er.Move(0, -hpBarOffset)) {
			continue
		}
		s.FillRect(er, PaintEnemy)
		hpW := float64(int(er.W * float64(e.HP) / enemyMaxHP))
		s.FillRect(core.NewRectF(er.X, er.Y-hpBarOffset, er.W, hpBarHeight), PaintHPBack)
		if hpW > 0 {
			s.FillRect(core.NewRectF(er.X, er.Y-hpBarOffset, hpW, hpBarHeight), PaintHPFill)
		}
	}
	for _, b := range w.bullets {
		if br := b.Rect.Move(-w.scroll, 0); onScreen(br) {
			s.FillRect(br, PaintBullet)
		}
	}
	for _, sp := range w.sparks.Sparks {
		sx := int(sp.X - w.scroll)
		sy := int(sp.Y)
		if sx < 0 || sy < 0 || float64(sx) > w.params.ViewWidth+sparkMargin || float64(sy) > w.params.ViewHeight+sparkMargin {
			continue
		}
		s.Circle(core.Point{X: float64(sx), Y: float64(sy)}, SparkRadius(sp.Life), PaintSpark)
	}

	s.FillRect(w.player.Rect, PaintPlayer)

	s.Text(10, 10, fmt.Sprintf("Score: %d", w.score), PaintHUD)
	s.Text(10, 36, fmt.Sprintf("Health: %d", w.health), PaintHUD)
	s.Text(10, 62, fmt.Sprintf("World X: %d", int(w.PlayerWorldX())), PaintHUD)
}

// SparkRadius sizes a spark by its remaining life: half the lifetime,
// between 1 and 5.
func SparkRadius(life int) int {
	return core.Clamp(life/2, 1, 5)
}
