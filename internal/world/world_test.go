package world

import (
	"slices"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// flatWorld returns a world whose loaded chunks contain only ground, so
// tests can place exactly the entities they need.
func flatWorld(t *testing.T) *World {
	t.Helper()
	w := New(DefaultParams(), 7)
	for _, ci := range w.store.Indices() {
		c := w.store.Chunk(ci)
		c.Platforms = c.Platforms[:1]
		c.Moving = nil
		c.Spikes = nil
		c.Gems = nil
		c.Enemies = nil
	}
	return w
}

func addEnemy(w *World, e Enemy) EnemyHandle {
	c := w.store.Chunk(w.store.ChunkIndex(e.Rect.X))
	c.Enemies = append(c.Enemies, &e)
	return EnemyHandle{Chunk: c.Index, Load: c.load, Slot: len(c.Enemies) - 1}
}

func addGem(w *World, r core.RectF) {
	c := w.store.Chunk(w.store.ChunkIndex(r.X))
	c.Gems = append(c.Gems, &Gem{Rect: r})
}

func addSpike(w *World, r core.RectF) {
	c := w.store.Chunk(w.store.ChunkIndex(r.X))
	c.Spikes = append(c.Spikes, Spike{Rect: r})
}

func hasEvent(events []Event, k EventKind) bool {
	return slices.ContainsFunc(events, func(e Event) bool { return e.Kind == k })
}

func stillEnemy(x, y float64, hp int) Enemy {
	return Enemy{
		Rect:      core.NewRectF(x, y, enemySize, enemySize),
		Speed:     0,
		PatrolMin: -1e9,
		PatrolMax: 1e9,
		HP:        hp,
	}
}

func scriptedInput(tick int) Input {
	return Input{
		Right: tick%300 < 240,
		Left:  tick%300 >= 270,
		Jump:  tick%25 == 0,
		Shoot: tick%3 == 0,
		NowMs: int64(tick) * 1000 / 60,
	}
}

func TestNewWorld(t *testing.T) {
	w := New(DefaultParams(), 12345)
	if w.Health() != 3 || w.Score() != 0 || w.Scroll() != 0 {
		t.Errorf("fresh world: health=%d score=%d scroll=%v", w.Health(), w.Score(), w.Scroll())
	}
	if w.PlayerWorldX() != 100 {
		t.Errorf("PlayerWorldX = %v, want 100", w.PlayerWorldX())
	}
	if w.store.Len() != 7 {
		t.Errorf("spawn window has %d chunks, want 7", w.store.Len())
	}
}

func TestWorldDeterminism(t *testing.T) {
	run := func() (*World, [][]Event) {
		w := New(DefaultParams(), 12345)
		var log [][]Event
		for i := 1; i <= 1500; i++ {
			log = append(log, w.Step(scriptedInput(i)))
		}
		return w, log
	}

	w1, ev1 := run()
	w2, ev2 := run()

	if w1.Score() != w2.Score() || w1.Health() != w2.Health() {
		t.Errorf("state differs: score %d/%d health %d/%d", w1.Score(), w2.Score(), w1.Health(), w2.Health())
	}
	if w1.PlayerWorldX() != w2.PlayerWorldX() || w1.Scroll() != w2.Scroll() {
		t.Errorf("position differs: %v/%v", w1.PlayerWorldX(), w2.PlayerWorldX())
	}
	if len(w1.Bullets()) != len(w2.Bullets()) || w1.Sparks().Count() != w2.Sparks().Count() {
		t.Error("projectile state differs")
	}
	if !slices.Equal(w1.store.Indices(), w2.store.Indices()) {
		t.Errorf("chunk windows differ: %v vs %v", w1.store.Indices(), w2.store.Indices())
	}
	for i := range ev1 {
		if !slices.Equal(ev1[i], ev2[i]) {
			t.Fatalf("events differ at tick %d: %v vs %v", i+1, ev1[i], ev2[i])
		}
	}
}

func TestWorldInvariantsOverLongRun(t *testing.T) {
	p := DefaultParams()
	w := New(p, 12345)
	prevScore, prevHealth := w.Score(), w.Health()

	for i := 1; i <= 3000; i++ {
		events := w.Step(scriptedInput(i))
		reset := hasEvent(events, EventReset)

		if w.Scroll() < 0 {
			t.Fatalf("tick %d: scroll = %v", i, w.Scroll())
		}
		if n := w.Sparks().Count(); n > p.SparkCap {
			t.Fatalf("tick %d: %d sparks exceeds cap", i, n)
		}
		if w.Score() < 0 || w.Health() < 0 || w.Health() > p.MaxHealth {
			t.Fatalf("tick %d: score=%d health=%d", i, w.Score(), w.Health())
		}

		if reset {
			if w.Score() != 0 || w.Health() != p.MaxHealth {
				t.Fatalf("tick %d: reset left score=%d health=%d", i, w.Score(), w.Health())
			}
		} else {
			if w.Score() < prevScore {
				t.Fatalf("tick %d: score dropped %d -> %d without reset", i, prevScore, w.Score())
			}
			if w.Health() > prevHealth {
				t.Fatalf("tick %d: health rose %d -> %d without reset", i, prevHealth, w.Health())
			}

			ci := w.store.ChunkIndex(w.PlayerWorldX())
			if !hasEvent(events, EventRespawn) {
				for k := ci - p.ActiveRadius; k <= ci+p.ActiveRadius; k++ {
					if !w.store.Has(k) {
						t.Fatalf("tick %d: chunk %d missing around %d", i, k, ci)
					}
				}
				for _, k := range w.store.Indices() {
					if core.Abs(k-ci) > p.ActiveRadius+1 {
						t.Fatalf("tick %d: chunk %d outside window around %d", i, k, ci)
					}
				}
			}
		}
		prevScore, prevHealth = w.Score(), w.Health()
	}
}

func TestEnemyKilledByOneBullet(t *testing.T) {
	w := flatWorld(t)
	h := addEnemy(w, stillEnemy(300, 300, 1))
	w.bullets = append(w.bullets, Bullet{Rect: core.NewRectF(290, 310, 10, 5), VX: 12})

	events := w.Step(Input{})

	if w.Score() != 5 {
		t.Errorf("Score = %d, want 5", w.Score())
	}
	if len(w.Bullets()) != 0 {
		t.Errorf("bullet should be consumed, %d left", len(w.Bullets()))
	}
	if w.store.Chunk(h.Chunk).EnemyCount() != 0 {
		t.Error("enemy should be removed")
	}
	if !hasEvent(events, EventEnemyKilled) {
		t.Error("missing EventEnemyKilled")
	}
	// 12 explosion sparks and one trail spark, all aged one tick.
	if n := w.Sparks().Count(); n != 13 {
		t.Errorf("sparks = %d, want 13", n)
	}
}

func TestEnemyWithHPSurvivesOneBullet(t *testing.T) {
	w := flatWorld(t)
	h := addEnemy(w, stillEnemy(300, 300, 3))
	w.bullets = append(w.bullets,
		Bullet{Rect: core.NewRectF(290, 310, 10, 5), VX: 12},
		Bullet{Rect: core.NewRectF(200, 310, 10, 5), VX: 12},
	)

	events := w.Step(Input{})

	if w.Score() != 0 {
		t.Errorf("Score = %d, want 0", w.Score())
	}
	if got := w.store.Chunk(h.Chunk).Enemies[h.Slot].HP; got != 2 {
		t.Errorf("HP = %d, want 2", got)
	}
	if len(w.Bullets()) != 1 {
		t.Errorf("only the hitting bullet should be consumed, %d left", len(w.Bullets()))
	}
	if !hasEvent(events, EventEnemyHit) || hasEvent(events, EventEnemyKilled) {
		t.Errorf("events = %v", events)
	}
}

func TestSpikeAtLastHealthResets(t *testing.T) {
	w := flatWorld(t)
	w.health = 1
	w.score = 7
	w.bullets = append(w.bullets, Bullet{Rect: core.NewRectF(600, 100, 10, 5), VX: 12})
	addSpike(w, core.NewRectF(100, 300, 30, 20))

	events := w.Step(Input{})

	if w.Health() != 3 || w.Score() != 0 {
		t.Errorf("after reset health=%d score=%d, want 3/0", w.Health(), w.Score())
	}
	if w.store.Len() != 0 {
		t.Errorf("chunks should be cleared, %d remain", w.store.Len())
	}
	if w.Scroll() != 0 || len(w.Bullets()) != 0 || w.Sparks().Count() != 0 {
		t.Errorf("reset left scroll=%v bullets=%d sparks=%d", w.Scroll(), len(w.Bullets()), w.Sparks().Count())
	}
	if pr := w.Player().Rect; pr.X != 100 || pr.Y != 300 {
		t.Errorf("player at (%v, %v), want spawn", pr.X, pr.Y)
	}

	i := slices.IndexFunc(events, func(e Event) bool { return e.Kind == EventReset })
	if i < 0 {
		t.Fatal("missing EventReset")
	}
	if events[i].Run.Score != 7 {
		t.Errorf("reset run score = %d, want 7", events[i].Run.Score)
	}

	// The next tick regenerates the window around spawn.
	w.Step(Input{})
	if w.store.Len() != 7 {
		t.Errorf("after next tick %d chunks loaded, want 7", w.store.Len())
	}
}

func TestEnemyContactRespawns(t *testing.T) {
	w := flatWorld(t)
	w.health = 2
	w.score = 4
	w.scroll = 1000
	w.player.Rect.X = 300
	addEnemy(w, stillEnemy(1290, 300, 2))
	indices := w.store.Indices()

	events := w.Step(Input{})

	if w.Health() != 1 {
		t.Errorf("Health = %d, want 1", w.Health())
	}
	if w.Score() != 4 {
		t.Errorf("Score = %d, want unchanged 4", w.Score())
	}
	if !slices.Equal(w.store.Indices(), indices) {
		t.Errorf("chunks changed on respawn: %v -> %v", indices, w.store.Indices())
	}
	if !hasEvent(events, EventRespawn) || hasEvent(events, EventReset) {
		t.Errorf("events = %v", events)
	}
	// The camera stays put and the player lands SpawnX right of it, clear
	// of the enemy at 1290.
	if w.Scroll() != 1000 {
		t.Errorf("Scroll = %v, want 1000", w.Scroll())
	}
	if got := w.PlayerWorldX(); got != 1100 {
		t.Errorf("PlayerWorldX = %v, want 1100", got)
	}
	p := w.Player()
	if p.Rect.X != 100 || p.Rect.Y != 300 || p.VY != 0 {
		t.Errorf("player = %+v, want spawn at rest", p)
	}
}

func TestSingleSpikeTouchCostsOneHealth(t *testing.T) {
	w := flatWorld(t)
	w.scroll = 1000
	w.player.Rect.X = 300
	addSpike(w, core.NewRectF(1295, 300, 30, 20))

	hits := 0
	for i := 0; i < 60; i++ {
		events := w.Step(Input{})
		for _, e := range events {
			switch e.Kind {
			case EventPlayerHit:
				hits++
			case EventReset:
				t.Fatalf("tick %d: run reset after one spike touch", i+1)
			}
		}
	}

	if hits != 1 {
		t.Errorf("player hit %d times, want 1", hits)
	}
	if w.Health() != 2 {
		t.Errorf("Health = %d, want 2", w.Health())
	}
	if got := w.PlayerWorldX(); got != 1100 {
		t.Errorf("PlayerWorldX = %v, want 1100 after idle ticks", got)
	}
}

func TestSpikeAndEnemySameTick(t *testing.T) {
	w := flatWorld(t)
	addSpike(w, core.NewRectF(100, 300, 30, 20))
	addEnemy(w, stillEnemy(110, 300, 1))

	w.Step(Input{})

	// Each hazard class hits at most once; both sit on the respawn point so
	// the enemy check still overlaps after the spike respawn.
	if w.Health() != 1 {
		t.Errorf("Health = %d, want 1", w.Health())
	}
}

func TestRespawnKeepsCamera(t *testing.T) {
	tests := []struct {
		name    string
		scroll  float64
		playerX float64
	}{
		{"at origin", 0, 40},
		{"scrolled", 750, 500},
		{"left of screen", 0, -300},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := flatWorld(t)
			w.scroll = tc.scroll
			w.player.Rect.X = tc.playerX
			w.Respawn()
			if w.Scroll() != tc.scroll {
				t.Errorf("Scroll = %v, want %v", w.Scroll(), tc.scroll)
			}
			if got := w.PlayerWorldX(); got != tc.scroll+100 {
				t.Errorf("PlayerWorldX = %v, want %v", got, tc.scroll+100)
			}
		})
	}
}

func TestGemCollected(t *testing.T) {
	w := flatWorld(t)
	addGem(w, core.NewRectF(110, 310, 12, 12))

	events := w.Step(Input{})
	if w.Score() != 2 {
		t.Errorf("Score = %d, want 2", w.Score())
	}
	if !hasEvent(events, EventGemCollected) {
		t.Error("missing EventGemCollected")
	}

	w.Step(Input{})
	if w.Score() != 2 {
		t.Errorf("gem counted twice, Score = %d", w.Score())
	}
}

func TestCameraDeadZone(t *testing.T) {
	w := flatWorld(t)
	for i := 0; i < 200; i++ {
		w.Step(Input{Right: true})
	}
	if w.Scroll() <= 0 {
		t.Fatal("camera should scroll when the player holds right")
	}
	if x := w.Player().Rect.X; x > 900*0.6 {
		t.Errorf("player screen x = %v, past the dead zone", x)
	}
	if got := w.PlayerWorldX(); got != 100+200*5 {
		t.Errorf("PlayerWorldX = %v, want %v", got, 100+200*5)
	}

	for i := 0; i < 400; i++ {
		w.Step(Input{Left: true})
	}
	if w.Scroll() != 0 {
		t.Errorf("Scroll = %v, want 0", w.Scroll())
	}
	// With the camera at zero the player keeps walking into negative X.
	if got := w.PlayerWorldX(); got != 1100-400*5 {
		t.Errorf("PlayerWorldX = %v, want %v", got, 1100-400*5)
	}
	if w.Player().Rect.X != w.PlayerWorldX() {
		t.Errorf("player screen x = %v, want world x with zero scroll", w.Player().Rect.X)
	}
}

func TestJumpOnlyWhenGrounded(t *testing.T) {
	p := DefaultParams()
	w := flatWorld(t)

	w.Step(Input{Jump: true})
	if w.Player().VY != p.Gravity {
		t.Fatalf("airborne jump applied: VY = %v", w.Player().VY)
	}

	for i := 0; i < 120 && !w.Player().OnGround; i++ {
		w.Step(Input{})
	}
	if !w.Player().OnGround {
		t.Fatal("player never landed")
	}
	if y := w.Player().Rect.Y; y != groundY-p.PlayerH {
		t.Errorf("landed at y=%v, want %v", y, groundY-p.PlayerH)
	}

	w.Step(Input{Jump: true})
	if vy := w.Player().VY; vy != p.JumpImpulse+p.Gravity {
		t.Errorf("VY after jump = %v, want %v", vy, p.JumpImpulse+p.Gravity)
	}
}

func TestPlatformsSolidFromAboveOnly(t *testing.T) {
	w := flatWorld(t)
	c := w.store.Chunk(0)
	c.Platforms = append(c.Platforms, Platform{Rect: core.NewRectF(80, 340, 100, 20)})

	w.player.Rect.Y = 345
	w.player.VY = -5
	w.Step(Input{})
	if w.Player().OnGround {
		t.Error("rising player should pass through the platform")
	}

	w.player.Rect.Y = 285
	w.player.VY = 5
	w.Step(Input{})
	if !w.Player().OnGround || w.Player().Rect.Y != 290 {
		t.Errorf("falling player should land on top: %+v", w.Player())
	}
}

func TestShotCooldown(t *testing.T) {
	w := flatWorld(t)
	steps := []struct {
		now  int64
		want int
	}{
		{0, 0},
		{251, 1},
		{400, 1},
		{502, 2},
		{752, 2},
		{753, 3},
	}
	for _, s := range steps {
		w.Step(Input{Shoot: true, NowMs: s.now})
		if got := len(w.Bullets()); got != s.want {
			t.Errorf("at %dms: %d bullets, want %d", s.now, got, s.want)
		}
	}
	b := w.Bullets()[0]
	if b.VX != 12 || b.Rect.W != 10 || b.Rect.H != 5 {
		t.Errorf("bullet = %+v", b)
	}
}

func TestBulletCulledFarFromPlayer(t *testing.T) {
	w := flatWorld(t)
	limit := w.params.bulletRange()
	pwx := w.PlayerWorldX()
	w.bullets = append(w.bullets,
		Bullet{Rect: core.NewRectF(pwx+limit-5, 100, 10, 5), VX: 12},
		Bullet{Rect: core.NewRectF(pwx+limit-20, 100, 10, 5), VX: 12},
	)

	w.Step(Input{})
	if len(w.Bullets()) != 1 || w.Bullets()[0].Rect.X != pwx+limit-8 {
		t.Errorf("bullets = %+v", w.Bullets())
	}
}

func TestTrailSparksCapped(t *testing.T) {
	p := DefaultParams()
	w := flatWorld(t)
	for i := 0; i < 600; i++ {
		w.bullets = append(w.bullets, Bullet{Rect: core.NewRectF(1000, 50, 10, 5), VX: 12})
	}
	w.Step(Input{})
	// 400 trails were laid, then aged by one tick.
	if n := w.Sparks().Count(); n != p.TrailCap {
		t.Errorf("sparks = %d, want %d", n, p.TrailCap)
	}
}

func TestMovingPlatformOvershootsThenFlips(t *testing.T) {
	w := flatWorld(t)
	mp := &MovingPlatform{Rect: core.NewRectF(500, 200, 100, 16), Dir: 1, RangeMin: 400, RangeMax: 501, Speed: 1}
	w.store.Chunk(0).Moving = append(w.store.Chunk(0).Moving, mp)

	w.Step(Input{})
	if mp.Rect.X != 501 || mp.Dir != 1 {
		t.Fatalf("tick 1: x=%v dir=%v", mp.Rect.X, mp.Dir)
	}
	w.Step(Input{})
	if mp.Rect.X != 502 || mp.Dir != -1 {
		t.Fatalf("tick 2: x=%v dir=%v, want overshoot then flip", mp.Rect.X, mp.Dir)
	}
	w.Step(Input{})
	if mp.Rect.X != 501 {
		t.Errorf("tick 3: x=%v, want 501", mp.Rect.X)
	}
}

func TestEnemyPatrolAndChase(t *testing.T) {
	w := flatWorld(t)
	patrol := stillEnemy(1000, 420, 1)
	patrol.Speed = 2
	patrol.PatrolMax = 1001
	ph := addEnemy(w, patrol)

	chaser := stillEnemy(250, 420, 1)
	chaser.Speed = 1.5
	chaser.Aggressive = true
	ch := addEnemy(w, chaser)

	w.Step(Input{})

	p := w.store.Chunk(ph.Chunk).Enemies[ph.Slot]
	if p.Rect.X != 1002 || p.Speed != -2 {
		t.Errorf("patroller x=%v speed=%v, want 1002/-2", p.Rect.X, p.Speed)
	}
	c := w.store.Chunk(ch.Chunk).Enemies[ch.Slot]
	if c.Rect.X != 248.5 {
		t.Errorf("chaser x=%v, want 248.5", c.Rect.X)
	}
	if c.Speed != 1.5 {
		t.Errorf("chasing must not write speed, got %v", c.Speed)
	}
}

func TestResetEventCarriesRunSummary(t *testing.T) {
	w := flatWorld(t)
	for i := 0; i < 10; i++ {
		w.Step(Input{Right: true})
	}
	w.score = 9
	w.stats.kills = 2
	w.Reset()

	events := w.events
	if len(events) == 0 || events[len(events)-1].Kind != EventReset {
		t.Fatalf("events = %v", events)
	}
	run := events[len(events)-1].Run
	if run.Score != 9 || run.EnemiesKilled != 2 || run.MaxWorldX != 150 || run.Ticks != 10 {
		t.Errorf("run = %+v", run)
	}
	if s := w.Summary(); s.Score != 0 || s.Ticks != 0 || s.EnemiesKilled != 0 {
		t.Errorf("summary after reset = %+v", s)
	}
}

func TestRestartInput(t *testing.T) {
	w := flatWorld(t)
	w.score = 3
	w.health = 2

	events := w.Step(Input{Restart: true, Right: true})
	if len(events) != 1 || events[0].Kind != EventReset {
		t.Fatalf("events = %v, want a single reset", events)
	}
	if events[0].Run.Score != 3 {
		t.Errorf("run score = %d, want 3", events[0].Run.Score)
	}
	if w.Health() != 3 || w.Score() != 0 || w.PlayerWorldX() != 100 {
		t.Errorf("after restart health=%d score=%d x=%v", w.Health(), w.Score(), w.PlayerWorldX())
	}
}
