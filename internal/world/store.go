package world

import (
	"iter"
	"math"
	"slices"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// TemplateKey identifies a generated chunk: Generate is a pure function of
// these three values.
type TemplateKey struct {
	Seed  int64
	Index int
	Width int
}

// TemplateCache keeps pristine generated chunks so a chunk that is evicted
// and later reloaded can skip generation. The store clones on both Set and
// Get; implementations may hand out the stored pointer.
type TemplateCache interface {
	Get(k TemplateKey) (*Chunk, bool)
	Set(k TemplateKey, c *Chunk)
}

// Store owns the active chunks and keeps them centred on the player.
type Store struct {
	seed   int64
	params Params

	chunks map[int]*Chunk
	order  []int // loaded indices, ascending

	loads     uint64
	generated int

	cache  TemplateCache
	logger Logger
}

// NewStore creates an empty store. Nothing is generated until Refresh.
func NewStore(seed int64, p Params) *Store {
	return &Store{
		seed:   seed,
		params: p,
		chunks: make(map[int]*Chunk),
		logger: nopLogger{},
	}
}

// SetCache installs a template cache. Pass nil to disable.
func (s *Store) SetCache(c TemplateCache) {
	s.cache = c
}

// SetLogger installs a logger for load/evict lines.
func (s *Store) SetLogger(l Logger) {
	if l == nil {
		l = nopLogger{}
	}
	s.logger = l
}

// Seed returns the world seed chunks are generated from.
func (s *Store) Seed() int64 {
	return s.seed
}

// ChunkIndex maps a world X position to its chunk index.
func (s *Store) ChunkIndex(worldX float64) int {
	return int(math.Floor(worldX / float64(s.params.ChunkWidth)))
}

// Refresh loads every missing chunk within ActiveRadius of the player's
// chunk and evicts chunks further than ActiveRadius+1. Chunks in the band
// between are kept so walking back and forth across a boundary does not
// thrash. Calling it twice with the same position changes nothing.
func (s *Store) Refresh(playerWorldX float64) (loaded, evicted []int) {
	ci := s.ChunkIndex(playerWorldX)
	r := s.params.ActiveRadius

	for i := ci - r; i <= ci+r; i++ {
		if _, ok := s.chunks[i]; ok {
			continue
		}
		s.chunks[i] = s.load(i)
		loaded = append(loaded, i)
	}

	for _, i := range s.order {
		if core.Abs(i-ci) > r+1 {
			delete(s.chunks, i)
			evicted = append(evicted, i)
		}
	}

	if len(loaded) > 0 || len(evicted) > 0 {
		s.reindex()
		s.logger.Debug("chunks refreshed", "center", ci, "loaded", loaded, "evicted", evicted, "active", len(s.order))
	}
	return loaded, evicted
}

func (s *Store) load(ci int) *Chunk {
	s.loads++
	k := TemplateKey{Seed: s.seed, Index: ci, Width: s.params.ChunkWidth}
	if s.cache != nil {
		if tpl, ok := s.cache.Get(k); ok && tpl != nil {
			c := tpl.Clone()
			c.load = s.loads
			return c
		}
	}
	c := Generate(s.seed, ci, s.params)
	s.generated++
	if s.cache != nil {
		s.cache.Set(k, c.Clone())
	}
	c.load = s.loads
	return c
}

func (s *Store) reindex() {
	s.order = s.order[:0]
	for i := range s.chunks {
		s.order = append(s.order, i)
	}
	slices.Sort(s.order)
}

// Clear drops every chunk. The next Refresh regenerates from scratch.
func (s *Store) Clear() {
	clear(s.chunks)
	s.order = s.order[:0]
}

// Len returns the number of loaded chunks.
func (s *Store) Len() int {
	return len(s.chunks)
}

// Has reports whether chunk ci is loaded.
func (s *Store) Has(ci int) bool {
	_, ok := s.chunks[ci]
	return ok
}

// Chunk returns the loaded chunk ci, or nil.
func (s *Store) Chunk(ci int) *Chunk {
	return s.chunks[ci]
}

// Indices returns the loaded chunk indices in ascending order.
func (s *Store) Indices() []int {
	return slices.Clone(s.order)
}

// Generated returns how many times the generator has run.
func (s *Store) Generated() int {
	return s.generated
}

// Platforms yields every solid rectangle: static platforms first, then
// moving platforms, chunk by chunk in ascending index.
func (s *Store) Platforms() iter.Seq[core.RectF] {
	return func(yield func(core.RectF) bool) {
		for _, i := range s.order {
			c := s.chunks[i]
			for _, p := range c.Platforms {
				if !yield(p.Rect) {
					return
				}
			}
			for _, mp := range c.Moving {
				if !yield(mp.Rect) {
					return
				}
			}
		}
	}
}

// StaticPlatforms yields only the static platforms.
func (s *Store) StaticPlatforms() iter.Seq[Platform] {
	return func(yield func(Platform) bool) {
		for _, i := range s.order {
			for _, p := range s.chunks[i].Platforms {
				if !yield(p) {
					return
				}
			}
		}
	}
}

// MovingPlatforms yields the live moving platforms for in-place update.
func (s *Store) MovingPlatforms() iter.Seq[*MovingPlatform] {
	return func(yield func(*MovingPlatform) bool) {
		for _, i := range s.order {
			for _, mp := range s.chunks[i].Moving {
				if !yield(mp) {
					return
				}
			}
		}
	}
}

// Spikes yields every spike.
func (s *Store) Spikes() iter.Seq[Spike] {
	return func(yield func(Spike) bool) {
		for _, i := range s.order {
			for _, sp := range s.chunks[i].Spikes {
				if !yield(sp) {
					return
				}
			}
		}
	}
}

// Gems yields every uncollected gem with its handle.
func (s *Store) Gems() iter.Seq2[GemHandle, *Gem] {
	return func(yield func(GemHandle, *Gem) bool) {
		for _, i := range s.order {
			c := s.chunks[i]
			for slot, g := range c.Gems {
				if g == nil {
					continue
				}
				if !yield(GemHandle{Chunk: i, Load: c.load, Slot: slot}, g) {
					return
				}
			}
		}
	}
}

// Enemies yields every live enemy with its handle.
func (s *Store) Enemies() iter.Seq2[EnemyHandle, *Enemy] {
	return func(yield func(EnemyHandle, *Enemy) bool) {
		for _, i := range s.order {
			c := s.chunks[i]
			for slot, e := range c.Enemies {
				if e == nil {
					continue
				}
				if !yield(EnemyHandle{Chunk: i, Load: c.load, Slot: slot}, e) {
					return
				}
			}
		}
	}
}

// EnemyRefs snapshots the live enemies so callers can remove while scanning.
func (s *Store) EnemyRefs() []EnemyRef {
	var out []EnemyRef
	for h, e := range s.Enemies() {
		out = append(out, EnemyRef{Handle: h, Enemy: e})
	}
	return out
}

// GemRefs snapshots the uncollected gems.
func (s *Store) GemRefs() []GemRef {
	var out []GemRef
	for h, g := range s.Gems() {
		out = append(out, GemRef{Handle: h, Gem: g})
	}
	return out
}

// RemoveEnemy deletes the addressed enemy. Removing an enemy that is
// already gone, or whose chunk was evicted, is a no-op.
func (s *Store) RemoveEnemy(h EnemyHandle) bool {
	c, ok := s.chunks[h.Chunk]
	if !ok || c.load != h.Load {
		return false
	}
	return c.removeEnemy(h.Slot)
}

// RemoveGem deletes the addressed gem; same no-op rules as RemoveEnemy.
func (s *Store) RemoveGem(h GemHandle) bool {
	c, ok := s.chunks[h.Chunk]
	if !ok || c.load != h.Load {
		return false
	}
	return c.removeGem(h.Slot)
}
