package world

// Chunk is one CHUNK_WIDTH-wide slice of the world. Enemy and gem slots are
// tombstoned (set to nil) on removal so handles stay valid for the life of
// the chunk.
type Chunk struct {
	Index     int
	Platforms []Platform
	Moving    []*MovingPlatform
	Spikes    []Spike
	Gems      []*Gem
	Enemies   []*Enemy

	load uint64
}

// Clone returns a deep copy sharing no pointers with c.
func (c *Chunk) Clone() *Chunk {
	out := &Chunk{
		Index:     c.Index,
		Platforms: append([]Platform(nil), c.Platforms...),
		Spikes:    append([]Spike(nil), c.Spikes...),
		Moving:    make([]*MovingPlatform, len(c.Moving)),
		Gems:      make([]*Gem, len(c.Gems)),
		Enemies:   make([]*Enemy, len(c.Enemies)),
		load:      c.load,
	}
	for i, mp := range c.Moving {
		cp := *mp
		out.Moving[i] = &cp
	}
	for i, g := range c.Gems {
		if g != nil {
			cp := *g
			out.Gems[i] = &cp
		}
	}
	for i, e := range c.Enemies {
		if e != nil {
			cp := *e
			out.Enemies[i] = &cp
		}
	}
	return out
}

// EnemyCount returns the number of enemies still alive in the chunk.
func (c *Chunk) EnemyCount() int {
	n := 0
	for _, e := range c.Enemies {
		if e != nil {
			n++
		}
	}
	return n
}

// GemCount returns the number of gems not yet collected.
func (c *Chunk) GemCount() int {
	n := 0
	for _, g := range c.Gems {
		if g != nil {
			n++
		}
	}
	return n
}

// removeEnemy tombstones a slot. Reports whether anything was removed.
func (c *Chunk) removeEnemy(slot int) bool {
	if slot < 0 || slot >= len(c.Enemies) || c.Enemies[slot] == nil {
		return false
	}
	c.Enemies[slot] = nil
	return true
}

// removeGem tombstones a slot. Reports whether anything was removed.
func (c *Chunk) removeGem(slot int) bool {
	if slot < 0 || slot >= len(c.Gems) || c.Gems[slot] == nil {
		return false
	}
	c.Gems[slot] = nil
	return true
}
