package world

// Params holds every tunable the simulation reads. Units are world units
// (pixels of the logical view) and ticks.
type Params struct {
	ChunkWidth   int
	ActiveRadius int

	ViewWidth  float64
	ViewHeight float64

	Gravity     float64
	MoveSpeed   float64
	JumpImpulse float64

	SpawnX    float64
	SpawnY    float64
	PlayerW   float64
	PlayerH   float64
	MaxHealth int

	BulletSpeed    float64
	BulletW        float64
	BulletH        float64
	ShotCooldownMs int64

	TrailLifetime    int
	TrailCap         int
	SparkCap         int
	ExplosionSparks  int
	ExplosionJitter  int
	ExplosionLifeMin int
	ExplosionLifeMax int

	GemPoints  int
	KillPoints int

	DetectRange float64

	ScrollRight float64
	ScrollLeft  float64
}

// DefaultParams returns the stock tuning: a 900x500 view, 1600-unit chunks
// and three chunks of radius.
func DefaultParams() Params {
	return Params{
		ChunkWidth:       1600,
		ActiveRadius:     3,
		ViewWidth:        900,
		ViewHeight:       500,
		Gravity:          0.6,
		MoveSpeed:        5,
		JumpImpulse:      -12,
		SpawnX:           100,
		SpawnY:           300,
		PlayerW:          40,
		PlayerH:          50,
		MaxHealth:        3,
		BulletSpeed:      12,
		BulletW:          10,
		BulletH:          5,
		ShotCooldownMs:   250,
		TrailLifetime:    7,
		TrailCap:         400,
		SparkCap:         800,
		ExplosionSparks:  12,
		ExplosionJitter:  12,
		ExplosionLifeMin: 6,
		ExplosionLifeMax: 15,
		GemPoints:        2,
		KillPoints:       5,
		DetectRange:      220,
		ScrollRight:      0.6,
		ScrollLeft:       0.3,
	}
}

// bulletRange is how far a bullet may travel from the player before it is
// discarded: two chunks past the loaded window.
func (p Params) bulletRange() float64 {
	return float64(p.ChunkWidth * (p.ActiveRadius + 2))
}
