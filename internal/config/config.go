// Package config provides YAML-based configuration loading for the
// platformer: world streaming, physics, player, combat and view settings.
package config

// PlatformerConfig contains all configuration for the chunk-streamed platformer.
type PlatformerConfig struct {
	World   WorldConfig   `yaml:"world"`
	View    ViewConfig    `yaml:"view"`
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Combat  CombatConfig  `yaml:"combat"`
	Enemies EnemyConfig   `yaml:"enemies"`
	Camera  CameraConfig  `yaml:"camera"`
}

// WorldConfig defines chunk streaming parameters.
type WorldConfig struct {
	Seed         int64 `yaml:"seed"`          // Base seed; chunk i uses seed+i
	ChunkWidth   int   `yaml:"chunk_width"`   // World units per chunk
	ActiveRadius int   `yaml:"active_radius"` // Chunks kept on each side of the player
	CacheSize    int   `yaml:"cache_size"`    // Pristine chunk templates to cache (0 = off)
}

// ViewConfig defines the logical view the world is simulated against.
// The terminal renderer scales this view onto whatever size it has.
type ViewConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PhysicsConfig defines player physics.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	MoveSpeed   float64 `yaml:"move_speed"`
	JumpImpulse float64 `yaml:"jump_impulse"`
}

// PlayerConfig defines the player body and spawn point (screen space).
type PlayerConfig struct {
	SpawnX    float64 `yaml:"spawn_x"`
	SpawnY    float64 `yaml:"spawn_y"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	MaxHealth int     `yaml:"max_health"`
}

// CombatConfig defines bullets and spark particles.
type CombatConfig struct {
	BulletSpeed      float64 `yaml:"bullet_speed"`
	BulletWidth      float64 `yaml:"bullet_width"`
	BulletHeight     float64 `yaml:"bullet_height"`
	ShotCooldownMs   int64   `yaml:"shot_cooldown_ms"`
	TrailLifetime    int     `yaml:"trail_lifetime"`
	TrailCap         int     `yaml:"trail_cap"`
	SparkCap         int     `yaml:"spark_cap"`
	ExplosionSparks  int     `yaml:"explosion_sparks"`
	ExplosionJitter  int     `yaml:"explosion_jitter"`
	ExplosionLifeMin int     `yaml:"explosion_life_min"`
	ExplosionLifeMax int     `yaml:"explosion_life_max"`
	GemPoints        int     `yaml:"gem_points"`
	KillPoints       int     `yaml:"kill_points"`
}

// EnemyConfig defines enemy behaviour.
type EnemyConfig struct {
	DetectRange float64 `yaml:"detect_range"` // Aggressive enemies chase inside this distance
}

// CameraConfig defines the dead-zone scroll policy as fractions of view width.
type CameraConfig struct {
	ScrollRight float64 `yaml:"scroll_right"`
	ScrollLeft  float64 `yaml:"scroll_left"`
}
