package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		World: WorldConfig{
			Seed:         12345,
			ChunkWidth:   1600,
			ActiveRadius: 3,
			CacheSize:    64,
		},
		View: ViewConfig{
			Width:  900,
			Height: 500,
		},
		Physics: PhysicsConfig{
			Gravity:     0.6,
			MoveSpeed:   5,
			JumpImpulse: -12,
		},
		Player: PlayerConfig{
			SpawnX:    100,
			SpawnY:    300,
			Width:     40,
			Height:    50,
			MaxHealth: 3,
		},
		Combat: CombatConfig{
			BulletSpeed:      12,
			BulletWidth:      10,
			BulletHeight:     5,
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
		},
		Enemies: EnemyConfig{
			DetectRange: 220,
		},
		Camera: CameraConfig{
			ScrollRight: 0.6,
			ScrollLeft:  0.3,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultPlatformerYAML
}
