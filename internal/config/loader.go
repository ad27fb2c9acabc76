package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the platformer configuration.
// Search order: customPath -> ~/.arcade/configs/platformer.yaml -> ./configs/platformer.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a file only needs the keys it changes.
func Load(customPath string) (PlatformerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultPlatformerConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultPlatformerConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("platformer.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/platformer.yaml"); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultPlatformerYAML)
	if err != nil {
		return DefaultPlatformerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (PlatformerConfig, error) {
	cfg := DefaultPlatformerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that the configuration describes a playable world.
func (c PlatformerConfig) Validate() error {
	var errs []error

	if c.World.ChunkWidth <= 0 {
		errs = append(errs, fmt.Errorf("world.chunk_width must be positive, got %d", c.World.ChunkWidth))
	}
	if c.World.ActiveRadius < 0 {
		errs = append(errs, fmt.Errorf("world.active_radius must not be negative, got %d", c.World.ActiveRadius))
	}
	if c.World.CacheSize < 0 {
		errs = append(errs, fmt.Errorf("world.cache_size must not be negative, got %d", c.World.CacheSize))
	}
	// The generator places content up to 200 units from the chunk's right edge.
	if c.World.ChunkWidth > 0 && c.World.ChunkWidth < 250 {
		errs = append(errs, fmt.Errorf("world.chunk_width must be at least 250, got %d", c.World.ChunkWidth))
	}
	if c.View.Width <= 0 || c.View.Height <= 0 {
		errs = append(errs, fmt.Errorf("view size must be positive, got %dx%d", c.View.Width, c.View.Height))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Player.MaxHealth <= 0 {
		errs = append(errs, fmt.Errorf("player.max_health must be positive, got %d", c.Player.MaxHealth))
	}
	if c.Combat.TrailCap < 0 || c.Combat.SparkCap < c.Combat.TrailCap {
		errs = append(errs, fmt.Errorf("combat caps must satisfy 0 <= trail_cap (%d) <= spark_cap (%d)",
			c.Combat.TrailCap, c.Combat.SparkCap))
	}
	if c.Combat.ExplosionLifeMin <= 0 || c.Combat.ExplosionLifeMax < c.Combat.ExplosionLifeMin {
		errs = append(errs, fmt.Errorf("combat explosion lifetime range [%d, %d] is invalid",
			c.Combat.ExplosionLifeMin, c.Combat.ExplosionLifeMax))
	}
	if c.Combat.ExplosionJitter < 0 {
		errs = append(errs, fmt.Errorf("combat.explosion_jitter must not be negative, got %d", c.Combat.ExplosionJitter))
	}
	if c.Camera.ScrollLeft < 0 || c.Camera.ScrollRight > 1 || c.Camera.ScrollLeft >= c.Camera.ScrollRight {
		errs = append(errs, fmt.Errorf("camera dead zone [%.2f, %.2f] is invalid", c.Camera.ScrollLeft, c.Camera.ScrollRight))
	}

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
