package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDungeon loads dungeon configuration.
// Search order: customPath -> ~/.dungeon/configs/dungeon.yaml -> ./configs/dungeon.yaml -> embedded default
// Files only need to set the keys they change; everything else keeps its default.
func LoadDungeon(customPath string) (DungeonConfig, error) {
	cfg := DefaultDungeonConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("dungeon.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
			cfg = DefaultDungeonConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/dungeon.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
		cfg = DefaultDungeonConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultDungeonYAML, &cfg); err != nil {
		return DefaultDungeonConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dungeon", "configs", filename)
}

// Validate reports settings the game cannot run with.
func (c DungeonConfig) Validate() error {
	switch {
	case c.Arena.TileSize <= 0:
		return fmt.Errorf("config: arena.tile_size must be positive, got %v", c.Arena.TileSize)
	case c.Arena.Cols < 5 || c.Arena.Rows < 5:
		return fmt.Errorf("config: arena must be at least 5x5 tiles, got %dx%d", c.Arena.Cols, c.Arena.Rows)
	case c.Player.MaxHealth <= 0:
		return fmt.Errorf("config: player.max_health must be positive, got %d", c.Player.MaxHealth)
	case c.Gameplay.RoomsPerLevel <= 0:
		return fmt.Errorf("config: gameplay.rooms_per_level must be positive, got %d", c.Gameplay.RoomsPerLevel)
	case len(c.Levels) == 0:
		return fmt.Errorf("config: at least one level is required")
	}
	for i, lvl := range c.Levels {
		if len(lvl.Enemies) == 0 {
			return fmt.Errorf("config: level %d (%s) lists no enemies", i+1, lvl.Name)
		}
	}
	return nil
}

// ApplyDungeonPreset modifies the config based on a difficulty preset.
func ApplyDungeonPreset(cfg *DungeonConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.HitDamage = 20
		cfg.Player.HurtCooldown = 0.5
	case DifficultyHard:
		cfg.Player.HitDamage = 34
		cfg.Player.HurtCooldown = 0.2
	}
}
