// Package config provides YAML-based game configuration loading and
// difficulty management for the dungeon.
package config

// DungeonConfig contains all configuration for the dungeon game.
type DungeonConfig struct {
	Arena      DungeonArena            `yaml:"arena"`
	Player     DungeonPlayer           `yaml:"player"`
	Weapons    DungeonWeapons          `yaml:"weapons"`
	Timers     DungeonTimers           `yaml:"timers"`
	Gameplay   DungeonGameplay         `yaml:"gameplay"`
	Enemies    map[string]DungeonEnemy `yaml:"enemies"`
	Levels     []DungeonLevel          `yaml:"levels"`
	Difficulty DifficultyConfig        `yaml:"difficulty"`
}

// DungeonArena defines the playfield in tiles.
type DungeonArena struct {
	TileSize float64 `yaml:"tile_size"` // Pixels per tile
	Cols     int     `yaml:"cols"`
	Rows     int     `yaml:"rows"`
}

// DungeonPlayer defines player parameters.
type DungeonPlayer struct {
	Speed        float64 `yaml:"speed"` // Pixels per second
	MaxHealth    int     `yaml:"max_health"`
	HitDamage    int     `yaml:"hit_damage"`
	HurtCooldown float64 `yaml:"hurt_cooldown"` // Seconds
	StartX       float64 `yaml:"start_x"`
	StartY       float64 `yaml:"start_y"`
}

// DungeonWeapons defines bullet and weapon parameters.
type DungeonWeapons struct {
	BulletSpeed     float64 `yaml:"bullet_speed"`
	ShotgunDamage   float64 `yaml:"shotgun_damage"`
	ShotgunDecay    float64 `yaml:"shotgun_decay"`
	ShotgunMinSpeed float64 `yaml:"shotgun_min_speed"` // Tiles per second
	Wear            int     `yaml:"wear"`              // Durability lost per shot
}

// DungeonTimers defines scheduled delays in seconds.
type DungeonTimers struct {
	RoomStart         float64 `yaml:"room_start"`
	FirstDecisionMax  float64 `yaml:"first_decision_max"`
	RapidFire         float64 `yaml:"rapid_fire"`
	Rocket            float64 `yaml:"rocket"`
	RhinoCharge       float64 `yaml:"rhino_charge"`
	EnemyHurtFlash    float64 `yaml:"enemy_hurt_flash"`
	TombstoneLifetime float64 `yaml:"tombstone_lifetime"`
	CaltropLifetime   float64 `yaml:"caltrop_lifetime"`
}

// DungeonGameplay defines progression and input parameters.
type DungeonGameplay struct {
	RoomsPerLevel int     `yaml:"rooms_per_level"`
	BusHealthGain int     `yaml:"bus_health_gain"`
	DoorReach     float64 `yaml:"door_reach"` // Tiles
	ContactGrow   float64 `yaml:"contact_grow"`
	HoldTicks     int     `yaml:"hold_ticks"` // Ticks a key stays held after its last repeat
	SafeRadius    float64 `yaml:"safe_radius"`
}

// DungeonEnemy defines per-type enemy parameters.
type DungeonEnemy struct {
	Health int `yaml:"health"`
	Cost   int `yaml:"cost"`
}

// DungeonLevel describes one level.
type DungeonLevel struct {
	Name    string   `yaml:"name"`
	Walls   string   `yaml:"walls"`
	Enemies []string `yaml:"enemies"`
	Budgets []int    `yaml:"budgets"`
	DoorX   float64  `yaml:"door_x"` // Zero means bottom centre
	DoorY   float64  `yaml:"door_y"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "rooms", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Rooms/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	BudgetMultiplier float64 `yaml:"budget_multiplier"` // Added to spawn budgets at max difficulty
	DamageMultiplier float64 `yaml:"damage_multiplier"` // Added to hit damage at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
