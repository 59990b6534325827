package sim

import "github.com/vovakirdan/tui-dungeon/internal/core"

// Tuning holds every gameplay constant. The zero value is not usable;
// start from DefaultTuning.
type Tuning struct {
	TileSize    float64 // Footprint side of every body, in pixels
	ArenaWidth  float64
	ArenaHeight float64
	PlayerStart core.Vec2

	PlayerSpeed     float64
	BulletSpeed     float64
	PlayerMaxHealth int
	PlayerHitDamage int

	PlayerHurtCooldown float64
	EnemyHurtFlash     float64
	RoomStartDelay     float64
	FirstDecisionMax   float64 // Upper bound of the first decision delay after room start
	RapidFirePeriod    float64
	RocketPeriod       float64
	RhinoChargeTime    float64

	RoomsPerLevel int
	WeaponWear    int
	ShotgunDamage float64
	ShotgunDecay  float64 // Fraction of speed lost per second
	ShotgunMinSpd float64 // Bullets slower than this many tiles per second vanish
	ContactGrow   float64 // Extra pixels added to enemy footprint for contact damage
	DoorReach     float64 // Door counts as reached within this many tiles

	TombstoneLifetime float64
	CaltropLifetime   float64
	BusHealthGain     int

	EnemyHealth map[EnemyType]int
}

// DefaultTuning returns the stock gameplay constants.
func DefaultTuning() Tuning {
	const tile = 24
	return Tuning{
		TileSize:    tile,
		ArenaWidth:  27 * tile,
		ArenaHeight: 15 * tile,
		PlayerStart: core.V(27*tile/2, tile*1.5),

		PlayerSpeed:     80,
		BulletSpeed:     120,
		PlayerMaxHealth: 100,
		PlayerHitDamage: 25,

		PlayerHurtCooldown: 0.25,
		EnemyHurtFlash:     0.125,
		RoomStartDelay:     1,
		FirstDecisionMax:   4,
		RapidFirePeriod:    0.4,
		RocketPeriod:       1,
		RhinoChargeTime:    1,

		RoomsPerLevel: 5,
		WeaponWear:    4,
		ShotgunDamage: 0.75,
		ShotgunDecay:  4,
		ShotgunMinSpd: 3,
		ContactGrow:   1,
		DoorReach:     2,

		TombstoneLifetime: 5,
		CaltropLifetime:   8,
		BusHealthGain:     2,

		EnemyHealth: defaultEnemyHealth(),
	}
}

func defaultEnemyHealth() map[EnemyType]int {
	return map[EnemyType]int{
		EnemySlime:     5,
		EnemyFastSlime: 5,
		EnemyTurret:    8,
		EnemyImp:       7,
		EnemyRhino:     4,
	}
}

// HealthOf returns the starting health of an enemy type.
func (t Tuning) HealthOf(e EnemyType) int {
	if h, ok := t.EnemyHealth[e]; ok && h > 0 {
		return h
	}
	return defaultEnemyHealth()[e]
}

// DoorPosition is where the exit appears when the level does not override it:
// bottom-centre of the arena, on the boundary row.
func (t Tuning) DoorPosition() core.Vec2 {
	return core.V(t.ArenaWidth/2, t.ArenaHeight-t.TileSize/2)
}

// InArena reports whether p lies inside the arena bounds.
func (t Tuning) InArena(p core.Vec2) bool {
	return p.X >= 0 && p.X <= t.ArenaWidth && p.Y >= 0 && p.Y <= t.ArenaHeight
}
