package sim

import "github.com/vovakirdan/tui-dungeon/internal/core"

// fullWeaponHealth is the durability of a freshly picked up weapon.
const fullWeaponHealth = 100

var dropTable = []Weighted[Drop]{
	{Option: Drop{Weapon: WeaponBigGun}, Weight: 3},
	{Option: Drop{Weapon: WeaponUzi}, Weight: 3},
	{Option: Drop{Weapon: WeaponShotgun}, Weight: 2},
	{Option: Drop{Weapon: WeaponGlock}, Weight: 2},
	{Option: Drop{Trinket: TrinketThorns}, Weight: 1},
	{Option: Drop{Trinket: TrinketBus}, Weight: 1},
	{Option: Drop{Trinket: TrinketSwamp}, Weight: 1},
	{Option: Drop{Trinket: TrinketBoom}, Weight: 1},
}

// RandomDrop rolls the loot left at pos.
func RandomDrop(ctx *Context, pos core.Vec2) Drop {
	d, _ := WeightedPick(ctx.Rand, dropTable)
	d.Pos = pos
	return d
}

// starterDrops are the weapons laid out in the starting room.
func starterDrops(t Tuning) []Drop {
	weapons := []WeaponType{WeaponBigGun, WeaponShotgun, WeaponUzi}
	out := make([]Drop, len(weapons))
	for i, w := range weapons {
		out[i] = Drop{
			Pos:    core.V(t.ArenaWidth/2+float64(i-1)*t.TileSize*3, t.ArenaHeight/2),
			Weapon: w,
		}
	}
	return out
}

// pickUp applies a drop to the player. Trinkets only become active on the
// next room transition.
func pickUp(p PlayerState, d Drop) PlayerState {
	if d.Weapon != WeaponNone {
		p.Weapon = d.Weapon
		p.WeaponHealth = fullWeaponHealth
	}
	if d.Trinket != TrinketNone && !p.HasTrinket(d.Trinket) {
		p.PendingTrinket = d.Trinket
	}
	return p
}

// collectDrops picks up the first drop under the player.
func collectDrops(t Tuning, p PlayerState, drops []Drop) (PlayerState, []Drop) {
	for i, d := range drops {
		if core.SquareCollision(p.Pos, d.Pos, t.TileSize) {
			rest := make([]Drop, 0, len(drops)-1)
			rest = append(rest, drops[:i]...)
			rest = append(rest, drops[i+1:]...)
			return pickUp(p, d), rest
		}
	}
	return p, drops
}

// ageHazards advances caltrop and tombstone lifetimes and drops expired ones.
func ageHazards(t Tuning, caltrops []Caltrop, tombstones []Tombstone, dt float64) ([]Caltrop, []Tombstone) {
	cs := make([]Caltrop, 0, len(caltrops))
	for _, c := range caltrops {
		c.Age += dt
		if c.Age < t.CaltropLifetime {
			cs = append(cs, c)
		}
	}
	ts := make([]Tombstone, 0, len(tombstones))
	for _, s := range tombstones {
		s.Age += dt
		if s.Age < t.TombstoneLifetime {
			ts = append(ts, s)
		}
	}
	return cs, ts
}
