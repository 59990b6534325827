package sim

import (
	"math"

	"github.com/vovakirdan/tui-dungeon/internal/core"
)

const (
	shotgunPellets = 5
	shotgunSpread  = 0.1 // Radians either side of the aim
	uziSpread      = 0.2
)

// WeaponCooldown returns the delay between shots of a weapon.
func WeaponCooldown(w WeaponType) float64 {
	switch w {
	case WeaponUzi:
		return 0.1
	case WeaponShotgun:
		return 0.75
	case WeaponGlock:
		return 0.3
	default:
		return 0.2
	}
}

// BulletDamage returns the damage carried by a bullet type.
func BulletDamage(t Tuning, b BulletType) float64 {
	switch b {
	case BulletSmall:
		return 0.5
	case BulletBig:
		return 2
	case BulletShotgun:
		return t.ShotgunDamage
	default:
		return 1
	}
}

// hitDamage is the whole number of health points a bullet removes.
func hitDamage(t Tuning, b BulletType) int {
	d := int(math.Ceil(BulletDamage(t, b)))
	if d < 1 {
		return 1
	}
	return d
}

// BulletScale returns a bullet's size relative to a normal bullet.
func BulletScale(b BulletType) float64 {
	switch b {
	case BulletBig:
		return 1.5
	case BulletSmall, BulletShotgun:
		return 0.75
	default:
		return 1
	}
}

// bulletFootprint is the side of the square used for bullet overlap checks.
func bulletFootprint(t Tuning, b BulletType) float64 {
	return t.TileSize / 2 * BulletScale(b)
}

// newBullet spawns a bullet half a tile ahead of origin along dir. base is
// added to the bullet's velocity so shots inherit the shooter's motion.
func newBullet(t Tuning, origin, base, dir core.Vec2, speed float64, typ BulletType, owner Owner) Bullet {
	return Bullet{
		Pos:   origin.Add(dir.Mul(t.TileSize / 2)),
		Speed: dir.Mul(speed).Add(base),
		Type:  typ,
		Owner: owner,
	}
}

// jitter rotates dir by a random angle in [-spread, spread).
func jitter(ctx *Context, dir core.Vec2, spread float64) core.Vec2 {
	return core.FromAngle(dir.Angle() + ctx.Uniform(-spread, spread))
}

// shootDirection picks the aim from held shoot events. Right wins over left,
// left over up, up over down.
func shootDirection(events EventSet) (core.Vec2, bool) {
	switch {
	case events.Has(EvShootRight):
		return core.Right, true
	case events.Has(EvShootLeft):
		return core.Left, true
	case events.Has(EvShootUp):
		return core.Up, true
	case events.Has(EvShootDown):
		return core.Down, true
	}
	return core.Zero, false
}

// FireWeapon spawns the bullets for one trigger pull of the player's weapon.
func FireWeapon(ctx *Context, p PlayerState, velocity, dir core.Vec2) []Bullet {
	t := ctx.Tuning
	switch p.Weapon {
	case WeaponBigGun:
		return []Bullet{newBullet(t, p.Pos, velocity, dir, t.BulletSpeed*0.75, BulletBig, OwnerPlayer)}
	case WeaponUzi:
		aim := jitter(ctx, dir, uziSpread)
		return []Bullet{newBullet(t, p.Pos, velocity, aim, t.BulletSpeed*1.5, BulletSmall, OwnerPlayer)}
	case WeaponGlock:
		return []Bullet{newBullet(t, p.Pos, velocity, dir, t.BulletSpeed*1.25, BulletNormal, OwnerPlayer)}
	case WeaponShotgun:
		out := make([]Bullet, 0, shotgunPellets)
		for range shotgunPellets {
			offset := core.FromAngle(ctx.Rand.Float64() * 2 * math.Pi).Mul(ctx.Uniform(0, t.TileSize/4))
			aim := jitter(ctx, dir, shotgunSpread)
			speed := t.BulletSpeed * ctx.Uniform(3, 3.25)
			out = append(out, newBullet(t, p.Pos.Add(offset), velocity, aim, speed, BulletShotgun, OwnerPlayer))
		}
		return out
	default:
		return []Bullet{newBullet(t, p.Pos, velocity, dir, t.BulletSpeed, BulletNormal, OwnerPlayer)}
	}
}

// wearWeapon reduces the weapon's health after a shot. A worn-out weapon
// reverts to bare hands.
func wearWeapon(t Tuning, p PlayerState) PlayerState {
	if p.Weapon == WeaponNone {
		return p
	}
	p.WeaponHealth -= t.WeaponWear
	if p.WeaponHealth <= 0 {
		p.Weapon = WeaponNone
		p.WeaponHealth = 0
	}
	return p
}

// advanceBullets moves every bullet, decays shotgun pellets and culls
// pellets that slowed down too much or bullets that left the arena.
func advanceBullets(t Tuning, bullets []Bullet, dt float64) []Bullet {
	out := make([]Bullet, 0, len(bullets))
	decay := 1 - math.Min(t.ShotgunDecay*dt, 1)
	minSpeed := t.ShotgunMinSpd * t.TileSize
	for _, b := range bullets {
		b.Pos = b.Pos.Add(b.Speed.Mul(dt))
		if b.Type == BulletShotgun {
			b.Speed = b.Speed.Mul(decay)
			if b.Speed.Len() < minSpeed {
				continue
			}
		}
		if !t.InArena(b.Pos) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// nearestEnemy returns the index of the enemy closest to pos, or -1.
func nearestEnemy(enemies []Enemy, pos core.Vec2) int {
	best := -1
	bestDist := math.Inf(1)
	for i, en := range enemies {
		if d := en.Pos.Distance(pos); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// fireRocket launches a rocket from the player at the nearest enemy.
func fireRocket(t Tuning, p PlayerState, enemies []Enemy) (Bullet, bool) {
	i := nearestEnemy(enemies, p.Pos)
	if i < 0 {
		return Bullet{}, false
	}
	dir := enemies[i].Pos.Sub(p.Pos).Normalize()
	if dir == core.Zero {
		return Bullet{}, false
	}
	return newBullet(t, p.Pos, core.Zero, dir, t.BulletSpeed, BulletRocket, OwnerPlayer), true
}
