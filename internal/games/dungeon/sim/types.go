// Package sim provides the core simulation for the dungeon game.
// This package is UI-agnostic and deterministic: given the same Context seed,
// world snapshot, fired events and delta time, Step always produces the same
// next snapshot and timer requests.
package sim

import (
	"slices"

	"github.com/vovakirdan/tui-dungeon/internal/core"
)

// ObstacleType identifies a static obstacle variant.
type ObstacleType uint8

const (
	ObstacleWall1 ObstacleType = iota
	ObstacleWall2
	ObstacleWall3
	ObstacleBlock
	ObstacleDoor
)

// String returns the name of the obstacle type.
func (t ObstacleType) String() string {
	switch t {
	case ObstacleWall1:
		return "wall1"
	case ObstacleWall2:
		return "wall2"
	case ObstacleWall3:
		return "wall3"
	case ObstacleBlock:
		return "block"
	case ObstacleDoor:
		return "door"
	default:
		return "unknown"
	}
}

// ParseObstacleType converts a name back to an ObstacleType.
func ParseObstacleType(s string) (ObstacleType, bool) {
	for t := ObstacleWall1; t <= ObstacleDoor; t++ {
		if t.String() == s {
			return t, true
		}
	}
	return ObstacleWall1, false
}

// Obstacle is an immovable square footprint. Doors are appended once a room is cleared.
type Obstacle struct {
	Pos  core.Vec2
	Type ObstacleType
}

// BulletType determines a bullet's size, damage and decay behaviour.
type BulletType uint8

const (
	BulletNormal BulletType = iota
	BulletSmall
	BulletBig
	BulletShotgun
	BulletRocket
)

// String returns the name of the bullet type.
func (t BulletType) String() string {
	switch t {
	case BulletNormal:
		return "normal"
	case BulletSmall:
		return "small"
	case BulletBig:
		return "big"
	case BulletShotgun:
		return "shotgun"
	case BulletRocket:
		return "rocket"
	default:
		return "unknown"
	}
}

// Owner identifies who fired a bullet.
type Owner uint8

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// Bullet is a moving projectile.
type Bullet struct {
	Pos   core.Vec2
	Speed core.Vec2 // Velocity in pixels per second
	Type  BulletType
	Owner Owner
}

// EnemyType identifies an enemy's behaviour.
type EnemyType uint8

const (
	EnemySlime EnemyType = iota
	EnemyFastSlime
	EnemyTurret
	EnemyImp
	EnemyRhino
)

// EnemyTypes lists every enemy type in declaration order.
var EnemyTypes = []EnemyType{EnemySlime, EnemyFastSlime, EnemyTurret, EnemyImp, EnemyRhino}

// String returns the name of the enemy type.
func (t EnemyType) String() string {
	switch t {
	case EnemySlime:
		return "slime"
	case EnemyFastSlime:
		return "fast-slime"
	case EnemyTurret:
		return "turret"
	case EnemyImp:
		return "imp"
	case EnemyRhino:
		return "rhino"
	default:
		return "unknown"
	}
}

// ParseEnemyType converts a name back to an EnemyType.
func ParseEnemyType(s string) (EnemyType, bool) {
	for _, t := range EnemyTypes {
		if t.String() == s {
			return t, true
		}
	}
	return EnemySlime, false
}

// EnemyState is a node of the enemy behaviour state machine.
type EnemyState uint8

const (
	StatePaused EnemyState = iota
	StateIdle
	StateMoving
	StateShooting
)

// String returns the name of the state.
func (s EnemyState) String() string {
	switch s {
	case StatePaused:
		return "paused"
	case StateIdle:
		return "idle"
	case StateMoving:
		return "moving"
	case StateShooting:
		return "shooting"
	default:
		return "unknown"
	}
}

// Enemy is a hostile entity. Health is strictly positive while the enemy is
// part of a world; Token and HurtToken route this enemy's private timers.
type Enemy struct {
	Pos       core.Vec2
	Type      EnemyType
	State     EnemyState
	Direction core.Vec2 // Fixed heading while moving (rhino, imp)
	Health    int
	Hurt      bool
	Token     Token
	HurtToken Token
}

// WeaponType identifies the player's current gun.
type WeaponType uint8

const (
	WeaponNone WeaponType = iota
	WeaponBigGun
	WeaponShotgun
	WeaponUzi
	WeaponGlock
)

// String returns the name of the weapon.
func (w WeaponType) String() string {
	switch w {
	case WeaponNone:
		return "none"
	case WeaponBigGun:
		return "big-gun"
	case WeaponShotgun:
		return "shotgun"
	case WeaponUzi:
		return "uzi"
	case WeaponGlock:
		return "glock"
	default:
		return "unknown"
	}
}

// TrinketType identifies a passive item carried by the player.
type TrinketType uint8

const (
	TrinketNone   TrinketType = iota
	TrinketThorns             // Enemy contact wounds the enemy too
	TrinketBus                // Kills restore a little health
	TrinketSwamp              // Kills leave caltrops behind
	TrinketBoom               // Periodic rockets at the nearest enemy
)

// String returns the name of the trinket.
func (t TrinketType) String() string {
	switch t {
	case TrinketNone:
		return "none"
	case TrinketThorns:
		return "thorns"
	case TrinketBus:
		return "bus"
	case TrinketSwamp:
		return "swamp"
	case TrinketBoom:
		return "boom"
	default:
		return "unknown"
	}
}

// PlayerState is the persistent part of the player; health, weapon and
// trinkets survive room transitions.
type PlayerState struct {
	Pos            core.Vec2
	Health         int
	Hurt           bool
	Weapon         WeaponType
	WeaponHealth   int
	Trinkets       []TrinketType
	PendingTrinket TrinketType // Committed to Trinkets on the next room transition
}

// HasTrinket reports whether the trinket is owned (committed).
func (p PlayerState) HasTrinket(t TrinketType) bool {
	return slices.Contains(p.Trinkets, t)
}

// Clone returns a copy that shares no memory with p.
func (p PlayerState) Clone() PlayerState {
	p.Trinkets = slices.Clone(p.Trinkets)
	return p
}

// Drop is a pickup left where an enemy died.
type Drop struct {
	Pos     core.Vec2
	Weapon  WeaponType
	Trinket TrinketType
}

// Caltrop is a short-lived hazard that wounds the first enemy stepping on it.
type Caltrop struct {
	Pos core.Vec2
	Age float64
}

// Tombstone marks where an enemy died.
type Tombstone struct {
	Pos core.Vec2
	Age float64
}

// World is the root snapshot of a run. Step never mutates a World it was
// given; it always returns a new one.
type World struct {
	Player     PlayerState
	Bullets    []Bullet
	Enemies    []Enemy
	Obstacles  []Obstacle
	Drops      []Drop
	Caltrops   []Caltrop
	Tombstones []Tombstone
	CanShoot   bool
	RoomIndex  int // -1 in the starting room
	LevelIndex int
	Won        bool

	Kills        int
	RoomsCleared int
}

// Clone returns a deep copy of the world.
func (w World) Clone() World {
	w.Player = w.Player.Clone()
	w.Bullets = slices.Clone(w.Bullets)
	w.Enemies = slices.Clone(w.Enemies)
	w.Obstacles = slices.Clone(w.Obstacles)
	w.Drops = slices.Clone(w.Drops)
	w.Caltrops = slices.Clone(w.Caltrops)
	w.Tombstones = slices.Clone(w.Tombstones)
	return w
}

// Dead reports whether the player has run out of health.
func (w World) Dead() bool {
	return w.Player.Health <= 0
}

// Over reports whether the run has reached a terminal state.
func (w World) Over() bool {
	return w.Dead() || w.Won
}

// Door returns the door obstacle, if one has been spawned.
func (w World) Door() (Obstacle, bool) {
	for _, o := range w.Obstacles {
		if o.Type == ObstacleDoor {
			return o, true
		}
	}
	return Obstacle{}, false
}

// Score summarises a run for the score ledger.
func (w World) Score() int {
	score := w.Kills*10 + w.RoomsCleared*50
	if w.Won {
		score += 500
	}
	return score
}

func obstaclePositions(obstacles []Obstacle) []core.Vec2 {
	out := make([]core.Vec2, len(obstacles))
	for i, o := range obstacles {
		out[i] = o.Pos
	}
	return out
}
