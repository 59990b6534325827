package sim

import (
	"math"

	"github.com/vovakirdan/tui-dungeon/internal/core"
)

// freeDirectionProbes is how many random headings an imp tries before giving up.
const freeDirectionProbes = 10

// NewEnemy creates a paused enemy with fresh timer tokens and full health.
func NewEnemy(ctx *Context, typ EnemyType, pos core.Vec2) Enemy {
	return Enemy{
		Pos:       pos,
		Type:      typ,
		State:     StatePaused,
		Health:    ctx.Tuning.HealthOf(typ),
		Token:     ctx.NewToken(),
		HurtToken: ctx.NewToken(),
	}
}

// hasDecisionTimer reports whether the type drives itself with its own token.
func hasDecisionTimer(t EnemyType) bool {
	switch t {
	case EnemyTurret, EnemyImp, EnemyRhino:
		return true
	default:
		return false
	}
}

// startRoom wakes every paused enemy and schedules first decisions.
// Enemies that are already awake are left alone, so a duplicate room-start
// event does not double their timers.
func startRoom(ctx *Context, enemies []Enemy) ([]Enemy, []TimerRequest) {
	out := make([]Enemy, len(enemies))
	var timers []TimerRequest
	for i, en := range enemies {
		if en.State == StatePaused {
			en.State = StateIdle
			if hasDecisionTimer(en.Type) {
				timers = append(timers, after(EntityEvent(en.Token), ctx.Uniform(0, ctx.Tuning.FirstDecisionMax)))
			}
		}
		out[i] = en
	}
	return out, timers
}

// enemyVelocity returns the enemy's velocity for this step in pixels per second.
func enemyVelocity(t Tuning, en Enemy, player core.Vec2) core.Vec2 {
	if en.State == StatePaused {
		return core.Zero
	}
	switch en.Type {
	case EnemySlime:
		return player.Sub(en.Pos).Normalize().Mul(t.PlayerSpeed / 2)
	case EnemyFastSlime:
		return player.Sub(en.Pos).Normalize().Mul(t.PlayerSpeed)
	case EnemyRhino:
		if en.State == StateMoving {
			return en.Direction.Mul(t.PlayerSpeed * 3)
		}
	case EnemyImp:
		if en.State == StateMoving {
			return en.Direction.Mul(t.PlayerSpeed / 2)
		}
	}
	return core.Zero
}

// moveEnemies advances every enemy against the pre-step positions of the
// player, the obstacles and every other enemy.
func moveEnemies(t Tuning, enemies []Enemy, player core.Vec2, obstacles []core.Vec2, dt float64) []Enemy {
	out := make([]Enemy, len(enemies))
	occupied := make([]core.Vec2, 0, len(obstacles)+len(enemies))
	for i, en := range enemies {
		vel := enemyVelocity(t, en, player)
		if vel == core.Zero {
			out[i] = en
			continue
		}

		occupied = occupied[:0]
		occupied = append(occupied, obstacles...)
		occupied = append(occupied, player)
		for j, other := range enemies {
			if j != i {
				occupied = append(occupied, other.Pos)
			}
		}
		en.Pos = TryMove(en.Pos, vel.Mul(dt), occupied, t.TileSize)
		out[i] = en
	}
	return out
}

// freeRandomDirection probes random headings one tile out and returns the
// first that does not hit an obstacle, or the zero vector.
func freeRandomDirection(ctx *Context, pos core.Vec2, obstacles []core.Vec2) core.Vec2 {
	for range freeDirectionProbes {
		dir := core.FromAngle(ctx.Rand.Float64() * 2 * math.Pi)
		if isFree(pos.Add(dir.Mul(ctx.Tuning.TileSize)), obstacles, ctx.Tuning.TileSize) {
			return dir
		}
	}
	return core.Zero
}

// updateEnemies runs every enemy's state machine for one step. It returns
// the updated enemies, timers they requested and bullets they fired.
func updateEnemies(ctx *Context, enemies []Enemy, player core.Vec2, obstacles []core.Vec2, events EventSet) ([]Enemy, []TimerRequest, []Bullet) {
	out := make([]Enemy, len(enemies))
	var timers []TimerRequest
	var bullets []Bullet
	rapid := events.Has(EvRapidFire)

	for i, en := range enemies {
		en, ts, fired := updateEnemy(ctx, en, player, obstacles, events)
		timers = append(timers, ts...)
		if fired {
			bullets = append(bullets, enemyBullet(ctx.Tuning, en.Pos, player))
		}
		if rapid && en.Type == EnemyTurret && en.State == StateShooting {
			bullets = append(bullets, enemyBullet(ctx.Tuning, en.Pos, player))
		}
		out[i] = en
	}
	return out, timers, bullets
}

// updateEnemy applies one enemy's transition. fired reports an imp volley.
func updateEnemy(ctx *Context, en Enemy, player core.Vec2, obstacles []core.Vec2, events EventSet) (Enemy, []TimerRequest, bool) {
	if en.Hurt && events.Has(EntityEvent(en.HurtToken)) {
		en.Hurt = false
	}
	if en.State == StatePaused || !events.Has(EntityEvent(en.Token)) {
		return en, nil, false
	}

	self := EntityEvent(en.Token)
	switch en.Type {
	case EnemyTurret:
		if en.State == StateShooting {
			en.State = StateIdle
		} else {
			en.State = StateShooting
		}
		return en, []TimerRequest{after(self, ctx.Uniform(1, 6))}, false

	case EnemyRhino:
		if en.State == StateMoving {
			en.State = StateIdle
			return en, []TimerRequest{after(self, ctx.Uniform(1, 6))}, false
		}
		en.State = StateMoving
		en.Direction = player.Sub(en.Pos).Normalize()
		return en, []TimerRequest{after(self, ctx.Tuning.RhinoChargeTime)}, false

	case EnemyImp:
		if en.State == StateMoving {
			en.State = StateIdle
			return en, []TimerRequest{after(self, ctx.Uniform(1, 3))}, true
		}
		en.State = StateMoving
		en.Direction = freeRandomDirection(ctx, en.Pos, obstacles)
		return en, []TimerRequest{after(self, ctx.Uniform(1, 3))}, false
	}
	return en, nil, false
}

func enemyBullet(t Tuning, from, target core.Vec2) Bullet {
	dir := target.Sub(from).Normalize()
	return newBullet(t, from, core.Zero, dir, t.BulletSpeed, BulletNormal, OwnerEnemy)
}
