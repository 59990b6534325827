package sim

import "github.com/vovakirdan/tui-dungeon/internal/core"

// combatResult is everything collision resolution produces in one step.
type combatResult struct {
	enemies    []Enemy
	bullets    []Bullet
	caltrops   []Caltrop
	drops      []Drop // Newly dropped loot
	tombstones []Tombstone
	timers     []TimerRequest
	kills      int
	playerHit  bool // An enemy bullet reached the player
	contact    bool // A surviving enemy touched the player
}

// resolveCombat settles every collision of the step. A struck enemy is
// credited with at most one bullet per step; extra bullets on the same
// enemy are consumed without effect.
func resolveCombat(ctx *Context, player PlayerState, bullets []Bullet, enemies []Enemy, obstacles []Obstacle, caltrops []Caltrop) combatResult {
	t := ctx.Tuning
	var res combatResult

	// Bullet to enemy. Each bullet maps to the last enemy it overlaps.
	hitBy := make(map[int]int)
	for bi, b := range bullets {
		if b.Owner != OwnerPlayer {
			continue
		}
		for ei, en := range enemies {
			if b.Pos.Distance(en.Pos) <= t.TileSize/2 {
				hitBy[bi] = ei
			}
		}
	}
	damage := make([]int, len(enemies))
	credited := make([]bool, len(enemies))
	for bi := range bullets {
		ei, ok := hitBy[bi]
		if !ok || credited[ei] {
			continue
		}
		credited[ei] = true
		damage[ei] += hitDamage(t, bullets[bi].Type)
	}

	// Caltrops wound the first enemy standing on them and are used up.
	for _, c := range caltrops {
		victim := -1
		for ei, en := range enemies {
			if core.SquareCollision(c.Pos, en.Pos, t.TileSize) {
				victim = ei
				break
			}
		}
		if victim < 0 {
			res.caltrops = append(res.caltrops, c)
			continue
		}
		damage[victim]++
	}

	// Enemy to player contact uses a slightly grown footprint.
	touching := make([]bool, len(enemies))
	for ei, en := range enemies {
		if en.Health-damage[ei] > 0 && core.SquareCollision(en.Pos, player.Pos, t.TileSize+t.ContactGrow) {
			touching[ei] = true
			res.contact = true
		}
	}
	if res.contact && !player.Hurt && player.HasTrinket(TrinketThorns) {
		for ei := range enemies {
			if touching[ei] {
				damage[ei]++
			}
		}
	}

	res.enemies = make([]Enemy, 0, len(enemies))
	for ei, en := range enemies {
		if damage[ei] == 0 {
			res.enemies = append(res.enemies, en)
			continue
		}
		en.Health -= damage[ei]
		if en.Health > 0 {
			if !en.Hurt {
				res.timers = append(res.timers, after(EntityEvent(en.HurtToken), t.EnemyHurtFlash))
			}
			en.Hurt = true
			res.enemies = append(res.enemies, en)
			continue
		}

		res.kills++
		res.drops = append(res.drops, RandomDrop(ctx, en.Pos))
		res.tombstones = append(res.tombstones, Tombstone{Pos: en.Pos})
		if player.HasTrinket(TrinketSwamp) {
			res.caltrops = append(res.caltrops, Caltrop{Pos: en.Pos})
		}
	}

	// Remaining bullets: consumed by enemies, walls or the player.
	res.bullets = make([]Bullet, 0, len(bullets))
	for bi, b := range bullets {
		if _, consumed := hitBy[bi]; consumed {
			continue
		}
		size := bulletFootprint(t, b.Type)
		if hitsObstacle(b.Pos, size, obstacles, t.TileSize) {
			continue
		}
		if b.Owner == OwnerEnemy && core.SquareCollision(b.Pos, player.Pos, (size+t.TileSize)/2) {
			res.playerHit = true
			continue
		}
		res.bullets = append(res.bullets, b)
	}
	return res
}

func hitsObstacle(pos core.Vec2, size float64, obstacles []Obstacle, tile float64) bool {
	for _, o := range obstacles {
		if core.SquareCollision(pos, o.Pos, (size+tile)/2) {
			return true
		}
	}
	return false
}

// damagePlayer applies a hit if the player is not in the post-hit cooldown.
func damagePlayer(t Tuning, p PlayerState, hit bool) (PlayerState, []TimerRequest) {
	if !hit || p.Hurt {
		return p, nil
	}
	p.Health -= t.PlayerHitDamage
	if p.Health < 0 {
		p.Health = 0
	}
	p.Hurt = true
	return p, []TimerRequest{after(EvHurtCool, t.PlayerHurtCooldown)}
}
