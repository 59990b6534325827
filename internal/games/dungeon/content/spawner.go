package content

import (
	"slices"

	"github.com/vovakirdan/tui-dungeon/internal/core"
	"github.com/vovakirdan/tui-dungeon/internal/games/dungeon/sim"
)

// DefaultCosts is the difficulty each enemy type spends from a room budget.
func DefaultCosts() map[sim.EnemyType]int {
	return map[sim.EnemyType]int{
		sim.EnemySlime:     1,
		sim.EnemyFastSlime: 2,
		sim.EnemyTurret:    3,
		sim.EnemyImp:       3,
		sim.EnemyRhino:     3,
	}
}

// Spawner fills rooms with enemies on free grid cells.
type Spawner struct {
	Costs map[sim.EnemyType]int
	// SafeRadius keeps spawns at least this many tiles from the player.
	SafeRadius float64
}

// NewSpawner returns a spawner with the stock costs.
func NewSpawner() *Spawner {
	return &Spawner{Costs: DefaultCosts(), SafeRadius: 3}
}

func (s *Spawner) cost(t sim.EnemyType) int {
	if c, ok := s.Costs[t]; ok && c > 0 {
		return c
	}
	return 1
}

// Spawn draws random enemy types until their summed cost meets the budget
// and places each on a distinct random free cell. It stops early when the
// room runs out of cells.
func (s *Spawner) Spawn(ctx *sim.Context, player core.Vec2, obstacles []core.Vec2, types []sim.EnemyType, budget int) []sim.Enemy {
	if len(types) == 0 || budget <= 0 {
		return nil
	}

	pool := s.FreeCells(ctx.Tuning, player, obstacles)
	var out []sim.Enemy
	for remaining := budget; remaining > 0 && len(pool) > 0; {
		typ := types[ctx.Rand.Intn(len(types))]
		remaining -= s.cost(typ)

		i := ctx.Rand.Intn(len(pool))
		out = append(out, sim.NewEnemy(ctx, typ, pool[i]))
		pool = slices.Delete(pool, i, i+1)
	}
	return out
}

// FreeCells lists grid cell corners that are clear of the player, its safe
// radius and every obstacle, in column-major order.
func (s *Spawner) FreeCells(t sim.Tuning, player core.Vec2, obstacles []core.Vec2) []core.Vec2 {
	cols := int(t.ArenaWidth / t.TileSize)
	rows := int(t.ArenaHeight / t.TileSize)
	blocked := append(slices.Clone(obstacles), player)

	var out []core.Vec2
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			p := core.V(float64(c)*t.TileSize, float64(r)*t.TileSize)
			if p.Distance(player) < s.SafeRadius*t.TileSize {
				continue
			}
			free := true
			for _, b := range blocked {
				if core.SquareCollision(p, b, t.TileSize) {
					free = false
					break
				}
			}
			if free {
				out = append(out, p)
			}
		}
	}
	return out
}
