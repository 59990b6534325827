package sim

import (
	"math/rand"

	"github.com/vovakirdan/tui-dungeon/internal/core"
)

func testLevels() []Level {
	return []Level{
		{Name: "Level 1", Walls: ObstacleWall1, EnemyTypes: []EnemyType{EnemySlime, EnemyImp}, Difficulties: []int{5, 6, 7, 8, 9}},
		{Name: "Level 2", Walls: ObstacleWall2, EnemyTypes: []EnemyType{EnemyFastSlime, EnemyTurret, EnemyImp}, Difficulties: []int{10, 11, 12, 13, 14}},
		{Name: "Level 3", Walls: ObstacleWall3, EnemyTypes: []EnemyType{EnemyFastSlime, EnemyTurret, EnemyImp, EnemyRhino}, Difficulties: []int{15, 16, 17, 18, 19}},
	}
}

// stubRooms returns a ring of walls and a single block in the middle.
type stubRooms struct{}

func (stubRooms) Boundary(walls ObstacleType) []Obstacle {
	t := DefaultTuning()
	var out []Obstacle
	for x := t.TileSize / 2; x < t.ArenaWidth; x += t.TileSize {
		out = append(out,
			Obstacle{Pos: core.V(x, t.TileSize/2), Type: walls},
			Obstacle{Pos: core.V(x, t.ArenaHeight-t.TileSize/2), Type: walls})
	}
	for y := t.TileSize * 1.5; y < t.ArenaHeight-t.TileSize; y += t.TileSize {
		out = append(out,
			Obstacle{Pos: core.V(t.TileSize/2, y), Type: walls},
			Obstacle{Pos: core.V(t.ArenaWidth-t.TileSize/2, y), Type: walls})
	}
	return out
}

func (s stubRooms) Room(_ *rand.Rand, walls ObstacleType) []Obstacle {
	return append(s.Boundary(walls), Obstacle{Pos: core.V(324, 180), Type: ObstacleBlock})
}

// stubSpawner places one enemy of each allowed type per budget point on a
// fixed row, capped at the budget.
type stubSpawner struct{}

func (stubSpawner) Spawn(ctx *Context, _ core.Vec2, _ []core.Vec2, types []EnemyType, budget int) []Enemy {
	var out []Enemy
	for i := 0; i < budget && len(types) > 0; i++ {
		typ := types[ctx.Rand.Intn(len(types))]
		out = append(out, NewEnemy(ctx, typ, core.V(72+float64(i)*48, 240)))
	}
	return out
}

func newTestContext(seed int64) *Context {
	return NewContext(seed, DefaultTuning(), testLevels(), stubRooms{}, stubSpawner{})
}

// emptyWorld is a live world with no obstacles or enemies.
func emptyWorld(ctx *Context) World {
	return World{
		Player:   NewPlayer(ctx.Tuning),
		CanShoot: true,
	}
}

func hasTimer(timers []TimerRequest, e Event) bool {
	for _, tr := range timers {
		if tr.Event == e {
			return true
		}
	}
	return false
}

func countTimers(timers []TimerRequest, e Event) int {
	n := 0
	for _, tr := range timers {
		if tr.Event == e {
			n++
		}
	}
	return n
}
