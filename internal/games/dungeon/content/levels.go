package content

import "github.com/vovakirdan/tui-dungeon/internal/games/dungeon/sim"

// DefaultLevels returns the three stock levels. Door positions are left to
// the tuning default.
func DefaultLevels() []sim.Level {
	return []sim.Level{
		{
			Name:         "Level 1",
			Walls:        sim.ObstacleWall1,
			EnemyTypes:   []sim.EnemyType{sim.EnemySlime, sim.EnemyImp},
			Difficulties: []int{5, 6, 7, 8, 9},
		},
		{
			Name:         "Level 2",
			Walls:        sim.ObstacleWall2,
			EnemyTypes:   []sim.EnemyType{sim.EnemyFastSlime, sim.EnemyTurret, sim.EnemyImp},
			Difficulties: []int{10, 11, 12, 13, 14},
		},
		{
			Name:         "Level 3",
			Walls:        sim.ObstacleWall3,
			EnemyTypes:   []sim.EnemyType{sim.EnemyFastSlime, sim.EnemyTurret, sim.EnemyImp, sim.EnemyRhino},
			Difficulties: []int{15, 16, 17, 18, 19},
		},
	}
}
