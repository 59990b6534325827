package config

import (
	_ "embed"
)

//go:embed defaults/dungeon.yaml
var defaultDungeonYAML []byte

// DefaultDungeonConfig returns the default dungeon configuration.
func DefaultDungeonConfig() DungeonConfig {
	return DungeonConfig{
		Arena: DungeonArena{
			TileSize: 24,
			Cols:     27,
			Rows:     15,
		},
		Player: DungeonPlayer{
			Speed:        80,
			MaxHealth:    100,
			HitDamage:    25,
			HurtCooldown: 0.25,
			StartX:       324,
			StartY:       36,
		},
		Weapons: DungeonWeapons{
			BulletSpeed:     120,
			ShotgunDamage:   0.75,
			ShotgunDecay:    4,
			ShotgunMinSpeed: 3,
			Wear:            4,
		},
		Timers: DungeonTimers{
			RoomStart:         1,
			FirstDecisionMax:  4,
			RapidFire:         0.4,
			Rocket:            1,
			RhinoCharge:       1,
			EnemyHurtFlash:    0.125,
			TombstoneLifetime: 5,
			CaltropLifetime:   8,
		},
		Gameplay: DungeonGameplay{
			RoomsPerLevel: 5,
			BusHealthGain: 2,
			DoorReach:     2,
			ContactGrow:   1,
			HoldTicks:     8,
			SafeRadius:    3,
		},
		Enemies: map[string]DungeonEnemy{
			"slime":      {Health: 5, Cost: 1},
			"fast-slime": {Health: 5, Cost: 2},
			"turret":     {Health: 8, Cost: 3},
			"imp":        {Health: 7, Cost: 3},
			"rhino":      {Health: 4, Cost: 3},
		},
		Levels: []DungeonLevel{
			{Name: "Level 1", Walls: "wall1", Enemies: []string{"slime", "imp"}, Budgets: []int{5, 6, 7, 8, 9}},
			{Name: "Level 2", Walls: "wall2", Enemies: []string{"fast-slime", "turret", "imp"}, Budgets: []int{10, 11, 12, 13, 14}},
			{Name: "Level 3", Walls: "wall3", Enemies: []string{"fast-slime", "turret", "imp", "rhino"}, Budgets: []int{15, 16, 17, 18, 19}},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "rooms",
				MaxAt: 15,
			},
			Scaling: ScalingConfig{
				BudgetMultiplier: 0.5,
				DamageMultiplier: 0.4,
			},
		},
	}
}
