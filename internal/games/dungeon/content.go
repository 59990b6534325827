package dungeon

import (
	"fmt"

	"github.com/vovakirdan/tui-dungeon/internal/config"
	"github.com/vovakirdan/tui-dungeon/internal/core"
	"github.com/vovakirdan/tui-dungeon/internal/games/dungeon/content"
	"github.com/vovakirdan/tui-dungeon/internal/games/dungeon/sim"
)

// buildTuning converts the YAML configuration into simulation constants.
func buildTuning(cfg config.DungeonConfig) (sim.Tuning, error) {
	t := sim.DefaultTuning()
	tile := cfg.Arena.TileSize

	t.TileSize = tile
	t.ArenaWidth = float64(cfg.Arena.Cols) * tile
	t.ArenaHeight = float64(cfg.Arena.Rows) * tile
	t.PlayerStart = core.V(cfg.Player.StartX, cfg.Player.StartY)
	if !t.InArena(t.PlayerStart) {
		return t, fmt.Errorf("dungeon: player start %v lies outside the %vx%v arena", t.PlayerStart, t.ArenaWidth, t.ArenaHeight)
	}

	t.PlayerSpeed = cfg.Player.Speed
	t.PlayerMaxHealth = cfg.Player.MaxHealth
	t.PlayerHitDamage = cfg.Player.HitDamage
	t.PlayerHurtCooldown = cfg.Player.HurtCooldown

	t.BulletSpeed = cfg.Weapons.BulletSpeed
	t.ShotgunDamage = cfg.Weapons.ShotgunDamage
	t.ShotgunDecay = cfg.Weapons.ShotgunDecay
	t.ShotgunMinSpd = cfg.Weapons.ShotgunMinSpeed
	t.WeaponWear = cfg.Weapons.Wear

	t.RoomStartDelay = cfg.Timers.RoomStart
	t.FirstDecisionMax = cfg.Timers.FirstDecisionMax
	t.RapidFirePeriod = cfg.Timers.RapidFire
	t.RocketPeriod = cfg.Timers.Rocket
	t.RhinoChargeTime = cfg.Timers.RhinoCharge
	t.EnemyHurtFlash = cfg.Timers.EnemyHurtFlash
	t.TombstoneLifetime = cfg.Timers.TombstoneLifetime
	t.CaltropLifetime = cfg.Timers.CaltropLifetime

	t.RoomsPerLevel = cfg.Gameplay.RoomsPerLevel
	t.BusHealthGain = cfg.Gameplay.BusHealthGain
	t.DoorReach = cfg.Gameplay.DoorReach
	t.ContactGrow = cfg.Gameplay.ContactGrow

	for name, e := range cfg.Enemies {
		typ, ok := sim.ParseEnemyType(name)
		if !ok {
			return t, fmt.Errorf("dungeon: unknown enemy type %q", name)
		}
		if e.Health > 0 {
			t.EnemyHealth[typ] = e.Health
		}
	}
	return t, nil
}

// buildLevels converts configured levels, resolving enemy and wall names.
func buildLevels(cfg config.DungeonConfig) ([]sim.Level, error) {
	levels := make([]sim.Level, 0, len(cfg.Levels))
	for i, l := range cfg.Levels {
		walls, ok := sim.ParseObstacleType(l.Walls)
		if !ok {
			return nil, fmt.Errorf("dungeon: level %d: unknown wall type %q", i+1, l.Walls)
		}
		lvl := sim.Level{
			Name:         l.Name,
			Walls:        walls,
			Difficulties: append([]int(nil), l.Budgets...),
		}
		if l.DoorX != 0 || l.DoorY != 0 {
			lvl.Door = core.V(l.DoorX, l.DoorY)
		}
		for _, name := range l.Enemies {
			typ, ok := sim.ParseEnemyType(name)
			if !ok {
				return nil, fmt.Errorf("dungeon: level %d: unknown enemy type %q", i+1, name)
			}
			lvl.EnemyTypes = append(lvl.EnemyTypes, typ)
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}

// buildSpawner returns a spawner using the configured enemy costs.
func buildSpawner(cfg config.DungeonConfig) *content.Spawner {
	s := content.NewSpawner()
	s.SafeRadius = cfg.Gameplay.SafeRadius
	for name, e := range cfg.Enemies {
		if typ, ok := sim.ParseEnemyType(name); ok && e.Cost > 0 {
			s.Costs[typ] = e.Cost
		}
	}
	return s
}

// newContext assembles a simulation context for one run.
func newContext(cfg config.DungeonConfig, seed int64, endless bool) (*sim.Context, error) {
	tuning, err := buildTuning(cfg)
	if err != nil {
		return nil, err
	}
	levels, err := buildLevels(cfg)
	if err != nil {
		return nil, err
	}
	ctx := sim.NewContext(seed, tuning, levels, content.NewRooms(tuning, nil), buildSpawner(cfg))
	ctx.Endless = endless
	return ctx, nil
}
