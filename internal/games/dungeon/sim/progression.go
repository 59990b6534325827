package sim

import "github.com/vovakirdan/tui-dungeon/internal/core"

// NewPlayer returns a player at full health with bare hands.
func NewPlayer(t Tuning) PlayerState {
	return PlayerState{
		Pos:    t.PlayerStart,
		Health: t.PlayerMaxHealth,
		Weapon: WeaponNone,
	}
}

// NewRun builds the starting room: boundary walls, no enemies and a row of
// weapons to choose from. The returned timers start the rapid-fire chain.
func NewRun(ctx *Context) (World, []TimerRequest) {
	walls := ObstacleWall1
	if lvl, _, ok := ctx.Level(0); ok {
		walls = lvl.Walls
	}
	w := World{
		Player:    NewPlayer(ctx.Tuning),
		Obstacles: ctx.Rooms.Boundary(walls),
		Drops:     starterDrops(ctx.Tuning),
		CanShoot:  true,
		RoomIndex: -1,
	}
	return w, []TimerRequest{after(EvRapidFire, ctx.Tuning.RapidFirePeriod)}
}

// GenerateRoom builds the initial snapshot of a room. The player's health,
// weapon and trinkets are carried over; a pending trinket becomes active.
// A level index past the last level yields the won state.
func GenerateRoom(ctx *Context, room, level int, player PlayerState) (World, []TimerRequest) {
	t := ctx.Tuning
	p := player.Clone()
	p.Pos = t.PlayerStart
	p.Hurt = false

	var timers []TimerRequest
	if p.PendingTrinket != TrinketNone {
		if !p.HasTrinket(p.PendingTrinket) {
			p.Trinkets = append(p.Trinkets, p.PendingTrinket)
			if p.PendingTrinket == TrinketBoom {
				timers = append(timers, after(EvRocketTick, t.RocketPeriod))
			}
		}
		p.PendingTrinket = TrinketNone
	}

	lvl, cycle, ok := ctx.Level(level)
	if !ok {
		return World{
			Player:     p,
			RoomIndex:  room,
			LevelIndex: level,
			Won:        true,
		}, timers
	}

	obstacles := ctx.Rooms.Room(ctx.Rand, lvl.Walls)
	budget := ctx.budgetFor(lvl, room, cycle)
	enemies := ctx.Spawner.Spawn(ctx, p.Pos, obstaclePositions(obstacles), lvl.EnemyTypes, budget)

	w := World{
		Player:     p,
		Enemies:    enemies,
		Obstacles:  obstacles,
		CanShoot:   true,
		RoomIndex:  room,
		LevelIndex: level,
	}
	return w, append(timers, after(EvRoomStart, t.RoomStartDelay))
}

// NextRoom advances past the current room, wrapping to the next level after
// the last room of a level. Score counters carry over.
func NextRoom(ctx *Context, w World) (World, []TimerRequest) {
	room, level := w.RoomIndex+1, w.LevelIndex
	if room >= ctx.Tuning.RoomsPerLevel {
		room = 0
		level++
	}
	next, timers := GenerateRoom(ctx, room, level, w.Player)
	next.Kills = w.Kills
	next.RoomsCleared = w.RoomsCleared
	return next, timers
}

// doorPosition returns where the exit of the current level appears.
func doorPosition(ctx *Context, level int) core.Vec2 {
	if lvl, _, ok := ctx.Level(level); ok && lvl.Door != core.Zero {
		return lvl.Door
	}
	return ctx.Tuning.DoorPosition()
}

// openDoor appends the exit once the room has no enemies left. It reports
// whether a door was added.
func openDoor(ctx *Context, w World) (World, bool) {
	if len(w.Enemies) > 0 {
		return w, false
	}
	if _, ok := w.Door(); ok {
		return w, false
	}
	obstacles := make([]Obstacle, 0, len(w.Obstacles)+1)
	obstacles = append(obstacles, w.Obstacles...)
	w.Obstacles = append(obstacles, Obstacle{Pos: doorPosition(ctx, w.LevelIndex), Type: ObstacleDoor})
	return w, true
}

// doorReached reports whether the player stands within reach of the door.
func doorReached(t Tuning, w World) bool {
	door, ok := w.Door()
	if !ok {
		return false
	}
	return core.SquareCollision(w.Player.Pos, door.Pos, t.TileSize*t.DoorReach)
}
