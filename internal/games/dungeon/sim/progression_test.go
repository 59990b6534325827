package sim

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/vovakirdan/tui-dungeon/internal/core"
)

func mockContext(t *testing.T) (*Context, *MockRoomGenerator, *MockEnemySpawner) {
	ctrl := gomock.NewController(t)
	rooms := NewMockRoomGenerator(ctrl)
	spawner := NewMockEnemySpawner(ctrl)
	return NewContext(1, DefaultTuning(), testLevels(), rooms, spawner), rooms, spawner
}

// atDoor returns a cleared room with the player standing by the exit.
func atDoor(ctx *Context, room, level int) World {
	w := emptyWorld(ctx)
	w.RoomIndex = room
	w.LevelIndex = level
	w.Obstacles = []Obstacle{{Pos: ctx.Tuning.DoorPosition(), Type: ObstacleDoor}}
	w.Player.Pos = ctx.Tuning.DoorPosition().Sub(core.V(0, ctx.Tuning.TileSize+1))
	return w
}

func TestNewRun(t *testing.T) {
	ctx, rooms, _ := mockContext(t)
	walls := []Obstacle{{Pos: core.V(12, 12), Type: ObstacleWall1}}
	rooms.EXPECT().Boundary(ObstacleWall1).Return(walls)

	w, timers := NewRun(ctx)

	if w.RoomIndex != -1 || w.LevelIndex != 0 {
		t.Errorf("room %d level %d, expected -1 and 0", w.RoomIndex, w.LevelIndex)
	}
	if len(w.Enemies) != 0 || len(w.Obstacles) != 1 {
		t.Errorf("starting room should only have walls, got %d enemies %d obstacles", len(w.Enemies), len(w.Obstacles))
	}
	if len(w.Drops) != 3 {
		t.Errorf("got %d drops, expected 3 starter weapons", len(w.Drops))
	}
	if w.Player.Pos != core.V(324, 36) || w.Player.Health != 100 {
		t.Errorf("player = %+v", w.Player)
	}
	if len(timers) != 1 || timers[0].Event != EvRapidFire {
		t.Errorf("timers = %+v, expected the rapid fire chain", timers)
	}
}

func TestDoorLeadsToNextRoom(t *testing.T) {
	ctx, rooms, spawner := mockContext(t)
	layout := []Obstacle{{Pos: core.V(100, 100), Type: ObstacleWall1}}
	rooms.EXPECT().Room(gomock.Any(), ObstacleWall1).Return(layout)
	spawner.EXPECT().
		Spawn(gomock.Any(), ctx.Tuning.PlayerStart, []core.Vec2{core.V(100, 100)}, []EnemyType{EnemySlime, EnemyImp}, 6).
		DoAndReturn(func(c *Context, _ core.Vec2, _ []core.Vec2, _ []EnemyType, _ int) []Enemy {
			return []Enemy{NewEnemy(c, EnemySlime, core.V(300, 300))}
		})

	w := atDoor(ctx, 0, 0)
	w.Player.Weapon = WeaponUzi
	w.Player.WeaponHealth = 40
	w.Kills = 3
	w.Bullets = []Bullet{stillBullet(core.V(200, 100), OwnerPlayer)}

	next, timers := Step(ctx, w, nil, 0.016)

	if next.RoomIndex != 1 || next.LevelIndex != 0 {
		t.Fatalf("room %d level %d, expected 1 and 0", next.RoomIndex, next.LevelIndex)
	}
	if len(next.Enemies) != 1 || next.Enemies[0].State != StatePaused {
		t.Errorf("enemies = %+v, expected one paused enemy", next.Enemies)
	}
	if len(next.Obstacles) != 1 || next.Obstacles[0] != layout[0] {
		t.Errorf("obstacles = %+v, expected the new layout", next.Obstacles)
	}
	if len(next.Bullets) != 0 {
		t.Error("bullets should not follow the player into a new room")
	}
	if next.Player.Weapon != WeaponUzi || next.Player.WeaponHealth != 40 || next.Player.Pos != ctx.Tuning.PlayerStart {
		t.Errorf("player = %+v, expected carried weapon at the start position", next.Player)
	}
	if next.Kills != 3 {
		t.Errorf("kills = %d, expected 3", next.Kills)
	}
	found := false
	for _, tr := range timers {
		if tr.Event == EvRoomStart && tr.Delay == 1 {
			found = true
		}
	}
	if !found {
		t.Errorf("timers = %+v, expected room-start-cooldown", timers)
	}
}

func TestLastRoomWrapsToNextLevel(t *testing.T) {
	ctx, rooms, spawner := mockContext(t)
	rooms.EXPECT().Room(gomock.Any(), ObstacleWall2).Return(nil)
	spawner.EXPECT().Spawn(gomock.Any(), gomock.Any(), gomock.Any(), []EnemyType{EnemyFastSlime, EnemyTurret, EnemyImp}, 10).Return(nil)

	next, _ := Step(ctx, atDoor(ctx, 4, 0), nil, 0.016)

	if next.RoomIndex != 0 || next.LevelIndex != 1 {
		t.Errorf("room %d level %d, expected 0 and 1", next.RoomIndex, next.LevelIndex)
	}
}

func TestPastLastLevelWins(t *testing.T) {
	ctx, _, _ := mockContext(t)

	w := atDoor(ctx, 4, 2)
	w.Kills = 10
	w.RoomsCleared = 15
	next, _ := Step(ctx, w, nil, 0.016)

	if !next.Won || !next.Over() {
		t.Fatal("leaving the last room should win the run")
	}
	if next.Score() != 10*10+15*50+500 {
		t.Errorf("Score() = %d", next.Score())
	}
	frozen, timers := Step(ctx, next, NewEventSet(EvMoveUp), 0.016)
	if timers != nil || frozen.Player.Pos != next.Player.Pos {
		t.Error("a won run must not change")
	}
}

func TestEndlessModeCyclesHarder(t *testing.T) {
	ctx, rooms, spawner := mockContext(t)
	ctx.Endless = true
	rooms.EXPECT().Room(gomock.Any(), ObstacleWall1).Return(nil)
	spawner.EXPECT().Spawn(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), 8).Return(nil)

	next, _ := Step(ctx, atDoor(ctx, 4, 2), nil, 0.016)

	if next.Won || next.LevelIndex != 3 {
		t.Errorf("won %v level %d, expected to continue on level 3", next.Won, next.LevelIndex)
	}
}

func TestPendingTrinketCommitsOnTransition(t *testing.T) {
	ctx, rooms, spawner := mockContext(t)
	rooms.EXPECT().Room(gomock.Any(), gomock.Any()).Return(nil)
	spawner.EXPECT().Spawn(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	w := atDoor(ctx, 0, 0)
	w.Player.PendingTrinket = TrinketBoom
	next, timers := Step(ctx, w, nil, 0.016)

	if !next.Player.HasTrinket(TrinketBoom) || next.Player.PendingTrinket != TrinketNone {
		t.Errorf("player = %+v, expected boom committed", next.Player)
	}
	if countTimers(timers, EvRocketTick) != 1 {
		t.Errorf("timers = %+v, expected the rocket chain to start", timers)
	}
	if w.Player.HasTrinket(TrinketBoom) {
		t.Error("input player was modified")
	}
}

func TestStartingRoomDoesNotCountAsCleared(t *testing.T) {
	ctx, _, _ := mockContext(t)
	w := emptyWorld(ctx)
	w.RoomIndex = -1

	next, _ := Step(ctx, w, nil, 0.016)
	if _, ok := next.Door(); !ok {
		t.Error("an empty starting room should open its door")
	}
	if next.RoomsCleared != 0 {
		t.Errorf("RoomsCleared = %d, expected 0", next.RoomsCleared)
	}
}
