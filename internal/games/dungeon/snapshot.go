package dungeon

import "math"

// Snapshot contains a summary of the game state for replay checks and the
// run ledger. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick    uint64
	Clock   float64
	Pending int // Timers not yet fired

	Score        int
	Kills        int
	RoomsCleared int
	LevelIndex   int
	RoomIndex    int
	Won          bool
	Paused       bool

	PlayerX, PlayerY float64
	Health           int
	Weapon           string
	WeaponHealth     int
	Trinkets         []string

	// Each enemy is 5 values: Type, State, X, Y, Health
	EnemyData []float64

	// Each bullet is 4 values: Type, Owner, X, Y
	BulletData []float64

	DropCount int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world

	enemyData := make([]float64, 0, len(w.Enemies)*5)
	for _, en := range w.Enemies {
		enemyData = append(enemyData, float64(en.Type), float64(en.State), en.Pos.X, en.Pos.Y, float64(en.Health))
	}

	bulletData := make([]float64, 0, len(w.Bullets)*4)
	for _, b := range w.Bullets {
		bulletData = append(bulletData, float64(b.Type), float64(b.Owner), b.Pos.X, b.Pos.Y)
	}

	trinkets := make([]string, len(w.Player.Trinkets))
	for i, tr := range w.Player.Trinkets {
		trinkets[i] = tr.String()
	}

	snap := Snapshot{
		Tick:         uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Score:        w.Score(),
		Kills:        w.Kills,
		RoomsCleared: w.RoomsCleared,
		LevelIndex:   w.LevelIndex,
		RoomIndex:    w.RoomIndex,
		Won:          w.Won,
		Paused:       g.paused,
		PlayerX:      w.Player.Pos.X,
		PlayerY:      w.Player.Pos.Y,
		Health:       w.Player.Health,
		Weapon:       w.Player.Weapon.String(),
		WeaponHealth: w.Player.WeaponHealth,
		Trinkets:     trinkets,
		EnemyData:    enemyData,
		BulletData:   bulletData,
		DropCount:    len(w.Drops),
	}
	if g.sched != nil {
		snap.Clock = g.sched.Now()
		snap.Pending = g.sched.Pending()
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + math.Float64bits(snap.Clock)
	h = h*31 + uint64(snap.Pending)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Kills)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.RoomsCleared) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelIndex)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.RoomIndex+1)  //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + uint64(snap.Health)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.WeaponHealth) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DropCount)    //#nosec G115 -- hash computation
	if snap.Won {
		h = h*31 + 1
	}

	for _, s := range append([]string{snap.Weapon}, snap.Trinkets...) {
		for _, r := range s {
			h = h*31 + uint64(r) //#nosec G115 -- hash computation
		}
	}

	for _, v := range snap.EnemyData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.BulletData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}

// RunSummary is the outcome of a run as recorded in the run ledger.
type RunSummary struct {
	Seed         int64
	Mode         string
	Ticks        int
	Score        int
	Kills        int
	RoomsCleared int
	Level        int // 1-based
	Room         int // 1-based, 0 in the armory
	Won          bool
}

// Summary reports the run so far.
func (g *Game) Summary() RunSummary {
	w := g.world
	return RunSummary{
		Seed:         g.runtime.Seed,
		Mode:         g.ID(),
		Ticks:        g.tickCount,
		Score:        w.Score(),
		Kills:        w.Kills,
		RoomsCleared: w.RoomsCleared,
		Level:        w.LevelIndex + 1,
		Room:         w.RoomIndex + 1,
		Won:          w.Won,
	}
}
