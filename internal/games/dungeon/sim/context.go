package sim

import (
	"encoding/binary"
	"math/rand"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-dungeon/internal/core"
)

//go:generate go tool mockgen -destination=mock_content_test.go -package=sim -self_package=github.com/vovakirdan/tui-dungeon/internal/games/dungeon/sim . RoomGenerator,EnemySpawner

// RoomGenerator produces obstacle layouts.
type RoomGenerator interface {
	// Boundary returns only the arena's outer walls.
	Boundary(walls ObstacleType) []Obstacle
	// Room returns the outer walls plus an interior layout.
	Room(rng *rand.Rand, walls ObstacleType) []Obstacle
}

// EnemySpawner places a room's enemies. Returned enemies are paused and must
// not overlap the player or any of the given obstacle positions.
type EnemySpawner interface {
	Spawn(ctx *Context, player core.Vec2, obstacles []core.Vec2, types []EnemyType, budget int) []Enemy
}

// Level describes one level of the dungeon.
type Level struct {
	Name         string
	Walls        ObstacleType
	EnemyTypes   []EnemyType
	Difficulties []int     // Spawn budget per room index
	Door         core.Vec2 // Zero means Tuning.DoorPosition
}

// Budget returns the spawn budget for a room, repeating the last entry when
// the level lists fewer rooms than are played.
func (l Level) Budget(room int) int {
	if len(l.Difficulties) == 0 {
		return 0
	}
	if room < 0 {
		room = 0
	}
	if room >= len(l.Difficulties) {
		room = len(l.Difficulties) - 1
	}
	return l.Difficulties[room]
}

// Context carries everything Step needs besides the world itself: the seeded
// random source, tuning, level table and content generators. It is owned by a
// single run and is not safe for concurrent use.
type Context struct {
	Rand    *rand.Rand
	Tuning  Tuning
	Levels  []Level
	Endless bool // Wrap past the last level with a harder cycle instead of winning
	Rooms   RoomGenerator
	Spawner EnemySpawner

	// BudgetScale multiplies every room's spawn budget; difficulty presets
	// adjust it. Zero means 1.
	BudgetScale float64

	namespace uuid.UUID
	seq       uint64
}

// NewContext creates a context whose random stream and token sequence are
// fully determined by seed.
func NewContext(seed int64, tuning Tuning, levels []Level, rooms RoomGenerator, spawner EnemySpawner) *Context {
	var seedBytes [8]byte
	binary.BigEndian.PutUint64(seedBytes[:], uint64(seed))
	return &Context{
		Rand:      rand.New(rand.NewSource(seed)),
		Tuning:    tuning,
		Levels:    levels,
		Rooms:     rooms,
		Spawner:   spawner,
		namespace: uuid.NewSHA1(uuid.NameSpaceOID, seedBytes[:]),
	}
}

// NewToken returns a token never handed out before by this context.
func (c *Context) NewToken() Token {
	c.seq++
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], c.seq)
	return Token(uuid.NewSHA1(c.namespace, b[:]))
}

// Uniform returns a random value in [lo, hi).
func (c *Context) Uniform(lo, hi float64) float64 {
	return lo + c.Rand.Float64()*(hi-lo)
}

// Level resolves a level index. In endless mode indices past the table wrap
// around and cycle reports how many times they did.
func (c *Context) Level(index int) (lvl Level, cycle int, ok bool) {
	if index < 0 || len(c.Levels) == 0 {
		return Level{}, 0, false
	}
	if index < len(c.Levels) {
		return c.Levels[index], 0, true
	}
	if !c.Endless {
		return Level{}, 0, false
	}
	return c.Levels[index%len(c.Levels)], index / len(c.Levels), true
}

// budgetFor scales a level's room budget by difficulty and endless cycle.
func (c *Context) budgetFor(lvl Level, room, cycle int) int {
	scale := c.BudgetScale
	if scale <= 0 {
		scale = 1
	}
	scale *= 1 + 0.5*float64(cycle)
	budget := int(float64(lvl.Budget(room))*scale + 0.5)
	if budget < 1 && lvl.Budget(room) > 0 {
		budget = 1
	}
	return budget
}

// Weighted pairs an option with its relative weight.
type Weighted[T any] struct {
	Option T
	Weight float64
}

// WeightedPick selects one option with probability proportional to its
// weight. It reports false when no option has a positive weight.
func WeightedPick[T any](r *rand.Rand, options []Weighted[T]) (T, bool) {
	var zero T
	total := 0.0
	for _, o := range options {
		if o.Weight > 0 {
			total += o.Weight
		}
	}
	if total <= 0 {
		return zero, false
	}

	target := r.Float64() * total
	cum := 0.0
	last := -1
	for i, o := range options {
		if o.Weight <= 0 {
			continue
		}
		cum += o.Weight
		last = i
		if target < cum {
			return o.Option, true
		}
	}
	// Floating point rounding can leave target just above the final sum.
	return options[last].Option, true
}
