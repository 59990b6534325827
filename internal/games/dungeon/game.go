// Package dungeon hosts the dungeon simulation as an arcade game: it owns the
// timer scheduler, latches terminal key presses into held actions, feeds
// the fixed-step simulation and rasterizes its drawables.
package dungeon

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dungeon/internal/config"
	"github.com/vovakirdan/tui-dungeon/internal/core"
	"github.com/vovakirdan/tui-dungeon/internal/games/dungeon/sim"
	"github.com/vovakirdan/tui-dungeon/internal/registry"
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Clear every level to win
	ModeEndless                  // Levels wrap with growing budgets
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives run lifecycle events
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger routes run lifecycle logging. A nil logger silences it.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements registry.Game around the dungeon simulation.
type Game struct {
	mode GameMode

	runtime    core.RuntimeConfig
	cfg        config.DungeonConfig
	difficulty *config.DifficultyManager
	log        *log.Logger

	ctx   *sim.Context
	world sim.World
	sched *Scheduler
	latch *inputLatch

	dt        float64
	tickCount int
	paused    bool
	reported  bool // Whether the end of the run has been logged
}

// New creates a new dungeon game instance (campaign mode).
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new dungeon game instance in endless mode.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "dungeon_endless"
	}
	return "dungeon"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Dungeon (Endless)"
	}
	return "Dungeon"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.log = logger.With("game", g.ID(), "seed", runtime.Seed)

	// Load game config
	cfg, err := config.LoadDungeon(configPath)
	if err != nil {
		g.log.Warn("using default config", "err", err)
		cfg = config.DefaultDungeonConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyDungeonPreset(&cfg, difficultyPreset)
	}

	ctx, err := newContext(cfg, runtime.Seed, g.mode == ModeEndless)
	if err != nil {
		g.log.Warn("invalid config content, using defaults", "err", err)
		cfg = config.DefaultDungeonConfig()
		if difficultyPreset != "" {
			config.ApplyDungeonPreset(&cfg, difficultyPreset)
		}
		ctx, _ = newContext(cfg, runtime.Seed, g.mode == ModeEndless)
	}

	g.cfg = cfg
	g.ctx = ctx
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.dt = runtime.DeltaTime()
	g.tickCount = 0
	g.paused = false
	g.reported = false
	g.latch = newInputLatch(cfg.Gameplay.HoldTicks)
	g.sched = NewScheduler()

	world, timers := sim.NewRun(g.ctx)
	g.world = world
	g.sched.Schedule(timers)
	g.applyDifficulty()

	g.log.Debug("run started", "difficulty", g.difficulty.Level(0, 0), "endless", g.mode == ModeEndless)
}

// applyDifficulty pushes the current difficulty into the simulation context.
func (g *Game) applyDifficulty() {
	rooms := g.world.RoomsCleared
	g.ctx.BudgetScale = g.difficulty.BudgetScale(rooms, g.tickCount)
	g.ctx.Tuning.PlayerHitDamage = g.difficulty.HitDamage(g.cfg.Player.HitDamage, rooms, g.tickCount)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.world.Over() {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.world.Over() {
		g.paused = !g.paused
		g.latch.Release()
	}
	if g.paused || g.world.Over() {
		return core.StepResult{State: g.State()}
	}

	events := g.sched.Advance(g.dt)
	for _, a := range g.latch.Update(in) {
		events.Add(sim.Named(a.String()))
	}

	prev := g.world
	g.applyDifficulty()
	world, timers := sim.Step(g.ctx, prev, events, g.dt)
	g.world = world
	g.sched.Schedule(timers)
	g.tickCount++

	g.logTransitions(prev)

	return core.StepResult{State: g.State()}
}

// logTransitions reports room changes and the end of the run.
func (g *Game) logTransitions(prev sim.World) {
	w := g.world
	if w.RoomIndex != prev.RoomIndex || w.LevelIndex != prev.LevelIndex {
		if !w.Won {
			g.log.Info("room entered",
				"level", w.LevelIndex+1,
				"room", w.RoomIndex+1,
				"enemies", len(w.Enemies),
				"health", w.Player.Health)
		}
	}
	if g.reported || !w.Over() {
		return
	}
	g.reported = true
	if w.Won {
		g.log.Info("run won", "score", w.Score(), "kills", w.Kills, "ticks", g.tickCount)
	} else {
		g.log.Info("player died",
			"score", w.Score(),
			"level", w.LevelIndex+1,
			"room", w.RoomIndex+1,
			"ticks", g.tickCount)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:        g.world.Score(),
		GameOver:     g.world.Over(),
		Won:          g.world.Won,
		Paused:       g.paused,
		Level:        g.world.LevelIndex,
		Room:         g.world.RoomIndex,
		Kills:        g.world.Kills,
		RoomsCleared: g.world.RoomsCleared,
	}
}

// World returns the current simulation snapshot.
func (g *Game) World() sim.World {
	return g.world
}

// Ticks returns the number of simulated ticks since the last reset.
func (g *Game) Ticks() int {
	return g.tickCount
}

func init() {
	registry.Register("dungeon", func() registry.Game {
		return New()
	})
	registry.Register("dungeon_endless", func() registry.Game {
		return NewEndless()
	})
}
