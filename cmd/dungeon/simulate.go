package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-dungeon/internal/core"
	"github.com/vovakirdan/tui-dungeon/internal/games/dungeon"
	"github.com/vovakirdan/tui-dungeon/internal/storage"
)

var (
	flagRuns     int
	flagMaxTicks int
	flagParallel int
	flagSave     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless autopilot games",
	Long: `Play runs without a terminal UI, driven by the built-in autopilot.
Run i uses seed --seed + i, so a fixed --seed reproduces the whole batch.

Examples:
  dungeon simulate --runs 8 --seed 42
  dungeon simulate --endless --max-ticks 72000
  dungeon simulate --runs 100 --difficulty hard --save`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagRuns, "runs", 4, "Number of runs")
	simulateCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 36000, "Tick limit per run")
	simulateCmd.Flags().IntVar(&flagParallel, "parallel", runtime.NumCPU(), "Runs played at once")
	simulateCmd.Flags().BoolVar(&flagSave, "save", false, "Record finished runs in the database")
	simulateCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom dungeon config YAML")
	simulateCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	simulateCmd.Flags().BoolVar(&flagEndless, "endless", false, "Simulate endless mode")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if flagRuns <= 0 {
		return fmt.Errorf("--runs must be positive, got %d", flagRuns)
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	dungeon.SetConfigPath(flagConfig)
	dungeon.SetDifficultyPreset(flagDifficulty)

	base := flagSeed
	if base == 0 {
		base = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	results := make([]dungeon.RunSummary, flagRuns)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(flagParallel, 1))

	start := time.Now()
	for i := range flagRuns {
		eg.Go(func() error {
			g := dungeon.New()
			if flagEndless {
				g = dungeon.NewEndless()
			}
			g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: flagFPS, Seed: base + int64(i)})

			summary, err := dungeon.Simulate(ctx, g, flagMaxTicks)
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			results[i] = summary
			logger.Debug("run finished", "seed", summary.Seed, "score", summary.Score, "won", summary.Won)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	logger.Info("simulation done", "runs", flagRuns, "elapsed", time.Since(start).Round(time.Millisecond))

	printSummaries(results)

	if flagSave {
		return saveSummaries(results)
	}
	return nil
}

func printSummaries(results []dungeon.RunSummary) {
	fmt.Printf("  %-20s  %-8s  %-6s  %-6s  %-8s  %-6s  %s\n", "Seed", "Score", "Kills", "Rooms", "Reached", "Result", "Ticks")
	fmt.Printf("  %-20s  %-8s  %-6s  %-6s  %-8s  %-6s  %s\n", "----", "-----", "-----", "-----", "-------", "------", "-----")

	wins, total := 0, 0
	for _, r := range results {
		result := "died"
		switch {
		case r.Won:
			result = "won"
			wins++
		case r.Ticks >= flagMaxTicks:
			result = "limit"
		}
		total += r.Score
		fmt.Printf("  %-20d  %-8d  %-6d  %-6d  %-8s  %-6s  %d\n",
			r.Seed, r.Score, r.Kills, r.RoomsCleared, fmt.Sprintf("L%d R%d", r.Level, r.Room), result, r.Ticks)
	}

	fmt.Println()
	fmt.Printf("Wins: %d/%d  Avg score: %.1f\n", wins, len(results), float64(total)/float64(len(results)))
}

// saveSummaries records finished runs. Runs cut off by the tick limit are skipped.
func saveSummaries(results []dungeon.RunSummary) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open runs database: %w", err)
	}
	defer store.Close()

	saved := 0
	for _, r := range results {
		if r.Ticks >= flagMaxTicks && !r.Won {
			continue
		}
		if _, err := store.SaveRun(storage.Run{
			GameID:       r.Mode,
			Seed:         r.Seed,
			Score:        r.Score,
			Kills:        r.Kills,
			RoomsCleared: r.RoomsCleared,
			Level:        r.Level,
			Room:         r.Room,
			Won:          r.Won,
			Ticks:        r.Ticks,
		}); err != nil {
			return fmt.Errorf("save run %d: %w", r.Seed, err)
		}
		saved++
	}
	fmt.Printf("Saved %d runs to %s\n", saved, flagDBPath)
	return nil
}
