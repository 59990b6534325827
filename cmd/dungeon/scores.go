package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dungeon/internal/registry"
	"github.com/vovakirdan/tui-dungeon/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the best runs",
	Long: `Display the best recorded runs for a game mode.

Examples:
  dungeon scores
  dungeon scores dungeon_endless --limit 20
  dungeon scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs for the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := modeID(args, false)

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'dungeon list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			return
		}
		fmt.Printf("Cleared runs for %s.\n", title)
		return
	}

	runs, err := store.TopRuns(gameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Println(titleStyle.Render("Best Runs - " + title))
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'dungeon play %s' to set the first score!\n", gameID)
		return
	}

	fmt.Println(runsTable(runs))

	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.RunsCount > 0 {
		fmt.Println()
		fmt.Println(dimStyle.Render(fmt.Sprintf(
			"%d runs  •  %d wins  •  best %d  •  avg %.0f  •  %d kills  •  last played %s",
			stats.RunsCount, stats.Wins, stats.HighScore, stats.AvgScore, stats.TotalKills,
			stats.LastPlayed.Format("2006-01-02 15:04"),
		)))
	}
}

// runsTable renders runs as a static table.
func runsTable(runs []storage.Run) string {
	columns := []table.Column{
		{Title: "Rank", Width: 4},
		{Title: "Score", Width: 8},
		{Title: "Kills", Width: 6},
		{Title: "Reached", Width: 12},
		{Title: "Result", Width: 6},
		{Title: "Seed", Width: 20},
		{Title: "Date", Width: 16},
	}

	rows := make([]table.Row, 0, len(runs))
	for i, r := range runs {
		result := "died"
		if r.Won {
			result = "won"
		}
		reached := fmt.Sprintf("L%d R%d", r.Level, r.Room)
		if r.Room == 0 {
			reached = fmt.Sprintf("L%d armory", r.Level)
		}
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Kills),
			reached,
			result,
			strconv.FormatInt(r.Seed, 10),
			r.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2), // header row plus its border
		table.WithFocused(false),
		table.WithStyles(s),
	)
	return t.View()
}
