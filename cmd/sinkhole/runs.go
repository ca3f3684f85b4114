package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sinkhole/internal/platform/tui"
	"github.com/vovakirdan/sinkhole/internal/storage"
)

var (
	flagRunsRecent bool
	flagRunsPlain  bool
	flagRunsLimit  int
	flagRunID      string
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show stored runs",
	Long: `Browse finished runs. On a terminal this opens an interactive viewer
with best and recent tabs; with --plain, or when output is piped, it
prints a table instead.

Examples:
  sinkhole runs
  sinkhole runs --plain --recent
  sinkhole runs --plain --limit 50 > runs.txt
  sinkhole runs --id 1b4e28ba-2fa1-11d2-883f-0016d3cca427`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagRunsRecent, "recent", false, "List newest runs instead of best")
	runsCmd.Flags().BoolVar(&flagRunsPlain, "plain", false, "Print a table instead of the interactive viewer")
	runsCmd.Flags().IntVarP(&flagRunsLimit, "limit", "n", 10, "Number of runs to print")
	runsCmd.Flags().StringVar(&flagRunID, "id", "", "Show a single run")
}

func runRuns(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagRunID != "":
		err = printRun(store, flagRunID)
	case flagRunsPlain || !term.IsTerminal(int(os.Stdout.Fd())):
		err = printRuns(store)
	default:
		cfg := terminalConfig()
		_, err = tui.RunRuns(store, cfg.ScreenW, cfg.ScreenH)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

func printRuns(store *storage.Store) error {
	title := "Best Runs"
	runs, err := store.BestRuns(flagRunsLimit)
	if flagRunsRecent {
		title = "Recent Runs"
		runs, err = store.RecentRuns(flagRunsLimit)
	}
	if err != nil {
		return err
	}

	fmt.Println(tableTitleStyle.Render(title))
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	t := newTable("#", "Score", "Depth", "Kills", "Upg", "Mult", "Time", "Player", "Date")
	for i, r := range runs {
		t.Row(
			strconv.Itoa(i+1),
			strconv.Itoa(r.Score),
			strconv.Itoa(int(r.Depth)),
			strconv.Itoa(r.Kills),
			strconv.Itoa(r.Upgrades),
			fmt.Sprintf("x%.2f", r.Multiplier),
			formatSeconds(r.Duration),
			r.Player,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	fmt.Println(t.Render())

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println(tableDimStyle.Render(fmt.Sprintf(
		"%d runs  best %d  deepest %d  kills %d  avg %.0f",
		stats.Runs, stats.BestScore, int(stats.BestDepth), stats.TotalKills, stats.AvgScore,
	)))
	return nil
}

func printRun(store *storage.Store, id string) error {
	r, err := store.Run(id)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("no run with id %q", id)
	}

	t := newTable("Field", "Value").
		Row("ID", r.ID).
		Row("Player", r.Player).
		Row("Seed", strconv.FormatInt(r.Seed, 10)).
		Row("Score", strconv.Itoa(r.Score)).
		Row("Depth", strconv.Itoa(int(r.Depth))).
		Row("Kills", strconv.Itoa(r.Kills)).
		Row("Upgrades", strconv.Itoa(r.Upgrades)).
		Row("Multiplier", fmt.Sprintf("x%.2f", r.Multiplier)).
		Row("Time", formatSeconds(r.Duration)).
		Row("Date", r.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Println(t.Render())
	fmt.Println()
	fmt.Printf("Play the same shaft: sinkhole play --seed %d\n", r.Seed)
	return nil
}

func formatSeconds(secs float64) string {
	return (time.Duration(secs) * time.Second).String()
}
