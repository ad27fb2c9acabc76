package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresLimit int
	flagScoresClear bool
	flagScoresID    string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best runs, ranked by score and then distance.

Examples:
  platformer scores
  platformer scores --limit 25
  platformer scores --tui
  platformer scores --id 0b4c7f1e-3d52-4c1a-9a57-1f0e2b6d8c11
  platformer scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse runs in an interactive table")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to print")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs and scores")
	scoresCmd.Flags().StringVar(&flagScoresID, "id", "", "Show one run by its run ID")
}

func runScores(_ *cobra.Command, _ []string) {
	game, err := registry.Create(platformer.ID)
	if err != nil {
		exitf("creating game: %v", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitf("opening scores database: %v", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(platformer.ID); err != nil {
			store.Close()
			exitf("clearing scores: %v", err)
		}
		fmt.Println("All runs cleared.")
		return
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, platformer.ID, title, width, height); err != nil {
			store.Close()
			exitf("scoreboard: %v", err)
		}
		return
	}

	if flagScoresID != "" {
		run, err := store.RunByID(flagScoresID)
		if err != nil {
			store.Close()
			exitf("retrieving run: %v", err)
		}
		if run == nil {
			store.Close()
			exitf("no run with ID %q", flagScoresID)
		}
		writeRun(os.Stdout, run)
		return
	}

	if err := writeRuns(os.Stdout, store, title, flagScoresLimit); err != nil {
		store.Close()
		exitf("%v", err)
	}
}

// writeRuns prints the best runs. Databases that only hold plain scores
// (no run rows) fall back to the score list.
func writeRuns(out io.Writer, store *storage.Store, title string, limit int) error {
	runs, err := store.TopRuns(platformer.ID, limit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Fprintf(out, "Best Runs - %s\n\n", title)

	if len(runs) == 0 {
		return writeScores(out, store, limit)
	}

	fmt.Fprintf(out, "  %-4s  %-7s  %-9s  %-5s  %-4s  %-6s  %-16s  %s\n", "Rank", "Score", "Distance", "Kills", "Gems", "Seed", "Date", "ID")
	fmt.Fprintf(out, "  %-4s  %-7s  %-9s  %-5s  %-4s  %-6s  %-16s  %s\n", "----", "-----", "--------", "-----", "----", "----", "----", "--")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-7d  %-9d  %-5d  %-4d  %-6d  %-16s  %s\n",
			i+1, r.Score, r.MaxWorldX, r.EnemiesKilled, r.GemsCollected, r.Seed,
			r.CreatedAt.Format("2006-01-02 15:04"), r.RunID)
	}

	fmt.Fprintln(out)
	if stats, err := store.GetGameStats(platformer.ID); err == nil {
		fmt.Fprintf(out, "Runs: %d  Best: %d  Farthest: %d\n", stats.GamesCount, stats.HighScore, stats.BestDistance)
	}
	return nil
}

func writeScores(out io.Writer, store *storage.Store, limit int) error {
	scores, err := store.TopScores(platformer.ID, limit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}
	if len(scores) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'platformer play' to set the first one!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-7s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-7s  %s\n", "----", "-----", "----")
	for i, e := range scores {
		fmt.Fprintf(out, "  %-4d  %-7d  %s\n", i+1, e.Score, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func writeRun(out io.Writer, r *storage.RunRecord) {
	fmt.Fprintf(out, "Run %s\n\n", r.RunID)
	fmt.Fprintf(out, "  Seed:      %d\n", r.Seed)
	fmt.Fprintf(out, "  Score:     %d\n", r.Score)
	fmt.Fprintf(out, "  Distance:  %d\n", r.MaxWorldX)
	fmt.Fprintf(out, "  Kills:     %d\n", r.EnemiesKilled)
	fmt.Fprintf(out, "  Gems:      %d\n", r.GemsCollected)
	fmt.Fprintf(out, "  Deaths:    %d\n", r.Deaths)
	fmt.Fprintf(out, "  Ticks:     %d\n", r.Ticks)
	fmt.Fprintf(out, "  Date:      %s\n", r.CreatedAt.Local().Format(time.DateTime))
}
