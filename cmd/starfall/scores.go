package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfall/internal/games/starfall"
	"github.com/vovakirdan/starfall/internal/platform/tui"
	"github.com/vovakirdan/starfall/internal/registry"
	"github.com/vovakirdan/starfall/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresMine  bool
	flagScoresTable bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best recorded Starfall runs.

Examples:
  starfall scores
  starfall scores --limit 20
  starfall scores --mine
  starfall scores --table`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresMine, "mine", false, "Show only your runs, newest first")
	scoresCmd.Flags().BoolVar(&flagScoresTable, "table", false, "Browse scores in an interactive table")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresTable {
		width, height := terminalSize()
		return tui.RunScoreboard(store, starfall.GameID, playerName(), width, height)
	}

	return printScores(os.Stdout, store, playerName(), flagScoresMine, flagScoresLimit)
}

// printScores writes a plain-text leaderboard.
func printScores(w io.Writer, store *storage.Store, player string, mine bool, limit int) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	if mine {
		scores, err = store.PlayerScores(starfall.GameID, player, limit)
	} else {
		scores, err = store.TopScores(starfall.GameID, limit)
	}
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	title := starfall.GameID
	if info, ok := registry.Info(starfall.GameID); ok {
		title = info.Title
	}
	if mine {
		fmt.Fprintf(w, "Your runs - %s\n", player)
	} else {
		fmt.Fprintf(w, "High Scores - %s\n", title)
	}
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'starfall play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-12s  %-8s  %-6s  %s\n", "Rank", "Pilot", "Score", "Time", "Date")
	fmt.Fprintf(w, "  %-4s  %-12s  %-8s  %-6s  %s\n", "----", "-----", "-----", "----", "----")

	for i, entry := range scores {
		pilot := entry.Player
		if pilot == "" {
			pilot = "anonymous"
		}
		fmt.Fprintf(w, "  %-4d  %-12s  %-8d  %-6s  %s\n",
			i+1, pilot, entry.Score, formatRunTime(entry.Duration), entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(starfall.GameID)
	if err == nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Best: %d   Runs: %d   Average: %.1f\n", stats.HighScore, stats.Runs, stats.AvgScore)
	}
	return nil
}

// formatRunTime formats a run duration as m:ss.
func formatRunTime(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
