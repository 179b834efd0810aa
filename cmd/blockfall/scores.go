package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	flagLimit  int
	flagAll    bool
	flagRecent bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top high scores for a mode, or a summary of every mode.

Examples:
  blockfall scores
  blockfall scores normal
  blockfall scores blitz --limit 20
  blockfall scores normal --all
  blockfall scores --recent
  blockfall scores hard --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "Show every score for the mode")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent games across modes")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every score for the mode")
}

func runScores(cmd *cobra.Command, args []string) error {
	reg := registry.Defaults()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagRecent {
		return printRecent(out, store, flagLimit)
	}
	if len(args) == 0 {
		if flagClear {
			return fmt.Errorf("--clear needs a mode")
		}
		return printSummary(out, reg, store)
	}

	mode, err := reg.Get(args[0])
	if err != nil {
		return fmt.Errorf("%w (run 'blockfall modes' to see available modes)", err)
	}

	if flagClear {
		if err := store.ClearScores(mode.ID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared scores for %s.\n", mode.Title)
		return nil
	}

	var scores []storage.Record
	if flagAll {
		scores, err = store.AllScores(mode.ID)
	} else {
		scores, err = store.TopScores(mode.ID, flagLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}
	return printTopScores(out, mode, store, scores)
}

func printTopScores(out io.Writer, mode registry.Mode, store *storage.Store, scores []storage.Record) error {
	fmt.Fprintf(out, "High Scores - %s\n\n", mode.Title)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'blockfall play --mode %s' to set the first high score!\n", mode.ID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-6s  %-8s  %s\n", "Rank", "Score", "Lines", "Pieces", "Time", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-6s  %-8s  %s\n", "----", "-----", "-----", "------", "----", "----")

	for i, r := range scores {
		fmt.Fprintf(out, "  %-4d  %-8d  %-5d  %-6d  %-8s  %s\n",
			i+1, r.Score, r.Lines, r.Pieces, r.Duration.Round(time.Second), r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	stats, err := store.GetModeStats(mode.ID)
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d  |  Games: %d  |  Average: %.0f  |  Lines: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalLines)
	}
	return nil
}

func printRecent(out io.Writer, store *storage.Store, limit int) error {
	scores, err := store.RecentScores(limit)
	if err != nil {
		return fmt.Errorf("retrieving recent scores: %w", err)
	}

	fmt.Fprintln(out, "Recent games")
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No games recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-16s  %-8s  %-8s  %-5s  %s\n", "Date", "Mode", "Score", "Lines", "Time")
	fmt.Fprintf(out, "  %-16s  %-8s  %-8s  %-5s  %s\n", "----", "----", "-----", "-----", "----")
	for _, r := range scores {
		fmt.Fprintf(out, "  %-16s  %-8s  %-8d  %-5d  %s\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Mode, r.Score, r.Lines, r.Duration.Round(time.Second))
	}
	return nil
}

func printSummary(out io.Writer, reg *registry.Registry, store *storage.Store) error {
	all, err := store.GetAllModeStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}

	fmt.Fprintln(out, "Blockfall scores")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-8s  %-5s  %-8s  %-8s  %-10s  %s\n", "Mode", "Games", "Best", "Average", "Played", "Last game")
	fmt.Fprintf(out, "  %-8s  %-5s  %-8s  %-8s  %-10s  %s\n", "----", "-----", "----", "-------", "------", "---------")

	for _, mode := range reg.List() {
		s, ok := all[mode.ID]
		if !ok {
			fmt.Fprintf(out, "  %-8s  %-5d  %-8s  %-8s  %-10s  %s\n", mode.ID, 0, "-", "-", "-", "-")
			continue
		}
		fmt.Fprintf(out, "  %-8s  %-5d  %-8d  %-8.0f  %-10s  %s\n",
			mode.ID, s.GamesCount, s.HighScore, s.AvgScore,
			s.TimePlayed.Round(time.Second), s.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
