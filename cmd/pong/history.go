package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagLimit int
	flagPlain bool
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [match-id]",
	Short: "Show recorded matches",
	Long: `Display recent matches, or every miss of one match.

A match can be selected by a unique prefix of its id. Without arguments
and with a terminal on stdout, an interactive browser is opened.

Examples:
  pong history
  pong history --plain --limit 20
  pong history 3f2a9c1e
  pong history --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of matches to list")
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain listing instead of the browser")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded matches")
}

func runHistory(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening match database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearHistory(); err != nil {
			return err
		}
		fmt.Println("Match history cleared.")
		return nil
	}

	if len(args) == 1 {
		return printMatch(store, args[0])
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			width, height = 80, 24
		}
		return tui.RunHistory(store, width, height)
	}
	return printMatches(store)
}

func printMatches(store *storage.Store) error {
	matches, err := store.RecentMatches(flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("Recent Matches")
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pong play' to record the first one!")
		return nil
	}

	fmt.Printf("  %-8s  %-12s  %-7s  %-6s  %-6s  %-8s  %s\n", "ID", "Player", "Level", "Score", "Rounds", "Length", "Date")
	fmt.Printf("  %-8s  %-12s  %-7s  %-6s  %-6s  %-8s  %s\n", "--", "------", "-----", "-----", "------", "------", "----")
	for _, m := range matches {
		fmt.Printf("  %-8s  %-12s  %-7s  %-6s  %-6d  %-8s  %s\n",
			shortID(m.ID), m.Player, m.Difficulty,
			fmt.Sprintf("%d-%d", m.LeftScore, m.RightScore),
			m.Rounds, formatDuration(m), m.StartedAt.Local().Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Matches: %d  Misses: %d  Left wins: %d  Right wins: %d\n",
			stats.Matches, stats.Misses, stats.LeftWins, stats.RightWins)
	}
	return nil
}

func printMatch(store *storage.Store, id string) error {
	match, err := store.FindMatch(id)
	switch {
	case errors.Is(err, storage.ErrMatchNotFound):
		return fmt.Errorf("no match with id %q", id)
	case errors.Is(err, storage.ErrAmbiguousMatch):
		return fmt.Errorf("id %q matches several matches, use a longer prefix", id)
	case err != nil:
		return err
	}

	misses, err := store.MatchMisses(match.ID)
	if err != nil {
		return err
	}

	fmt.Printf("Match %s - %s (%s)\n", match.ID, match.Player, match.Difficulty)
	fmt.Printf("Score %d - %d after %d rounds", match.LeftScore, match.RightScore, match.Rounds)
	if match.EndReason != "" {
		fmt.Printf(", ended by %s", match.EndReason)
	}
	fmt.Println()
	fmt.Println()

	if len(misses) == 0 {
		fmt.Println("Nobody missed in this match.")
		return nil
	}

	fmt.Printf("  %-5s  %-6s  %-6s  %s\n", "Round", "Missed", "Score", "Time")
	fmt.Printf("  %-5s  %-6s  %-6s  %s\n", "-----", "------", "-----", "----")
	for _, miss := range misses {
		fmt.Printf("  %-5d  %-6s  %-6s  %s\n",
			miss.Round, miss.Side,
			fmt.Sprintf("%d-%d", miss.LeftScore, miss.RightScore),
			miss.CreatedAt.Local().Format("15:04:05"))
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatDuration(m storage.Match) string {
	d := m.Duration()
	if d == 0 {
		return "-"
	}
	return d.Round(time.Second).String()
}
