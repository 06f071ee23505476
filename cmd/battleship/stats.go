package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battleship/internal/storage"
)

var flagRecent int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics of finished games",
	Long: `Display statistics of games that ended with the whole fleet sunk.

Examples:
  battleship stats
  battleship stats --recent 20`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagRecent, "recent", 10, "Number of recent games to show")
}

func runStats(_ *cobra.Command, _ []string) error {
	db, err := storage.Open(appConfig.Saves.DBPath)
	if err != nil {
		return fmt.Errorf("cannot open database: %w", err)
	}
	defer db.Close()

	stats, err := db.GetStats()
	if err != nil {
		return err
	}
	if stats.Games == 0 {
		fmt.Println("No finished games yet.")
		return nil
	}

	fmt.Println("=== Battleship Statistics ===")
	fmt.Println()
	fmt.Printf("Games finished:   %d\n", stats.Games)
	fmt.Printf("Fewest shots:     %d\n", stats.BestShots)
	fmt.Printf("Average shots:    %.1f\n", stats.AvgShots)
	fmt.Printf("Total shots:      %d\n", stats.TotalShots)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played:      %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}

	recent, err := db.RecentResults(flagRecent)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Recent games:")
	fmt.Printf("%-6s %-8s %6s %6s %6s %10s  %s\n", "#", "Match", "Shots", "Hits", "Misses", "Duration", "Date")
	fmt.Println("------------------------------------------------------------------")
	for i, r := range recent {
		fmt.Printf("%-6d %-8s %6d %6d %6d %9ds  %s\n",
			i+1,
			shortID(r.MatchID),
			r.Shots,
			r.Hits,
			r.Misses,
			r.Duration,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
