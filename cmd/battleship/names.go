package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battleship/internal/savegame"
)

var flagNameCount int

var namesCmd = &cobra.Command{
	Use:   "names",
	Short: "Print generated save names",
	Long: `Print adjective-noun-verb names as used for saves made without a name.

Examples:
  battleship names
  battleship names -n 10 --seed 42`,
	Args: cobra.NoArgs,
	RunE: runNames,
}

func init() {
	namesCmd.Flags().IntVarP(&flagNameCount, "count", "n", 5, "How many names to print")
}

func runNames(_ *cobra.Command, _ []string) error {
	if flagNameCount < 1 {
		return fmt.Errorf("count must be positive, got %d", flagNameCount)
	}
	gen := savegame.NewNameGenerator(appConfig.Game.Seed)
	for i := 0; i < flagNameCount; i++ {
		fmt.Println(gen.Generate())
	}
	return nil
}
