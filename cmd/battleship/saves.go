package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battleship/internal/board"
	"github.com/vovakirdan/tui-battleship/internal/game"
)

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "List, show or delete saved games",
	Long: `Manage saved games in the configured backend.

Examples:
  battleship saves list
  battleship saves show brave-harbor-sails
  battleship saves delete brave-harbor-sails
  battleship saves list --backend sqlite`,
}

var savesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved games, newest first",
	Args:  cobra.NoArgs,
	RunE:  runSavesList,
}

var savesShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Print both boards of a saved game",
	Args:  cobra.ExactArgs(1),
	RunE:  runSavesShow,
}

var savesDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a saved game",
	Args:  cobra.ExactArgs(1),
	RunE:  runSavesDelete,
}

func init() {
	savesCmd.AddCommand(savesListCmd)
	savesCmd.AddCommand(savesShowCmd)
	savesCmd.AddCommand(savesDeleteCmd)
}

func runSavesList(_ *cobra.Command, _ []string) error {
	svc, err := openServices(appConfig, logger)
	if err != nil {
		return err
	}
	defer svc.Close()

	entries, err := svc.saves.List()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No saved games.")
		return nil
	}

	fmt.Printf("%-36s  %s\n", "Name", "Saved")
	fmt.Println(strings.Repeat("-", 56))
	for _, e := range entries {
		fmt.Printf("%-36s  %s\n", e.Name, e.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func runSavesShow(_ *cobra.Command, args []string) error {
	svc, err := openServices(appConfig, logger)
	if err != nil {
		return err
	}
	defer svc.Close()

	s, err := game.Load(svc.saves, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Save: %s\n", args[0])
	fmt.Printf("Phase: %s, ships placed: %d/%d\n", s.Phase, len(s.Placed), board.KindCount)
	st := s.Stats()
	fmt.Printf("Shots: %d  Hits: %d  Misses: %d  Sunk: %d/%d\n\n", st.Shots, st.Hits, st.Misses, st.Sunk, board.KindCount)

	opponent := s.OpponentView()
	printBoards(os.Stdout, &s.PlayerGrid, &opponent)
	return nil
}

func runSavesDelete(_ *cobra.Command, args []string) error {
	svc, err := openServices(appConfig, logger)
	if err != nil {
		return err
	}
	defer svc.Close()

	if err := svc.saves.Delete(args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted %s\n", args[0])
	return nil
}

// printBoards writes the player and opponent boards side by side.
func printBoards(w io.Writer, player, opponent *board.Grid) {
	header := "   " + columnLabels()
	fmt.Fprintf(w, "%-26s    %s\n", "Your Fleet", "Opponent")
	fmt.Fprintf(w, "%-26s    %s\n", header, header)
	for row := 0; row < board.Size; row++ {
		fmt.Fprintf(w, "%2d %-23s    %2d %s\n", row+1, boardRow(player, row), row+1, boardRow(opponent, row))
	}
}

func columnLabels() string {
	var b strings.Builder
	for col := 0; col < board.Size; col++ {
		if col > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(byte('A' + col))
	}
	return b.String()
}

func boardRow(g *board.Grid, row int) string {
	var b strings.Builder
	for col := 0; col < board.Size; col++ {
		if col > 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(cellGlyph(g.At(col, row)))
	}
	return b.String()
}

func cellGlyph(c board.CellState) rune {
	switch c {
	case board.Ship:
		return '#'
	case board.Hit:
		return 'X'
	case board.Miss:
		return 'o'
	default:
		return '.'
	}
}
