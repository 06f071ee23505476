package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/game"
	"github.com/vovakirdan/tui-battleship/internal/platform/tui"
)

var flagLoad string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the tracker",
	Long: `Start the battleship tracker.

Controls:
  1-5          - Pick a ship to place (Carrier, Battleship, Cruiser, Submarine, Destroyer)
  Arrows/WASD  - Move the cursor
  Space        - Rotate the ship being placed
  Enter        - Place the ship / resolve a shot at the cursor on your board
  Esc          - Cancel placement
  Tab          - Switch between your board and the opponent board
  H / M / C    - Mark hit / miss / clear (opponent board); H and M resolve a shot on yours
  R            - Reset everything
  Ctrl+S       - Save (empty name = generated adjective-noun-verb name)
  Ctrl+L       - Browse and load saves
  Q/Ctrl+C     - Quit

Examples:
  battleship play
  battleship play --load brave-harbor-sails
  battleship play --backend sqlite`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLoad, "load", "", "Saved game to start from")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg := appConfig

	// The TUI owns the terminal, so logs go to a file.
	logFile, err := openLogFile(cfg)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	defer logFile.Close()
	fileLog := newLogger(logFile, cfg.Log.Level)

	svc, err := openServices(cfg, fileLog)
	if err != nil {
		return err
	}
	defer svc.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Game.TickRate,
	}

	g := game.NewGame(svc.saves, fileLog)
	var results tui.ResultSaver
	if svc.db != nil {
		results = svc.db
	}
	model := tui.NewModel(g, svc.saves, results, rc, fileLog)

	if flagLoad != "" {
		if err := model.Load(flagLoad); err != nil {
			return err
		}
	}

	fileLog.Info("session started", "backend", cfg.Saves.Backend, "load", flagLoad)
	return tui.Run(model)
}
