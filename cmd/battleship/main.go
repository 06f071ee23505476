// battleship is a terminal battleship tracker: place your fleet, record the
// opponent's shots against it and keep notes of your own shots.
//
// Usage:
//
//	battleship play [--load NAME]   - Start the tracker (optionally from a save)
//	battleship saves list           - List saved games
//	battleship saves show NAME      - Print a saved game
//	battleship saves delete NAME    - Delete a saved game
//	battleship stats                - Show finished-game statistics
//	battleship serve                - Start SSH server for remote play
//	battleship names [-n N]         - Print generated save names
//
// Global flags:
//
//	--config <path>    - Config file (default search: ~/.config/tui-battleship/config.yaml, ./configs/battleship.yaml)
//	--fps <rate>       - Set tick rate
//	--seed <value>     - Seed for generated save names
//	--backend <name>   - Save backend: file or sqlite
//	--save-dir <path>  - Directory for file saves
//	--db <path>        - SQLite database path
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battleship/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagEnvFile  string
	flagFPS      int
	flagSeed     int64
	flagBackend  string
	flagSaveDir  string
	flagDBPath   string
	flagLogLevel string

	// Resolved in PersistentPreRunE
	appConfig config.Config
	logger    *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "battleship",
	Short: "Battleship tracker for your terminal",
	Long: `Battleship is a terminal tracker for a game of Battleship played
across the table (or over a call). Place your five ships, record the
shots your opponent calls and keep your own hit/miss notes.

Available commands:
  play     - Start the tracker
  saves    - List, show or delete saved games
  stats    - Statistics of finished games
  serve    - Start SSH server for remote play
  names    - Print generated save names

Examples:
  battleship play
  battleship play --load brave-harbor-sails
  battleship saves list
  battleship serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to config YAML")
	pf.StringVar(&flagEnvFile, "env-file", ".env", "Optional .env file with BATTLESHIP_* variables")
	pf.IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "Seed for generated save names (0 = time based)")
	pf.StringVar(&flagBackend, "backend", config.BackendFile, "Save backend: file or sqlite")
	pf.StringVar(&flagSaveDir, "save-dir", "", "Directory for file saves")
	pf.StringVar(&flagDBPath, "db", "", "Path to the SQLite database")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(savesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(namesCmd)
}

// setup loads .env, the config file and environment overrides, then applies
// any flags given explicitly on the command line.
func setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(flagEnvFile); err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Game.TickRate = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Game.Seed = flagSeed
	}
	if flags.Changed("backend") {
		cfg.Saves.Backend = flagBackend
	}
	if flags.Changed("save-dir") {
		cfg.Saves.Dir = flagSaveDir
	}
	if flags.Changed("db") {
		cfg.Saves.DBPath = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	appConfig = cfg
	logger = newLogger(os.Stderr, cfg.Log.Level)
	logger.Debug("config loaded", "backend", cfg.Saves.Backend, "tick_rate", cfg.Game.TickRate)
	return nil
}
