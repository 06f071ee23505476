package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-battleship/internal/config"
	"github.com/vovakirdan/tui-battleship/internal/savegame"
	"github.com/vovakirdan/tui-battleship/internal/storage"
)

// newLogger creates the application logger. Unknown levels fall back to info.
func newLogger(w io.Writer, level string) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "battleship",
	})
	if lvl, err := log.ParseLevel(level); err == nil {
		l.SetLevel(lvl)
	}
	return l
}

// services bundles the persistence layer for one command.
type services struct {
	saves *savegame.Store
	db    *storage.Store // nil when the results database is unavailable
}

func (s *services) Close() {
	if s.db != nil {
		s.db.Close()
	}
}

// openServices wires the save store to the configured backend. The SQLite
// database also records results, so with the file backend it is opened
// best-effort.
func openServices(cfg config.Config, l *log.Logger) (*services, error) {
	names := savegame.NewNameGenerator(cfg.Game.Seed)
	svc := &services{}

	switch cfg.Saves.Backend {
	case config.BackendSQLite:
		db, err := storage.Open(cfg.Saves.DBPath)
		if err != nil {
			return nil, err
		}
		svc.db = db
		svc.saves = savegame.NewStore(db, names, l)

	default:
		dir, err := cfg.SaveDir()
		if err != nil {
			return nil, err
		}
		backend, err := savegame.NewDirBackend(dir)
		if err != nil {
			return nil, err
		}
		svc.saves = savegame.NewStore(backend, names, l)

		db, err := storage.Open(cfg.Saves.DBPath)
		if err != nil {
			l.Warn("results database unavailable, statistics will not be recorded", "error", err)
		} else {
			svc.db = db
		}
	}
	return svc, nil
}

// openLogFile sends logs to a file while the alt-screen TUI owns the terminal.
func openLogFile(cfg config.Config) (*os.File, error) {
	path := cfg.Log.File
	if path == "" {
		dir, err := cfg.SaveDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(filepath.Dir(dir), "battleship.log")
	}
	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}
