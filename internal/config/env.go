package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envOverrides maps environment variables onto Config. Unset variables
// leave the loaded value alone.
type envOverrides struct {
	Backend  string `env:"BATTLESHIP_BACKEND"`
	SaveDir  string `env:"BATTLESHIP_SAVE_DIR"`
	DBPath   string `env:"BATTLESHIP_DB_PATH"`
	TickRate int    `env:"BATTLESHIP_TICK_RATE"`
	SSHAddr  string `env:"BATTLESHIP_SSH_ADDR"`
	LogLevel string `env:"BATTLESHIP_LOG_LEVEL"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ApplyEnv overlays BATTLESHIP_* variables onto cfg.
func ApplyEnv(cfg *Config) error {
	var o envOverrides
	if err := ParseEnv(&o); err != nil {
		return err
	}
	if o.Backend != "" {
		cfg.Saves.Backend = o.Backend
	}
	if o.SaveDir != "" {
		cfg.Saves.Dir = o.SaveDir
	}
	if o.DBPath != "" {
		cfg.Saves.DBPath = o.DBPath
	}
	if o.TickRate != 0 {
		cfg.Game.TickRate = o.TickRate
	}
	if o.SSHAddr != "" {
		cfg.Server.SSHAddr = o.SSHAddr
	}
	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}
	return nil
}

// LoadDotEnv reads KEY=value pairs from path into the environment.
// A missing file is not an error; variables already set are kept.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}
