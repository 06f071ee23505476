// Package config provides YAML-based configuration loading with
// environment overrides for the battleship tracker.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AppName is used for the per-user configuration and data directories.
const AppName = "tui-battleship"

// Backend names accepted by SavesConfig.Backend.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config is the complete application configuration.
type Config struct {
	Game   GameConfig   `yaml:"game"`
	Saves  SavesConfig  `yaml:"saves"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// GameConfig controls the interactive session.
type GameConfig struct {
	TickRate int   `yaml:"tick_rate"`
	Seed     int64 `yaml:"seed"`
}

// SavesConfig selects where saved games live.
type SavesConfig struct {
	Backend string `yaml:"backend"`
	Dir     string `yaml:"dir"`
	DBPath  string `yaml:"db_path"`
}

// ServerConfig configures the SSH server.
type ServerConfig struct {
	SSHAddr     string `yaml:"ssh_addr"`
	HostKey     string `yaml:"host_key"`
	IdleTimeout int    `yaml:"idle_timeout"` // minutes
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Validate checks values that would otherwise fail much later.
func (c Config) Validate() error {
	switch c.Saves.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("config: unknown save backend %q (want %q or %q)", c.Saves.Backend, BackendFile, BackendSQLite)
	}
	if c.Game.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.Game.TickRate)
	}
	return nil
}

// SaveDir returns the save directory, falling back to the platform
// config directory when none is configured.
func (c Config) SaveDir() (string, error) {
	if c.Saves.Dir != "" {
		return ExpandHome(c.Saves.Dir)
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot locate user config directory: %w", err)
	}
	return filepath.Join(base, AppName, "saves"), nil
}

// HostKeyPath returns the SSH host key location.
func (c Config) HostKeyPath() (string, error) {
	if c.Server.HostKey != "" {
		return ExpandHome(c.Server.HostKey)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, ".config", AppName, "host_key"), nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
