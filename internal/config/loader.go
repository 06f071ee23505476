package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/battleship.yaml
var defaultYAML []byte

// Default returns the embedded default configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return fallback()
	}
	return cfg
}

// fallback is used only if the embedded document cannot be parsed.
func fallback() Config {
	return Config{
		Game:   GameConfig{TickRate: 30},
		Saves:  SavesConfig{Backend: BackendFile, DBPath: "~/.config/" + AppName + "/battleship.db"},
		Server: ServerConfig{SSHAddr: ":23234", IdleTimeout: 30},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads the configuration and applies environment overrides.
// Search order: customPath -> ~/.config/tui-battleship/config.yaml ->
// ./configs/battleship.yaml -> embedded default.
// Files are layered over the defaults, so a partial file only changes the
// keys it names.
func Load(customPath string) (Config, error) {
	cfg := Default()

	switch {
	case customPath != "":
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
	default:
		for _, path := range searchPaths() {
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			next := cfg
			if err := yaml.Unmarshal(data, &next); err == nil {
				cfg = next
				break
			}
		}
	}

	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// searchPaths lists the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", AppName, "config.yaml"))
	}
	return append(paths, filepath.Join("configs", "battleship.yaml"))
}
