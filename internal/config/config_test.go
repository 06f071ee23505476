package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Game.TickRate != 30 {
		t.Errorf("TickRate = %d, expected 30", cfg.Game.TickRate)
	}
	if cfg.Saves.Backend != BackendFile {
		t.Errorf("Backend = %q, expected %q", cfg.Saves.Backend, BackendFile)
	}
	if cfg.Server.SSHAddr != ":23234" {
		t.Errorf("SSHAddr = %q, expected :23234", cfg.Server.SSHAddr)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil", err)
	}
}

func TestLoadCustomPathLayersOverDefaults(t *testing.T) {
	path := writeConfig(t, "saves:\n  backend: sqlite\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cfg.Saves.Backend != BackendSQLite {
		t.Errorf("Backend = %q, expected %q", cfg.Saves.Backend, BackendSQLite)
	}
	if cfg.Game.TickRate != 30 {
		t.Errorf("TickRate = %d, expected default 30", cfg.Game.TickRate)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing file", filepath.Join(t.TempDir(), "nope.yaml"), "failed to read config"},
		{"bad yaml", writeConfig(t, "game: [\n"), "failed to parse config"},
		{"bad backend", writeConfig(t, "saves:\n  backend: floppy\n"), "unknown save backend"},
		{"bad tick rate", writeConfig(t, "game:\n  tick_rate: 0\n"), "tick_rate must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load() = %v, expected error containing %q", err, tt.want)
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("BATTLESHIP_BACKEND", "sqlite")
	t.Setenv("BATTLESHIP_SAVE_DIR", "/tmp/saves")
	t.Setenv("BATTLESHIP_TICK_RATE", "15")
	t.Setenv("BATTLESHIP_SSH_ADDR", ":2222")

	cfg := Default()
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatalf("ApplyEnv() = %v", err)
	}

	if cfg.Saves.Backend != BackendSQLite {
		t.Errorf("Backend = %q, expected sqlite", cfg.Saves.Backend)
	}
	if cfg.Saves.Dir != "/tmp/saves" {
		t.Errorf("Dir = %q, expected /tmp/saves", cfg.Saves.Dir)
	}
	if cfg.Game.TickRate != 15 {
		t.Errorf("TickRate = %d, expected 15", cfg.Game.TickRate)
	}
	if cfg.Server.SSHAddr != ":2222" {
		t.Errorf("SSHAddr = %q, expected :2222", cfg.Server.SSHAddr)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, unset variable should keep the default", cfg.Log.Level)
	}
}

func TestEnvParseError(t *testing.T) {
	t.Setenv("BATTLESHIP_TICK_RATE", "fast")

	cfg := Default()
	err := ApplyEnv(&cfg)
	if err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Errorf("ApplyEnv() = %v, expected parse env error", err)
	}
}

func TestLoadDotEnv(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("LoadDotEnv(missing) = %v, expected nil", err)
	}

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("BATTLESHIP_DOTENV_TEST=from-file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("BATTLESHIP_DOTENV_TEST") })

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv() = %v", err)
	}
	if got := os.Getenv("BATTLESHIP_DOTENV_TEST"); got != "from-file" {
		t.Errorf("BATTLESHIP_DOTENV_TEST = %q, expected from-file", got)
	}
}

func TestPaths(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandHome("~/saves")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, "saves"); got != want {
		t.Errorf("ExpandHome() = %q, expected %q", got, want)
	}
	if got, _ := ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandHome(abs) = %q, expected unchanged", got)
	}

	cfg := Default()
	cfg.Saves.Dir = "/tmp/explicit"
	if dir, _ := cfg.SaveDir(); dir != "/tmp/explicit" {
		t.Errorf("SaveDir() = %q, expected /tmp/explicit", dir)
	}

	cfg.Saves.Dir = ""
	dir, err := cfg.SaveDir()
	if err != nil {
		t.Skipf("no user config dir: %v", err)
	}
	if !strings.HasSuffix(dir, filepath.Join(AppName, "saves")) {
		t.Errorf("SaveDir() = %q, expected it under %s/saves", dir, AppName)
	}
}
