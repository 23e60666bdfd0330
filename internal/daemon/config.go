// Package daemon manages the sprachlog daemon lifecycle and configuration.
package daemon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/sprachlog/sprachlog/internal/domain"
)

// Config holds all daemon configuration.
type Config struct {
	API           APIConfig                 `toml:"api"`
	Goals         domain.LearningGoals      `toml:"goals"`
	Pomodoro      PomodoroConfig            `toml:"pomodoro"`
	Notifications domain.NotificationPolicy `toml:"notifications"`
	Telemetry     TelemetryConfig           `toml:"telemetry"`
	Logging       LoggingConfig             `toml:"logging"`
}

// APIConfig controls the local HTTP API server.
type APIConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// PomodoroConfig controls the focus timer.
type PomodoroConfig struct {
	SessionMinutes int `toml:"session_minutes"`
	BreakMinutes   int `toml:"break_minutes"`
}

// TelemetryConfig controls observability endpoints.
type TelemetryConfig struct {
	Prometheus bool `toml:"prometheus"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			Host: "127.0.0.1",
			Port: 4877,
		},
		Goals: domain.DefaultGoals(),
		Pomodoro: PomodoroConfig{
			SessionMinutes: 25,
			BreakMinutes:   5,
		},
		Notifications: domain.DefaultNotificationPolicy(),
		Telemetry: TelemetryConfig{
			Prometheus: true,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(sprachlogHome(), "sprachlog.log"),
		},
	}
}

// LoadConfig reads config from ~/.sprachlog/config.toml, falling back to
// defaults when the file does not exist.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	path := filepath.Join(sprachlogHome(), "config.toml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // No config file yet, use defaults
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes the config to ~/.sprachlog/config.toml.
func SaveConfig(cfg Config) error {
	path := filepath.Join(sprachlogHome(), "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}

// sprachlogHome returns the sprachlog data directory.
func sprachlogHome() string {
	if env := os.Getenv("SPRACHLOG_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".sprachlog")
}

// Home is exported for use by other packages.
func Home() string {
	return sprachlogHome()
}
