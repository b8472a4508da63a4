// Package config loads process settings from the environment and round
// tuning from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/samdwyer/luckysymbol/internal/game"
)

// Prefix is prepended to every environment variable name.
const Prefix = "LUCKYSYMBOL_"

// Settings holds everything the binary needs to start.
type Settings struct {
	// Seed for the winner draw and confetti. 0 picks a time-based seed.
	Seed int64 `env:"SEED"`

	// FPS is the animation frame rate.
	FPS int `env:"FPS" envDefault:"60"`

	LogFile  string `env:"LOG_FILE" envDefault:"luckysymbol.log"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// TuningFile optionally points at a YAML file overriding Game.
	TuningFile string `env:"TUNING_FILE"`

	// Telemetry enables OTLP trace export (configured by OTEL_* variables).
	Telemetry bool `env:"TELEMETRY" envDefault:"false"`

	Game game.Config `envPrefix:"GAME_"`
}

// Load reads .env files (missing files are ignored), parses LUCKYSYMBOL_*
// variables and applies the tuning file if one is configured.
func Load(envFiles ...string) (Settings, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("load .env: %w", err)
	}

	var s Settings
	if err := env.ParseWithOptions(&s, env.Options{Prefix: Prefix}); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}

	if s.TuningFile != "" {
		if err := LoadTuning(s.TuningFile, &s.Game); err != nil {
			return Settings{}, err
		}
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// LoadTuning overlays the YAML file at path onto cfg. Keys absent from the
// file keep their current values.
func LoadTuning(path string, cfg *game.Config) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tuning file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return fmt.Errorf("parse tuning file %s: %w", path, err)
	}
	return nil
}

// Validate reports the first invalid setting.
func (s Settings) Validate() error {
	if s.FPS <= 0 || s.FPS > 240 {
		return fmt.Errorf("fps must be between 1 and 240, got %d", s.FPS)
	}
	if err := s.Game.Validate(); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	return nil
}

// FrameInterval returns the wall-clock time between animation frames.
func (s Settings) FrameInterval() time.Duration {
	return time.Second / time.Duration(s.FPS)
}

// SeedOrNow returns the configured seed, or the current time when unset.
func (s Settings) SeedOrNow() int64 {
	if s.Seed != 0 {
		return s.Seed
	}
	return time.Now().UnixNano()
}
