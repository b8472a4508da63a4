package game

import (
	"errors"
	"fmt"
	"time"
)

// Config holds round tuning. Durations are real time, not frames.
type Config struct {
	// Choices is the number of symbols on offer.
	Choices int `yaml:"choices" env:"CHOICES" envDefault:"4"`

	// RevealDelay is how long the mystery icon spins before the winner shows.
	RevealDelay time.Duration `yaml:"reveal_delay" env:"REVEAL_DELAY" envDefault:"1s"`

	// WinMessageDelay separates the confetti burst from the win message.
	WinMessageDelay time.Duration `yaml:"win_message_delay" env:"WIN_MESSAGE_DELAY" envDefault:"1200ms"`

	// PlayAgainDelay separates the result message from the play again control.
	PlayAgainDelay time.Duration `yaml:"play_again_delay" env:"PLAY_AGAIN_DELAY" envDefault:"600ms"`

	// ConfettiCount is the number of particles in a win burst.
	ConfettiCount int `yaml:"confetti_count" env:"CONFETTI_COUNT" envDefault:"100"`
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		Choices:         4,
		RevealDelay:     time.Second,
		WinMessageDelay: 1200 * time.Millisecond,
		PlayAgainDelay:  600 * time.Millisecond,
		ConfettiCount:   100,
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Choices < 2 {
		return fmt.Errorf("choices must be at least 2, got %d", c.Choices)
	}
	if c.RevealDelay < 0 || c.WinMessageDelay < 0 || c.PlayAgainDelay < 0 {
		return errors.New("delays must not be negative")
	}
	if c.ConfettiCount < 0 {
		return fmt.Errorf("confetti count must not be negative, got %d", c.ConfettiCount)
	}
	return nil
}
