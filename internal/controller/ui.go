// Package controller provides output adapters for displaying bowling scorecards.
package controller

import (
	"github.com/mouse-blink/bowlscore/internal/domain/bowling"
	m "github.com/mouse-blink/bowlscore/internal/model"
)

// CardMode defines how a scorecard is laid out.
type CardMode int

// Available CardMode values.
const (
	ModeCard CardMode = iota
	ModeTable
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode CardMode
}

// WithCardMode renders scorecards in the classic four line layout.
func WithCardMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeCard
	}
}

// WithTableMode renders scorecards as aligned tables.
func WithTableMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeTable
	}
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI defines the interface for displaying scored games.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	DisplayResult(result m.Result) error
	DisplaySummary(results []m.Result) error
	// Play reads rolls from the player until the game is complete or the
	// player quits. Rejected rolls are reported and asked for again.
	Play(game *bowling.Game) error
}
