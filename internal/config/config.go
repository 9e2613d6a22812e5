// Package config provides YAML-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"

	"github.com/jharviy/snake/internal/games/snake"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Snake  ActorConfig  `yaml:"snake"`
	Timing TimingConfig `yaml:"timing"`
}

// BoardConfig defines the board geometry in pixels.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Cell   int `yaml:"cell"`
}

// ActorConfig defines the snake at the start of every game.
type ActorConfig struct {
	InitialLength    int    `yaml:"initial_length"`
	InitialDirection string `yaml:"initial_direction"`
}

// TimingConfig defines real-time pacing. It is consumed by the platform
// and the frame adapter only; the core advances one tick per Step.
type TimingConfig struct {
	TickRate       int `yaml:"tick_rate"`        // Frames per second
	MoveEveryTicks int `yaml:"move_every_ticks"` // Frames between snake moves
}

// Validate checks the configuration for values the game cannot run with.
func (c SnakeConfig) Validate() error {
	b := c.Board
	switch {
	case b.Cell <= 0:
		return fmt.Errorf("%w: board.cell must be positive, got %d", ErrInvalidConfig, b.Cell)
	case b.Width <= 0 || b.Height <= 0:
		return fmt.Errorf("%w: board size must be positive, got %dx%d", ErrInvalidConfig, b.Width, b.Height)
	case b.Width%b.Cell != 0 || b.Height%b.Cell != 0:
		return fmt.Errorf("%w: board %dx%d is not a multiple of cell %d", ErrInvalidConfig, b.Width, b.Height, b.Cell)
	}

	dir, err := snake.ParseDirection(c.Snake.InitialDirection)
	if err != nil {
		return fmt.Errorf("%w: snake.initial_direction: %v", ErrInvalidConfig, err)
	}

	if c.Snake.InitialLength < 1 {
		return fmt.Errorf("%w: snake.initial_length must be at least 1, got %d", ErrInvalidConfig, c.Snake.InitialLength)
	}

	// The starting snake must not wrap into its own head
	cells := b.Width / b.Cell
	if dir == snake.DirUp || dir == snake.DirDown {
		cells = b.Height / b.Cell
	}
	if c.Snake.InitialLength >= cells {
		return fmt.Errorf("%w: snake.initial_length %d does not fit in %d cells", ErrInvalidConfig, c.Snake.InitialLength, cells)
	}

	if c.Timing.TickRate <= 0 {
		return fmt.Errorf("%w: timing.tick_rate must be positive, got %d", ErrInvalidConfig, c.Timing.TickRate)
	}
	if c.Timing.MoveEveryTicks <= 0 {
		return fmt.Errorf("%w: timing.move_every_ticks must be positive, got %d", ErrInvalidConfig, c.Timing.MoveEveryTicks)
	}

	return nil
}

// Grid returns the board geometry.
func (c SnakeConfig) Grid() snake.Grid {
	return snake.Grid{
		Width:  c.Board.Width,
		Height: c.Board.Height,
		Cell:   c.Board.Cell,
	}
}

// Settings converts the configuration to core game settings.
// Call Validate first; an unknown direction falls back to right.
func (c SnakeConfig) Settings() snake.Settings {
	dir, err := snake.ParseDirection(c.Snake.InitialDirection)
	if err != nil {
		dir = snake.DirRight
	}
	return snake.Settings{
		Grid:    c.Grid(),
		BodyLen: c.Snake.InitialLength,
		Dir:     dir,
	}
}

// Options converts the configuration to frame adapter options.
func (c SnakeConfig) Options() snake.Options {
	return snake.Options{
		Settings:       c.Settings(),
		MoveEveryTicks: c.Timing.MoveEveryTicks,
	}
}
