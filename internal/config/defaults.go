package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the hardcoded reference configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:  1280,
			Height: 720,
			Cell:   40,
		},
		Snake: ActorConfig{
			InitialLength:    3,
			InitialDirection: "right",
		},
		Timing: TimingConfig{
			TickRate:       60,
			MoveEveryTicks: 7, // ~117ms per move, close to the classic 120ms
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
