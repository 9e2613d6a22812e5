package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jharviy/snake/internal/core"
	"github.com/jharviy/snake/internal/games/snake"
	"github.com/jharviy/snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game of Snake in the current terminal.

Controls:
  Arrows/WASD  - Steer
  P            - Pause
  Space/R      - New game (after game over)
  Esc/Q        - Quit

Examples:
  snek play
  snek play --seed 42
  snek play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger := newLogger("snek")

	gameCfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate(gameCfg),
		Seed:     flagSeed,
	}

	return tui.Run(snake.New(gameCfg.Options()), cfg, logger)
}
