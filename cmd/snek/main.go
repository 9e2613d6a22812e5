// snek is classic Snake for the terminal.
//
// Usage:
//
//	snek                     - Play in the current terminal
//	snek play                - Same as above
//	snek serve               - Start SSH server for remote play
//	snek sim                 - Replay scripted input headlessly and print the result
//
// Global flags:
//
//	--fps <rate>     - Set frame rate (default: timing.tick_rate from config)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--config <path>  - Load a custom snake.yaml
//	--verbose        - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jharviy/snake/internal/config"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snek",
	Short: "Snake in your terminal",
	Long: `snek is the classic Snake game for the terminal.

Steer the snake with the arrow keys or WASD, eat food to grow, and avoid
running into yourself. The board wraps around at the edges.

Available commands:
  play     - Play in the current terminal (default)
  serve    - Start SSH server for remote play
  sim      - Replay scripted input without a terminal

Examples:
  snek
  snek --seed 42
  snek serve --ssh :2222
  snek sim --seed 1 --ticks 50 --inputs "RRRRDDDD"`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = use config timing.tick_rate)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake.yaml")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}

// newLogger returns the CLI logger, writing to stderr.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig resolves the game configuration from --config and the
// default search path.
func loadConfig(logger *log.Logger) (config.SnakeConfig, error) {
	cfg, source, err := config.LoadSnake(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, err
	}
	logger.Debug("loaded config", "source", source,
		"board", fmt.Sprintf("%dx%d/%d", cfg.Board.Width, cfg.Board.Height, cfg.Board.Cell))
	return cfg, nil
}

// tickRate returns --fps when set, otherwise the configured rate.
func tickRate(cfg config.SnakeConfig) int {
	if flagFPS > 0 {
		return flagFPS
	}
	return cfg.Timing.TickRate
}
