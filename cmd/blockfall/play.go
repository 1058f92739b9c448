package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a local game.

Default controls:
  Left/A/H    - Move left
  Right/D/L   - Move right
  Down/S/J    - Soft drop
  Up/W/K      - Rotate clockwise
  P           - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit
  ?           - Toggle full help
  Ctrl+S      - Save a screenshot to ~/.blockfall/screenshots

Logs are discarded unless --log-file is set, since the game owns the terminal.

Examples:
  blockfall play
  blockfall play --seed 7
  blockfall play --config ./wide.yaml --log-file ~/.blockfall/blockfall.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	gameCfg, err := config.LoadBlockfall(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger.Info("starting local game",
		"field", fmt.Sprintf("%dx%d", gameCfg.Field.Width, gameCfg.Field.Height),
		"fall_interval_ms", gameCfg.Timing.FallIntervalMs,
		"fps", cfg.TickRate,
	)

	game := blockfall.New(gameCfg)
	keys := tui.NewKeyMapper(gameCfg.Controls)

	if err := tui.Run(game, keys, logger, cfg); err != nil {
		return err
	}
	return nil
}
