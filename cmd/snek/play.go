package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/plus3/snek/app"
	"github.com/plus3/snek/config"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game in a new window.

Controls:
  Arrow keys - Steer the snake
  R          - Restart (after game over)
  F3         - Toggle the debug overlay (needs --debug)
  Esc/Q      - Quit

Examples:
  snek play
  snek play --seed 42
  snek play --debug --mute
  snek play --config ./my-snek.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snek",
	})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("could not load config", "error", err)
	}

	g, err := app.New(cfg, app.Options{
		Seed:  flagSeed,
		Debug: flagDebug,
		Mute:  flagMute,
	}, logger)
	if err != nil {
		logger.Fatal("could not build the game", "error", err)
	}

	logger.Info("starting",
		"arena", fmt.Sprintf("%dx%d", cfg.Arena.Width, cfg.Arena.Height),
		"window", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height),
	)

	// Close the audio device and the store before any exit
	runErr := g.Run()
	g.Close()

	if runErr != nil {
		logger.Fatal("game exited with error", "error", runErr)
	}
}
