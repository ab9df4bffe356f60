package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfall/internal/games/starfall"
	"github.com/vovakirdan/starfall/internal/platform/tui"
	"github.com/vovakirdan/starfall/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Starfall",
	Long: `Start a game of Starfall in this terminal.

The game opens on the main menu. Press G to enter the arena and M to
return to the menu. Running into an enemy ends the run.

Controls:
  Arrows/WASD/HJKL - Move
  G                - Enter game
  M                - Main menu
  Space            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot
  ?                - Full help
  Q/Ctrl+C         - Quit

Examples:
  starfall play
  starfall play --seed 42
  starfall play --config ./my-starfall.yaml --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, logFile, err := newFileLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer logFile.Close()

	game, err := registry.Create(starfall.GameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	player, closeAudio := newPlayer(cfg.Audio, logger)
	defer closeAudio()

	width, height := terminalSize()
	if err := tui.Run(game, runtimeConfig(width, height), localOptions(cfg, store, logger, player)); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
