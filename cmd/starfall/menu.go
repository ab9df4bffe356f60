package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfall/internal/games/starfall"
	"github.com/vovakirdan/starfall/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the launcher with play and high score screens",
	Long: `Start Starfall in launcher mode.

Pick Play to start a run, High Scores to browse the leaderboard.
Leaving a finished or paused run with Esc returns to the launcher.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  starfall menu
  starfall menu --fps 30`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, logFile, err := newFileLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer logFile.Close()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	player, closeAudio := newPlayer(cfg.Audio, logger)
	defer closeAudio()

	width, height := terminalSize()
	return tui.RunSession(starfall.GameID, runtimeConfig(width, height), localOptions(cfg, store, logger, player))
}
