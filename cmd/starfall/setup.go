package main

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vovakirdan/starfall/internal/audio"
	"github.com/vovakirdan/starfall/internal/audio/device"
	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/games/starfall"
	"github.com/vovakirdan/starfall/internal/platform/tui"
	"github.com/vovakirdan/starfall/internal/storage"
)

const defaultLogFile = "~/.starfall/starfall.log"

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// newFileLogger returns a logger writing to a size-rotated file.
// The alt screen owns stdout while a game runs, so logs never go there.
func newFileLogger(path string, debug bool) (*log.Logger, *lumberjack.Logger, error) {
	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}

	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
	}

	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(lj, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return logger, lj, nil
}

// loadGameConfig loads the game configuration and installs it for new games.
func loadGameConfig() (config.StarfallConfig, error) {
	cfg, err := config.LoadStarfall(flagConfig)
	if err != nil {
		return cfg, err
	}
	starfall.Configure(cfg)
	return cfg, nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// runtimeConfig builds the runtime config from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// playerName is the local pilot name recorded with runs.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}

// openStore opens the scores database. Games still run without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "db", flagDBPath, "err", err)
		return nil
	}
	return store
}

// newPlayer returns the audio player for local play, falling back to
// silence when audio is off or the device cannot be opened.
func newPlayer(cfg config.AudioConfig, logger *log.Logger) (audio.Player, func()) {
	if flagMute || !cfg.Enabled {
		return audio.Nop{}, func() {}
	}

	sp := device.NewSpeaker(cfg, logger)
	if err := sp.Init(); err != nil {
		logger.Warn("audio disabled", "err", err)
		return audio.Nop{}, func() {}
	}
	return sp, sp.Close
}

// localOptions assembles the collaborators of a local program.
func localOptions(cfg config.StarfallConfig, store *storage.Store, logger *log.Logger, player audio.Player) tui.Options {
	return tui.Options{
		Store:       store,
		Logger:      logger,
		Audio:       player,
		HoldTimeout: time.Duration(cfg.Simulation.HoldMS) * time.Millisecond,
		Player:      playerName(),
	}
}
