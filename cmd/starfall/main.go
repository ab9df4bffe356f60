// starfall is a terminal arcade game: dodge the red enemies, catch the stars.
//
// Usage:
//
//	starfall play            - Play in this terminal
//	starfall menu            - Start the launcher with menu and high scores
//	starfall serve           - Start SSH server for remote play
//	starfall scores          - Show high scores
//	starfall list            - List registered games
//	starfall config          - Print the default configuration
//
// Global flags:
//
//	--config <path>   - Game config YAML (default: search ~/.starfall/configs, ./configs)
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: ~/.starfall/scores.db)
//	--log-file <path> - Log destination (default: ~/.starfall/starfall.log)
//	--mute            - Disable audio cues
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfall/internal/storage"
)

var (
	// Global flags
	flagConfig  string
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagMute    bool
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starfall",
	Short: "Starfall - dodge enemies and catch stars in your terminal",
	Long: `Starfall is a small arcade game played in the terminal.

Steer the blue ball, catch the yellow stars and stay clear of the
red enemies. New enemies and stars keep arriving on timers.

Available commands:
  play     - Play directly in this terminal
  menu     - Launcher with high scores
  serve    - Start SSH server for remote play
  scores   - View high scores
  list     - Show registered games
  config   - Print the default configuration

Examples:
  starfall play
  starfall play --seed 42 --mute
  starfall menu
  starfall serve --ssh :2222
  starfall scores --mine`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", defaultLogFile, "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable audio cues")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log timer spawns and other debug events")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
