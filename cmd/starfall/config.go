package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfall/internal/config"
)

var flagConfigCheck bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the embedded default configuration as YAML.

Save it to ~/.starfall/configs/starfall.yaml or ./configs/starfall.yaml
and edit the keys you want to change. With --check, the configuration
that would be loaded is validated instead.

Examples:
  starfall config > ~/.starfall/configs/starfall.yaml
  starfall config --check --config ./my-starfall.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigCheck, "check", false, "Validate the configuration that would be loaded")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagConfigCheck {
		if _, err := config.LoadStarfall(flagConfig); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Configuration OK")
		return nil
	}

	_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
	return err
}
