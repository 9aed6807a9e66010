package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/clkpr/internal/config"
	"github.com/ariel-frischer/clkpr/internal/errors"
	"github.com/ariel-frischer/clkpr/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage clkpr configuration",
	Long: `Manage clkpr configuration.

Settings are resolved with priority: CLKPR_* environment variables >
project config (.clkpr.yml) > user config (~/.config/clkpr/config.yml)
> defaults.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented project config file",
	Long: `Write a commented .clkpr.yml with every option at its default.

Fails if the file already exists.

Examples:
  clkpr config init`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.ProjectConfigPath()
		if _, err := os.Stat(path); err == nil {
			return errors.NewIOError(
				fmt.Sprintf("config %s already exists", path),
				"Edit the existing file instead",
			)
		}
		if err := os.WriteFile(path, []byte(config.DefaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		output.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Created %s", path))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
}
