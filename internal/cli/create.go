package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new changelog file",
	Long: `Create a new changelog file with an empty Unreleased section.

Fails if the file already exists.

Examples:
  clkpr create                    # Creates CHANGELOG.md
  clkpr create -f docs/CHANGES.md # Creates docs/CHANGES.md`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := newKeeper().Create()
		if err != nil {
			return err
		}
		printReport(cmd, report, fmt.Sprintf("Created %s", cfg.File))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
}
