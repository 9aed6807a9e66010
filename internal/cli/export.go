package cli

import (
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the changelog as YAML",
	Long: `Export the changelog as YAML on stdout for machine consumption.

The output lists every version with its state, link, date, and
categorized changes. The changelog file itself is not modified.

Examples:
  clkpr export
  clkpr export -f docs/CHANGES.md > changes.yml`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newKeeper().Export(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
