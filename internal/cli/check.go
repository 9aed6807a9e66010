package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the changelog and apply safe repairs",
	Long: `Validate the changelog against its structural rules.

Safe repairs are applied and the file is rewritten in canonical form:
entries are moved to the section their pending-entry tag names, and
spacing is normalized. Anything ambiguous (inconsistent tags, duplicate
Unreleased sections, stale tags under released versions) is reported as
an error and the file is left untouched.

Examples:
  clkpr check
  clkpr check -f docs/CHANGES.md`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := newKeeper().Check()
		if err != nil {
			return err
		}
		if report.Wrote {
			printReport(cmd, report, fmt.Sprintf("Repaired %s", cfg.File))
		} else {
			printReport(cmd, report, fmt.Sprintf("%s is valid", cfg.File))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
