package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/clkpr/internal/changelog"
	"github.com/ariel-frischer/clkpr/internal/errors"
)

var addCmd = &cobra.Command{
	Use:   "add <change-type> <entry>...",
	Short: "Record a change in the Unreleased section",
	Long: fmt.Sprintf(`Record a change entry in the Unreleased section.

The change type is matched case-insensitively against: %v.
Extra arguments are joined into one entry text, so quoting the whole
entry is optional. The entry is written with a pending-entry tag on
every line so it survives VCS merges.

Examples:
  clkpr add added "Support for watch mode"
  clkpr add fixed Crash when the changelog is empty`,
		changelog.ChangeTypes()),
	SilenceUsage: true,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return errors.NewUsageErrorWithSyntax(
				"add requires a change type and the entry text",
				"clkpr add <change-type> <entry>...")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := newKeeper().Add(args[0], strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		printReport(cmd, report, fmt.Sprintf("Recorded %s entry in %s", strings.ToLower(args[0]), cfg.File))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
