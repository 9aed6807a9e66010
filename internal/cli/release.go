package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/clkpr/internal/git"
)

var (
	releaseRefFlag     string
	releaseAutoRefFlag bool
)

var releaseCmd = &cobra.Command{
	Use:   "release <version>",
	Short: "Turn the Unreleased section into a released version",
	Long: `Release the pending changes under the given version name.

The Unreleased section becomes a released version stamped with today's
date, and the pending-entry tags disappear from the file. The next
'clkpr add' starts a fresh Unreleased section.

With -r/--ref the version heading links to the given URL. With
--auto-ref the link is derived from the git origin remote
(<repo>/releases/tag/<version>).

Examples:
  clkpr release 1.2.0
  clkpr release 1.2.0 -r https://example.com/releases/1.2.0
  clkpr release 1.2.0 --auto-ref`,
	Args:         exactArgs(1, "clkpr release <version>"),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		version := args[0]

		ref := releaseRefFlag
		if ref == "" && (releaseAutoRefFlag || cfg.AutoRef) {
			derived, err := git.ReleaseLink("", version)
			if err != nil {
				return fmt.Errorf("deriving release link: %w", err)
			}
			ref = derived
		}

		report, err := newKeeper().Release(version, ref)
		if err != nil {
			return err
		}
		printReport(cmd, report, fmt.Sprintf("Released %s in %s", version, cfg.File))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(releaseCmd)

	releaseCmd.Flags().StringVarP(&releaseRefFlag, "ref", "r", "", "Reference URL for the released version")
	releaseCmd.Flags().BoolVar(&releaseAutoRefFlag, "auto-ref", false, "Derive the reference URL from the git origin remote")
}
