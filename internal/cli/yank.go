package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var yankCmd = &cobra.Command{
	Use:   "yank <version>",
	Short: "Mark a released version as withdrawn",
	Long: `Mark a released version as withdrawn.

The version heading gains a [YANKED] marker; its entries, link, and
date are untouched. Only released versions can be yanked.

Examples:
  clkpr yank 1.2.0`,
	Args:         exactArgs(1, "clkpr yank <version>"),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := newKeeper().Yank(args[0])
		if err != nil {
			return err
		}
		printReport(cmd, report, fmt.Sprintf("Yanked %s in %s", args[0], cfg.File))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(yankCmd)
}
