// Package cli implements the clkpr command tree. Each subcommand maps
// onto one keeper operation; errors are categorized and rendered with
// remediation hints, and the process exit code encodes the category.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/clkpr/internal/config"
	"github.com/ariel-frischer/clkpr/internal/errors"
	"github.com/ariel-frischer/clkpr/internal/keeper"
	"github.com/ariel-frischer/clkpr/internal/output"
)

var (
	fileFlag  string
	plainFlag bool

	// cfg is resolved once per invocation in the root PersistentPreRunE.
	cfg *config.Configuration
)

var rootCmd = &cobra.Command{
	Use:   "clkpr",
	Short: "Keep a structured changelog with merge-safe pending entries",
	Long: `clkpr maintains a CHANGELOG.md in a strict Keep-a-Changelog shape.

Entries recorded before a release carry a <Unreleased-Type/> tag on every
line, so entries scrambled by VCS merges can be put back where they
belong. 'clkpr check' validates the file and applies the safe repairs;
'clkpr release' turns the pending section into a dated version and the
tags disappear for good.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		if fileFlag != "" {
			c.File = fileFlag
		}
		if plainFlag {
			c.Plain = true
		}
		output.SetPlain(c.Plain)
		cfg = c
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&fileFlag, "file", "f", "", "Changelog file to operate on (default CHANGELOG.md)")
	rootCmd.PersistentFlags().BoolVar(&plainFlag, "plain", false, "Disable colored output")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.NewUsageErrorWithSyntax(err.Error(), cmd.UseLine())
	})
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		cliErr := errors.FromError(err)
		errors.FprintError(rootCmd.ErrOrStderr(), cliErr)
		return cliErr.ExitCode()
	}
	return errors.ExitSuccess
}

// newKeeper builds the keeper for the configured changelog file.
func newKeeper() *keeper.Keeper {
	return keeper.New(cfg.File)
}

// exactArgs validates positional arity, reporting violations as usage
// errors so they exit with the usage code instead of cobra's default.
func exactArgs(n int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return errors.NewUsageErrorWithSyntax(
				fmt.Sprintf("expected %d argument(s), got %d", n, len(args)), usage)
		}
		return nil
	}
}

// printReport writes the human-facing outcome of an operation.
func printReport(cmd *cobra.Command, report *keeper.Report, message string) {
	out := cmd.OutOrStdout()
	output.PrintRepairs(out, report.Repairs)
	output.PrintSuccess(out, message)
	for _, note := range report.Notes {
		output.PrintNote(out, note)
	}
}
