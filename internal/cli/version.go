package cli

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Version information - set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Display version information (v)",
	Long:    "Display version, commit, build date, and Go version information for clkpr",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		dim := color.New(color.Faint).SprintFunc()

		fmt.Fprintf(out, "%s %s\n", cyan("clkpr"), Version)
		fmt.Fprintf(out, "commit: %s\n", dim(Commit))
		fmt.Fprintf(out, "built: %s\n", dim(BuildDate))
		fmt.Fprintf(out, "go: %s\n", dim(runtime.Version()))
		fmt.Fprintf(out, "platform: %s\n", dim(runtime.GOOS+"/"+runtime.GOARCH))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
