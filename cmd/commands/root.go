package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"wedshare"
)

var rootCmd = &cobra.Command{
	Use:           "wedshare",
	Short:         "Photo sharing service for wedding guests",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), wedshare.StringVersion())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ExitOnError(err)
	}
}

func init() {
	rootCmd.AddCommand(versionCmd, runCmd, feedCmd, functionCmd)
}
