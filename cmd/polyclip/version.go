package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/polyclip/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "polyclip %s\n", version.GetFullVersion())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
