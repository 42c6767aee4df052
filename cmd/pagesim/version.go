package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at link time.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of pagesim.",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "pagesim %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
