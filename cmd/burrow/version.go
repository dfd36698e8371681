package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/burrow"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of burrow",
	// no configuration needed
	PersistentPreRun: func(cmd *cobra.Command, args []string) {},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "burrow version %s\n", strings.TrimSpace(burrow.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
