package main

import (
	"fmt"
	"strings"

	mazesolver "github.com/Rangchakdv/MazeSolver"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of mazesolver",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "mazesolver version %s\n", strings.TrimSpace(mazesolver.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
