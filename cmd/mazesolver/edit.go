package main

import (
	"github.com/Rangchakdv/MazeSolver/internal/cli"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the full-screen mouse editor",
	Long: `Opens the maze in the terminal. Click cells to paint them with the current mode.

Keys: o obstacle, s start, g goal, e erase, space/enter solve, r reset,
x random obstacles, +/- grow or shrink, : resize, q quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions(cmd)
		if err != nil {
			return err
		}
		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()
		return cli.RunEditor(ctx, opts, nil)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
