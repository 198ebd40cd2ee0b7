package main

import (
	"github.com/Rangchakdv/MazeSolver/internal/cli"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve one maze and print the result",
	Long: `Builds a maze, finds the shortest path and prints it.

The maze comes from --rows, '/'-separated rows of S (start), G (goal), # (obstacle)
and . (empty), for example "S..#/.#../...G". Without --rows a random maze is generated
with the start in the top-left corner and the goal in the bottom-right one.`,
	Example: `  mazesolver solve --rows "S..#/.#../...G"
  mazesolver solve --seed 42 --width 20 --height 10 --format yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions(cmd)
		if err != nil {
			return err
		}
		solve := cli.SolveOptions{RunOptions: opts}
		solve.Rows, _ = cmd.Flags().GetString("rows")
		solve.Format, _ = cmd.Flags().GetString("format")
		if cmd.Flags().Changed("seed") {
			seed, _ := cmd.Flags().GetUint64("seed")
			solve.Seed = &seed
		} else {
			solve.Seed = opts.Config.Seed
		}
		return cli.Solve(cmd.Context(), solve)
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().String("rows", "", "Maze rows separated by '/'")
	solveCmd.Flags().Uint64("seed", 0, "Seed of the random maze")
	solveCmd.Flags().StringP("format", "f", cli.FormatText, "Output format: text, json, yaml or mermaid")
}
