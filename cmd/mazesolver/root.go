package main

import (
	"fmt"
	"os"

	"github.com/Rangchakdv/MazeSolver/internal/cli"
	"github.com/Rangchakdv/MazeSolver/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mazesolver",
	Short: "MazeSolver is a grid maze editor with a shortest-path solver",
	Long: `MazeSolver lets you paint obstacles, a start and a goal on a grid maze,
then finds and animates the shortest 4-directional path between them.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Settings file (YAML or JSON)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to Stderr")
	rootCmd.PersistentFlags().Int("width", 0, "Maze width (overrides the settings file)")
	rootCmd.PersistentFlags().Int("height", 0, "Maze height (overrides the settings file)")
}

// loadOptions resolves the settings file and flag overrides shared by every command.
func loadOptions(cmd *cobra.Command) (cli.RunOptions, error) {
	path, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")

	cfg, err := config.Load(path)
	if err != nil {
		return cli.RunOptions{}, err
	}
	if cmd.Flags().Changed("width") {
		cfg.Width, _ = cmd.Flags().GetInt("width")
	}
	if cmd.Flags().Changed("height") {
		cfg.Height, _ = cmd.Flags().GetInt("height")
	}
	if err := cfg.Validate(); err != nil {
		return cli.RunOptions{}, err
	}

	return cli.RunOptions{
		Config: cfg,
		Debug:  debug,
		Output: cmd.OutOrStdout(),
		Input:  cmd.InOrStdin(),
	}, nil
}
