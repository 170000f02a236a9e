// snake is a grid-based snake arcade game for the terminal.
//
// Usage:
//
//	snake play     - Play in the current terminal
//	snake serve    - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>       - Input-sampling tick rate (default: from config)
//	--seed <value>     - RNG seed for reproducible fruit placement
//	--config <path>    - Path to a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Snake is a terminal rendition of the classic grid game: steer the
snake, eat fruit, grow, and don't run off the board.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play

Examples:
  snake play
  snake play --fps 30 --seed 42
  snake serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Input-sampling tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
