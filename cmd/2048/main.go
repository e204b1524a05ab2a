// 2048 is a terminal rendition of the sliding-tile puzzle.
//
// Usage:
//
//	2048                 - Play (arrow keys / hjkl / wasd)
//	2048 version         - Print version
//
// Flags:
//
//	--seed <value>   - RNG seed for a reproducible board (0 = random)
//	--config <path>  - Custom config YAML (theme, UI options)
//	--log <path>     - Write a debug log to this file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagSeed   int64
	flagConfig string
	flagLog    string
)

var rootCmd = &cobra.Command{
	Use:   "2048",
	Short: "Play 2048 in your terminal",
	Long: `2048 is a terminal rendition of the sliding-tile puzzle.

Slide tiles with the arrow keys (or hjkl/wasd); equal tiles merge and
score their combined value. The game ends when the board is full and no
merge is possible.

Controls:
  Arrows/hjkl/wasd  - Move tiles
  ctrl+s            - Save a screenshot
  ?                 - Toggle full help
  q/esc/ctrl+c      - Quit

Examples:
  2048
  2048 --seed 42
  2048 --config ./my-theme.yaml --log ./2048.log`,
	Run: runPlay,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.Flags().StringVar(&flagLog, "log", "", "Write a debug log to this file")

	rootCmd.AddCommand(versionCmd)
}
