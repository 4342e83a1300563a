// orbsnake is a snake game for the terminal with a time-limited orb.
//
// Usage:
//
//	orbsnake play        - Play in this terminal
//	orbsnake serve       - Start SSH server for remote play
//	orbsnake settings    - Print the settings compiled into this build
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible orb placement (play and every serve session)
//	--log-file <path>   - Write run events to a log file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed    int64
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "orbsnake",
	SilenceErrors: true,
	SilenceUsage:  true,
	Short:         "Orbsnake - a wrap-around snake game in your terminal",
	Long: `Orbsnake is a snake game on a wrap-around grid. Eat the orb before it
runs out of time; it jumps somewhere else when its timer expires.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  settings  - Print the build-time game settings

Examples:
  orbsnake play
  orbsnake play --seed 42 --log-file orbsnake.log
  orbsnake serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Path to a log file for run events")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(settingsCmd)
}
