// starcatch is a terminal arcade game: catch stars, dodge bouncing enemies.
//
// Usage:
//
//	starcatch                - Play in the terminal (same as play)
//	starcatch play           - Play in the terminal
//	starcatch simulate       - Run headless with an autopilot and print a summary
//	starcatch config         - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a custom configuration file
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file while playing
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starcatch",
	Short: "Star Catch - catch stars, dodge enemies",
	Long: `Star Catch is a small arcade game for the terminal. Steer the player
around the arena to collect stars while avoiding enemies that bounce off
the walls. One hit ends the run.

Available commands:
  play      - Play in the terminal (default)
  simulate  - Run headless with an autopilot
  config    - Print the default configuration

Examples:
  starcatch
  starcatch play --seed 42
  starcatch simulate --ticks 3600 --log-level debug
  starcatch config > ~/.starcatch/configs/starcatch.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// resolveSeed turns the --seed value into the seed actually used.
// 0 means a fresh seed from the clock.
func resolveSeed(seed int64, now time.Time) int64 {
	if seed != 0 {
		return seed
	}
	return now.UnixNano()
}
