// ambusnake is a tile-based snake game rendered with OpenGL.
//
// Usage:
//
//	ambusnake              - Play
//	ambusnake controls     - Print the controls
//
// Global flags:
//
//	--config <path>      - Config file (default search: ~/.ambusnake/config.yaml, ./configs/ambusnake.yaml)
//	--seed <value>       - Bonus placement seed (also AMBUSNAKE_SEED)
//	--background <path>  - Background image
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagConfig     string
	flagSeed       uint64
	flagBackground string
	flagLogLevel   string

	logger *log.Logger
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stderr))
}

// execute runs the command line and returns the process exit code. Errors
// are logged, not printed by cobra.
func execute(args []string, stderr io.Writer) int {
	logger = log.NewWithOptions(stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "ambusnake",
	})
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		logger.Error("exiting", "error", err)
		return 1
	}
	return 0
}

var rootCmd = &cobra.Command{
	Use:   "ambusnake",
	Short: "AmbuSnake - steer the ambulance, pick up patients",
	Long: `AmbuSnake is a snake game on a tiled city map. Eat bonuses to grow,
score and climb through four difficulty levels.

Examples:
  ambusnake
  ambusnake --seed 42
  ambusnake --background ./Map/Paris.jpg --log-level debug
  ambusnake controls`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "Bonus placement seed (0 = from config, env or clock)")
	rootCmd.PersistentFlags().StringVar(&flagBackground, "background", "", "Background image path")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(controlsCmd)
}
