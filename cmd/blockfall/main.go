// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall play      - Play a game
//	blockfall config    - Print the effective rules as YAML
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible piece order
//	--log-file <path>     - Write logs to a file (default: discard)
//	--log-level <level>   - debug, info, warn or error (default: info)
//
// A .env file in the working directory is loaded on start. BLOCKFALL_CONFIG
// and BLOCKFALL_LOG_LEVEL provide defaults for --config and --log-level.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

// logger is built in the root PersistentPreRunE and closed by main.
var (
	logger    = log.New(io.Discard)
	logCloser io.Closer
)

func main() {
	_ = godotenv.Load()

	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - a falling-block puzzle in your terminal",
	Long: `Blockfall is a terminal falling-block puzzle. Steer and rotate the
falling shapes, complete rows to clear them, and keep the stack from
reaching the top.

Available commands:
  play     - Start a game
  config   - Print the effective rules

Examples:
  blockfall play
  blockfall play --difficulty hard
  blockfall play --config ./my-rules.yaml --seed 42
  blockfall config --difficulty easy`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (env BLOCKFALL_LOG_LEVEL)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogging builds the shared logger. The TUI owns the terminal, so logs
// only go somewhere when --log-file is set.
func setupLogging(cmd *cobra.Command, args []string) error {
	levelName := flagLogLevel
	if levelName == "" {
		levelName = getEnv("BLOCKFALL_LOG_LEVEL", "info")
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", levelName, err)
	}

	var w io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		logCloser = f
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockfall",
		Level:           level,
	})
	return nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
