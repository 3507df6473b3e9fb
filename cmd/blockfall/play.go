package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of blockfall.

Controls:
  ←/a, →/d   - Move
  ↑/x        - Rotate clockwise
  z          - Rotate counter-clockwise
  ↓/s        - Soft drop
  Space      - Hard drop
  P/Esc      - Pause
  R          - Restart (after game over)
  ?          - Toggle full help
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower gravity that speeds up gently
  normal - Rules file timing (default)
  hard   - Fast gravity from the first piece

Examples:
  blockfall play
  blockfall play --difficulty easy
  blockfall play --config ./my-rules.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addRulesFlags(playCmd)
}

// addRulesFlags registers the flags that select the rules.
func addRulesFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML (env BLOCKFALL_CONFIG)")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// loadRules resolves the rules file and applies the difficulty preset.
func loadRules() (config.BlockfallConfig, error) {
	path := flagConfig
	if path == "" {
		path = getEnv("BLOCKFALL_CONFIG", "")
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.BlockfallConfig{}, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.BlockfallConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)

	logger.Debug("rules loaded", "path", path, "difficulty", preset,
		"columns", cfg.Board.Columns, "rows", cfg.Board.Rows)
	return cfg, cfg.Validate()
}

func runPlay(cmd *cobra.Command, args []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	rules, err := loadRules()
	if err != nil {
		return err
	}
	blockfall.SetConfig(rules)
	blockfall.SetLogger(logger)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(blockfall.GameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	final, err := tui.Run(game, cfg, logger)
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	fmt.Printf("Score %d, level %d, %d lines\n", final.Score, final.Level, final.Lines)
	return nil
}
