package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective rules as YAML",
	Long: `Resolve the rules the same way play does and print them.

Search order: --config, BLOCKFALL_CONFIG, ~/.blockfall/configs/blockfall.yaml,
./configs/blockfall.yaml, then the built-in defaults. The output is a
complete rules file that can be edited and passed back with --config.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	addRulesFlags(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	rules, err := loadRules()
	if err != nil {
		return err
	}

	data, err := config.Marshal(rules)
	if err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
