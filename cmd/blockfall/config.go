package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/registry"
)

var configCmd = &cobra.Command{
	Use:   "config [mode]",
	Short: "Print the effective configuration",
	Long: `Print the configuration blockfall would use, as YAML.

The result reflects --config, the user and working directory
configs/blocks.yaml files, the embedded defaults and --difficulty.
With a mode argument, the mode's spawn row and gravity are applied too.

Examples:
  blockfall config > ~/.blockfall/configs/blocks.yaml
  blockfall config blitz --difficulty hard
  blockfall config --defaults`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

var flagDefaults bool

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults, ignoring config files")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		mode, err := registry.Defaults().Get(args[0])
		if err != nil {
			return err
		}
		mode.Apply(&cfg)
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("mode %q: %w", mode.ID, err)
		}
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
