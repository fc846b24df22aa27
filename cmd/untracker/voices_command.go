package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"untracker/internal/config"
	"untracker/internal/logging"
	"untracker/internal/voices"
)

func newVoicesCommand(flags *rootFlags) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "voices -i <module>",
		Short: "List the voices a module would be split into",
		Long: `voices loads a module and prints the instruments or samples that an
extraction run would isolate, without rendering any audio.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ov := config.Overrides{}
			if input != "" {
				ov.InputPath = &input
			}
			if flags.logLevel != "" {
				ov.LogLevel = &flags.logLevel
			}
			if flags.logFormat != "" {
				ov.LogFormat = &flags.logFormat
			}

			cfg, err := config.Resolve(flags.configPath, ov)
			if err != nil {
				return err
			}
			if cfg.InputPath == "" {
				return fmt.Errorf("%w: input module is required (use --input)", config.ErrUsage)
			}

			logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
			if err != nil {
				return err
			}

			data, err := os.ReadFile(cfg.InputPath)
			if err != nil {
				return fmt.Errorf("read input module: %w", err)
			}
			mod, err := loadModule(data)
			if err != nil {
				return fmt.Errorf("open module %s: %w", cfg.InputPath, err)
			}
			defer mod.Close()

			printVoices(cmd.OutOrStdout(), voices.Enumerate(mod, logger))
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Input module file (required)")
	return cmd
}
