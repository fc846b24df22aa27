package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"untracker/internal/config"
	"untracker/internal/deps"
	"untracker/internal/engine"
	"untracker/internal/engine/openmpt"
	"untracker/internal/extract"
	"untracker/internal/logging"
)

// loadModule opens the playback engine; a variable so tests can substitute
// a fake engine.
var loadModule = func(data []byte) (engine.Module, error) {
	mod, err := openmpt.Load(data)
	if err != nil {
		return nil, err
	}
	return mod, nil
}

func runExtract(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := config.Resolve(flags.configPath, overridesFrom(cmd, flags))
	if err != nil {
		return err
	}
	if err := cfg.ValidateRun(); err != nil {
		return err
	}
	if err := deps.Verify(deps.Requirements(cfg.Format)); err != nil {
		return err
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

	session, err := extract.NewSession(mod, cfg, logger)
	if err != nil {
		return err
	}
	outcomes, err := session.Run()
	if err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), outcomes)
	return nil
}
