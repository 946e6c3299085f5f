package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-bootstrap/pkg/config"
)

type app struct {
	debug  bool
	logger *zap.Logger
	prompt sectionPrompter
}

func newRootCmd(prompt sectionPrompter) *cobra.Command {
	a := &app{prompt: prompt}
	root := &cobra.Command{
		Use:           "bootstrap-cli",
		Short:         "Render Bootstrap pages from YAML or JSON page documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				return nil
			}
			cfg := zap.NewProductionConfig()
			if a.debug {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := cfg.Build()
			if err != nil {
				return fmt.Errorf("initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")

	root.AddCommand(a.renderCmd(), a.templatesCmd())
	return root
}

// loadConfig merges every config file in order on top of the defaults.
func loadConfig(paths []string) (config.Config, error) {
	cfg := config.Default()
	for idx, path := range paths {
		loaded, err := config.Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
		if err != nil {
			return config.Config{}, err
		}
		if idx == 0 {
			cfg = loaded
			continue
		}
		cfg = cfg.Merge(loaded)
	}
	return cfg, nil
}
