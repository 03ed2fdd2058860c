package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/figchart-go/internal/config"
	"github.com/ukaji3/figchart-go/internal/logging"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

// appContext carries the loaded configuration and logger to subcommands.
type appContext struct {
	cfg *config.Config
	log logging.Logger
}

type appContextKey struct{}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "figchart",
		Short: "Build publication-style chart specifications from tabular data",
		Long: `figchart reads CSV, TSV, TXT, XLSX or JSON tables and emits ECharts
option JSON for line, bar, scatter, pie, heatmap and boxplot charts.`,
		Version: fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return persistentPreRun(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "config file path (default: ./figchart.yaml)")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newBuildCommand(),
		newWatchCommand(),
		newServeCommand(),
		newInspectCommand(),
		newInitSettingsCommand(),
		newWrapSVGCommand(),
	)
	return cmd
}

func persistentPreRun(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.logLevel != "" {
		if _, err := logging.ParseLevel(opts.logLevel); err != nil {
			return err
		}
		cfg.Log.Level = opts.logLevel
	}

	log, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	logging.SetDefault(log)

	cmd.SetContext(context.WithValue(cmd.Context(), appContextKey{}, &appContext{cfg: cfg, log: log}))
	return nil
}

// appFrom returns the context stored by persistentPreRun, or defaults when
// the command runs without the root.
func appFrom(cmd *cobra.Command) *appContext {
	if ctx := cmd.Context(); ctx != nil {
		if app, ok := ctx.Value(appContextKey{}).(*appContext); ok {
			return app
		}
	}
	return &appContext{cfg: config.Default(), log: logging.Default()}
}
