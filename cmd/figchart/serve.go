package main

import (
	"github.com/spf13/cobra"

	"github.com/ukaji3/figchart-go/internal/server"
	"github.com/ukaji3/figchart-go/pkg/figchart"
)

func newServeCommand() *cobra.Command {
	var addr, settingsPath string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the chart API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := appFrom(cmd)
			cfg := app.cfg.Server
			if addr != "" {
				cfg.Addr = addr
			}

			defaults := app.cfg.Chart.Settings()
			if settingsPath != "" {
				var err error
				if defaults, err = figchart.LoadSettings(settingsPath); err != nil {
					return err
				}
			}
			return server.New(cfg, defaults, app.log).ListenAndServe(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().StringVarP(&settingsPath, "settings", "s", "", "settings file applied to every request")
	return cmd
}
