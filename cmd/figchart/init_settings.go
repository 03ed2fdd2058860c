package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/figchart-go/pkg/figchart"
	"github.com/ukaji3/figchart-go/pkg/figchart/models"
)

func newInitSettingsCommand() *cobra.Command {
	var outputPath string
	var force bool
	cmd := &cobra.Command{
		Use:   "init-settings",
		Short: "Write a settings file holding the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings := appFrom(cmd).cfg.Chart.Settings()
			settings.YColumns = []models.ColumnRef{}

			if outputPath == "" {
				return figchart.WriteSettings(cmd.OutOrStdout(), settings)
			}

			flag := os.O_WRONLY | os.O_CREATE | os.O_EXCL
			if force {
				flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
			}
			f, err := os.OpenFile(outputPath, flag, 0644)
			if err != nil {
				return fmt.Errorf("failed to create settings file: %w", err)
			}
			if err := figchart.WriteSettings(f, settings); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file path (default: stdout)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}
