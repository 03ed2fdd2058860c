package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/figchart-go/pkg/figchart/output"
)

func newWrapSVGCommand() *cobra.Command {
	var outputPath string
	cmd := &cobra.Command{
		Use:   "wrap-svg <image.png>",
		Short: "Wrap a rendered PNG chart in an SVG document",
		Long: fmt.Sprintf(`wrap-svg embeds a PNG, typically a chart rendered at %dx pixel ratio,
in a minimal SVG document of the same size.`, output.ExportPixelRatio),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			svg, err := output.WrapPNGAsSVG(data)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			if outputPath == "" {
				_, err = cmd.OutOrStdout().Write(svg)
				return err
			}
			return os.WriteFile(outputPath, svg, 0644)
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file path (default: stdout)")
	return cmd
}
