package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/figchart-go/internal/logging"
	"github.com/ukaji3/figchart-go/pkg/figchart"
	"github.com/ukaji3/figchart-go/pkg/figchart/models"
	"github.com/ukaji3/figchart-go/pkg/figchart/output"
	"github.com/ukaji3/figchart-go/pkg/figchart/parser"
)

// chartFlags are the dataset and settings flags shared by build and watch.
type chartFlags struct {
	chartType    string
	settingsPath string
	outputPath   string
	format       string
	sheet        string
	transpose    bool
	pretty       bool
	xColumn      string
	yColumns     []string
	labelColumn  string
	valueColumn  string
	title        string
	scheme       string
}

func (f *chartFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.chartType, "type", "t", "", "chart type: line, bar, scatter, pie, heatmap, boxplot")
	fl.StringVarP(&f.settingsPath, "settings", "s", "", "settings file (YAML or JSON)")
	fl.StringVarP(&f.outputPath, "output", "o", "", "output file path (default: stdout)")
	fl.StringVar(&f.format, "format", "", "input format, overriding the file extension")
	fl.StringVar(&f.sheet, "sheet", "", "worksheet of an xlsx workbook (default: first)")
	fl.BoolVar(&f.transpose, "transpose", false, "swap rows and columns before charting")
	fl.BoolVar(&f.pretty, "pretty", false, "pretty-print JSON output")
	fl.StringVar(&f.xColumn, "x", "", "X column, by index or header name")
	fl.StringArrayVar(&f.yColumns, "y", nil, "Y column, by index or header name (repeatable)")
	fl.StringVar(&f.labelColumn, "label", "", "label column of pie charts")
	fl.StringVar(&f.valueColumn, "value", "", "value column of pie charts")
	fl.StringVar(&f.title, "title", "", "chart title")
	fl.StringVar(&f.scheme, "scheme", "", "color scheme")
}

func (f *chartFlags) loadOptions() (figchart.Options, error) {
	opts := figchart.DefaultOptions()
	opts.Sheet = f.sheet
	if f.format != "" {
		format, ok := parser.ParseFormat(f.format)
		if !ok {
			return opts, fmt.Errorf("%w: %q", figchart.ErrUnsupportedFormat, f.format)
		}
		opts.Format = format
	}
	if f.transpose {
		t := true
		opts.Transpose = &t
	}
	return opts, nil
}

// settings returns the file settings, or the configured defaults when no
// file is given, with flag overrides applied.
func (f *chartFlags) settings(app *appContext) (models.Settings, error) {
	s := app.cfg.Chart.Settings()
	if f.settingsPath != "" {
		var err error
		if s, err = figchart.LoadSettings(f.settingsPath); err != nil {
			return s, err
		}
	}

	if f.chartType != "" {
		t, err := models.ParseChartType(f.chartType)
		if err != nil {
			return s, err
		}
		s.ChartType = t
	}
	if f.xColumn != "" {
		s.XColumn = models.ParseColumnRef(f.xColumn)
	}
	if len(f.yColumns) > 0 {
		s.YColumns = s.YColumns[:0]
		for _, y := range f.yColumns {
			s.YColumns = append(s.YColumns, models.ParseColumnRef(y))
		}
	}
	if f.labelColumn != "" {
		s.LabelColumn = models.ParseColumnRef(f.labelColumn)
	}
	if f.valueColumn != "" {
		s.ValueColumn = models.ParseColumnRef(f.valueColumn)
	}
	if f.title != "" {
		s.Title = f.title
	}
	if f.scheme != "" {
		s.ColorScheme = f.scheme
	}
	return s, nil
}

// render loads input and returns the encoded chart.
func (f *chartFlags) render(app *appContext, input string) ([]byte, error) {
	opts, err := f.loadOptions()
	if err != nil {
		return nil, err
	}
	settings, err := f.settings(app)
	if err != nil {
		return nil, err
	}
	ds, err := figchart.Load(input, opts)
	if err != nil {
		return nil, err
	}

	state := figchart.NewAppState(ds).WithSettings(settings).WithChartType(settings.ChartType)
	spec, err := figchart.Rebuild(state)
	if err != nil {
		return nil, err
	}
	app.log.Debug("chart built",
		logging.String("input", input),
		logging.String("type", string(state.ChartType)),
		logging.Int("rows", len(ds.Rows)),
		logging.Int("series", len(spec.Series)),
	)
	return output.ToJSON(spec, f.pretty)
}

func (f *chartFlags) write(w io.Writer, data []byte) error {
	if f.outputPath == "" {
		_, err := fmt.Fprintln(w, string(data))
		return err
	}
	if err := os.WriteFile(f.outputPath, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newBuildCommand() *cobra.Command {
	flags := &chartFlags{}
	cmd := &cobra.Command{
		Use:   "build <input>",
		Short: "Build a chart specification from a data file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd)
			data, err := flags.render(app, args[0])
			if err != nil {
				return err
			}
			return flags.write(cmd.OutOrStdout(), data)
		},
	}
	flags.register(cmd)
	return cmd
}
