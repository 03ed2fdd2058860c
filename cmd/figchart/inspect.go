package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ukaji3/figchart-go/pkg/figchart"
	"github.com/ukaji3/figchart-go/pkg/figchart/builder"
	"github.com/ukaji3/figchart-go/pkg/figchart/models"
	"github.com/ukaji3/figchart-go/pkg/figchart/parser"
)

const previewRows = 20

func newInspectCommand() *cobra.Command {
	flags := &chartFlags{}
	cmd := &cobra.Command{
		Use:   "inspect <input>",
		Short: "Show the decoded table, its column types and any worksheets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.loadOptions()
			if err != nil {
				return err
			}
			input := args[0]
			out := cmd.OutOrStdout()

			ds, err := figchart.Load(input, opts)
			if err != nil {
				return err
			}
			if format, _ := opts.FormatFor(input); format == parser.FormatXLSX {
				if err := printWorkbook(out, input); err != nil {
					return err
				}
			}
			return printDataset(out, ds)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&flags.format, "format", "", "input format, overriding the file extension")
	fl.StringVar(&flags.sheet, "sheet", "", "worksheet of an xlsx workbook (default: first)")
	fl.BoolVar(&flags.transpose, "transpose", false, "swap rows and columns")
	return cmd
}

func printWorkbook(w io.Writer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return figchart.NewLoadError(path, parser.FormatXLSX, err)
	}
	sheets, err := parser.SummarizeWorkbook(data)
	if err != nil {
		return figchart.NewLoadError(path, parser.FormatXLSX, err)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SHEET\tUSED RANGE\tTABLE\tPRINT AREA")
	for _, s := range sheets {
		table := "no"
		if s.Table {
			table = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.Name, orDash(s.Range), table, orDash(s.PrintArea))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w)
	return err
}

func printDataset(w io.Writer, ds *models.Dataset) error {
	fmt.Fprintf(w, "%d rows x %d columns\n\n", len(ds.Rows), len(ds.Headers))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tCOLUMN\tTYPE")
	for i := range ds.Headers {
		kind := "text"
		if builder.IsNumericArray(ds.Column(i)) {
			kind = "numeric"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i, ds.HeaderName(i), kind)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)

	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := make([]string, len(ds.Headers))
	for i := range ds.Headers {
		header[i] = ds.HeaderName(i)
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for r := 0; r < len(ds.Rows) && r < previewRows; r++ {
		cells := make([]string, len(ds.Headers))
		for c := range cells {
			cells[c] = models.CellString(ds.Cell(r, c))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(ds.Rows) > previewRows {
		fmt.Fprintf(w, "... %d more rows\n", len(ds.Rows)-previewRows)
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
