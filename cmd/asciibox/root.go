package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/uyouii/ascii-boxplot/boxplot"
	"github.com/uyouii/ascii-boxplot/boxstat"
	"github.com/uyouii/ascii-boxplot/common"
)

type flags struct {
	format   string
	key      string
	value    string
	header   bool
	whiskers string
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:           "asciibox [file]",
		Short:         "Print ASCII box plots of grouped numbers",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				file, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer file.Close()
				in = file
			}
			return run(cmd, f, in, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&f.format, "format", "csv", "input format: csv or json")
	cmd.Flags().StringVar(&f.key, "key", "", "group field: CSV column name or index, JSON path (default first column / \"key\")")
	cmd.Flags().StringVar(&f.value, "value", "", "value field: CSV column name or index, JSON path (default second column / \"value\")")
	cmd.Flags().BoolVar(&f.header, "header", false, "the CSV input starts with a header row")
	cmd.Flags().StringVar(&f.whiskers, "whiskers", "tukey", "whisker policy: tukey, range, p9 or p2")
	return cmd
}

func run(cmd *cobra.Command, f *flags, in io.Reader, out io.Writer) error {
	policy, err := boxstat.PolicyByName(f.whiskers)
	if err != nil {
		return err
	}

	var records []record
	switch f.format {
	case "csv":
		records, err = readCSV(in, f.header, f.key, f.value)
	case "json":
		records, err = readJSON(in, f.key, f.value)
	default:
		err = fmt.Errorf("unknown format %q: %w", f.format, common.ErrorInvalidOption)
	}
	if err != nil {
		return err
	}

	lines, err := boxplot.Render(cmd.Context(), boxplot.Options{Whiskers: policy},
		record.Key, record.Value, records)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
