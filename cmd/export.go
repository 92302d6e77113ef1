package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/y7ut/empgrid/component/table"
)

var exportOpts struct {
	output string
	search string
	sort   string
	format string
}

var ExportCommand = &cobra.Command{
	Use:   "export",
	Short: "Export the employees without opening the grid",
	RunE: func(cmd *cobra.Command, args []string) error {
		format := table.ExportFormat(exportOpts.format)
		if format != table.FormatCSV && format != table.FormatExcel {
			return errors.Errorf("unknown format %q, want csv or xlsx", exportOpts.format)
		}

		s, err := prepare(cmd.OutOrStdout(), true)
		if err != nil {
			return err
		}
		defer s.Close()
		if exportOpts.output != "" {
			s.conf.Export.Dir = exportOpts.output
		}

		v, err := s.view(exportOpts.search, exportOpts.sort)
		if err != nil {
			return err
		}
		path, size, err := v.Export(format)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "exported %d rows to %s (%s)\n",
			v.Grid().DisplayedCount(), path, humanize.Bytes(uint64(size)))
		return nil
	},
}

func init() {
	ExportCommand.Flags().StringVarP(&exportOpts.output, "output", "o", "", "output directory, defaults to export.dir")
	ExportCommand.Flags().StringVarP(&exportOpts.search, "search", "s", "", "filter full names containing the text")
	ExportCommand.Flags().StringVar(&exportOpts.sort, "sort", "", "sort, field[:asc|desc]")
	ExportCommand.Flags().StringVarP(&exportOpts.format, "format", "f", "csv", "csv or xlsx")
	RootCmd.AddCommand(ExportCommand)
}
