package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/y7ut/empgrid/component/table"
	"github.com/y7ut/empgrid/employee"
)

var listOpts struct {
	search   string
	sort     string
	page     int
	pageSize int
	columns  []string
}

var ListCommand = &cobra.Command{
	Use:   "list",
	Short: "Print one page of employees",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := prepare(cmd.OutOrStdout(), true)
		if err != nil {
			return err
		}
		defer s.Close()

		v, err := s.view(listOpts.search, listOpts.sort)
		if err != nil {
			return err
		}
		grid := v.Grid()
		if listOpts.pageSize > 0 {
			if err := grid.SetPageSize(listOpts.pageSize); err != nil {
				return err
			}
		}
		if listOpts.page < 1 {
			return errors.Errorf("page must be positive, got %d", listOpts.page)
		}
		grid.GoToPage(listOpts.page - 1)

		return renderList(cmd.OutOrStdout(), grid, listOpts.columns)
	},
}

// renderList 打印当前页, fields 为空时打印全部列
func renderList(w io.Writer, grid *table.ObjectGrid[employee.Employee], fields []string) error {
	columns := grid.Columns()
	if len(fields) > 0 {
		picked := make([]table.Column[employee.Employee], 0, len(fields))
		for _, f := range fields {
			c, ok := grid.Column(f)
			if !ok {
				return errors.Errorf("unknown column %q", f)
			}
			picked = append(picked, c)
		}
		columns = picked
	}

	header := make([]string, 0, len(columns))
	for _, c := range columns {
		header = append(header, c.HeaderName)
	}

	tw := tablewriter.NewWriter(w)
	tw.SetHeader(header)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	for _, row := range grid.PageRows() {
		cells := make([]string, 0, len(columns))
		for _, c := range columns {
			cells = append(cells, grid.RenderedValue(row, c))
		}
		tw.Append(cells)
	}
	tw.SetCaption(true, listCaption(grid))
	tw.Render()
	return nil
}

func listCaption(grid *table.ObjectGrid[employee.Employee]) string {
	caption := fmt.Sprintf("page %d/%d · %d of %d employees",
		grid.CurrentPage()+1, grid.TotalPages(), grid.DisplayedCount(), grid.TotalRows())
	if sort := grid.SortModel(); sort.Active() {
		caption += fmt.Sprintf(" · sorted by %s %s", sort.Field, sort.Direction)
	}
	if model := grid.FilterModel(); len(model) > 0 {
		filters := make([]string, 0, len(model))
		for field, f := range model {
			filters = append(filters, fmt.Sprintf("%s %s %q", field, f.Type, f.Filter))
		}
		caption += " · " + strings.Join(filters, ", ")
	}
	return caption
}

func init() {
	ListCommand.Flags().StringVarP(&listOpts.search, "search", "s", "", "filter full names containing the text")
	ListCommand.Flags().StringVar(&listOpts.sort, "sort", "", "sort, field[:asc|desc]")
	ListCommand.Flags().IntVarP(&listOpts.page, "page", "p", 1, "page number")
	ListCommand.Flags().IntVarP(&listOpts.pageSize, "page-size", "n", 0, "rows per page, one of grid.page_size_options")
	ListCommand.Flags().StringSliceVar(&listOpts.columns, "columns", nil, "columns to print, e.g. id,fullName,salary")
	RootCmd.AddCommand(ListCommand)
}
