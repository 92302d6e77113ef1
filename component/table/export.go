package table

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/y7ut/empgrid/pkg/collection"
	"github.com/y7ut/empgrid/pkg/file"
)

// ExportFormat 导出文件格式
type ExportFormat string

const (
	FormatCSV   ExportFormat = "csv"
	FormatExcel ExportFormat = "xlsx"
)

const (
	defaultExportName = "export"
	defaultSheetName  = "Sheet1"
)

// ExportParams 导出配置, 零值导出 export.csv
type ExportParams struct {
	FileName          string
	Format            ExportFormat
	ColumnSeparator   rune
	SkipColumnHeaders bool
	SheetName         string
}

func (p ExportParams) resolve() ExportParams {
	if p.Format == "" {
		p.Format = FormatCSV
		if strings.EqualFold(filepath.Ext(p.FileName), ".xlsx") {
			p.Format = FormatExcel
		}
	}
	if p.FileName == "" {
		p.FileName = defaultExportName + "." + string(p.Format)
	}
	if p.ColumnSeparator == 0 {
		p.ColumnSeparator = ','
	}
	if p.SheetName == "" {
		p.SheetName = defaultSheetName
	}
	return p
}

// exportRecords 表头加上全部过滤排序后的行, 值使用 formatter, 忽略 renderer
func (o *ObjectGrid[T]) exportRecords(skipHeader bool) [][]string {
	records := collection.Map(o.displayed(), func(_ int, r T) []string {
		line := make([]string, len(o.columns))
		for i, c := range o.columns {
			line[i] = o.FormattedValue(r, c)
		}
		return line
	})
	if skipHeader {
		return records
	}
	header := make([]string, len(o.columns))
	for i, c := range o.columns {
		header[i] = c.HeaderName
	}
	return append([][]string{header}, records...)
}

// ExportDataAsCSV writes every displayed row, across all pages, as CSV.
func (o *ObjectGrid[T]) ExportDataAsCSV(w io.Writer, params ExportParams) error {
	params = params.resolve()
	cw := csv.NewWriter(w)
	cw.Comma = params.ColumnSeparator
	if err := cw.WriteAll(o.exportRecords(params.SkipColumnHeaders)); err != nil {
		return errors.Wrap(err, "write csv")
	}
	return nil
}

// ExportDataAsExcel writes the same rows as ExportDataAsCSV into one sheet.
// Numeric cells without a formatter stay numeric.
func (o *ObjectGrid[T]) ExportDataAsExcel(w io.Writer, params ExportParams) error {
	params = params.resolve()
	f := excelize.NewFile()
	defer f.Close()

	if params.SheetName != defaultSheetName {
		if err := f.SetSheetName(defaultSheetName, params.SheetName); err != nil {
			return errors.Wrap(err, "name sheet")
		}
	}

	line := 1
	if !params.SkipColumnHeaders {
		header := make([]any, len(o.columns))
		for i, c := range o.columns {
			header[i] = c.HeaderName
		}
		if err := setSheetRow(f, params.SheetName, line, header); err != nil {
			return err
		}
		line++
	}

	var rowErr error
	o.displayed().Each(func(k int, r T) {
		if rowErr != nil {
			return
		}
		cells := make([]any, len(o.columns))
		for i, c := range o.columns {
			v := c.ValueGetter(r)
			if _, numeric := toFloat(v); numeric && c.ValueFormatter == nil {
				cells[i] = v
				continue
			}
			cells[i] = o.FormattedValue(r, c)
		}
		rowErr = setSheetRow(f, params.SheetName, line+k, cells)
	})
	if rowErr != nil {
		return rowErr
	}

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "write xlsx")
	}
	return nil
}

func setSheetRow(f *excelize.File, sheet string, line int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, line)
	if err != nil {
		return errors.Wrapf(err, "row %d", line)
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return errors.Wrapf(err, "row %d", line)
	}
	return nil
}

// ExportToFile writes dir/FileName in the requested format and returns the
// path and the number of bytes written. The rows go to a temporary file in
// dir first; an existing export is only replaced once writing succeeded.
func (o *ObjectGrid[T]) ExportToFile(dir string, params ExportParams) (path string, size int64, err error) {
	params = params.resolve()
	out, err := file.CreateTemp(dir, "."+params.FileName+".*")
	if err != nil {
		return "", 0, errors.Wrap(err, "create export file")
	}
	defer func() {
		if err != nil {
			out.Close()
			os.Remove(out.Name())
		}
	}()

	counter := &countingWriter{w: bufio.NewWriter(out)}
	switch params.Format {
	case FormatCSV:
		err = o.ExportDataAsCSV(counter, params)
	case FormatExcel:
		err = o.ExportDataAsExcel(counter, params)
	default:
		err = errors.Errorf("unknown export format %q", params.Format)
	}
	if err != nil {
		return "", 0, err
	}
	if err = counter.w.Flush(); err != nil {
		return "", 0, errors.Wrap(err, "flush export file")
	}
	if err = out.Chmod(0644); err != nil {
		return "", 0, errors.Wrap(err, "chmod export file")
	}
	if err = out.Close(); err != nil {
		return "", 0, errors.Wrap(err, "close export file")
	}

	path = filepath.Join(dir, params.FileName)
	if err = os.Rename(out.Name(), path); err != nil {
		return "", 0, errors.Wrap(err, "replace export file")
	}
	return path, counter.n, nil
}

type countingWriter struct {
	w *bufio.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
