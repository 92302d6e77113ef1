package table

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportDataAsCSV(t *testing.T) {
	g := newPeopleGrid(t, people(), WithPagination(2, 2))
	// 导出不受分页影响
	g.NextPage()

	buf := &bytes.Buffer{}
	require.NoError(t, g.ExportDataAsCSV(buf, ExportParams{}))

	goldie.New(t).Assert(t, "people_export", buf.Bytes())
}

func TestExportFollowsFilterAndSort(t *testing.T) {
	g := newPeopleGrid(t, people())
	require.NoError(t, g.SetFilterModel(FilterModel{"fullName": {Type: NotContains, Filter: "grace"}}))
	require.NoError(t, g.SetSort("salary", SortAsc))

	buf := &bytes.Buffer{}
	require.NoError(t, g.ExportDataAsCSV(buf, ExportParams{ColumnSeparator: ';', SkipColumnHeaders: true}))

	assert.Equal(t,
		"3;\"Bob \"\"The Builder\"\" Smith\";$50000;true;Build\n"+
			"1;Ada Lovelace;$125000;true;Math,Engines\n",
		buf.String())
}

func TestExportDataAsExcel(t *testing.T) {
	g := newPeopleGrid(t, people())

	buf := &bytes.Buffer{}
	require.NoError(t, g.ExportDataAsExcel(buf, ExportParams{SheetName: "People"}))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"People"}, f.GetSheetList())

	cells := map[string]string{
		"A1": "Id",
		"B1": "Full Name",
		"C1": "Salary($)",
		"A2": "1",
		"B2": "Ada Lovelace",
		"C2": "$125000",
		"D2": "true",
		"E2": "Math,Engines",
		"B4": `Bob "The Builder" Smith`,
	}
	for cell, want := range cells {
		got, err := f.GetCellValue("People", cell)
		require.NoError(t, err)
		assert.Equal(t, want, got, cell)
	}

	rows, err := f.GetRows("People")
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}

func TestExportToFile(t *testing.T) {
	g := newPeopleGrid(t, people())
	dir := filepath.Join(t.TempDir(), "exports")

	path, size, err := g.ExportToFile(dir, ExportParams{FileName: "employees.csv"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "employees.csv"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), size)

	golden, err := os.ReadFile("testdata/people_export.golden")
	require.NoError(t, err)
	assert.Equal(t, string(golden), string(content))
}

func TestExportToFileInfersExcel(t *testing.T) {
	g := newPeopleGrid(t, people())

	path, size, err := g.ExportToFile(t.TempDir(), ExportParams{FileName: "employees.xlsx"})
	require.NoError(t, err)
	assert.Positive(t, size)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{defaultSheetName}, f.GetSheetList())
}

func TestExportToFileReplacesExisting(t *testing.T) {
	g := newPeopleGrid(t, people())
	dir := t.TempDir()
	target := filepath.Join(dir, "employees.csv")
	require.NoError(t, os.WriteFile(target, []byte("old export\n"), 0644))

	_, _, err := g.ExportToFile(dir, ExportParams{FileName: "employees.csv", Format: "pdf"})
	assert.ErrorContains(t, err, "unknown export format")

	// 失败时保留原来的文件, 不留下临时文件
	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "old export\n", string(content))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	path, _, err := g.ExportToFile(dir, ExportParams{FileName: "employees.csv"})
	require.NoError(t, err)
	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Full Name")
	entries, err = os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestExportParamsDefaults(t *testing.T) {
	p := ExportParams{}.resolve()
	assert.Equal(t, "export.csv", p.FileName)
	assert.Equal(t, FormatCSV, p.Format)
	assert.Equal(t, ',', p.ColumnSeparator)

	p = ExportParams{Format: FormatExcel}.resolve()
	assert.Equal(t, "export.xlsx", p.FileName)
}
