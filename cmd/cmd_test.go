package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/y7ut/empgrid/component/table"
	"github.com/y7ut/empgrid/conf"
)

func init() {
	interactive = func() bool { return false }
}

type testCase[In any, Out any] struct {
	name    string
	input   In
	want    Out
	wantErr bool
}

// writeConfig 生成指向样例数据的配置文件
func writeConfig(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := conf.Default()
	cfg.App.Locale = "en-US"
	cfg.Data.Path = "../data/employees.json"
	cfg.Export.Dir = filepath.Join(dir, "exports")
	cfg.Log.Path = filepath.Join(dir, "log")
	cfg.Log.Level = "warn"

	path := filepath.Join(dir, "empgrid.conf")
	require.NoError(t, cfg.Save(path))
	return path, dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs(args)
	defer RootCmd.SetArgs(nil)
	err := RootCmd.Execute()
	return out.String(), err
}

func TestParseSort(t *testing.T) {
	type sortSpec struct {
		field string
		dir   table.SortDirection
	}
	cases := []testCase[string, sortSpec]{
		{name: "field only", input: "salary", want: sortSpec{"salary", table.SortAsc}},
		{name: "desc", input: "age:desc", want: sortSpec{"age", table.SortDesc}},
		{name: "upper case", input: "age:ASC", want: sortSpec{"age", table.SortAsc}},
		{name: "bad direction", input: "age:up", wantErr: true},
		{name: "no field", input: ":desc", wantErr: true},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			field, dir, err := parseSort(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, sortSpec{field, dir})
		})
	}
}

func TestTailLines(t *testing.T) {
	cases := []testCase[string, []string]{
		{name: "empty", input: "", want: nil},
		{name: "fewer lines", input: "a\nb\n", want: []string{"a", "b"}},
		{name: "last three", input: "1\n2\n3\n4\n5\n", want: []string{"3", "4", "5"}},
		{name: "no trailing newline", input: "1\n2\n3\n4", want: []string{"2", "3", "4"}},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			lines, size, err := tailLines(strings.NewReader(tt.input), 3)
			require.NoError(t, err)
			assert.Equal(t, int64(len(tt.input)), size)
			assert.Equal(t, tt.want, lines)
		})
	}
}

func TestTailLinesAcrossChunks(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 2000; i++ {
		fmt.Fprintf(&b, "line %04d\n", i)
	}
	lines, _, err := tailLines(strings.NewReader(b.String()), 600)
	require.NoError(t, err)
	require.Len(t, lines, 600)
	assert.Equal(t, "line 1400", lines[0])
	assert.Equal(t, "line 1999", lines[599])
}

func TestPrompter(t *testing.T) {
	in := strings.NewReader("directory\n\n\n20\n\n/tmp/log\n")
	var out bytes.Buffer
	cfg := conf.Default()
	newPrompter(in, &out).fill(cfg)

	assert.Equal(t, "directory", cfg.App.Name)
	assert.Equal(t, "./data/employees.json", cfg.Data.Path)
	assert.Equal(t, "", cfg.App.Locale)
	assert.Equal(t, 20, cfg.Grid.PageSize)
	assert.Equal(t, ".", cfg.Export.Dir)
	assert.Equal(t, "/tmp/log", cfg.Log.Path)
	assert.Contains(t, out.String(), "4. Enter the page size [10]: ")
}

func TestCheckconfigGeneratesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empgrid.conf")
	var out bytes.Buffer
	require.NoError(t, checkconfig(path, &out))
	assert.Contains(t, out.String(), "config not found")

	cfg, err := conf.Load(path)
	require.NoError(t, err)
	assert.Equal(t, conf.Default().Grid, cfg.Grid)

	out.Reset()
	require.NoError(t, checkconfig(path, &out))
	assert.Empty(t, out.String())
}

func TestListCommand(t *testing.T) {
	path, _ := writeConfig(t)
	out, err := execute(t, "list", "-c", path, "--page", "2", "--columns", "id,fullName,salary")
	require.NoError(t, err)

	assert.Contains(t, out, "Radia Perlman")
	assert.Contains(t, out, "Bjarne Stroustrup")
	assert.NotContains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "Salary($)")
	assert.Contains(t, out, "page 2/3 · 25 of 25 employees")
}

func TestExportCommand(t *testing.T) {
	path, dir := writeConfig(t)
	out, err := execute(t, "export", "-c", path, "-o", dir, "--search", "ENG", "--format", "xlsx")
	require.NoError(t, err)

	file := filepath.Join(dir, "employees.xlsx")
	assert.Contains(t, out, "exported 1 rows to "+file)

	f, err := excelize.OpenFile(file)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Engelbert Humperdinck", rows[1][1])
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", out)
}

func TestRenderListUnknownColumn(t *testing.T) {
	path, _ := writeConfig(t)
	configPath = path
	s, err := prepare(&bytes.Buffer{}, false)
	require.NoError(t, err)
	defer s.Close()

	v, err := s.view("", "salary:desc")
	require.NoError(t, err)
	assert.Error(t, renderList(&bytes.Buffer{}, v.Grid(), []string{"nickname"}))

	var out bytes.Buffer
	require.NoError(t, renderList(&out, v.Grid(), []string{"fullName"}))
	assert.Equal(t, "page 1/3 · 25 of 25 employees · sorted by salary desc", listCaption(v.Grid()))

	v.OnSearchTextChanged("an")
	assert.Contains(t, listCaption(v.Grid()), `fullName contains "an"`)
	_, statErr := os.Stat(filepath.Join(s.conf.Log.Path, s.conf.Log.Name))
	assert.NoError(t, statErr)
}
