// Package view binds the employee dataset to the grid engine and owns the
// state of the search box.
package view

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/y7ut/empgrid/component/table"
	"github.com/y7ut/empgrid/employee"
)

// SearchState 搜索框的两种状态
type SearchState int

const (
	Idle SearchState = iota
	Filtering
)

func (s SearchState) String() string {
	if s == Filtering {
		return "filtering"
	}
	return "idle"
}

const searchPlaceholder = "Search employees"

var (
	defaultPageSize  = 10
	defaultPageSizes = []int{10, 20}
)

// Options 分页和导出配置
type Options struct {
	PageSize        int
	PageSizeOptions []int
	ExportDir       string
	ExportFileName  string
	Log             logrus.FieldLogger
}

// EmployeeTableView 员工表格. 只在 bubbletea 的 update 循环中修改, 不支持并发访问
type EmployeeTableView struct {
	grid       *table.ObjectGrid[employee.Employee]
	searchText string
	state      SearchState
	exportDir  string
	exportName string
	log        logrus.FieldLogger
}

// New 创建员工表格
func New(data *employee.Dataset, opts Options) (*EmployeeTableView, error) {
	if data == nil {
		return nil, errors.New("no employees dataset")
	}
	if opts.PageSize == 0 {
		opts.PageSize = defaultPageSize
	}
	if len(opts.PageSizeOptions) == 0 {
		opts.PageSizeOptions = defaultPageSizes
	}
	grid, err := table.NewGrid(data.Employees, Columns(),
		table.WithDefaultColumn(defaultColumn),
		table.WithPagination(opts.PageSize, opts.PageSizeOptions...),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create employee grid")
	}

	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	v := &EmployeeTableView{
		grid:       grid,
		exportDir:  opts.ExportDir,
		exportName: opts.ExportFileName,
		log:        log,
	}
	if v.exportDir == "" {
		v.exportDir = "."
	}
	if v.exportName == "" {
		v.exportName = "employees.csv"
	}
	return v, nil
}

// OnSearchTextChanged 空字符串清除全部过滤条件, 否则按 contains 过滤全名列
func (v *EmployeeTableView) OnSearchTextChanged(text string) {
	v.searchText = text

	var model table.FilterModel
	v.state = Idle
	if text != "" {
		model = table.FilterModel{SearchColumn: {Type: table.Contains, Filter: text}}
		v.state = Filtering
	}

	if err := v.grid.SetFilterModel(model); err != nil {
		v.log.WithError(err).Error("apply search filter")
		return
	}
	v.log.WithFields(logrus.Fields{
		"search": text,
		"rows":   v.grid.DisplayedCount(),
	}).Debug("search changed")
}

// SearchText 搜索框当前的值
func (v *EmployeeTableView) SearchText() string {
	return v.searchText
}

// State 当前是否有过滤条件
func (v *EmployeeTableView) State() SearchState {
	return v.state
}

// Grid 底层的表格引擎
func (v *EmployeeTableView) Grid() *table.ObjectGrid[employee.Employee] {
	return v.grid
}

// ExportCurrentView 导出当前加载的行到 employees.csv
func (v *EmployeeTableView) ExportCurrentView() (string, error) {
	path, _, err := v.Export(table.FormatCSV)
	return path, err
}

// Export 按格式导出, xlsx 会替换配置中文件名的扩展名
func (v *EmployeeTableView) Export(format table.ExportFormat) (string, int64, error) {
	name := v.exportName
	if ext := "." + string(format); !strings.EqualFold(filepath.Ext(name), ext) {
		name = strings.TrimSuffix(name, filepath.Ext(name)) + ext
	}

	path, size, err := v.grid.ExportToFile(v.exportDir, table.ExportParams{FileName: name, Format: format})
	if err != nil {
		v.log.WithError(err).WithField("file", name).Error("export failed")
		return "", 0, err
	}
	v.log.WithFields(logrus.Fields{
		"file":  path,
		"rows":  v.grid.DisplayedCount(),
		"bytes": size,
	}).Info("exported")
	return path, size, nil
}

// Describe 选中行的摘要, 包含邮件链接
func (v *EmployeeTableView) Describe(e employee.Employee) string {
	parts := []string{employee.FullName(e)}
	if link := employee.MailtoLink(e.Email); link != "" {
		parts = append(parts, link)
	}
	for _, s := range []string{e.Position, e.Department, e.Location} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if e.Manager != "" {
		parts = append(parts, fmt.Sprintf("reports to %s", e.Manager))
	}
	return strings.Join(parts, " · ")
}

// Model 交互界面
func (v *EmployeeTableView) Model() table.HermersTable[employee.Employee] {
	return table.Create(v.grid, table.Hooks[employee.Employee]{
		OnSearch: v.OnSearchTextChanged,
		OnExport: v.ExportCurrentView,
		OnSelect: v.Describe,
	}, searchPlaceholder, v.searchText)
}
