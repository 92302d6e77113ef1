package view

import (
	"github.com/y7ut/empgrid/component/table"
	"github.com/y7ut/empgrid/employee"
)

// SearchColumn is the derived column the search box filters on.
const SearchColumn = "fullName"

type column = table.Column[employee.Employee]

// Columns 员工表格的列定义, 顺序即导出顺序
func Columns() []column {
	return []column{
		{Field: "id", Width: 70, Pinned: table.PinLeft, ValueGetter: func(e employee.Employee) any { return e.ID.Value() }},
		{
			Field:       SearchColumn,
			HeaderName:  "Full Name",
			Flex:        1,
			MinWidth:    150,
			Filter:      table.FilterText,
			ValueGetter: func(e employee.Employee) any { return employee.FullName(e) },
		},
		{
			Field:        "email",
			Width:        230,
			ValueGetter:  func(e employee.Employee) any { return e.Email },
			CellRenderer: func(v any) string { return v.(string) },
		},
		{Field: "department", Width: 150, ValueGetter: func(e employee.Employee) any { return e.Department }},
		{Field: "position", Width: 180, ValueGetter: func(e employee.Employee) any { return e.Position }},
		{Field: "location", Width: 140, ValueGetter: func(e employee.Employee) any { return e.Location }},
		{
			Field:          "salary",
			HeaderName:     "Salary($)",
			Width:          105,
			ValueGetter:    func(e employee.Employee) any { return e.Salary },
			ValueFormatter: func(v any) string { return employee.FormatSalary(v.(float64)) },
		},
		{Field: "hireDate", Width: 120, ValueGetter: func(e employee.Employee) any { return e.HireDate }},
		{Field: "age", Width: 100, ValueGetter: func(e employee.Employee) any { return e.Age }},
		{Field: "performanceRating", Width: 100, ValueGetter: func(e employee.Employee) any { return e.PerformanceRating }},
		{Field: "projectsCompleted", Width: 100, ValueGetter: func(e employee.Employee) any { return e.ProjectsCompleted }},
		{
			Field:        "isActive",
			Width:        110,
			ValueGetter:  func(e employee.Employee) any { return e.IsActive },
			CellRenderer: func(v any) string { return employee.ActiveLabel(v.(bool)) },
		},
		{
			Field:        "skills",
			Width:        350,
			ValueGetter:  func(e employee.Employee) any { return e.Skills },
			CellRenderer: func(v any) string { return employee.SkillTags(v.([]string)) },
		},
		{Field: "manager", Width: 140, ValueGetter: func(e employee.Employee) any { return e.Manager }},
	}
}

// defaultColumn 所有列默认可排序, 可过滤
var defaultColumn = table.ColumnDefaults{Sortable: true, Filter: table.FilterText}
