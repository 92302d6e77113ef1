package table

import (
	"fmt"
	"strings"
)

type person struct {
	ID     int
	First  string
	Last   string
	Salary float64
	Active bool
	Tags   []string
}

func people() []person {
	return []person{
		{ID: 1, First: "Ada", Last: "Lovelace", Salary: 125000, Active: true, Tags: []string{"Math", "Engines"}},
		{ID: 2, First: "Grace", Last: "Hopper", Salary: 0, Active: false},
		{ID: 3, First: `Bob "The Builder"`, Last: "Smith", Salary: 50000, Active: true, Tags: []string{"Build"}},
	}
}

func numbered(n int) []person {
	rows := make([]person, 0, n)
	for i := 1; i <= n; i++ {
		rows = append(rows, person{ID: i, First: fmt.Sprintf("P%02d", i), Last: "Row", Salary: float64(i * 1000)})
	}
	return rows
}

func personColumns() []Column[person] {
	return []Column[person]{
		{
			Field:       "fullName",
			HeaderName:  "Full Name",
			Flex:        1,
			MinWidth:    150,
			Filter:      FilterText,
			ValueGetter: func(p person) any { return p.First + " " + p.Last },
		},
		{
			Field:       "id",
			Width:       70,
			Pinned:      PinLeft,
			ValueGetter: func(p person) any { return p.ID },
		},
		{
			Field:          "salary",
			HeaderName:     "Salary($)",
			Width:          105,
			ValueGetter:    func(p person) any { return p.Salary },
			ValueFormatter: func(v any) string { return fmt.Sprintf("$%.0f", v) },
		},
		{
			Field:       "isActive",
			Width:       110,
			Sortable:    Disabled,
			ValueGetter: func(p person) any { return p.Active },
			CellRenderer: func(v any) string {
				if v.(bool) {
					return "Active"
				}
				return "Inactive"
			},
		},
		{
			Field:        "tags",
			Width:        200,
			ValueGetter:  func(p person) any { return p.Tags },
			CellRenderer: func(v any) string { return "[" + strings.Join(v.([]string), "] [") + "]" },
		},
	}
}

func ids(rows []person) []int {
	out := make([]int, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}
