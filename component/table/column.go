package table

import (
	"strings"
	"unicode"
)

// PixelsPerCell converts the pixel widths of column declarations into
// terminal cells.
const PixelsPerCell = 9

const minCellWidth = 4

// Pin 列固定的位置
type Pin int

const (
	PinNone Pin = iota
	PinLeft
	PinRight
)

// Toggle 三态开关, Inherit 表示沿用默认列配置
type Toggle int8

const (
	Inherit Toggle = iota
	Enabled
	Disabled
)

// FilterKind 列上的过滤器
type FilterKind int8

const (
	FilterDefault FilterKind = iota
	FilterText
	FilterNone
)

// Column 列定义. ValueGetter 必须提供, 其余都是可选的
type Column[T any] struct {
	Field      string
	HeaderName string
	Width      int // pixels
	MinWidth   int // pixels, only used by flex columns
	Flex       int
	Pinned     Pin
	Sortable   Toggle
	Filter     FilterKind

	ValueGetter    func(row T) any
	ValueFormatter func(value any) string
	CellRenderer   func(value any) string
}

// ColumnDefaults 默认列配置, 填充列定义中没有指定的部分
type ColumnDefaults struct {
	Sortable bool
	Filter   FilterKind
}

func (c Column[T]) withDefaults(d ColumnDefaults) Column[T] {
	if c.Sortable == Inherit {
		c.Sortable = Disabled
		if d.Sortable {
			c.Sortable = Enabled
		}
	}
	if c.Filter == FilterDefault {
		c.Filter = d.Filter
		if c.Filter == FilterDefault {
			c.Filter = FilterNone
		}
	}
	if c.HeaderName == "" {
		c.HeaderName = HeaderFromField(c.Field)
	}
	return c
}

// IsSortable reports whether rows can be sorted by this column.
func (c Column[T]) IsSortable() bool { return c.Sortable == Enabled }

// IsFilterable reports whether the column accepts a filter.
func (c Column[T]) IsFilterable() bool { return c.Filter == FilterText }

func (c Column[T]) cells() int {
	return pixelsToCells(c.Width)
}

func pixelsToCells(px int) int {
	if cells := px / PixelsPerCell; cells > minCellWidth {
		return cells
	}
	return minCellWidth
}

// HeaderFromField 从字段名生成表头: hireDate -> Hire Date
func HeaderFromField(field string) string {
	var words []string
	var current []rune
	runes := []rune(field)
	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == ' ' || r == '.':
			flush()
			continue
		case unicode.IsUpper(r) && i > 0 && !unicode.IsUpper(runes[i-1]):
			flush()
		}
		current = append(current, r)
	}
	flush()

	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
