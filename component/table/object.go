package table

import (
	"fmt"
	"maps"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/pkg/errors"

	"github.com/y7ut/empgrid/pkg/collection"
)

var (
	defaultPageSize  = 100
	defaultPageSizes = []int{20, 50, 100}
)

type settings struct {
	pageSize  int
	pageSizes []int
	defaults  ColumnDefaults
}

// Option 表格引擎的配置项
type Option func(*settings)

// WithPagination sets the page size and the sizes a user can switch between.
func WithPagination(pageSize int, selector ...int) Option {
	return func(s *settings) {
		s.pageSize = pageSize
		if len(selector) > 0 {
			s.pageSizes = selector
		}
	}
}

// WithDefaultColumn fills unset column options.
func WithDefaultColumn(d ColumnDefaults) Option {
	return func(s *settings) {
		s.defaults = d
	}
}

// ObjectGrid 表格引擎: 持有不可变的行, 负责过滤, 排序, 分页, 格式化和导出
type ObjectGrid[T any] struct {
	d         []T
	columns   []Column[T] // 展示顺序, 左固定列在前, 右固定列在后
	byField   map[string]int
	filter    FilterModel
	sort      SortModel
	pageSize  int
	pageSizes []int
	page      int
}

// NewGrid 创建一个表格引擎
func NewGrid[T any](items []T, columns []Column[T], opts ...Option) (*ObjectGrid[T], error) {
	s := settings{pageSize: defaultPageSize, pageSizes: defaultPageSizes}
	for _, opt := range opts {
		opt(&s)
	}

	sizes, err := normalizePageSizes(s.pageSize, s.pageSizes)
	if err != nil {
		return nil, err
	}

	if len(columns) == 0 {
		return nil, errors.New("grid needs at least one column")
	}

	o := &ObjectGrid[T]{
		d:         append([]T(nil), items...),
		byField:   make(map[string]int, len(columns)),
		pageSize:  s.pageSize,
		pageSizes: sizes,
	}

	resolved := make([]Column[T], 0, len(columns))
	for i, c := range columns {
		if c.Field == "" {
			return nil, errors.Errorf("column %d has no field", i)
		}
		if c.ValueGetter == nil {
			return nil, errors.Errorf("column %s has no value getter", c.Field)
		}
		if _, ok := o.byField[c.Field]; ok {
			return nil, errors.Errorf("duplicate column %s", c.Field)
		}
		o.byField[c.Field] = i
		resolved = append(resolved, c.withDefaults(s.defaults))
	}

	// 固定列的顺序, 同一组内保持声明顺序
	sort.SliceStable(resolved, func(i, j int) bool {
		return pinRank(resolved[i].Pinned) < pinRank(resolved[j].Pinned)
	})
	for i, c := range resolved {
		o.byField[c.Field] = i
	}
	o.columns = resolved
	return o, nil
}

func pinRank(p Pin) int {
	switch p {
	case PinLeft:
		return 0
	case PinRight:
		return 2
	}
	return 1
}

func normalizePageSizes(pageSize int, selector []int) ([]int, error) {
	if pageSize < 1 {
		return nil, errors.Errorf("page size must be positive, got %d", pageSize)
	}
	set := map[int]bool{pageSize: true}
	for _, n := range selector {
		if n < 1 {
			return nil, errors.Errorf("page size option must be positive, got %d", n)
		}
		set[n] = true
	}
	sizes := make([]int, 0, len(set))
	for n := range set {
		sizes = append(sizes, n)
	}
	sort.Ints(sizes)
	return sizes, nil
}

// Columns returns the column descriptors in display order.
func (o *ObjectGrid[T]) Columns() []Column[T] {
	return append([]Column[T](nil), o.columns...)
}

// Column looks a column up by field.
func (o *ObjectGrid[T]) Column(field string) (Column[T], bool) {
	i, ok := o.byField[field]
	if !ok {
		return Column[T]{}, false
	}
	return o.columns[i], true
}

// SetFilterModel replaces the active filters. A nil or empty model clears
// them and keeps the current page. A changed non-empty model returns to the
// first page. An invalid model is rejected as a whole.
func (o *ObjectGrid[T]) SetFilterModel(model FilterModel) error {
	for field, f := range model {
		c, ok := o.Column(field)
		if !ok {
			return errors.Errorf("filter on unknown column %s", field)
		}
		if !c.IsFilterable() {
			return errors.Errorf("column %s has no filter", field)
		}
		if err := f.validate(); err != nil {
			return errors.Wrapf(err, "filter on %s", field)
		}
	}
	next := model.clone()
	if len(next) > 0 && !maps.Equal(o.filter, next) {
		o.page = 0
	}
	o.filter = next
	o.clampPage()
	return nil
}

// FilterModel returns a copy of the active filters, nil when none.
func (o *ObjectGrid[T]) FilterModel() FilterModel {
	return o.filter.clone()
}

// IsFilterPresent reports whether any filter is active.
func (o *ObjectGrid[T]) IsFilterPresent() bool {
	return len(o.filter) > 0
}

// SetSort sorts by a single column. SortNone clears the sort.
func (o *ObjectGrid[T]) SetSort(field string, dir SortDirection) error {
	if dir == SortNone {
		o.ClearSort()
		return nil
	}
	if dir != SortAsc && dir != SortDesc {
		return errors.Errorf("unknown sort direction %q", dir)
	}
	c, ok := o.Column(field)
	if !ok {
		return errors.Errorf("sort on unknown column %s", field)
	}
	if !c.IsSortable() {
		return errors.Errorf("column %s is not sortable", field)
	}
	o.sort = SortModel{Field: field, Direction: dir}
	o.clampPage()
	return nil
}

// ClearSort restores source order.
func (o *ObjectGrid[T]) ClearSort() {
	o.sort = SortModel{}
}

// SortModel returns the active sort.
func (o *ObjectGrid[T]) SortModel() SortModel {
	return o.sort
}

// DisplayedRows 过滤并排序后的全部行(不分页)
func (o *ObjectGrid[T]) DisplayedRows() []T {
	return o.displayed().Value()
}

func (o *ObjectGrid[T]) displayed() *collection.Collection[T] {
	c := collection.New(o.d)
	if len(o.filter) > 0 {
		c.Filter(o.passesFilter)
	}
	if o.sort.Active() {
		col := o.columns[o.byField[o.sort.Field]]
		desc := o.sort.Direction == SortDesc
		c.Sort(func(i, j T) bool {
			r := compareValues(col.ValueGetter(i), col.ValueGetter(j))
			if desc {
				return r > 0
			}
			return r < 0
		})
	}
	return c
}

func (o *ObjectGrid[T]) passesFilter(row T) bool {
	for field, f := range o.filter {
		col := o.columns[o.byField[field]]
		if !f.Matches(valueText(col.ValueGetter(row))) {
			return false
		}
	}
	return true
}

// TotalRows counts every row regardless of filters.
func (o *ObjectGrid[T]) TotalRows() int {
	return len(o.d)
}

// DisplayedCount counts the rows passing the filters.
func (o *ObjectGrid[T]) DisplayedCount() int {
	return o.displayed().Len()
}

// PageSize returns the number of rows per page.
func (o *ObjectGrid[T]) PageSize() int {
	return o.pageSize
}

// PageSizeOptions returns the selectable page sizes in ascending order.
func (o *ObjectGrid[T]) PageSizeOptions() []int {
	return append([]int(nil), o.pageSizes...)
}

// SetPageSize switches to one of the selectable sizes, keeping the first
// row of the current page visible.
func (o *ObjectGrid[T]) SetPageSize(n int) error {
	found := false
	for _, size := range o.pageSizes {
		if size == n {
			found = true
			break
		}
	}
	if !found {
		return errors.Errorf("page size %d is not one of %v", n, o.pageSizes)
	}
	first := o.page * o.pageSize
	o.pageSize = n
	o.page = first / n
	o.clampPage()
	return nil
}

// NextPageSize cycles through the selectable sizes.
func (o *ObjectGrid[T]) NextPageSize() int {
	next := o.pageSizes[0]
	for i, size := range o.pageSizes {
		if size == o.pageSize && i+1 < len(o.pageSizes) {
			next = o.pageSizes[i+1]
		}
	}
	_ = o.SetPageSize(next)
	return o.pageSize
}

// CurrentPage is zero based.
func (o *ObjectGrid[T]) CurrentPage() int {
	return o.page
}

// TotalPages is at least one, even without rows.
func (o *ObjectGrid[T]) TotalPages() int {
	return pagesFor(o.DisplayedCount(), o.pageSize)
}

func pagesFor(count, size int) int {
	if count <= 0 {
		return 1
	}
	return (count + size - 1) / size
}

// GoToPage moves to page n, clamped to the available pages.
func (o *ObjectGrid[T]) GoToPage(n int) {
	o.page = n
	o.clampPage()
}

func (o *ObjectGrid[T]) NextPage()     { o.GoToPage(o.page + 1) }
func (o *ObjectGrid[T]) PreviousPage() { o.GoToPage(o.page - 1) }
func (o *ObjectGrid[T]) FirstPage()    { o.GoToPage(0) }
func (o *ObjectGrid[T]) LastPage()     { o.GoToPage(o.TotalPages() - 1) }

func (o *ObjectGrid[T]) clampPage() {
	if last := o.TotalPages() - 1; o.page > last {
		o.page = last
	}
	if o.page < 0 {
		o.page = 0
	}
}

// PageRows returns the displayed rows of the current page.
func (o *ObjectGrid[T]) PageRows() []T {
	return o.pageCollection().Value()
}

func (o *ObjectGrid[T]) pageCollection() *collection.Collection[T] {
	return o.displayed().Slice(o.page*o.pageSize, o.pageSize)
}

// Value 单元格原始值
func (o *ObjectGrid[T]) Value(row T, c Column[T]) any {
	return c.ValueGetter(row)
}

// FormattedValue 经过 ValueFormatter 的单元格文本, 导出也使用这个值
func (o *ObjectGrid[T]) FormattedValue(row T, c Column[T]) string {
	v := c.ValueGetter(row)
	if c.ValueFormatter != nil {
		return c.ValueFormatter(v)
	}
	return valueText(v)
}

// RenderedValue 终端中显示的文本
func (o *ObjectGrid[T]) RenderedValue(row T, c Column[T]) string {
	if c.CellRenderer != nil {
		return c.CellRenderer(c.ValueGetter(row))
	}
	return o.FormattedValue(row, c)
}

// Render render一组Table所需的数据格式, 只包含当前页
func (o *ObjectGrid[T]) Render(width int) (columns []table.Column, rows []table.Row) {
	widths := o.layout(width)
	columns = make([]table.Column, len(o.columns))
	for i, c := range o.columns {
		title := c.HeaderName
		if o.sort.Active() && o.sort.Field == c.Field {
			if o.sort.Direction == SortAsc {
				title += " ▲"
			} else {
				title += " ▼"
			}
		}
		columns[i] = table.Column{Title: title, Width: widths[i]}
	}

	rows = collection.Map(o.pageCollection(), func(_ int, r T) table.Row {
		line := make(table.Row, len(o.columns))
		for i, c := range o.columns {
			line[i] = o.RenderedValue(r, c)
		}
		return line
	})
	return
}

// cellPadding 是 bubbles table 默认样式中每个单元格左右的空白
const cellPadding = 2

// layout 固定宽度列直接换算, flex 列平分剩余的宽度
func (o *ObjectGrid[T]) layout(width int) []int {
	widths := make([]int, len(o.columns))
	used, flex := 0, 0
	for i, c := range o.columns {
		used += cellPadding
		if c.Flex > 0 {
			flex += c.Flex
			continue
		}
		widths[i] = c.cells()
		used += widths[i]
	}

	remaining := width - used
	for i, c := range o.columns {
		if c.Flex <= 0 {
			continue
		}
		w := pixelsToCells(c.MinWidth)
		if flex > 0 && remaining > 0 {
			if share := remaining * c.Flex / flex; share > w {
				w = share
			}
		}
		widths[i] = w
	}
	return widths
}

// valueText 值的文本形式, 用于过滤和没有 formatter 的列
func valueText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []string:
		return strings.Join(x, ",")
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}
