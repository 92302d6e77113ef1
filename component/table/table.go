package table

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#6EAF23"))
	boardStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Hooks 表格交互时回调到业务层
type Hooks[T any] struct {
	// OnSearch 搜索框的内容每次变化时调用
	OnSearch func(text string)
	// OnExport 导出当前加载的行, 返回写入的路径
	OnExport func() (string, error)
	// OnSelect 描述被选中的行, 显示在状态栏
	OnSelect func(row T) string
}

// HermersTable 可搜索, 可排序, 可分页的终端表格
type HermersTable[T any] struct {
	keyMap  keyMap
	grid    *ObjectGrid[T]
	hooks   Hooks[T]
	table   table.Model
	search  textinput.Model
	pages   paginator.Model
	help    help.Model
	board   string
	failed  bool
	width   int
	sortCol int
}

func (m HermersTable[T]) Init() tea.Cmd { return textinput.Blink }

func (m HermersTable[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// If we set a width on the help menu it can gracefully truncate
		// its view as needed.
		m.help.Width = msg.Width
		m.width = msg.Width
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keyMap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keyMap.Focus):
			return m, m.toggleFocus()
		case key.Matches(msg, m.keyMap.Export):
			m.export()
			return m, nil
		}
		if !m.search.Focused() {
			if key.Matches(msg, m.keyMap.QuitGrid) {
				return m, tea.Quit
			}
			if handled := m.gridKey(msg); handled {
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	if m.search.Focused() {
		before := m.search.Value()
		m.search, cmd = m.search.Update(msg)
		if text := m.search.Value(); text != before {
			if m.hooks.OnSearch != nil {
				m.hooks.OnSearch(text)
			}
			m.refresh()
		}
		return m, cmd
	}
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// gridKey 表格获得焦点时的按键
func (m *HermersTable[T]) gridKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, m.keyMap.NextPage):
		m.grid.NextPage()
	case key.Matches(msg, m.keyMap.PrevPage):
		m.grid.PreviousPage()
	case key.Matches(msg, m.keyMap.SortNext):
		m.sortCol = (m.sortCol + 1) % len(m.grid.columns)
		m.setBoard(fmt.Sprintf("sort column: %s", m.grid.columns[m.sortCol].HeaderName), false)
		return true
	case key.Matches(msg, m.keyMap.SortPrev):
		m.sortCol = (m.sortCol + len(m.grid.columns) - 1) % len(m.grid.columns)
		m.setBoard(fmt.Sprintf("sort column: %s", m.grid.columns[m.sortCol].HeaderName), false)
		return true
	case key.Matches(msg, m.keyMap.Sort):
		m.cycleSort()
	case key.Matches(msg, m.keyMap.PageSize):
		m.grid.NextPageSize()
		m.table.SetHeight(m.grid.PageSize() + 1)
	case key.Matches(msg, m.keyMap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return true
	case key.Matches(msg, m.keyMap.Enter):
		m.describeSelected()
		return true
	default:
		return false
	}
	m.refresh()
	return true
}

func (m *HermersTable[T]) toggleFocus() tea.Cmd {
	if m.search.Focused() {
		m.search.Blur()
		m.table.Focus()
		return nil
	}
	m.table.Blur()
	return m.search.Focus()
}

func (m *HermersTable[T]) cycleSort() {
	c := m.grid.columns[m.sortCol]
	dir := SortAsc
	if current := m.grid.SortModel(); current.Field == c.Field {
		dir = current.Direction.Next()
	}
	if err := m.grid.SetSort(c.Field, dir); err != nil {
		m.setBoard(err.Error(), true)
		return
	}
	m.setBoard("", false)
}

func (m *HermersTable[T]) export() {
	if m.hooks.OnExport == nil {
		m.setBoard("export is not available", true)
		return
	}
	path, err := m.hooks.OnExport()
	if err != nil {
		m.setBoard(fmt.Sprintf("export failed: %s", err), true)
		return
	}
	m.setBoard(fmt.Sprintf("exported %d rows to %s", m.grid.DisplayedCount(), path), false)
}

func (m *HermersTable[T]) describeSelected() {
	rows := m.grid.PageRows()
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(rows) || m.hooks.OnSelect == nil {
		return
	}
	m.setBoard(m.hooks.OnSelect(rows[cursor]), false)
}

func (m *HermersTable[T]) setBoard(text string, failed bool) {
	m.board = text
	m.failed = failed
}

// refresh 把引擎的当前页同步到 bubbles 组件
func (m *HermersTable[T]) refresh() {
	columns, rows := m.grid.Render(m.width)
	m.table.SetRows(nil)
	m.table.SetColumns(columns)
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
	m.pages.PerPage = m.grid.PageSize()
	m.pages.TotalPages = m.grid.TotalPages()
	m.pages.Page = m.grid.CurrentPage()
}

// Status 分页和计数信息
func (m HermersTable[T]) Status() string {
	first, last := 0, 0
	if count := m.grid.DisplayedCount(); count > 0 {
		first = m.grid.CurrentPage()*m.grid.PageSize() + 1
		last = min(first+m.grid.PageSize()-1, count)
	}
	return fmt.Sprintf("%d to %d of %d · page %d of %d · %d per page %v",
		first, last, m.grid.DisplayedCount(),
		m.grid.CurrentPage()+1, m.grid.TotalPages(),
		m.grid.PageSize(), m.grid.PageSizeOptions())
}

// SearchValue 搜索框当前的内容
func (m HermersTable[T]) SearchValue() string {
	return m.search.Value()
}

// Board 状态栏的文本
func (m HermersTable[T]) Board() string {
	return m.board
}

type keyMap struct {
	base     table.KeyMap
	Enter    key.Binding
	Quit     key.Binding
	QuitGrid key.Binding
	Help     key.Binding
	Focus    key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	SortNext key.Binding
	SortPrev key.Binding
	Sort     key.Binding
	PageSize key.Binding
	Export   key.Binding
}

func DefaultTableKeyMap() keyMap {
	keyMapDefault := keyMap{
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "checkout item"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		QuitGrid: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "esc"),
			key.WithHelp("tab", "search/grid"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "l", "]"),
			key.WithHelp("→", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "h", "["),
			key.WithHelp("←", "prev page"),
		),
		SortNext: key.NewBinding(
			key.WithKeys(">", "."),
			key.WithHelp(">", "next sort column"),
		),
		SortPrev: key.NewBinding(
			key.WithKeys("<", ","),
			key.WithHelp("<", "prev sort column"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort asc/desc/none"),
		),
		PageSize: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "page size"),
		),
		Export: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "export csv"),
		),
		base: table.DefaultKeyMap(),
	}
	return keyMapDefault
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.PrevPage, k.NextPage, k.Export, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.base.LineUp, k.base.LineDown}, // first column
		{k.PrevPage, k.NextPage, k.PageSize},
		{k.SortPrev, k.SortNext, k.Sort},
		{k.Enter, k.Export},
		{k.Focus, k.Quit},
	}
}

func (m HermersTable[T]) View() string {
	board := boardStyle.Render(m.board)
	if m.failed {
		board = errorStyle.Render(m.board)
	}
	return m.search.View() + "\n" +
		baseStyle.Render(m.table.View()) + "\n" +
		m.pages.View() + "  " + m.Status() + "\n" +
		board + "\n" +
		m.help.View(m.keyMap) + "\n"
}

func newBaseTable(columns []table.Column, rows []table.Row, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func newSearchInput(placeholder, value string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "🔍 "
	ti.CharLimit = 64
	ti.Width = 32
	ti.SetValue(value)
	ti.Focus()
	return ti
}

// Create 创建一个交互表格, 搜索框默认获得焦点
func Create[T any](grid *ObjectGrid[T], hooks Hooks[T], placeholder, search string) HermersTable[T] {
	columns, rows := grid.Render(0)

	pages := paginator.New()
	pages.Type = paginator.Dots
	pages.ActiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color("#6EAF23")).Render("•")
	pages.InactiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("•")

	m := HermersTable[T]{
		keyMap: DefaultTableKeyMap(),
		grid:   grid,
		hooks:  hooks,
		table:  newBaseTable(columns, rows, grid.PageSize()+1),
		search: newSearchInput(placeholder, search),
		pages:  pages,
		help:   help.New(),
	}
	m.refresh()
	return m
}
