package table

import (
	"github.com/charmbracelet/bubbles/table"
)

// Grid 可以被渲染成表格的数据, width 是终端可用的宽度
type Grid interface {
	Render(width int) ([]table.Column, []table.Row)
}

var _ Grid = (*ObjectGrid[struct{}])(nil)
