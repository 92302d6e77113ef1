package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaderFromField(t *testing.T) {
	cases := map[string]string{
		"id":                "Id",
		"hireDate":          "Hire Date",
		"performanceRating": "Performance Rating",
		"isActive":          "Is Active",
		"page_size":         "Page Size",
		"HTTPCode":          "HTTPCode",
		"":                  "",
	}
	for in, want := range cases {
		assert.Equal(t, want, HeaderFromField(in), in)
	}
}

func TestColumnDefaults(t *testing.T) {
	d := ColumnDefaults{Sortable: true, Filter: FilterText}

	c := Column[person]{Field: "age"}.withDefaults(d)
	assert.True(t, c.IsSortable())
	assert.True(t, c.IsFilterable())
	assert.Equal(t, "Age", c.HeaderName)

	c = Column[person]{Field: "age", Sortable: Disabled, Filter: FilterNone}.withDefaults(d)
	assert.False(t, c.IsSortable())
	assert.False(t, c.IsFilterable())

	c = Column[person]{Field: "age"}.withDefaults(ColumnDefaults{})
	assert.False(t, c.IsSortable())
	assert.False(t, c.IsFilterable())
}

func TestPixelsToCells(t *testing.T) {
	assert.Equal(t, 7, pixelsToCells(70))
	assert.Equal(t, 38, pixelsToCells(350))
	assert.Equal(t, minCellWidth, pixelsToCells(0))
}
