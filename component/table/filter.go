package table

import (
	"strings"

	"github.com/pkg/errors"
)

// FilterType 文本过滤器的操作符
type FilterType string

const (
	Contains    FilterType = "contains"
	NotContains FilterType = "notContains"
	Equals      FilterType = "equals"
	NotEqual    FilterType = "notEqual"
	StartsWith  FilterType = "startsWith"
	EndsWith    FilterType = "endsWith"
	Blank       FilterType = "blank"
	NotBlank    FilterType = "notBlank"
)

// TextFilterModel 单列过滤条件
type TextFilterModel struct {
	Type   FilterType `json:"type"`
	Filter string     `json:"filter"`
}

// FilterModel 以列的 Field 为键的过滤条件, 多列之间是 AND 关系
type FilterModel map[string]TextFilterModel

func (f TextFilterModel) validate() error {
	switch f.Type {
	case Contains, NotContains, Equals, NotEqual, StartsWith, EndsWith, Blank, NotBlank:
		return nil
	}
	return errors.Errorf("unknown filter type %q", f.Type)
}

// Matches compares value case-insensitively. Operators that take an operand
// pass every value while the operand is empty.
func (f TextFilterModel) Matches(value string) bool {
	switch f.Type {
	case Blank:
		return strings.TrimSpace(value) == ""
	case NotBlank:
		return strings.TrimSpace(value) != ""
	}
	if f.Filter == "" {
		return true
	}

	value = strings.ToLower(value)
	operand := strings.ToLower(f.Filter)
	switch f.Type {
	case Contains:
		return strings.Contains(value, operand)
	case NotContains:
		return !strings.Contains(value, operand)
	case Equals:
		return value == operand
	case NotEqual:
		return value != operand
	case StartsWith:
		return strings.HasPrefix(value, operand)
	case EndsWith:
		return strings.HasSuffix(value, operand)
	}
	return false
}

func (m FilterModel) clone() FilterModel {
	if len(m) == 0 {
		return nil
	}
	c := make(FilterModel, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
