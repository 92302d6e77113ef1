package collection

import (
	"container/list"
)

type item interface {
	any
}

// Collection 链表承载的有序集合, 所有操作都保持原有顺序
type Collection[T item] struct {
	data *list.List
}

func New[T item](d []T) *Collection[T] {
	l := list.New()
	for _, item := range d {
		l.PushBack(item)
	}
	return &Collection[T]{data: l}
}

// Each visits the elements in order; k is the position in the collection.
func (c *Collection[T]) Each(f func(k int, i T)) *Collection[T] {
	k := 0
	for e := c.data.Front(); e != nil; e = e.Next() {
		f(k, e.Value.(T))
		k++
	}
	return c
}

// Map projects every element in order into a slice of R.
func Map[T item, R any](c *Collection[T], f func(k int, i T) R) []R {
	result := make([]R, 0, c.data.Len())
	c.Each(func(k int, i T) {
		result = append(result, f(k, i))
	})
	return result
}

// Filter can be used to filter the collection only when the function returns true
func (c *Collection[T]) Filter(f func(i T) bool) *Collection[T] {
	match := list.New()
	for current := c.data.Front(); current != nil; current = current.Next() {
		currentItem := current.Value.(T)
		if f(currentItem) {
			match.PushBack(currentItem)
		}
	}
	c.data = match
	return c
}

// Sort sorts the elements in the Collection using the provided function.
// Equal elements keep their relative order.
func (c *Collection[T]) Sort(less func(i, j T) bool) *Collection[T] {
	c.data = mergeSort(c.data, less)
	return c
}

// Slice keeps at most limit elements starting at offset.
func (c *Collection[T]) Slice(offset, limit int) *Collection[T] {
	window := list.New()
	if offset < 0 {
		offset = 0
	}
	for current, i := c.data.Front(), 0; current != nil && (limit < 0 || window.Len() < limit); current, i = current.Next(), i+1 {
		if i >= offset {
			window.PushBack(current.Value)
		}
	}
	c.data = window
	return c
}

// Len can be used to get the length
func (c *Collection[T]) Len() int {
	return c.data.Len()
}

// Value can be used to get the value slice
func (c *Collection[T]) Value() []T {
	lt := make([]T, 0, c.data.Len())
	for current := c.data.Front(); current != nil; current = current.Next() {
		lt = append(lt, current.Value.(T))
	}
	return lt
}
