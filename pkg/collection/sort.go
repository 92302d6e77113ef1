package collection

import "container/list"

// mergeSort 链表归并排序, 相等时优先取左侧元素, 所以是稳定的
func mergeSort[T item](l *list.List, less func(i, j T) bool) *list.List {
	if l.Len() <= 1 {
		return l
	}

	left, right := list.New(), list.New()
	half := l.Len() / 2
	for current, i := l.Front(), 0; current != nil; current, i = current.Next(), i+1 {
		if i < half {
			left.PushBack(current.Value)
		} else {
			right.PushBack(current.Value)
		}
	}

	return merge(mergeSort(left, less), mergeSort(right, less), less)
}

func merge[T item](left, right *list.List, less func(i, j T) bool) *list.List {
	result := list.New()
	l, r := left.Front(), right.Front()
	for l != nil && r != nil {
		if less(r.Value.(T), l.Value.(T)) {
			result.PushBack(r.Value)
			r = r.Next()
		} else {
			result.PushBack(l.Value)
			l = l.Next()
		}
	}
	for ; l != nil; l = l.Next() {
		result.PushBack(l.Value)
	}
	for ; r != nil; r = r.Next() {
		result.PushBack(r.Value)
	}
	return result
}
