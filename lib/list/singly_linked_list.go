package list

import (
	"strconv"

	"github.com/benz9527/xlist/lib/infra"
)

var _ Stack[struct{}] = (*SinglyLinkedList[struct{}])(nil) // Type check assertion

// SinglyLinkedList is a LIFO list, both Push and Pop work on the head.
// The zero value is an empty list ready to use.
type SinglyLinkedList[T any] struct {
	head *singlyLinkedNode[T]
	len  int64
}

func NewSinglyLinkedList[T any]() *SinglyLinkedList[T] {
	return &SinglyLinkedList[T]{}
}

// SinglyLinkedListOf pushes the values in order, so the last value
// ends up as the head and the first one is popped last.
func SinglyLinkedListOf[T any](values ...T) *SinglyLinkedList[T] {
	l := NewSinglyLinkedList[T]()
	for _, v := range values {
		l.Push(v)
	}
	return l
}

func (l *SinglyLinkedList[T]) Len() int64 {
	if l == nil {
		return 0
	}
	return l.len
}

func (l *SinglyLinkedList[T]) IsEmpty() bool {
	return l.Len() == 0
}

func (l *SinglyLinkedList[T]) Push(v T) {
	l.head = &singlyLinkedNode[T]{
		item: v,
		next: l.head,
	}
	l.len++
}

func (l *SinglyLinkedList[T]) Pop() (v T, ok bool) {
	if l == nil || l.head == nil {
		return v, false
	}
	n := l.head
	l.head = n.next
	l.len--
	return n.release(), true
}

func (l *SinglyLinkedList[T]) Peek() (v T, ok bool) {
	if l == nil || l.head == nil {
		return v, false
	}
	return l.head.item, true
}

// Clear detaches the nodes one by one from the head.
func (l *SinglyLinkedList[T]) Clear() {
	if l == nil {
		return
	}
	for l.head != nil {
		n := l.head
		l.head = n.next
		n.release()
	}
	l.len = 0
}

// Foreach traverses the list from head to tail without consuming it.
// If fn returns an error, the traversal stops and returns the error.
func (l *SinglyLinkedList[T]) Foreach(fn func(idx int64, v T) error) error {
	if l == nil || fn == nil || l.len == 0 {
		return nil
	}

	var idx int64
	for n := l.head; n != nil; n = n.next {
		if err := fn(idx, n.item); err != nil {
			return infra.WrapErrorStackWithMessage(err, "[singly-linked-list] foreach stopped at "+strconv.FormatInt(idx, 10))
		}
		idx++
	}
	return nil
}

// Clone returns an independent list with the same order.
// The items are copied by value.
func (l *SinglyLinkedList[T]) Clone() *SinglyLinkedList[T] {
	cloned := NewSinglyLinkedList[T]()
	if l == nil || l.head == nil {
		return cloned
	}

	var last *singlyLinkedNode[T]
	for n := l.head; n != nil; n = n.next {
		newN := &singlyLinkedNode[T]{item: n.item}
		if last == nil {
			cloned.head = newN
		} else {
			last.next = newN
		}
		last = newN
	}
	cloned.len = l.len
	return cloned
}

// Drain pops until the list is empty or fn returns false.
// The item passed to fn has been removed already.
func (l *SinglyLinkedList[T]) Drain(fn func(v T) bool) {
	for {
		v, ok := l.Pop()
		if !ok || fn != nil && !fn(v) {
			return
		}
	}
}

// IntoIter moves all the nodes into a consuming iterator.
// The list is empty afterward and could be reused.
func (l *SinglyLinkedList[T]) IntoIter() *SinglyLinkedListIter[T] {
	it := &SinglyLinkedListIter[T]{}
	if l == nil {
		return it
	}
	it.list.head, it.list.len = l.head, l.len
	l.head, l.len = nil, 0
	return it
}

// SinglyLinkedListEqual reports whether both lists hold equal items in the same order.
// A nil list is equal to an empty one.
func SinglyLinkedListEqual[T comparable](a, b *SinglyLinkedList[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	if a.Len() == 0 || a == b {
		return true
	}
	for x, y := a.head, b.head; x != nil && y != nil; x, y = x.next, y.next {
		if x.item != y.item {
			return false
		}
	}
	return true
}
