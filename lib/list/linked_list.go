package list

import (
	"strconv"

	"github.com/benz9527/xlist/lib/infra"
)

var _ Deque[struct{}] = (*DoublyLinkedList[struct{}])(nil) // Type check assertion

type listEndsStatus uint8

const (
	emptyList listEndsStatus = iota
	theOnlyOne
	moreThanOne
)

// DoublyLinkedList is a deque built from linked nodes.
// The forward chain from head owns the nodes, prev is a back-reference.
// The zero value is an empty list ready to use.
type DoublyLinkedList[T any] struct {
	head, tail *doublyLinkedNode[T]
	len        int64
}

func NewDoublyLinkedList[T any]() *DoublyLinkedList[T] {
	return &DoublyLinkedList[T]{}
}

// DoublyLinkedListOf appends the values in order.
func DoublyLinkedListOf[T any](values ...T) *DoublyLinkedList[T] {
	l := NewDoublyLinkedList[T]()
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

func (l *DoublyLinkedList[T]) status() listEndsStatus {
	switch {
	case l == nil || l.head == nil:
		return emptyList
	case l.head == l.tail:
		return theOnlyOne
	default:
	}
	return moreThanOne
}

func (l *DoublyLinkedList[T]) Len() int64 {
	if l == nil {
		return 0
	}
	return l.len
}

func (l *DoublyLinkedList[T]) IsEmpty() bool {
	return l.Len() == 0
}

func (l *DoublyLinkedList[T]) PushBack(v T) {
	e := &doublyLinkedNode[T]{item: v}
	if l.status() == emptyList {
		// empty list, the new element is the first one and the last one
		l.head, l.tail = e, e
		l.len = 1
		return
	}

	e.prev = l.tail
	l.tail.next = e
	l.tail = e
	l.len++
}

func (l *DoublyLinkedList[T]) PushFront(v T) {
	e := &doublyLinkedNode[T]{item: v}
	if l.status() == emptyList {
		l.head, l.tail = e, e
		l.len = 1
		return
	}

	e.next = l.head
	l.head.prev = e
	l.head = e
	l.len++
}

func (l *DoublyLinkedList[T]) PopBack() (v T, ok bool) {
	var at *doublyLinkedNode[T]
	switch l.status() {
	case emptyList:
		return v, false
	case theOnlyOne:
		at = l.tail
		l.head, l.tail = nil, nil
	case moreThanOne:
		at = l.tail
		l.tail = at.prev
		l.tail.next = nil
	}
	l.len--
	return at.release(), true
}

func (l *DoublyLinkedList[T]) PopFront() (v T, ok bool) {
	var at *doublyLinkedNode[T]
	switch l.status() {
	case emptyList:
		return v, false
	case theOnlyOne:
		at = l.head
		l.head, l.tail = nil, nil
	case moreThanOne:
		at = l.head
		l.head = at.next
		l.head.prev = nil
	}
	l.len--
	return at.release(), true
}

func (l *DoublyLinkedList[T]) Front() (v T, ok bool) {
	if l.status() == emptyList {
		return v, false
	}
	return l.head.item, true
}

func (l *DoublyLinkedList[T]) Back() (v T, ok bool) {
	if l.status() == emptyList {
		return v, false
	}
	return l.tail.item, true
}

// Clear walks from the head and breaks both links of every node,
// so a long chain never turns into a deep release cascade.
func (l *DoublyLinkedList[T]) Clear() {
	if l == nil {
		return
	}
	for l.head != nil {
		n := l.head
		l.head = n.next
		n.release()
	}
	l.tail = nil
	l.len = 0
}

// Foreach, removing elements in fn is not allowed.
func (l *DoublyLinkedList[T]) Foreach(fn func(idx int64, v T) error) error {
	if fn == nil || l.status() == emptyList {
		return nil
	}

	var idx int64
	for iterator := l.head; iterator != nil; iterator = iterator.next {
		if err := fn(idx, iterator.item); err != nil {
			return infra.WrapErrorStackWithMessage(err, "[doubly-linked-list] foreach stopped at "+strconv.FormatInt(idx, 10))
		}
		idx++
	}
	return nil
}

// ReverseForeach, removing elements in fn is not allowed.
func (l *DoublyLinkedList[T]) ReverseForeach(fn func(idx int64, v T) error) error {
	if fn == nil || l.status() == emptyList {
		return nil
	}

	var idx int64
	for iterator := l.tail; iterator != nil; iterator = iterator.prev {
		if err := fn(idx, iterator.item); err != nil {
			return infra.WrapErrorStackWithMessage(err, "[doubly-linked-list] reverse foreach stopped at "+strconv.FormatInt(idx, 10))
		}
		idx++
	}
	return nil
}

func (l *DoublyLinkedList[T]) Clone() *DoublyLinkedList[T] {
	cloned := NewDoublyLinkedList[T]()
	if l.status() == emptyList {
		return cloned
	}
	for n := l.head; n != nil; n = n.next {
		cloned.PushBack(n.item)
	}
	return cloned
}

// DrainFront pops from the front until the list is empty or fn returns false.
func (l *DoublyLinkedList[T]) DrainFront(fn func(v T) bool) {
	for {
		v, ok := l.PopFront()
		if !ok || fn != nil && !fn(v) {
			return
		}
	}
}

// DrainBack pops from the back until the list is empty or fn returns false.
func (l *DoublyLinkedList[T]) DrainBack(fn func(v T) bool) {
	for {
		v, ok := l.PopBack()
		if !ok || fn != nil && !fn(v) {
			return
		}
	}
}

// IntoIter moves all the nodes into a consuming iterator.
// The list is empty afterward and could be reused.
func (l *DoublyLinkedList[T]) IntoIter() *DequeIter[T] {
	moved := NewDoublyLinkedList[T]()
	if l != nil {
		moved.head, moved.tail, moved.len = l.head, l.tail, l.len
		l.head, l.tail, l.len = nil, nil, 0
	}
	return newDequeIter[T](moved)
}

// DoublyLinkedListEqual reports whether both lists hold equal items in the same order.
// A nil list is equal to an empty one.
func DoublyLinkedListEqual[T comparable](a, b *DoublyLinkedList[T]) bool {
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
