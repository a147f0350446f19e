package list

// SinglyLinkedListIter drains the nodes it took over from a SinglyLinkedList.
// It is finite and not restartable.
type SinglyLinkedListIter[T any] struct {
	list SinglyLinkedList[T]
}

// Next returns the current head, the last pushed one first.
func (it *SinglyLinkedListIter[T]) Next() (T, bool) {
	return it.list.Pop()
}

// Len returns the number of elements not consumed yet.
func (it *SinglyLinkedListIter[T]) Len() int64 {
	return it.list.Len()
}

// Collect consumes the rest of the iterator into a slice.
func (it *SinglyLinkedListIter[T]) Collect() []T {
	res := make([]T, 0, it.Len())
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		res = append(res, v)
	}
	return res
}

// DequeIter is a consuming iterator over a deque it owns.
// Next takes from the front and NextBack takes from the back,
// both could be interleaved in a single pass.
type DequeIter[T any] struct {
	deque    Deque[T]
	reversed bool
}

func newDequeIter[T any](d Deque[T]) *DequeIter[T] {
	return &DequeIter[T]{deque: d}
}

func (it *DequeIter[T]) Next() (v T, ok bool) {
	if it.deque == nil {
		return v, false
	}
	if it.reversed {
		return it.deque.PopBack()
	}
	return it.deque.PopFront()
}

func (it *DequeIter[T]) NextBack() (v T, ok bool) {
	if it.deque == nil {
		return v, false
	}
	if it.reversed {
		return it.deque.PopFront()
	}
	return it.deque.PopBack()
}

// Rev hands the remaining elements over to an iterator running the
// other way round. The receiver is exhausted afterward.
func (it *DequeIter[T]) Rev() *DequeIter[T] {
	rev := &DequeIter[T]{deque: it.deque, reversed: !it.reversed}
	it.deque = nil
	return rev
}

func (it *DequeIter[T]) Len() int64 {
	if it.deque == nil {
		return 0
	}
	return it.deque.Len()
}

// Collect consumes the rest of the iterator into a slice by Next.
func (it *DequeIter[T]) Collect() []T {
	res := make([]T, 0, it.Len())
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		res = append(res, v)
	}
	return res
}
