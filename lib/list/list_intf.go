package list

// Note that none of the lists here is thread safe.
// The caller has to guard a shared list by itself.

// Stack is the LIFO interface implemented by the singly linked list.
type Stack[T any] interface {
	Len() int64
	IsEmpty() bool
	// Push makes v the new head.
	Push(v T)
	// Pop removes and returns the head. The bool is false if the stack is empty.
	Pop() (T, bool)
	// Peek returns the head without removing it.
	Peek() (T, bool)
	// Clear releases all elements iteratively.
	Clear()
}

// Deque is the double-ended queue interface.
type Deque[T any] interface {
	Len() int64
	IsEmpty() bool
	PushFront(v T)
	PushBack(v T)
	// PopFront removes and returns the first element. The bool is false if the deque is empty.
	PopFront() (T, bool)
	// PopBack removes and returns the last element. The bool is false if the deque is empty.
	PopBack() (T, bool)
	// Front returns the first element without removing it.
	Front() (T, bool)
	// Back returns the last element without removing it.
	Back() (T, bool)
	// Foreach traverses from front to back without consuming.
	// If fn returns an error, the traversal stops and returns the error.
	Foreach(fn func(idx int64, v T) error) error
	// ReverseForeach traverses from back to front without consuming.
	ReverseForeach(fn func(idx int64, v T) error) error
	// Clear releases all elements iteratively.
	Clear()
}
