package list

type singlyLinkedNode[T any] struct {
	next *singlyLinkedNode[T]
	item T // It should be placed at the end of the struct to avoid taking too much padding.
}

// release detaches the node and hands its item out.
func (n *singlyLinkedNode[T]) release() T {
	var zero T
	item := n.item
	n.item, n.next = zero, nil
	return item
}

// doublyLinkedNode owns its successor through next.
// The prev is a back-reference for navigation only.
type doublyLinkedNode[T any] struct {
	prev, next *doublyLinkedNode[T]
	item       T
}

func (n *doublyLinkedNode[T]) release() T {
	var zero T
	item := n.item
	n.item, n.prev, n.next = zero, nil, nil
	return item
}
