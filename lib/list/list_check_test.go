package list

import (
	"fmt"

	"go.uber.org/multierr"
)

// checkLinks walks both directions and reports every broken invariant.
func (l *DoublyLinkedList[T]) checkLinks() error {
	var merr error
	if (l.head == nil) != (l.tail == nil) || (l.head == nil) != (l.len == 0) {
		merr = multierr.Append(merr, fmt.Errorf("ends mismatch: head nil %t, tail nil %t, len %d",
			l.head == nil, l.tail == nil, l.len))
	}
	if l.head != nil && l.head.prev != nil {
		merr = multierr.Append(merr, fmt.Errorf("head has a prev link"))
	}
	if l.tail != nil && l.tail.next != nil {
		merr = multierr.Append(merr, fmt.Errorf("tail has a next link"))
	}

	var forward int64
	for n := l.head; n != nil && forward <= l.len; n = n.next {
		if n.next != nil && n.next.prev != n {
			merr = multierr.Append(merr, fmt.Errorf("next.prev mismatch at %d", forward))
		}
		forward++
	}
	if forward != l.len {
		merr = multierr.Append(merr, fmt.Errorf("forward count %d, len %d", forward, l.len))
	}

	var backward int64
	for n := l.tail; n != nil && backward <= l.len; n = n.prev {
		if n.prev != nil && n.prev.next != n {
			merr = multierr.Append(merr, fmt.Errorf("prev.next mismatch at %d", backward))
		}
		backward++
	}
	if backward != l.len {
		merr = multierr.Append(merr, fmt.Errorf("backward count %d, len %d", backward, l.len))
	}
	return merr
}

func (d *ArenaDeque[T]) checkLinks() error {
	var merr error
	if (d.head == arenaNilSlot) != (d.tail == arenaNilSlot) || (d.head == arenaNilSlot) != (d.len == 0) {
		merr = multierr.Append(merr, fmt.Errorf("ends mismatch: head %d, tail %d, len %d", d.head, d.tail, d.len))
	}

	var forward int64
	for n := d.head; n != arenaNilSlot && forward <= d.len; n = d.slot(n).next {
		if next := d.slot(n).next; next != arenaNilSlot && d.slot(next).prev != n {
			merr = multierr.Append(merr, fmt.Errorf("next.prev mismatch at %d", forward))
		}
		forward++
	}
	if forward != d.len {
		merr = multierr.Append(merr, fmt.Errorf("forward count %d, len %d", forward, d.len))
	}

	var backward int64
	for n := d.tail; n != arenaNilSlot && backward <= d.len; n = d.slot(n).prev {
		backward++
	}
	if backward != d.len {
		merr = multierr.Append(merr, fmt.Errorf("backward count %d, len %d", backward, d.len))
	}

	var recycled int64
	for n := d.arena.recycled; n != arenaNilSlot && recycled <= int64(d.arena.objLen()); n = d.slot(n).next {
		recycled++
	}
	if live := int64(d.arena.objLen()) - recycled; live != d.len {
		merr = multierr.Append(merr, fmt.Errorf("arena live slots %d, len %d", live, d.len))
	}
	return merr
}
