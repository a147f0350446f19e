package list

import (
	"math"
	"strconv"

	"github.com/benz9527/xlist/lib/infra"
)

var _ Deque[struct{}] = (*ArenaDeque[struct{}])(nil) // Type check assertion

// Slot 0 is reserved as the terminal, so the zero offset means nil.
const arenaNilSlot uint32 = 0

const (
	arenaDefaultCap   = 16
	arenaMaxGrowthCap = 1 << 20
)

// Offsets are uint32, so an arena holds at most math.MaxUint32 live slots.
var arenaMaxSlots uint64 = math.MaxUint32

type arenaSlot[T any] struct {
	prev, next uint32
	item       T
}

// slotArena keeps the nodes in a single slice and links them by offsets.
// The released slots are chained through next and recycled first.
type slotArena[T any] struct {
	slots    []arenaSlot[T]
	recycled uint32 // head of the recycled slots
}

func (arena *slotArena[T]) init(capacity int) {
	if capacity <= 0 {
		capacity = arenaDefaultCap
	}
	arena.slots = make([]arenaSlot[T], 1, capacity+1) // non-zero offset
	arena.recycled = arenaNilSlot
}

func (arena *slotArena[T]) objLen() int {
	if len(arena.slots) == 0 {
		return 0
	}
	return len(arena.slots) - 1
}

func (arena *slotArena[T]) allocate(item T) uint32 {
	if arena.slots == nil {
		arena.init(0)
	}
	if idx := arena.recycled; idx != arenaNilSlot {
		arena.recycled = arena.slots[idx].next
		arena.slots[idx] = arenaSlot[T]{item: item}
		return idx
	}
	if uint64(len(arena.slots)) > arenaMaxSlots {
		panic(infra.NewErrorStack("[arena-deque] out of slot offsets, limit " +
			strconv.FormatUint(arenaMaxSlots, 10)))
	}
	if n := len(arena.slots); n == cap(arena.slots) {
		// double size increase
		growth := n
		if growth > arenaMaxGrowthCap {
			growth = arenaMaxGrowthCap
		}
		nslots := make([]arenaSlot[T], n, n+growth)
		copy(nslots, arena.slots)
		arena.slots = nslots
	}
	arena.slots = append(arena.slots, arenaSlot[T]{item: item})
	return uint32(len(arena.slots) - 1)
}

func (arena *slotArena[T]) recycle(idx uint32) T {
	item := arena.slots[idx].item
	arena.slots[idx] = arenaSlot[T]{next: arena.recycled}
	arena.recycled = idx
	return item
}

func (arena *slotArena[T]) free() {
	clear(arena.slots)
	if len(arena.slots) > 0 {
		arena.slots = arena.slots[:1]
	}
	arena.recycled = arenaNilSlot
}

// ArenaDeque is a deque whose nodes live in an indexed slot arena
// instead of separately allocated objects.
// The zero value is an empty deque ready to use.
// It holds at most math.MaxUint32 items at once, pushing beyond that panics.
type ArenaDeque[T any] struct {
	arena      slotArena[T]
	head, tail uint32
	len        int64
}

func NewArenaDeque[T any](capacity int) *ArenaDeque[T] {
	d := &ArenaDeque[T]{}
	d.arena.init(capacity)
	return d
}

// ArenaDequeOf appends the values in order.
func ArenaDequeOf[T any](values ...T) *ArenaDeque[T] {
	d := NewArenaDeque[T](len(values))
	for _, v := range values {
		d.PushBack(v)
	}
	return d
}

func (d *ArenaDeque[T]) slot(idx uint32) *arenaSlot[T] {
	return &d.arena.slots[idx]
}

func (d *ArenaDeque[T]) status() listEndsStatus {
	switch {
	case d == nil || d.head == arenaNilSlot:
		return emptyList
	case d.head == d.tail:
		return theOnlyOne
	default:
	}
	return moreThanOne
}

func (d *ArenaDeque[T]) Len() int64 {
	if d == nil {
		return 0
	}
	return d.len
}

func (d *ArenaDeque[T]) IsEmpty() bool {
	return d.Len() == 0
}

func (d *ArenaDeque[T]) PushBack(v T) {
	idx := d.arena.allocate(v)
	if d.status() == emptyList {
		d.head, d.tail = idx, idx
		d.len = 1
		return
	}
	d.slot(idx).prev = d.tail
	d.slot(d.tail).next = idx
	d.tail = idx
	d.len++
}

func (d *ArenaDeque[T]) PushFront(v T) {
	idx := d.arena.allocate(v)
	if d.status() == emptyList {
		d.head, d.tail = idx, idx
		d.len = 1
		return
	}
	d.slot(idx).next = d.head
	d.slot(d.head).prev = idx
	d.head = idx
	d.len++
}

func (d *ArenaDeque[T]) PopBack() (v T, ok bool) {
	var at uint32
	switch d.status() {
	case emptyList:
		return v, false
	case theOnlyOne:
		at = d.tail
		d.head, d.tail = arenaNilSlot, arenaNilSlot
	case moreThanOne:
		at = d.tail
		d.tail = d.slot(at).prev
		d.slot(d.tail).next = arenaNilSlot
	}
	d.len--
	return d.arena.recycle(at), true
}

func (d *ArenaDeque[T]) PopFront() (v T, ok bool) {
	var at uint32
	switch d.status() {
	case emptyList:
		return v, false
	case theOnlyOne:
		at = d.head
		d.head, d.tail = arenaNilSlot, arenaNilSlot
	case moreThanOne:
		at = d.head
		d.head = d.slot(at).next
		d.slot(d.head).prev = arenaNilSlot
	}
	d.len--
	return d.arena.recycle(at), true
}

func (d *ArenaDeque[T]) Front() (v T, ok bool) {
	if d.status() == emptyList {
		return v, false
	}
	return d.slot(d.head).item, true
}

func (d *ArenaDeque[T]) Back() (v T, ok bool) {
	if d.status() == emptyList {
		return v, false
	}
	return d.slot(d.tail).item, true
}

// Clear drops every slot at once, the arena keeps its capacity.
func (d *ArenaDeque[T]) Clear() {
	if d == nil {
		return
	}
	d.arena.free()
	d.head, d.tail = arenaNilSlot, arenaNilSlot
	d.len = 0
}

func (d *ArenaDeque[T]) Foreach(fn func(idx int64, v T) error) error {
	if fn == nil || d.status() == emptyList {
		return nil
	}

	var idx int64
	for iterator := d.head; iterator != arenaNilSlot; iterator = d.slot(iterator).next {
		if err := fn(idx, d.slot(iterator).item); err != nil {
			return infra.WrapErrorStackWithMessage(err, "[arena-deque] foreach stopped at "+strconv.FormatInt(idx, 10))
		}
		idx++
	}
	return nil
}

func (d *ArenaDeque[T]) ReverseForeach(fn func(idx int64, v T) error) error {
	if fn == nil || d.status() == emptyList {
		return nil
	}

	var idx int64
	for iterator := d.tail; iterator != arenaNilSlot; iterator = d.slot(iterator).prev {
		if err := fn(idx, d.slot(iterator).item); err != nil {
			return infra.WrapErrorStackWithMessage(err, "[arena-deque] reverse foreach stopped at "+strconv.FormatInt(idx, 10))
		}
		idx++
	}
	return nil
}

// Clone compacts the live slots into a new arena.
func (d *ArenaDeque[T]) Clone() *ArenaDeque[T] {
	cloned := NewArenaDeque[T](int(d.Len()))
	if d.status() == emptyList {
		return cloned
	}
	for iterator := d.head; iterator != arenaNilSlot; iterator = d.slot(iterator).next {
		cloned.PushBack(d.slot(iterator).item)
	}
	return cloned
}

// IntoIter moves the arena into a consuming iterator.
// The deque is empty afterward and could be reused.
func (d *ArenaDeque[T]) IntoIter() *DequeIter[T] {
	moved := &ArenaDeque[T]{}
	if d != nil {
		*moved = *d
		*d = ArenaDeque[T]{}
	}
	return newDequeIter[T](moved)
}

// ArenaDequeEqual reports whether both deques hold equal items in the same order.
func ArenaDequeEqual[T comparable](a, b *ArenaDeque[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	if a.Len() == 0 || a == b {
		return true
	}
	for x, y := a.head, b.head; x != arenaNilSlot && y != arenaNilSlot; x, y = a.slot(x).next, b.slot(y).next {
		if a.slot(x).item != b.slot(y).item {
			return false
		}
	}
	return true
}
