package framealloc

// nilSlot terminates the free list.
const nilSlot = -1

// FreeList is a LIFO list of free slot indices. Links are stored in a
// table indexed by slot, so the payload memory of a slot is never touched
// by the list. The zero value is an empty list.
//
// FreeList trusts its caller: losing a slot twice, or a slot that was never
// obtained, silently corrupts the list.
type FreeList struct {
	next []int32
	head int32
	free int
}

// Initialize links count slots in ascending order: 0 -> 1 -> ... -> count-1.
func (l *FreeList) Initialize(count int) {
	if count <= 0 {
		l.next, l.head, l.free = nil, nilSlot, 0
		return
	}
	l.next = make([]int32, count)
	for i := 0; i < count-1; i++ {
		l.next[i] = int32(i + 1)
	}
	l.next[count-1] = nilSlot
	l.head = 0
	l.free = count
}

// Obtain pops the head of the list. It reports false when the list is empty.
func (l *FreeList) Obtain() (int, bool) {
	if l.head == nilSlot || l.next == nil {
		return 0, false
	}
	i := l.head
	l.head = l.next[i]
	l.next[i] = nilSlot
	l.free--
	return int(i), true
}

// Lose pushes slot i back as the new head. i must have been returned by
// Obtain and not lost since.
func (l *FreeList) Lose(i int) {
	invariant(i >= 0 && i < len(l.next), "slot %d out of range [0, %d)", i, len(l.next))
	l.next[i] = l.head
	l.head = int32(i)
	l.free++
}

// Len returns the number of free slots.
func (l *FreeList) Len() int {
	return l.free
}

// Cap returns the number of slots managed by the list.
func (l *FreeList) Cap() int {
	return len(l.next)
}

// Free drops the link table. The list is empty afterwards.
func (l *FreeList) Free() {
	l.next = nil
	l.head = nilSlot
	l.free = 0
}
