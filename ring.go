package chanbuf

// ring stores the unread items of a channel in a circular window of a
// contiguous slice. read marks the next slot to dequeue and write the next
// slot to enqueue; count distinguishes a full ring from an empty one.
type ring[T any] struct {
	data  []T
	read  int
	write int
	count int
}

func newRing[T any](capacity int) *ring[T] {
	return &ring[T]{
		data: make([]T, capacity),
	}
}

func (r *ring[T]) enqueue(v T) {
	r.data[r.write] = v
	r.write = (r.write + 1) % len(r.data)
	r.count++
}

func (r *ring[T]) dequeue() T {
	v := r.data[r.read]

	// Zero the slot so the ring does not pin the dequeued value.
	var zero T
	r.data[r.read] = zero

	r.read = (r.read + 1) % len(r.data)
	r.count--
	return v
}

// grow relocates the live window into a buffer of newCap slots, starting at
// offset 0 and preserving logical order. A wrapped window is copied as two
// segments: [read, cap) first, then [0, write) appended directly after.
func (r *ring[T]) grow(newCap int) {
	data := make([]T, newCap)

	if r.read < r.write || r.count == 0 {
		copy(data, r.data[r.read:r.read+r.count])
	} else {
		n := copy(data, r.data[r.read:])
		copy(data[n:], r.data[:r.write])
	}

	r.data = data
	r.read = 0
	r.write = r.count
}

// empty returns true if the ring holds no unread items.
func (r *ring[T]) empty() bool {
	return r.count == 0
}

// full returns true if every slot holds an unread item.
func (r *ring[T]) full() bool {
	return r.count == len(r.data)
}

func (r *ring[T]) cap() int {
	return len(r.data)
}
