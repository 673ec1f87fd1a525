package chanbuf

import "sync"

// defaultCapacity is the starting slot count of an unbounded channel's ring.
const defaultCapacity = 16

// Channel is a FIFO queue that decouples producer goroutines from consumer
// goroutines. Send and Recv block until they can make progress or the
// channel is closed; all methods are safe for concurrent use.
type Channel[T any] struct {
	sendWait sync.Cond // room available
	recvWait sync.Cond // item available

	buf *ring[T]
	mu  sync.Mutex

	bounded bool
	limit   int // slot ceiling for capped channels, 0 for none
	closed  bool
}

// New creates a channel holding up to capacity items. Senders block while a
// full channel stays full. A capacity of zero or less selects an unbounded
// channel whose storage doubles instead of blocking senders.
func New[T any](capacity int) *Channel[T] {
	c := &Channel[T]{}
	if capacity > 0 {
		c.bounded = true
		c.buf = newRing[T](capacity)
	} else {
		c.buf = newRing[T](defaultCapacity)
	}
	c.sendWait.L = &c.mu
	c.recvWait.L = &c.mu
	return c
}

// NewCapped creates an unbounded channel whose storage stops doubling at
// limit slots. A send that finds the channel full at its limit fails with
// ErrOverflow instead of blocking or growing.
func NewCapped[T any](limit int) *Channel[T] {
	limit = max(limit, 1)
	c := &Channel[T]{
		limit: limit,
		buf:   newRing[T](min(limit, defaultCapacity)),
	}
	c.sendWait.L = &c.mu
	c.recvWait.L = &c.mu
	return c
}

// Send enqueues v, blocking while a bounded channel is full. It returns
// ErrClosed once the channel is closed, whether the call was already blocked
// or arrives later, and ErrOverflow when a capped channel cannot grow. The
// value is never enqueued on failure.
func (c *Channel[T]) Send(v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}

	if c.bounded {
		// Re-check after every wake: another producer may have taken the
		// freed slot, and close changes the continuation condition.
		for c.buf.full() && !c.closed {
			c.sendWait.Wait()
		}
		if c.closed {
			return ErrClosed
		}
	} else if c.buf.full() {
		if err := c.growLocked(); err != nil {
			return err
		}
	}

	c.buf.enqueue(v)
	c.recvWait.Signal()
	return nil
}

// TrySend enqueues v without blocking. It returns ErrFull when a bounded
// channel has no room, and otherwise fails for the same reasons as Send.
func (c *Channel[T]) TrySend(v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}

	if c.buf.full() {
		if c.bounded {
			return ErrFull
		}
		if err := c.growLocked(); err != nil {
			return err
		}
	}

	c.buf.enqueue(v)
	c.recvWait.Signal()
	return nil
}

// growLocked doubles the ring, clamped to the limit of a capped channel.
// On ErrOverflow the ring is left untouched.
func (c *Channel[T]) growLocked() error {
	newCap := c.buf.cap() * 2
	if c.limit > 0 {
		if c.buf.cap() >= c.limit {
			return ErrOverflow
		}
		newCap = min(newCap, c.limit)
	}
	c.buf.grow(newCap)
	return nil
}

// Recv dequeues the oldest item, blocking while the channel is empty and
// open. Once the channel is closed it keeps returning buffered items in FIFO
// order and then fails with ErrDrained.
func (c *Channel[T]) Recv() (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for c.buf.empty() && !c.closed {
		c.recvWait.Wait()
	}

	if c.buf.empty() {
		var zero T
		return zero, ErrDrained
	}

	v := c.buf.dequeue()
	c.sendWait.Signal()
	return v, nil
}

// TryRecv dequeues the oldest item without blocking. It returns ErrEmpty
// when the channel is open but holds nothing, and ErrDrained once the
// channel is closed and empty.
func (c *Channel[T]) TryRecv() (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.buf.empty() {
		var zero T
		if c.closed {
			return zero, ErrDrained
		}
		return zero, ErrEmpty
	}

	v := c.buf.dequeue()
	c.sendWait.Signal()
	return v, nil
}

// Close marks the channel closed and wakes every blocked goroutine so it can
// re-evaluate its condition. Buffered items remain receivable; further sends
// fail. Close is idempotent.
func (c *Channel[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true

	c.sendWait.Broadcast()
	c.recvWait.Broadcast()
}

// Len reports the number of buffered, unread items.
func (c *Channel[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.count
}

// Cap reports the current slot count of the backing storage. For unbounded
// channels it only ever increases.
func (c *Channel[T]) Cap() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.cap()
}
