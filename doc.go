// Package chanbuf provides a generic blocking channel that connects producer
// and consumer goroutines through a bounded or growing FIFO buffer. Bounded
// channels apply backpressure by blocking senders while the buffer is full;
// unbounded channels double their storage instead of blocking. Closing a
// channel stops further sends while letting receivers drain whatever is
// already buffered.
//
// A Channel needs no explicit teardown. The buffer is plain memory and the
// synchronization primitives are inert values, so an unreachable channel is
// reclaimed by the garbage collector; Close is the only lifecycle operation.
package chanbuf
