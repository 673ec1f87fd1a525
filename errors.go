package chanbuf

import "errors"

var (
	// ErrClosed is returned by Send and TrySend once the channel is closed.
	ErrClosed = errors.New("chanbuf: send on closed channel")

	// ErrDrained is returned by Recv and TryRecv after the channel is closed
	// and every buffered item has been received.
	ErrDrained = errors.New("chanbuf: channel closed and drained")

	// ErrOverflow is returned by Send and TrySend when a capped channel is
	// full and growing would exceed its limit.
	ErrOverflow = errors.New("chanbuf: channel at capacity limit")

	// ErrFull is returned by TrySend when a bounded channel has no room.
	ErrFull = errors.New("chanbuf: channel full")

	// ErrEmpty is returned by TryRecv when no item is buffered.
	ErrEmpty = errors.New("chanbuf: channel empty")
)
