package tsp

import "sync"

// DropChannel adapts a progress observer into a bounded channel consumer.
//
// The returned observer never blocks the search: when the buffer is full the
// event is dropped. After stop has been called the observer becomes a no-op
// and the channel is closed, so a consumer ranging over it terminates.
// stop is idempotent and safe to call while the observer is running.
//
// size < 1 is treated as 1.
func DropChannel[P any](size int) (observe func(P) error, events <-chan P, stop func()) {
	if size < 1 {
		size = 1
	}
	var (
		ch     = make(chan P, size)
		mu     sync.Mutex
		closed bool
	)

	observe = func(p P) error {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return nil
		}
		select {
		case ch <- p:
		default:
		}

		return nil
	}
	stop = func() {
		mu.Lock()
		defer mu.Unlock()
		if !closed {
			closed = true
			close(ch)
		}
	}

	return observe, ch, stop
}
