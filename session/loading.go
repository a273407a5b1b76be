package session

import "sync"

// Loading broadcasts the session's "world not ready" flag to any number of
// observers. A fresh broadcaster reports true; the reconciler flips it to
// false once the first build is fully applied. Only the reconciler writes
// values; consumers subscribe and render.
type Loading struct {
	mu     sync.Mutex
	value  bool
	closed bool
	subs   []chan bool
}

func newLoading() *Loading {
	return &Loading{value: true}
}

// Value returns the current flag without subscribing.
func (l *Loading) Value() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.value
}

// Subscribe returns a channel that immediately yields the current value and
// then every subsequent transition, so a late subscriber never misses the
// most recent state. The channel is closed when the session is disposed; a
// subscription made after disposal yields an already-closed channel.
func (l *Loading) Subscribe() <-chan bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	ch := make(chan bool, 8)
	if l.closed {
		close(ch)
		return ch
	}
	ch <- l.value
	l.subs = append(l.subs, ch)
	return ch
}

// set pushes a new value to all subscribers. Transitions only; setting the
// current value again emits nothing.
func (l *Loading) set(v bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return ErrBroadcasterClosed
	}
	if l.value == v {
		return nil
	}
	l.value = v

	for _, ch := range l.subs {
		select {
		case ch <- v:
		default:
			// Slow consumer: drop its oldest pending value so the latest
			// one always lands.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- v:
			default:
			}
		}
	}
	return nil
}

// close shuts the broadcaster down. Subscriber channels are closed and
// released; later set calls fail with ErrBroadcasterClosed.
func (l *Loading) close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}
	l.closed = true
	for _, ch := range l.subs {
		close(ch)
	}
	l.subs = nil
}
