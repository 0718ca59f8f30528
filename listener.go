package slidebutton

import (
	"errors"
	"fmt"
)

// Listener is notified once for every confirmed slide.
type Listener interface {
	OnSlide(b *Button) error
}

type funcListener struct {
	fn func(*Button) error
}

func (l *funcListener) OnSlide(b *Button) error { return l.fn(b) }

// Listen wraps fn as a Listener. The returned value is comparable, so it can
// be passed to RemoveOnSlideListener later.
func Listen(fn func(*Button) error) Listener {
	return &funcListener{fn: fn}
}

// ListenerRegistry is an insertion-ordered list of listeners. The same
// listener may be registered more than once and is then notified once per
// registration.
type ListenerRegistry struct {
	listeners []Listener
}

// Add appends listeners in order. Nil entries are skipped.
func (r *ListenerRegistry) Add(listeners ...Listener) {
	for _, l := range listeners {
		if l != nil {
			r.listeners = append(r.listeners, l)
		}
	}
}

// Remove drops the first registration of l. Reports whether one was found.
func (r *ListenerRegistry) Remove(l Listener) bool {
	for i := range r.listeners {
		if r.listeners[i] == l {
			copy(r.listeners[i:], r.listeners[i+1:])
			r.listeners[len(r.listeners)-1] = nil
			r.listeners = r.listeners[:len(r.listeners)-1]
			return true
		}
	}
	return false
}

// Clear removes every listener.
func (r *ListenerRegistry) Clear() {
	clear(r.listeners)
	r.listeners = r.listeners[:0]
}

// Len returns the number of registrations.
func (r *ListenerRegistry) Len() int {
	return len(r.listeners)
}

// NotifyAll calls every listener in insertion order. A failing listener does
// not stop the rest; all failures are returned joined.
func (r *ListenerRegistry) NotifyAll(b *Button) error {
	if len(r.listeners) == 0 {
		return nil
	}
	// Listeners may add or remove registrations while being notified.
	snapshot := make([]Listener, len(r.listeners))
	copy(snapshot, r.listeners)

	var errs []error
	for i, l := range snapshot {
		if err := l.OnSlide(b); err != nil {
			errs = append(errs, fmt.Errorf("slide listener %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}
