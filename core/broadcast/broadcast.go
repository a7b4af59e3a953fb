// Package broadcast delivers calculation results to subscribed listeners.
//
// A [Broadcaster] keeps listeners in subscription order and notifies them
// synchronously on the caller's goroutine. The first listener that fails stops
// the round: later listeners are not called and the failure is returned as a
// [ListenerError].
package broadcast

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
)

// ErrListener matches every [ListenerError].
var ErrListener = errors.New("opcalc: listener failed")

// Listener receives every published result.
type Listener interface {
	Update(result float64) error
}

// ListenerFunc adapts an ordinary function to the [Listener] interface.
// Function values are not comparable, so a ListenerFunc can be subscribed but
// never matched by [Broadcaster.Unsubscribe].
type ListenerFunc func(result float64) error

// Update calls f(result).
func (f ListenerFunc) Update(result float64) error {
	return f(result)
}

// ListenerError wraps the failure of the listener at position Index.
type ListenerError struct {
	Index int
	Err   error
}

func (e *ListenerError) Error() string {
	return fmt.Sprintf("listener %d: %v", e.Index, e.Err)
}

// Unwrap returns the listener's own error.
func (e *ListenerError) Unwrap() error {
	return e.Err
}

// Is reports whether target is [ErrListener].
func (e *ListenerError) Is(target error) bool {
	return target == ErrListener
}

// Broadcaster holds a non-owning, ordered list of listeners.
// The zero value is ready to use.
type Broadcaster struct {
	listeners []Listener
}

// New returns an empty broadcaster.
func New() *Broadcaster {
	return &Broadcaster{}
}

// Subscribe appends l. Subscribing the same listener twice makes it receive
// every result twice. Nil listeners are ignored.
func (b *Broadcaster) Subscribe(l Listener) {
	if l == nil {
		return
	}
	b.listeners = append(b.listeners, l)
}

// Unsubscribe removes the first listener equal to l and reports whether one
// was found.
func (b *Broadcaster) Unsubscribe(l Listener) bool {
	if l == nil || !reflect.TypeOf(l).Comparable() {
		return false
	}
	for i, existing := range b.listeners {
		if sameListener(existing, l) {
			b.listeners = slices.Delete(b.listeners, i, i+1)
			return true
		}
	}
	return false
}

// sameListener compares two listeners of the same dynamic type. A comparable
// struct may still hold an uncomparable value, such as a ListenerFunc, in an
// interface field; such listeners never match.
func sameListener(a, b Listener) (equal bool) {
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	defer func() {
		if recover() != nil {
			equal = false
		}
	}()
	return a == b
}

// Publish notifies every listener in subscription order. Listeners added or
// removed while a round is running take effect from the next round.
func (b *Broadcaster) Publish(result float64) error {
	for i, l := range slices.Clone(b.listeners) {
		if err := l.Update(result); err != nil {
			return &ListenerError{Index: i, Err: err}
		}
	}
	return nil
}

// Len returns the number of subscriptions.
func (b *Broadcaster) Len() int {
	return len(b.listeners)
}
