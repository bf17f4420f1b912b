package document

import "sync"

// Button is a clickable element identified by a selector.
type Button struct {
	mu        sync.Mutex
	selector  string
	listeners []func()
}

// NewButton creates a button matched by selector.
func NewButton(selector string) *Button {
	return &Button{selector: selector}
}

// Selector returns the selector the button is matched by.
func (b *Button) Selector() string {
	return b.selector
}

// AddClickListener registers fn to run on every click.
func (b *Button) AddClickListener(fn func()) {
	if fn == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, fn)
}

// Click dispatches a click to all listeners in registration order.
// Listeners run outside the lock so they may register further listeners.
func (b *Button) Click() {
	b.mu.Lock()
	listeners := make([]func(), len(b.listeners))
	copy(listeners, b.listeners)
	b.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// ListenerCount returns the number of registered click listeners.
func (b *Button) ListenerCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}
