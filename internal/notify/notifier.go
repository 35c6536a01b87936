package notify

import (
	"sync"
	"time"
)

// Toast kinds.
const (
	KindSuccess = "success"
	KindError   = "error"
	KindInfo    = "info"
)

// DefaultTTL is how long a toast stays up before clearing itself.
const DefaultTTL = 5 * time.Second

// Toast is one notification message.
type Toast struct {
	Message string
	Kind    string
}

// Notifier is a single-slot toast holder. Showing a new toast replaces the
// previous one and re-arms the self-clear timer.
type Notifier struct {
	mu       sync.Mutex
	current  *Toast
	timer    *time.Timer
	ttl      time.Duration
	onChange func(*Toast)
}

// New creates a Notifier with the given time-to-live; ttl <= 0 uses DefaultTTL.
func New(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Notifier{ttl: ttl}
}

// OnChange registers the render callback, invoked with the new toast (or nil
// on clear).
func (n *Notifier) OnChange(fn func(*Toast)) {
	n.mu.Lock()
	n.onChange = fn
	n.mu.Unlock()
}

// Show replaces the current toast and arms the self-clear timer.
func (n *Notifier) Show(kind, message string) {
	n.mu.Lock()
	if n.timer != nil {
		n.timer.Stop()
	}
	toast := &Toast{Message: message, Kind: kind}
	n.current = toast
	n.timer = time.AfterFunc(n.ttl, func() { n.clearIf(toast) })
	fn := n.onChange
	n.mu.Unlock()

	if fn != nil {
		fn(toast)
	}
}

// Success shows a success toast.
func (n *Notifier) Success(message string) { n.Show(KindSuccess, message) }

// Error shows an error toast.
func (n *Notifier) Error(message string) { n.Show(KindError, message) }

// Current returns the visible toast, or nil.
func (n *Notifier) Current() *Toast {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Clear drops the current toast immediately.
func (n *Notifier) Clear() {
	n.mu.Lock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.current = nil
	fn := n.onChange
	n.mu.Unlock()

	if fn != nil {
		fn(nil)
	}
}

// clearIf clears only if the expiring toast is still the visible one; a
// newer toast keeps its own timer.
func (n *Notifier) clearIf(toast *Toast) {
	n.mu.Lock()
	if n.current != toast {
		n.mu.Unlock()
		return
	}
	n.current = nil
	n.timer = nil
	fn := n.onChange
	n.mu.Unlock()

	if fn != nil {
		fn(nil)
	}
}
