// Package notify models the transient toast feedback shown around a contact
// submission: a loading state while the request is in flight, then either a
// success or an error state.
package notify

import "sync"

// Status identifies the lifecycle state a notification communicates.
type Status string

const (
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Canonical toast copy. Failure messages are deliberately generic: network
// and server failures collapse into the same text.
const (
	MessageLoading = "Sending your message..."
	MessageSuccess = "Thanks for reaching out! We will get back to you soon."
	MessageError   = "Something went wrong. Please try again."
)

// Notification is one transient piece of UI feedback.
type Notification struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
}

// Loading returns the canonical in-flight notification.
func Loading() Notification {
	return Notification{Status: StatusLoading, Message: MessageLoading}
}

// Success returns the canonical success notification.
func Success() Notification {
	return Notification{Status: StatusSuccess, Message: MessageSuccess}
}

// Error returns the canonical failure notification.
func Error() Notification {
	return Notification{Status: StatusError, Message: MessageError}
}

// Notifier receives notifications as a submission moves through its
// lifecycle.
type Notifier interface {
	Notify(Notification)
}

// Func adapts a plain function into a Notifier.
type Func func(Notification)

func (f Func) Notify(n Notification) {
	if f == nil {
		return
	}
	f(n)
}

// Recorder is an in-memory Notifier that keeps the full notification history.
// It is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	history []Notification
}

func (r *Recorder) Notify(n Notification) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.history = append(r.history, n)
	r.mu.Unlock()
}

// Last returns the most recent notification, if any.
func (r *Recorder) Last() (Notification, bool) {
	if r == nil {
		return Notification{}, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.history) == 0 {
		return Notification{}, false
	}
	return r.history[len(r.history)-1], true
}

// History returns a copy of every notification received so far.
func (r *Recorder) History() []Notification {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.history))
	copy(out, r.history)
	return out
}
