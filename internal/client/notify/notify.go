// Package notify shows short-lived operator notifications in the terminal
// and keeps a history of everything shown during the session.
package notify

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dmitrijs2005/denidash/internal/logging"
	"github.com/google/uuid"
)

type Kind string

const (
	KindDefault Kind = "default"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
	KindLoading Kind = "loading"
)

// Persistent marks a notification that stays active until dismissed.
const Persistent time.Duration = 0

// DefaultDuration is how long a kind stays active when no duration is given.
func DefaultDuration(k Kind) time.Duration {
	switch k {
	case KindError:
		return 6 * time.Second
	case KindWarning:
		return 5 * time.Second
	case KindLoading:
		return Persistent
	default:
		return 4 * time.Second
	}
}

type Notification struct {
	ID          string
	Kind        Kind
	Message     string
	Description string
	Duration    time.Duration
	CreatedAt   time.Time
	Dismissed   bool
}

// Active reports whether n is still showing at now.
func (n Notification) Active(now time.Time) bool {
	if n.Dismissed {
		return false
	}
	return n.Duration == Persistent || now.Before(n.CreatedAt.Add(n.Duration))
}

type Option func(*Notification)

func WithDescription(d string) Option {
	return func(n *Notification) { n.Description = d }
}

func WithDuration(d time.Duration) Option {
	return func(n *Notification) { n.Duration = d }
}

// WithID reuses an id; the new notification replaces the old one in place.
func WithID(id string) Option {
	return func(n *Notification) { n.ID = id }
}

// Notifier is safe for concurrent use.
type Notifier struct {
	mu      sync.Mutex
	out     io.Writer
	log     logging.Logger
	now     func() time.Time
	history []Notification
	index   map[string]int
}

func New(out io.Writer, log logging.Logger) *Notifier {
	if out == nil {
		out = io.Discard
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Notifier{out: out, log: log, now: time.Now, index: make(map[string]int)}
}

// Show displays a notification and returns its id.
func (n *Notifier) Show(kind Kind, message string, opts ...Option) string {
	item := Notification{
		Kind:     kind,
		Message:  message,
		Duration: DefaultDuration(kind),
	}
	for _, opt := range opts {
		opt(&item)
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	n.mu.Lock()
	item.CreatedAt = n.now()
	if i, ok := n.index[item.ID]; ok {
		n.history[i] = item
	} else {
		n.index[item.ID] = len(n.history)
		n.history = append(n.history, item)
	}
	n.render(item)
	n.mu.Unlock()

	n.log.Debug(context.Background(), "notification", "kind", string(kind), "id", item.ID, "message", message)
	return item.ID
}

func (n *Notifier) render(item Notification) {
	fmt.Fprintf(n.out, "%s %s\n", label(item.Kind), item.Message)
	if item.Description != "" {
		fmt.Fprintf(n.out, "    %s\n", item.Description)
	}
}

func label(k Kind) string {
	switch k {
	case KindSuccess:
		return "[ok]"
	case KindError:
		return "[error]"
	case KindWarning:
		return "[warn]"
	case KindInfo:
		return "[info]"
	case KindLoading:
		return "[...]"
	}
	return "[*]"
}

func (n *Notifier) Success(message string, opts ...Option) string {
	return n.Show(KindSuccess, message, opts...)
}

func (n *Notifier) Error(message string, opts ...Option) string {
	return n.Show(KindError, message, opts...)
}

func (n *Notifier) Warning(message string, opts ...Option) string {
	return n.Show(KindWarning, message, opts...)
}

func (n *Notifier) Info(message string, opts ...Option) string {
	return n.Show(KindInfo, message, opts...)
}

func (n *Notifier) Loading(message string, opts ...Option) string {
	return n.Show(KindLoading, message, opts...)
}

// Dismiss hides a notification. Unknown ids are ignored.
func (n *Notifier) Dismiss(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if i, ok := n.index[id]; ok {
		n.history[i].Dismissed = true
	}
}

func (n *Notifier) DismissAll() {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i := range n.history {
		n.history[i].Dismissed = true
	}
}

// History returns every notification shown so far, oldest first.
func (n *Notifier) History() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]Notification(nil), n.history...)
}

// Active returns the notifications that are neither dismissed nor expired.
func (n *Notifier) Active() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	now := n.now()
	var out []Notification
	for _, item := range n.history {
		if item.Active(now) {
			out = append(out, item)
		}
	}
	return out
}

func (n *Notifier) NotifySuccess(title, description string) string {
	return n.Success(title, WithDescription(description))
}

func (n *Notifier) NotifyError(title, description string) string {
	return n.Error(title, WithDescription(description))
}

func (n *Notifier) NotifyWarning(title, description string) string {
	return n.Warning(title, WithDescription(description))
}

func (n *Notifier) NotifyInfo(title, description string) string {
	return n.Info(title, WithDescription(description))
}
