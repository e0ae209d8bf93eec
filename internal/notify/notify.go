// Package notify provides transient, auto-expiring user feedback
// messages.
package notify

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// DefaultTTL is how long a notification stays visible unless dismissed.
const DefaultTTL = 3 * time.Second

// Level is the severity of a notification.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
	LevelDanger
)

// String returns the severity name.
func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelWarning:
		return "warning"
	case LevelDanger:
		return "danger"
	default:
		return "info"
	}
}

// ParseLevel maps a severity name to a Level, defaulting to info.
func ParseLevel(s string) Level {
	switch s {
	case "success":
		return LevelSuccess
	case "warning":
		return LevelWarning
	case "danger":
		return LevelDanger
	default:
		return LevelInfo
	}
}

// Notification is a single transient message.
type Notification struct {
	ID       string
	Text     string
	Level    Level
	Deadline time.Time
}

// Feed holds the currently visible notifications, oldest first.
// Each entry expires independently; dismissing one never affects the
// others.
type Feed struct {
	ttl   time.Duration
	items []Notification
}

// NewFeed creates a Feed. A non-positive ttl falls back to DefaultTTL.
func NewFeed(ttl time.Duration) *Feed {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Feed{ttl: ttl}
}

// TTL returns the configured lifetime of a notification.
func (f *Feed) TTL() time.Duration {
	return f.ttl
}

// Push appends a new notification and returns it.
func (f *Feed) Push(text string, level Level) Notification {
	n := Notification{
		ID:       ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String(),
		Text:     text,
		Level:    level,
		Deadline: time.Now().Add(f.ttl),
	}
	f.items = append(f.items, n)
	return n
}

// Dismiss removes the identified notification. Dismissing an unknown
// or already-expired ID is a no-op, so a late timer cannot act on a
// removed entry.
func (f *Feed) Dismiss(id string) bool {
	for i, n := range f.items {
		if n.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return true
		}
	}
	return false
}

// Expire drops every notification whose deadline has passed and
// returns the removed entries.
func (f *Feed) Expire(now time.Time) []Notification {
	var removed []Notification
	kept := f.items[:0]
	for _, n := range f.items {
		if n.Deadline.After(now) {
			kept = append(kept, n)
		} else {
			removed = append(removed, n)
		}
	}
	f.items = kept
	return removed
}

// Items returns a copy of the visible notifications, oldest first.
func (f *Feed) Items() []Notification {
	result := make([]Notification, len(f.items))
	copy(result, f.items)
	return result
}

// Len returns the number of visible notifications.
func (f *Feed) Len() int {
	return len(f.items)
}
