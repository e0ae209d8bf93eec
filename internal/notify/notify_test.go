package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelInfo, "info"},
		{LevelSuccess, "success"},
		{LevelWarning, "warning"},
		{LevelDanger, "danger"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.String())
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelSuccess, ParseLevel("success"))
	assert.Equal(t, LevelWarning, ParseLevel("warning"))
	assert.Equal(t, LevelDanger, ParseLevel("danger"))
	assert.Equal(t, LevelInfo, ParseLevel("info"))
	// Unknown severities default to info
	assert.Equal(t, LevelInfo, ParseLevel("shiny"))
}

func TestNewFeed_DefaultTTL(t *testing.T) {
	f := NewFeed(0)
	assert.Equal(t, DefaultTTL, f.TTL())

	f = NewFeed(5 * time.Second)
	assert.Equal(t, 5*time.Second, f.TTL())
}

func TestFeed_Push(t *testing.T) {
	f := NewFeed(time.Second)

	n := f.Push("Post created successfully!", LevelSuccess)
	assert.NotEmpty(t, n.ID)
	assert.Equal(t, LevelSuccess, n.Level)
	assert.Equal(t, 1, f.Len())

	f.Push("Like removed!", LevelInfo)
	assert.Equal(t, 2, f.Len())
}

func TestFeed_Stacking(t *testing.T) {
	f := NewFeed(time.Second)

	first := f.Push("first", LevelInfo)
	second := f.Push("second", LevelWarning)

	items := f.Items()
	assert.Equal(t, first.ID, items[0].ID)
	assert.Equal(t, second.ID, items[1].ID)
}

func TestFeed_Dismiss(t *testing.T) {
	f := NewFeed(time.Second)

	a := f.Push("a", LevelInfo)
	b := f.Push("b", LevelInfo)
	c := f.Push("c", LevelInfo)

	// Dismissing one does not affect the others
	assert.True(t, f.Dismiss(b.ID))
	assert.Equal(t, 2, f.Len())

	items := f.Items()
	assert.Equal(t, a.ID, items[0].ID)
	assert.Equal(t, c.ID, items[1].ID)
}

func TestFeed_DismissUnknown(t *testing.T) {
	f := NewFeed(time.Second)
	f.Push("a", LevelInfo)

	// A late timer firing for an already-removed entry is a no-op
	assert.False(t, f.Dismiss("gone"))
	assert.Equal(t, 1, f.Len())
}

func TestFeed_Expire(t *testing.T) {
	f := NewFeed(time.Second)

	f.Push("short-lived", LevelInfo)
	f.Push("still here", LevelInfo)

	// Nothing expires before the deadline
	removed := f.Expire(time.Now())
	assert.Empty(t, removed)
	assert.Equal(t, 2, f.Len())

	// Everything past its deadline goes
	removed = f.Expire(time.Now().Add(2 * time.Second))
	assert.Len(t, removed, 2)
	assert.Equal(t, 0, f.Len())
}

func TestFeed_ExpireIndependent(t *testing.T) {
	f := NewFeed(time.Second)

	old := f.Push("old", LevelInfo)
	// Backdate the first entry only
	f.items[0].Deadline = time.Now().Add(-time.Minute)
	fresh := f.Push("fresh", LevelInfo)

	removed := f.Expire(time.Now())
	assert.Len(t, removed, 1)
	assert.Equal(t, old.ID, removed[0].ID)

	items := f.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, fresh.ID, items[0].ID)
}
