package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPost(t *testing.T) {
	p, err := NewPost("Hello", "World")
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Hello", p.Title)
	assert.Equal(t, "World", p.Body)
	assert.Greater(t, p.CreatedAt, int64(0))
	assert.Equal(t, 0, p.Likes)
}

func TestNewPost_TrimsWhitespace(t *testing.T) {
	p, err := NewPost("  Hello  ", "\tWorld\n")
	require.NoError(t, err)

	assert.Equal(t, "Hello", p.Title)
	assert.Equal(t, "World", p.Body)
}

func TestNewPost_Validation(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		body    string
		wantErr error
	}{
		{"empty title", "", "World", ErrEmptyTitle},
		{"whitespace title", "   ", "World", ErrEmptyTitle},
		{"empty body", "Hello", "", ErrEmptyBody},
		{"whitespace body", "Hello", " \t\n ", ErrEmptyBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPost(tt.title, tt.body)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPost_Validate(t *testing.T) {
	p := Post{Title: "Hello", Body: "World"}
	assert.NoError(t, p.Validate())

	p.Likes = -1
	assert.ErrorIs(t, p.Validate(), ErrNegative)
}

func TestPost_LikeUnlike(t *testing.T) {
	p, err := NewPost("Hello", "World")
	require.NoError(t, err)

	p.Like()
	assert.Equal(t, 1, p.Likes)

	p.Like()
	assert.Equal(t, 2, p.Likes)

	assert.True(t, p.Unlike())
	assert.Equal(t, 1, p.Likes)

	// Like then unlike restores the original count
	before := p.Likes
	p.Like()
	p.Unlike()
	assert.Equal(t, before, p.Likes)
}

func TestPost_UnlikeAtZero(t *testing.T) {
	p, err := NewPost("Hello", "World")
	require.NoError(t, err)

	assert.False(t, p.Unlike())
	assert.Equal(t, 0, p.Likes)
	assert.GreaterOrEqual(t, p.Likes, 0)
}

func TestPost_FormattedDate(t *testing.T) {
	p := Post{
		Title:     "Hello",
		Body:      "World",
		CreatedAt: time.Date(2024, 3, 15, 9, 30, 0, 0, time.Local).Unix(),
	}

	assert.Equal(t, "2024-03-15", p.FormattedDate("2006-01-02"))
	// Empty layout falls back to the default
	assert.Contains(t, p.FormattedDate(""), "March 15, 2024")
}

func TestPost_BodyTruncated(t *testing.T) {
	p := Post{Body: "The quick brown fox jumps over the lazy dog"}

	assert.Equal(t, "The quick...", p.BodyTruncated(12))
	assert.Equal(t, p.Body, p.BodyTruncated(100))
	assert.Equal(t, "", p.BodyTruncated(0))
}

func TestPost_BodyTruncated_CollapsesWhitespace(t *testing.T) {
	p := Post{Body: "line one\nline   two"}
	assert.Equal(t, "line one line two", p.BodyTruncated(50))
}

func TestPost_Clone(t *testing.T) {
	p, err := NewPost("Hello", "World")
	require.NoError(t, err)
	p.Likes = 3

	clone := p.Clone()
	clone.Likes = 10

	assert.Equal(t, 3, p.Likes)
	assert.Equal(t, p.ID, clone.ID)
}

func TestPost_IDsAreMonotonic(t *testing.T) {
	a, err := NewPost("First", "one")
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	b, err := NewPost("Second", "two")
	require.NoError(t, err)

	// ULIDs sort by creation time
	assert.Less(t, a.ID, b.ID)
}
