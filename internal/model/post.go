// Package model defines the core data structures for postboard.
package model

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/oklog/ulid/v2"
)

// Validation errors.
var (
	ErrEmptyTitle = errors.New("title cannot be empty")
	ErrEmptyBody  = errors.New("body cannot be empty")
	ErrNegative   = errors.New("likes cannot be negative")
)

// Post is a single board entry. Title and body are fixed after creation;
// only the like counter changes.
type Post struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatedAt int64  `json:"created_at"`
	Likes     int    `json:"likes"`
}

// NewPost creates a Post with a generated ULID and the current timestamp.
// Title and body are trimmed before validation.
func NewPost(title, body string) (*Post, error) {
	p := &Post{
		Title:     strings.TrimSpace(title),
		Body:      strings.TrimSpace(body),
		CreatedAt: time.Now().Unix(),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	id, err := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate ULID: %w", err)
	}
	p.ID = id.String()

	return p, nil
}

// Validate checks that the post has all required fields.
func (p *Post) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(p.Body) == "" {
		return ErrEmptyBody
	}
	if p.Likes < 0 {
		return ErrNegative
	}
	return nil
}

// CreatedTime returns the creation timestamp as a time.Time.
func (p *Post) CreatedTime() time.Time {
	return time.Unix(p.CreatedAt, 0)
}

// FormattedDate returns the creation time in the given layout,
// falling back to a readable default when layout is empty.
func (p *Post) FormattedDate(layout string) string {
	if layout == "" {
		layout = "January 2, 2006 15:04"
	}
	return p.CreatedTime().Format(layout)
}

// RelativeTime returns a human-readable relative time string,
// e.g. "5 minutes ago".
func (p *Post) RelativeTime() string {
	return humanize.Time(p.CreatedTime())
}

// BodyTruncated returns the body collapsed to one line and truncated
// to maxLen characters, with "..." appended when shortened.
func (p *Post) BodyTruncated(maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	body := strings.Join(strings.Fields(p.Body), " ")

	if len(body) <= maxLen {
		return body
	}
	if maxLen <= 3 {
		return body[:maxLen]
	}
	return body[:maxLen-3] + "..."
}

// Like increments the like counter.
func (p *Post) Like() {
	p.Likes++
}

// Unlike decrements the like counter. Returns false when there is
// nothing to remove; the counter never goes below zero.
func (p *Post) Unlike() bool {
	if p.Likes == 0 {
		return false
	}
	p.Likes--
	return true
}

// Clone creates a copy of the post.
func (p *Post) Clone() *Post {
	clone := *p
	return &clone
}
