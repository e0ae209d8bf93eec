// Package board provides the post store for postboard.
package board

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/vitor14i/postboard/internal/model"
	"github.com/vitor14i/postboard/internal/storage"
)

// Errors.
var (
	ErrBoardClosed = errors.New("board is closed")
	ErrNotFound    = errors.New("post not found")
	ErrNoLikes     = errors.New("no likes to remove")
)

// ChangeType indicates the type of board change.
type ChangeType int

const (
	// ChangeTypeCreate indicates a post was created.
	ChangeTypeCreate ChangeType = iota
	// ChangeTypeLike indicates a like counter changed.
	ChangeTypeLike
	// ChangeTypeDelete indicates a post was deleted.
	ChangeTypeDelete
	// ChangeTypeReload indicates the collection was reloaded from storage.
	ChangeTypeReload
)

// ChangeEvent signals board content changes.
type ChangeEvent struct {
	Type ChangeType
	ID   string
}

// Board owns the ordered post collection. Posts are kept in creation
// order (oldest first); every successful mutation rewrites the whole
// collection to storage before returning.
type Board struct {
	mu    sync.RWMutex
	posts []model.Post
	index map[string]int // post ID -> slice index

	store storage.Store

	subscribers []chan ChangeEvent
	closed      bool
}

// New creates a Board backed by the given store and loads any
// previously persisted posts. A missing or unreadable value yields an
// empty collection.
func New(store storage.Store) (*Board, error) {
	b := &Board{
		posts: make([]model.Post, 0),
		index: make(map[string]int),
		store: store,
	}

	if store != nil {
		if err := b.load(); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// load reads the persisted collection from storage.
func (b *Board) load() error {
	raw, ok, err := b.store.Get(storage.PostsKey)
	if err != nil {
		return fmt.Errorf("failed to read posts: %w", err)
	}
	if !ok || raw == "" {
		return nil
	}

	var posts []model.Post
	if err := json.Unmarshal([]byte(raw), &posts); err != nil {
		// Unreadable value: start empty rather than refuse to run.
		return nil
	}

	b.posts = posts
	b.reindex()
	return nil
}

// reindex rebuilds the ID index. Callers hold the lock.
func (b *Board) reindex() {
	b.index = make(map[string]int, len(b.posts))
	for i, p := range b.posts {
		b.index[p.ID] = i
	}
}

// persist writes the whole collection to storage. Callers hold the lock.
func (b *Board) persist() error {
	if b.store == nil {
		return nil
	}

	data, err := json.Marshal(b.posts)
	if err != nil {
		return err
	}

	return b.store.Set(storage.PostsKey, string(data))
}

// Create validates, appends and persists a new post. Title and body
// must be non-empty after trimming; a failed validation leaves the
// collection and storage untouched.
func (b *Board) Create(title, body string) (*model.Post, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrBoardClosed
	}

	p, err := model.NewPost(title, body)
	if err != nil {
		return nil, err
	}

	b.posts = append(b.posts, *p)
	b.index[p.ID] = len(b.posts) - 1

	if err := b.persist(); err != nil {
		// Roll back so memory never diverges from storage
		b.posts = b.posts[:len(b.posts)-1]
		delete(b.index, p.ID)
		return nil, err
	}

	b.notifyChange(ChangeEvent{Type: ChangeTypeCreate, ID: p.ID})
	return p, nil
}

// Like increments the like counter of the identified post and persists.
func (b *Board) Like(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrBoardClosed
	}

	idx, ok := b.index[id]
	if !ok {
		return ErrNotFound
	}

	b.posts[idx].Like()

	if err := b.persist(); err != nil {
		b.posts[idx].Unlike()
		return err
	}

	b.notifyChange(ChangeEvent{Type: ChangeTypeLike, ID: id})
	return nil
}

// Unlike decrements the like counter of the identified post and
// persists. A post with zero likes is left untouched: no mutation, no
// storage write, ErrNoLikes returned for the caller to report.
func (b *Board) Unlike(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrBoardClosed
	}

	idx, ok := b.index[id]
	if !ok {
		return ErrNotFound
	}

	if !b.posts[idx].Unlike() {
		return ErrNoLikes
	}

	if err := b.persist(); err != nil {
		b.posts[idx].Like()
		return err
	}

	b.notifyChange(ChangeEvent{Type: ChangeTypeLike, ID: id})
	return nil
}

// Remove deletes exactly one post and persists. Confirmation is the
// caller's responsibility.
func (b *Board) Remove(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrBoardClosed
	}

	idx, ok := b.index[id]
	if !ok {
		return ErrNotFound
	}

	removed := b.posts[idx]
	b.posts = append(b.posts[:idx], b.posts[idx+1:]...)
	b.reindex()

	if err := b.persist(); err != nil {
		b.posts = append(b.posts[:idx], append([]model.Post{removed}, b.posts[idx:]...)...)
		b.reindex()
		return err
	}

	b.notifyChange(ChangeEvent{Type: ChangeTypeDelete, ID: id})
	return nil
}

// Get returns a copy of the identified post, or nil.
func (b *Board) Get(id string) *model.Post {
	b.mu.RLock()
	defer b.mu.RUnlock()

	idx, ok := b.index[id]
	if !ok {
		return nil
	}
	p := b.posts[idx]
	return &p
}

// Posts returns a copy of the collection in storage order (oldest first).
func (b *Board) Posts() []model.Post {
	b.mu.RLock()
	defer b.mu.RUnlock()

	result := make([]model.Post, len(b.posts))
	copy(result, b.posts)
	return result
}

// Newest returns a copy of the collection newest first. Storage order
// is never reordered; only the copy is reversed.
func (b *Board) Newest() []model.Post {
	b.mu.RLock()
	defer b.mu.RUnlock()

	result := make([]model.Post, len(b.posts))
	for i, p := range b.posts {
		result[len(b.posts)-1-i] = p
	}
	return result
}

// Count returns the number of posts.
func (b *Board) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.posts)
}

// ResolveIndex maps a 1-based newest-first display position to a post
// ID. Identity is resolved against the current collection at the point
// of the call, never captured ahead of time.
func (b *Board) ResolveIndex(position int) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if position < 1 || position > len(b.posts) {
		return "", ErrNotFound
	}
	return b.posts[len(b.posts)-position].ID, nil
}

// Reload replaces the in-memory collection with the persisted one.
// Used when the backing file changes underneath a running process.
func (b *Board) Reload() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrBoardClosed
	}

	b.posts = make([]model.Post, 0)
	b.index = make(map[string]int)
	if err := b.load(); err != nil {
		return err
	}

	b.notifyChange(ChangeEvent{Type: ChangeTypeReload})
	return nil
}

// Subscribe returns a channel that receives change events.
func (b *Board) Subscribe() <-chan ChangeEvent {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan ChangeEvent, 10)
	b.subscribers = append(b.subscribers, ch)
	return ch
}

// Unsubscribe removes a subscription and closes its channel.
func (b *Board) Unsubscribe(ch <-chan ChangeEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, sub := range b.subscribers {
		if sub == ch {
			b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)
			close(sub)
			return
		}
	}
}

// Close releases resources and closes all subscriber channels.
func (b *Board) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	for _, ch := range b.subscribers {
		close(ch)
	}
	b.subscribers = nil

	return nil
}

// notifyChange sends a change event to all subscribers (non-blocking).
func (b *Board) notifyChange(event ChangeEvent) {
	for _, ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			// Channel full, skip
		}
	}
}
