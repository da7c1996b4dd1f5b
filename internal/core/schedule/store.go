package schedule

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	postEntity "clipcast/internal/core/scheduledpost"
	sessionPort "clipcast/internal/ports/session"

	"go.uber.org/zap"
)

// ErrAuthRequired is returned when a mutating call is attempted without an
// active session.
var ErrAuthRequired = errors.New("authentication required")

// State of a cached collection.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
)

// PostCatalog is the inbound port the store drives; implemented by
// scheduledpostapp.ScheduledPostService.
type PostCatalog interface {
	CreatePost(ctx context.Context, ownerID, content string, scheduledFor time.Time, platforms postEntity.PlatformSet) (*postEntity.ScheduledPost, error)
	ListPosts(ctx context.Context, ownerID string) ([]*postEntity.ScheduledPost, error)
	DeletePost(ctx context.Context, ownerID, id string) error
}

// ownerView is one identity's cached collection. Each view carries its own
// fetch sequence, so one owner's refresh never races another's.
type ownerView struct {
	state    State
	posts    []*postEntity.ScheduledPost
	fetchSeq uint64 // guards against an older fetch overwriting a newer one
}

// Store holds the client-side view of scheduled posts, keyed by identity.
// The remote rows stay authoritative: every successful mutation is followed
// by a full refetch, and a failed call never touches the cached collection.
//
// Identity is passed explicitly on every call; the caller subscribes to
// session change events and invokes Refresh or Forget when a session changes.
type Store struct {
	catalog PostCatalog
	logger  *zap.Logger

	mu    sync.Mutex
	views map[string]*ownerView
}

func NewStore(catalog PostCatalog, logger *zap.Logger) *Store {
	return &Store{
		catalog: catalog,
		logger:  logger,
		views:   map[string]*ownerView{},
	}
}

// Snapshot returns ident's current state and cached collection. With no
// session the collection is empty and nothing is fetched.
func (s *Store) Snapshot(ident *sessionPort.Identity) (State, []*postEntity.ScheduledPost) {
	if ident == nil {
		return StateReady, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.views[ident.UserID]
	if !ok {
		return StateLoading, nil
	}
	out := make([]*postEntity.ScheduledPost, len(v.posts))
	copy(out, v.posts)
	return v.state, out
}

// List refreshes the cache for ident and returns the resulting collection.
// With no session it yields an empty collection without touching storage.
func (s *Store) List(ctx context.Context, ident *sessionPort.Identity) ([]*postEntity.ScheduledPost, error) {
	if err := s.Refresh(ctx, ident); err != nil {
		return nil, err
	}
	_, posts := s.Snapshot(ident)
	return posts, nil
}

// Refresh refetches the whole collection for ident. On failure the previous
// collection stays in place. A refresh that completes after a newer one was
// issued for the same identity is discarded, so the last issued fetch wins.
func (s *Store) Refresh(ctx context.Context, ident *sessionPort.Identity) error {
	if ident == nil {
		return nil
	}

	seq := s.begin(ident.UserID)

	posts, err := s.catalog.ListPosts(ctx, ident.UserID)
	if err != nil {
		s.keep(ident.UserID, seq)
		s.logger.Error("Error fetching scheduled posts", zap.Error(err))
		return fmt.Errorf("failed to load scheduled posts: %w", err)
	}

	s.install(ident.UserID, seq, posts)
	return nil
}

// Forget drops an identity's cached collection, typically on sign-out.
func (s *Store) Forget(ownerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.views, ownerID)
}

// Create submits a new scheduled post and, on success, refetches the
// collection. Without a session the write is never attempted.
func (s *Store) Create(ctx context.Context, ident *sessionPort.Identity, content string, scheduledFor time.Time, platforms postEntity.PlatformSet) (*postEntity.ScheduledPost, error) {
	if ident == nil {
		return nil, ErrAuthRequired
	}

	created, err := s.catalog.CreatePost(ctx, ident.UserID, content, scheduledFor, platforms)
	if err != nil {
		s.logger.Error("Error scheduling post", zap.Error(err))
		return nil, err
	}

	if err := s.Refresh(ctx, ident); err != nil {
		s.logger.Warn("Post created but refresh failed", zap.Error(err))
	}
	return created, nil
}

// Delete removes one of ident's scheduled posts and, on success, refetches
// the collection. A failed delete leaves the cached list untouched, so the
// row stays visible.
func (s *Store) Delete(ctx context.Context, ident *sessionPort.Identity, id string) error {
	if ident == nil {
		return ErrAuthRequired
	}

	if err := s.catalog.DeletePost(ctx, ident.UserID, id); err != nil {
		s.logger.Error("Error deleting scheduled post", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.Refresh(ctx, ident); err != nil {
		s.logger.Warn("Post deleted but refresh failed", zap.Error(err))
	}
	return nil
}

// begin marks a new fetch in flight for ownerID and returns its sequence
// number.
func (s *Store) begin(ownerID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.views[ownerID]
	if !ok {
		v = &ownerView{state: StateLoading}
		s.views[ownerID] = v
	}
	v.fetchSeq++
	v.state = StateLoading
	return v.fetchSeq
}

// install replaces ownerID's collection unless a newer fetch has been issued.
func (s *Store) install(ownerID string, seq uint64, posts []*postEntity.ScheduledPost) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.views[ownerID]
	if !ok || seq != v.fetchSeq {
		return // stale response
	}
	v.posts = posts
	v.state = StateReady
}

// keep settles a failed fetch: last-known-good collection stays visible.
func (s *Store) keep(ownerID string, seq uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.views[ownerID]
	if !ok || seq != v.fetchSeq {
		return
	}
	v.state = StateReady
}
