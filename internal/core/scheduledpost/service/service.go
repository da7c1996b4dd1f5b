package scheduledpostapp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	postEntity "clipcast/internal/core/scheduledpost"
	postPort "clipcast/internal/ports/scheduledpost"

	"github.com/gofrs/uuid"
)

var (
	ErrEmptyContent    = errors.New("content must not be empty")
	ErrNoPlatform      = errors.New("at least one platform must be selected")
	ErrUnknownPlatform = errors.New("unknown platform")
)

type ScheduledPostService struct {
	PostRepository postPort.ScheduledPostRepository
}

func NewScheduledPostService(repo postPort.ScheduledPostRepository) *ScheduledPostService {
	return &ScheduledPostService{
		PostRepository: repo,
	}
}

// CreatePost stores a new scheduled post owned by ownerID. Status always
// starts out pending; nothing here ever moves it past that.
func (s *ScheduledPostService) CreatePost(ctx context.Context, ownerID, content string, scheduledFor time.Time, platforms postEntity.PlatformSet) (*postEntity.ScheduledPost, error) {
	owner, err := uuid.FromString(ownerID)
	if err != nil {
		return nil, fmt.Errorf("invalid ownerID: %w", err)
	}

	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if !platforms.Any() {
		return nil, ErrNoPlatform
	}
	for name := range platforms {
		if !postEntity.ValidPlatform(name) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPlatform, name)
		}
	}

	post := &postEntity.ScheduledPost{
		ID:           uuid.Must(uuid.NewV4()),
		OwnerID:      owner,
		Content:      content,
		Platforms:    platforms,
		ScheduledFor: scheduledFor,
		Status:       postEntity.StatusPending,
	}

	created, err := s.PostRepository.Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduled post: %w", err)
	}
	return created, nil
}

// ListPosts returns ownerID's posts ascending by scheduled time.
func (s *ScheduledPostService) ListPosts(ctx context.Context, ownerID string) ([]*postEntity.ScheduledPost, error) {
	if _, err := uuid.FromString(ownerID); err != nil {
		return nil, fmt.Errorf("invalid ownerID: %w", err)
	}
	return s.PostRepository.FindByOwner(ctx, ownerID)
}

// DeletePost removes one of ownerID's scheduled posts. A row owned by
// someone else is left alone. The remote row is the source of truth; callers
// refresh their view after a successful delete.
func (s *ScheduledPostService) DeletePost(ctx context.Context, ownerID, id string) error {
	if _, err := uuid.FromString(ownerID); err != nil {
		return fmt.Errorf("invalid ownerID: %w", err)
	}
	if _, err := uuid.FromString(id); err != nil {
		return fmt.Errorf("invalid post id: %w", err)
	}
	return s.PostRepository.Delete(ctx, ownerID, id)
}
