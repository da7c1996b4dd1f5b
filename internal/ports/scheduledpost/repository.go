package scheduledpost

import (
	"context"

	"clipcast/internal/core/scheduledpost"
)

// ScheduledPostRepository is the outbound port for scheduled-post storage.
// FindByOwner must return rows ascending by scheduled_for. Delete must only
// touch rows owned by ownerID; a delete that matches nothing is a no-op.
type ScheduledPostRepository interface {
	Create(ctx context.Context, post *scheduledpost.ScheduledPost) (*scheduledpost.ScheduledPost, error)
	FindByOwner(ctx context.Context, ownerID string) ([]*scheduledpost.ScheduledPost, error)
	Delete(ctx context.Context, ownerID, id string) error
}

type ScheduledPostDTO struct {
	ID           string          `json:"id"`
	Content      string          `json:"content"`
	Platforms    map[string]bool `json:"platforms"`
	ScheduledFor string          `json:"scheduled_for"`
	Status       string          `json:"status"`
	MediaURL     string          `json:"media_url,omitempty"`
	CreatedAt    string          `json:"created_at"`
}
