package database

import (
	"context"

	"clipcast/internal/config"
	postEntity "clipcast/internal/core/scheduledpost"
)

// ScheduledPostRepositoryDatabase implements ScheduledPostRepository over the
// shared DB handle
type ScheduledPostRepositoryDatabase struct{}

func NewScheduledPostRepositoryDatabase() *ScheduledPostRepositoryDatabase {
	return &ScheduledPostRepositoryDatabase{}
}

func (repo *ScheduledPostRepositoryDatabase) Create(ctx context.Context, post *postEntity.ScheduledPost) (*postEntity.ScheduledPost, error) {
	if err := config.DB.WithContext(ctx).Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// FindByOwner lists an owner's posts ascending by scheduled time.
func (repo *ScheduledPostRepositoryDatabase) FindByOwner(ctx context.Context, ownerID string) ([]*postEntity.ScheduledPost, error) {
	var posts []*postEntity.ScheduledPost
	err := config.DB.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("scheduled_for asc").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Delete is scoped to the owner so one user can never remove another's row.
func (repo *ScheduledPostRepositoryDatabase) Delete(ctx context.Context, ownerID, id string) error {
	return config.DB.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&postEntity.ScheduledPost{}).Error
}
