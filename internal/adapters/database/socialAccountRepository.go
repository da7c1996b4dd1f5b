package database

import (
	"context"

	"clipcast/internal/config"
	accountEntity "clipcast/internal/core/socialaccount"
)

// SocialAccountRepositoryDatabase implements SocialAccountRepository over the
// shared DB handle
type SocialAccountRepositoryDatabase struct{}

func NewSocialAccountRepositoryDatabase() *SocialAccountRepositoryDatabase {
	return &SocialAccountRepositoryDatabase{}
}

func (repo *SocialAccountRepositoryDatabase) Create(ctx context.Context, account *accountEntity.SocialAccount) (*accountEntity.SocialAccount, error) {
	if err := config.DB.WithContext(ctx).Create(account).Error; err != nil {
		return nil, err
	}
	return account, nil
}

func (repo *SocialAccountRepositoryDatabase) FindByUserID(ctx context.Context, userID string) ([]*accountEntity.SocialAccount, error) {
	var accounts []*accountEntity.SocialAccount
	err := config.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("connected_at asc").
		Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// Delete is scoped to the owning user so one user can never disconnect
// another's account.
func (repo *SocialAccountRepositoryDatabase) Delete(ctx context.Context, userID, id string) error {
	return config.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&accountEntity.SocialAccount{}).Error
}
