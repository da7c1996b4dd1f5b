package socialaccount

import (
	"context"

	"clipcast/internal/core/socialaccount"
)

// SocialAccountRepository is the outbound port for connected-account storage.
// Delete must only touch rows belonging to userID.
type SocialAccountRepository interface {
	Create(ctx context.Context, account *socialaccount.SocialAccount) (*socialaccount.SocialAccount, error)
	FindByUserID(ctx context.Context, userID string) ([]*socialaccount.SocialAccount, error)
	Delete(ctx context.Context, userID, id string) error
}

type SocialAccountDTO struct {
	ID        string `json:"id"`
	Platform  string `json:"platform"`
	Username  string `json:"username"`
	Connected bool   `json:"connected"`
	Color     string `json:"color"`
	ExpiresAt string `json:"expires_at,omitempty"`
}
