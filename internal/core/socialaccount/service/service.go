package socialaccountapp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	postEntity "clipcast/internal/core/scheduledpost"
	accountEntity "clipcast/internal/core/socialaccount"
	accountPort "clipcast/internal/ports/socialaccount"

	"github.com/gofrs/uuid"
)

var (
	ErrUnknownPlatform  = errors.New("unknown platform")
	ErrUsernameRequired = errors.New("username must not be empty")
)

type SocialAccountService struct {
	AccountRepository accountPort.SocialAccountRepository
}

func NewSocialAccountService(repo accountPort.SocialAccountRepository) *SocialAccountService {
	return &SocialAccountService{
		AccountRepository: repo,
	}
}

// ConnectAccount links a platform account to userID. The OAuth handshake is
// out of scope, so the stored token is a placeholder.
func (s *SocialAccountService) ConnectAccount(ctx context.Context, userID, platform, username string) (*accountPort.SocialAccountDTO, error) {
	uid, err := uuid.FromString(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid userID: %w", err)
	}
	if !postEntity.ValidPlatform(platform) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlatform, platform)
	}
	if strings.TrimSpace(username) == "" {
		return nil, ErrUsernameRequired
	}

	account := &accountEntity.SocialAccount{
		ID:          uuid.Must(uuid.NewV4()),
		UserID:      uid,
		Platform:    platform,
		Username:    username,
		AccessToken: fmt.Sprintf("mock-token-%d", time.Now().UnixMilli()),
	}

	created, err := s.AccountRepository.Create(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to connect account: %w", err)
	}
	return toDTO(created), nil
}

// ListAccounts returns userID's connected accounts
func (s *SocialAccountService) ListAccounts(ctx context.Context, userID string) ([]*accountPort.SocialAccountDTO, error) {
	if _, err := uuid.FromString(userID); err != nil {
		return nil, fmt.Errorf("invalid userID: %w", err)
	}

	accounts, err := s.AccountRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	dtos := make([]*accountPort.SocialAccountDTO, 0, len(accounts))
	for _, a := range accounts {
		dtos = append(dtos, toDTO(a))
	}
	return dtos, nil
}

// DisconnectAccount removes one of userID's connected accounts. Accounts
// belonging to someone else are left alone.
func (s *SocialAccountService) DisconnectAccount(ctx context.Context, userID, id string) error {
	if _, err := uuid.FromString(userID); err != nil {
		return fmt.Errorf("invalid userID: %w", err)
	}
	if _, err := uuid.FromString(id); err != nil {
		return fmt.Errorf("invalid account id: %w", err)
	}
	return s.AccountRepository.Delete(ctx, userID, id)
}

func toDTO(a *accountEntity.SocialAccount) *accountPort.SocialAccountDTO {
	color, ok := accountEntity.PlatformColors[a.Platform]
	if !ok {
		color = "bg-gray-500"
	}

	dto := &accountPort.SocialAccountDTO{
		ID:        a.ID.String(),
		Platform:  a.Platform,
		Username:  a.Username,
		Connected: true,
		Color:     color,
	}
	if a.ExpiresAt != nil {
		dto.ExpiresAt = a.ExpiresAt.Format(time.RFC3339)
	}
	return dto
}
