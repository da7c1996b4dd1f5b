package socialaccountapp

import (
	"context"
	"strings"
	"testing"

	accountEntity "clipcast/internal/core/socialaccount"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAccountRepository struct {
	accounts []*accountEntity.SocialAccount
}

func (f *fakeAccountRepository) Create(ctx context.Context, a *accountEntity.SocialAccount) (*accountEntity.SocialAccount, error) {
	f.accounts = append(f.accounts, a)
	return a, nil
}

func (f *fakeAccountRepository) FindByUserID(ctx context.Context, userID string) ([]*accountEntity.SocialAccount, error) {
	var out []*accountEntity.SocialAccount
	for _, a := range f.accounts {
		if a.UserID.String() == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

// Delete mimics the user-scoped SQL delete: no matching row, no error.
func (f *fakeAccountRepository) Delete(ctx context.Context, userID, id string) error {
	for i, a := range f.accounts {
		if a.ID.String() == id && a.UserID.String() == userID {
			f.accounts = append(f.accounts[:i], f.accounts[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestConnectAccount(t *testing.T) {
	repo := &fakeAccountRepository{}
	svc := NewSocialAccountService(repo)
	userID := uuid.Must(uuid.NewV4()).String()

	dto, err := svc.ConnectAccount(context.Background(), userID, "instagram", "@janesmith")
	require.NoError(t, err)

	assert.Equal(t, "instagram", dto.Platform)
	assert.Equal(t, "@janesmith", dto.Username)
	assert.True(t, dto.Connected)
	assert.Equal(t, "bg-pink-500", dto.Color)

	require.Len(t, repo.accounts, 1)
	assert.True(t, strings.HasPrefix(repo.accounts[0].AccessToken, "mock-token-"))
}

func TestConnectAccountValidation(t *testing.T) {
	svc := NewSocialAccountService(&fakeAccountRepository{})
	userID := uuid.Must(uuid.NewV4()).String()
	ctx := context.Background()

	_, err := svc.ConnectAccount(ctx, userID, "myspace", "@jane")
	require.ErrorIs(t, err, ErrUnknownPlatform)

	_, err = svc.ConnectAccount(ctx, userID, "instagram", "  ")
	require.ErrorIs(t, err, ErrUsernameRequired)

	_, err = svc.ConnectAccount(ctx, "not-a-uuid", "instagram", "@jane")
	require.Error(t, err)
}

func TestListAccountsScopedToUser(t *testing.T) {
	svc := NewSocialAccountService(&fakeAccountRepository{})
	ctx := context.Background()
	userA := uuid.Must(uuid.NewV4()).String()
	userB := uuid.Must(uuid.NewV4()).String()

	_, err := svc.ConnectAccount(ctx, userA, "instagram", "@a")
	require.NoError(t, err)
	_, err = svc.ConnectAccount(ctx, userB, "twitter", "@b")
	require.NoError(t, err)

	accounts, err := svc.ListAccounts(ctx, userA)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "instagram", accounts[0].Platform)
}

func TestDisconnectAccount(t *testing.T) {
	svc := NewSocialAccountService(&fakeAccountRepository{})
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4()).String()

	dto, err := svc.ConnectAccount(ctx, userID, "youtube", "Jane Smith")
	require.NoError(t, err)

	require.NoError(t, svc.DisconnectAccount(ctx, userID, dto.ID))

	accounts, err := svc.ListAccounts(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

// Disconnecting an account that belongs to another user must be a no-op.
func TestDisconnectAccountScopedToUser(t *testing.T) {
	svc := NewSocialAccountService(&fakeAccountRepository{})
	ctx := context.Background()
	userA := uuid.Must(uuid.NewV4()).String()
	userB := uuid.Must(uuid.NewV4()).String()

	dto, err := svc.ConnectAccount(ctx, userB, "twitter", "@b")
	require.NoError(t, err)

	require.NoError(t, svc.DisconnectAccount(ctx, userA, dto.ID))

	accounts, err := svc.ListAccounts(ctx, userB)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
}
