package scheduledpostapp

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	postEntity "clipcast/internal/core/scheduledpost"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	posts []*postEntity.ScheduledPost
	fail  bool
}

func (f *fakeRepository) Create(ctx context.Context, post *postEntity.ScheduledPost) (*postEntity.ScheduledPost, error) {
	if f.fail {
		return nil, errors.New("storage unavailable")
	}
	f.posts = append(f.posts, post)
	return post, nil
}

func (f *fakeRepository) FindByOwner(ctx context.Context, ownerID string) ([]*postEntity.ScheduledPost, error) {
	if f.fail {
		return nil, errors.New("storage unavailable")
	}
	var out []*postEntity.ScheduledPost
	for _, p := range f.posts {
		if p.OwnerID.String() == ownerID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledFor.Before(out[j].ScheduledFor) })
	return out, nil
}

// Delete mimics the owner-scoped SQL delete: no matching row, no error.
func (f *fakeRepository) Delete(ctx context.Context, ownerID, id string) error {
	if f.fail {
		return errors.New("storage unavailable")
	}
	for i, p := range f.posts {
		if p.ID.String() == id && p.OwnerID.String() == ownerID {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestCreatePost(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewScheduledPostService(repo)
	owner := uuid.Must(uuid.NewV4()).String()
	scheduledFor := time.Date(2025, 5, 1, 14, 30, 0, 0, time.UTC)

	created, err := svc.CreatePost(context.Background(), owner, "Launch post", scheduledFor,
		postEntity.PlatformSet{postEntity.PlatformInstagram: true})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, owner, created.OwnerID.String())
	assert.Equal(t, postEntity.StatusPending, created.Status)
	assert.True(t, created.ScheduledFor.Equal(scheduledFor))
}

func TestCreatePostValidation(t *testing.T) {
	owner := uuid.Must(uuid.NewV4()).String()
	when := time.Now()

	tests := []struct {
		name      string
		owner     string
		content   string
		platforms postEntity.PlatformSet
		wantErr   error
	}{
		{
			name:      "empty content",
			owner:     owner,
			content:   "   ",
			platforms: postEntity.PlatformSet{postEntity.PlatformInstagram: true},
			wantErr:   ErrEmptyContent,
		},
		{
			name:      "no platform selected",
			owner:     owner,
			content:   "hello",
			platforms: postEntity.PlatformSet{postEntity.PlatformInstagram: false},
			wantErr:   ErrNoPlatform,
		},
		{
			name:      "empty platform set",
			owner:     owner,
			content:   "hello",
			platforms: postEntity.PlatformSet{},
			wantErr:   ErrNoPlatform,
		},
		{
			name:      "unknown platform",
			owner:     owner,
			content:   "hello",
			platforms: postEntity.PlatformSet{"myspace": true},
			wantErr:   ErrUnknownPlatform,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{}
			svc := NewScheduledPostService(repo)

			_, err := svc.CreatePost(context.Background(), tt.owner, tt.content, when, tt.platforms)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, repo.posts, "invalid input must never reach storage")
		})
	}
}

func TestCreatePostInvalidOwner(t *testing.T) {
	svc := NewScheduledPostService(&fakeRepository{})
	_, err := svc.CreatePost(context.Background(), "not-a-uuid", "hello", time.Now(),
		postEntity.PlatformSet{postEntity.PlatformInstagram: true})
	require.Error(t, err)
}

func TestListPostsScopedToOwner(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewScheduledPostService(repo)
	ctx := context.Background()

	ownerA := uuid.Must(uuid.NewV4()).String()
	ownerB := uuid.Must(uuid.NewV4()).String()
	platforms := postEntity.PlatformSet{postEntity.PlatformTwitter: true}

	_, err := svc.CreatePost(ctx, ownerA, "mine", time.Now(), platforms)
	require.NoError(t, err)
	_, err = svc.CreatePost(ctx, ownerB, "theirs", time.Now(), platforms)
	require.NoError(t, err)

	posts, err := svc.ListPosts(ctx, ownerA)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "mine", posts[0].Content)
}

func TestDeletePost(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewScheduledPostService(repo)
	ctx := context.Background()
	owner := uuid.Must(uuid.NewV4()).String()

	created, err := svc.CreatePost(ctx, owner, "gone soon", time.Now(),
		postEntity.PlatformSet{postEntity.PlatformFacebook: true})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePost(ctx, owner, created.ID.String()))

	posts, err := svc.ListPosts(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

// A delete aimed at someone else's post must leave the row in place.
func TestDeletePostScopedToOwner(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewScheduledPostService(repo)
	ctx := context.Background()

	ownerA := uuid.Must(uuid.NewV4()).String()
	ownerB := uuid.Must(uuid.NewV4()).String()

	created, err := svc.CreatePost(ctx, ownerB, "not yours", time.Now(),
		postEntity.PlatformSet{postEntity.PlatformInstagram: true})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePost(ctx, ownerA, created.ID.String()))

	posts, err := svc.ListPosts(ctx, ownerB)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "not yours", posts[0].Content)
}

func TestDeletePostInvalidID(t *testing.T) {
	svc := NewScheduledPostService(&fakeRepository{})
	owner := uuid.Must(uuid.NewV4()).String()
	require.Error(t, svc.DeletePost(context.Background(), owner, "nope"))
	require.Error(t, svc.DeletePost(context.Background(), "nope", owner))
}
