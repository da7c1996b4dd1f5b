package schedule

import (
	"context"
	"strings"
	"testing"
	"time"

	postEntity "clipcast/internal/core/scheduledpost"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestListViewItems(t *testing.T) {
	catalog := &fakeCatalog{}
	store := NewStore(catalog, zap.NewNop())
	view := NewListView(store)
	ident := newIdentity(t)
	ctx := context.Background()

	long := strings.Repeat("x", 40)
	_, err := store.Create(ctx, ident, long, time.Date(2025, 5, 1, 14, 30, 0, 0, time.UTC),
		postEntity.PlatformSet{postEntity.PlatformInstagram: true})
	require.NoError(t, err)

	items := view.Items(ident)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, strings.Repeat("x", 30)+"...", item.Title)
	assert.Equal(t, long, item.Content)
	assert.Equal(t, postEntity.PlatformInstagram, item.Platform)
	assert.Equal(t, "2025-05-01", item.Date)
	assert.Equal(t, "14:30", item.Time)
	assert.Equal(t, postEntity.StatusPending, item.Status)
}

func TestListViewShortTitleNotTruncated(t *testing.T) {
	catalog := &fakeCatalog{}
	store := NewStore(catalog, zap.NewNop())
	view := NewListView(store)
	ident := newIdentity(t)

	_, err := store.Create(context.Background(), ident, "short title", time.Now(),
		postEntity.PlatformSet{postEntity.PlatformFacebook: true})
	require.NoError(t, err)

	items := view.Items(ident)
	require.Len(t, items, 1)
	assert.Equal(t, "short title", items[0].Title)
}

func TestListViewMultiplePlatformsLabel(t *testing.T) {
	catalog := &fakeCatalog{}
	store := NewStore(catalog, zap.NewNop())
	view := NewListView(store)
	ident := newIdentity(t)

	_, err := store.Create(context.Background(), ident, "everywhere", time.Now(),
		postEntity.PlatformSet{postEntity.PlatformInstagram: true, postEntity.PlatformTwitter: true})
	require.NoError(t, err)

	items := view.Items(ident)
	require.Len(t, items, 1)
	assert.Equal(t, "multiple", items[0].Platform)
}

func TestListViewDeleteForwarding(t *testing.T) {
	catalog := &fakeCatalog{}
	store := NewStore(catalog, zap.NewNop())
	view := NewListView(store)
	ident := newIdentity(t)
	ctx := context.Background()

	created, err := store.Create(ctx, ident, "delete me", time.Now(),
		postEntity.PlatformSet{postEntity.PlatformLinkedin: true})
	require.NoError(t, err)

	require.NoError(t, view.RequestDelete(ctx, ident, created.ID.String()))
	assert.Empty(t, view.Items(ident))
}

// A failed delete keeps the row in the rendered list: no optimistic removal.
func TestListViewFailedDeleteKeepsItem(t *testing.T) {
	catalog := &fakeCatalog{}
	store := NewStore(catalog, zap.NewNop())
	view := NewListView(store)
	ident := newIdentity(t)
	ctx := context.Background()

	created, err := store.Create(ctx, ident, "still here", time.Now(),
		postEntity.PlatformSet{postEntity.PlatformYoutube: true})
	require.NoError(t, err)

	catalog.failDelete = true
	require.Error(t, view.RequestDelete(ctx, ident, created.ID.String()))

	items := view.Items(ident)
	require.Len(t, items, 1)
	assert.Equal(t, created.ID.String(), items[0].ID)
}
