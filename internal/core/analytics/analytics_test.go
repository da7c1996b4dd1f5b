package analytics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklyViews(t *testing.T) {
	svc := NewAnalyticsService()

	views := svc.WeeklyViews(context.Background())
	require.Len(t, views, 7)
	assert.Equal(t, ViewsPoint{Day: "Apr 1", Views: 120}, views[0])
	assert.Equal(t, ViewsPoint{Day: "Apr 7", Views: 280}, views[6])
}

func TestWeeklyEngagement(t *testing.T) {
	svc := NewAnalyticsService()

	engagement := svc.WeeklyEngagement(context.Background())
	require.Len(t, engagement, 7)
	assert.Equal(t, EngagementPoint{Day: "Apr 5", Likes: 98, Comments: 32, Shares: 24}, engagement[4])
}

func TestPlatformBreakdown(t *testing.T) {
	svc := NewAnalyticsService()

	breakdown := svc.PlatformBreakdown(context.Background())
	require.Len(t, breakdown, 4)
	assert.Equal(t, PlatformShare{Platform: "Instagram", Value: 45}, breakdown[0])
}

// Callers get copies; mutating a result must not bleed into later calls.
func TestSeriesAreCopies(t *testing.T) {
	svc := NewAnalyticsService()
	ctx := context.Background()

	first := svc.WeeklyViews(ctx)
	first[0].Views = -1

	second := svc.WeeklyViews(ctx)
	assert.Equal(t, 120, second[0].Views)
}
