package analytics

import "context"

// Canned dashboard series. The analytics page renders fixed sample data;
// there is no aggregation behind it.

type ViewsPoint struct {
	Day   string `json:"day"`
	Views int    `json:"views"`
}

type EngagementPoint struct {
	Day      string `json:"day"`
	Likes    int    `json:"likes"`
	Comments int    `json:"comments"`
	Shares   int    `json:"shares"`
}

type PlatformShare struct {
	Platform string `json:"platform"`
	Value    int    `json:"value"`
}

var viewsData = []ViewsPoint{
	{Day: "Apr 1", Views: 120},
	{Day: "Apr 2", Views: 145},
	{Day: "Apr 3", Views: 210},
	{Day: "Apr 4", Views: 180},
	{Day: "Apr 5", Views: 250},
	{Day: "Apr 6", Views: 310},
	{Day: "Apr 7", Views: 280},
}

var engagementData = []EngagementPoint{
	{Day: "Apr 1", Likes: 45, Comments: 12, Shares: 8},
	{Day: "Apr 2", Likes: 52, Comments: 18, Shares: 10},
	{Day: "Apr 3", Likes: 78, Comments: 24, Shares: 15},
	{Day: "Apr 4", Likes: 65, Comments: 19, Shares: 12},
	{Day: "Apr 5", Likes: 98, Comments: 32, Shares: 24},
	{Day: "Apr 6", Likes: 115, Comments: 38, Shares: 30},
	{Day: "Apr 7", Likes: 105, Comments: 29, Shares: 26},
}

var platformData = []PlatformShare{
	{Platform: "Instagram", Value: 45},
	{Platform: "Facebook", Value: 28},
	{Platform: "Twitter", Value: 15},
	{Platform: "LinkedIn", Value: 12},
}

type AnalyticsService struct{}

func NewAnalyticsService() *AnalyticsService {
	return &AnalyticsService{}
}

func (s *AnalyticsService) WeeklyViews(ctx context.Context) []ViewsPoint {
	out := make([]ViewsPoint, len(viewsData))
	copy(out, viewsData)
	return out
}

func (s *AnalyticsService) WeeklyEngagement(ctx context.Context) []EngagementPoint {
	out := make([]EngagementPoint, len(engagementData))
	copy(out, engagementData)
	return out
}

func (s *AnalyticsService) PlatformBreakdown(ctx context.Context) []PlatformShare {
	out := make([]PlatformShare, len(platformData))
	copy(out, platformData)
	return out
}
