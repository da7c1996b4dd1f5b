package shareapp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"clipcast/internal/core/schedule"
	postEntity "clipcast/internal/core/scheduledpost"

	"go.uber.org/zap"
)

var (
	ErrPlatformRequired = errors.New("at least one platform must be selected")
	ErrDateRequired     = errors.New("date required")
)

// defaultShareDelay stands in for the round trip to the platform APIs.
const defaultShareDelay = 2 * time.Second

type ShareRequest struct {
	Content   string
	Platforms postEntity.PlatformSet
	Scheduled bool
	Date      *time.Time
	Clock     string
}

type ShareResult struct {
	Action    string   `json:"action"` // "shared" or "scheduled"
	Platforms []string `json:"platforms"`
	Message   string   `json:"message"`
}

// ShareService runs the share page workflow: either push to the selected
// platforms now (simulated) or hand off to the scheduled-post catalog.
type ShareService struct {
	Posts  schedule.PostCatalog
	Delay  time.Duration
	Logger *zap.Logger
}

func NewShareService(posts schedule.PostCatalog, logger *zap.Logger) *ShareService {
	return &ShareService{
		Posts:  posts,
		Delay:  defaultShareDelay,
		Logger: logger,
	}
}

func (s *ShareService) Share(ctx context.Context, ownerID string, req ShareRequest) (*ShareResult, error) {
	if !req.Platforms.Any() {
		return nil, ErrPlatformRequired
	}

	if req.Scheduled {
		return s.scheduleShare(ctx, ownerID, req)
	}
	return s.shareNow(ctx, req)
}

func (s *ShareService) scheduleShare(ctx context.Context, ownerID string, req ShareRequest) (*ShareResult, error) {
	if req.Date == nil {
		return nil, ErrDateRequired
	}

	clock := req.Clock
	if clock == "" {
		clock = schedule.DefaultClock
	}
	scheduledFor, err := schedule.ComposeAt(*req.Date, clock)
	if err != nil {
		return nil, err
	}

	if _, err := s.Posts.CreatePost(ctx, ownerID, req.Content, scheduledFor, req.Platforms); err != nil {
		return nil, err
	}

	return &ShareResult{
		Action:    "scheduled",
		Platforms: req.Platforms.Selected(),
		Message:   fmt.Sprintf("Your post has been scheduled for %s at %s", scheduledFor.Format("Jan 2, 2006"), clock),
	}, nil
}

// shareNow simulates the platform round trip; there is no real publish path.
func (s *ShareService) shareNow(ctx context.Context, req ShareRequest) (*ShareResult, error) {
	select {
	case <-time.After(s.Delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	platforms := req.Platforms.Selected()
	s.Logger.Info("Post shared", zap.Strings("platforms", platforms))

	return &ShareResult{
		Action:    "shared",
		Platforms: platforms,
		Message:   fmt.Sprintf("Your post has been shared to %s", strings.Join(platforms, ", ")),
	}, nil
}
