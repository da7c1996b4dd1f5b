package generationapp

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

var ErrScriptRequired = errors.New("script must not be empty")

// Canned outputs; there is no model behind this service, only a delay that
// stands in for one.
const (
	cannedCaption = "🎬 Introducing our new product line! We've designed these with you in mind, " +
		"focusing on quality and sustainability. Check out the link in bio to learn more about " +
		"our eco-friendly initiatives. #NewProduct #Sustainability #Innovation"
	cannedVideoURL = "/placeholder.svg"

	captionDelay = 2 * time.Second
	videoDelay   = 3 * time.Second
)

type VideoResult struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

type GenerationService struct {
	CaptionDelay time.Duration
	VideoDelay   time.Duration
	Logger       *zap.Logger
}

func NewGenerationService(logger *zap.Logger) *GenerationService {
	return &GenerationService{
		CaptionDelay: captionDelay,
		VideoDelay:   videoDelay,
		Logger:       logger,
	}
}

// GenerateCaption pretends to produce a caption for the given style and
// length. The inputs only shape the request; the output is fixed.
func (s *GenerationService) GenerateCaption(ctx context.Context, style, length string) (string, error) {
	if err := s.wait(ctx, s.CaptionDelay); err != nil {
		return "", err
	}

	s.Logger.Info("Caption generated", zap.String("style", style), zap.String("length", length))
	return cannedCaption, nil
}

// GenerateVideo pretends to render a video from a script.
func (s *GenerationService) GenerateVideo(ctx context.Context, title, script string) (*VideoResult, error) {
	if script == "" {
		return nil, ErrScriptRequired
	}

	if err := s.wait(ctx, s.VideoDelay); err != nil {
		return nil, err
	}

	s.Logger.Info("Video generated", zap.String("title", title))
	return &VideoResult{
		URL:   cannedVideoURL,
		Title: title,
	}, nil
}

func (s *GenerationService) wait(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
