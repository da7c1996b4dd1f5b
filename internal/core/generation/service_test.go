package generationapp

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService() *GenerationService {
	svc := NewGenerationService(zap.NewNop())
	svc.CaptionDelay = time.Millisecond
	svc.VideoDelay = time.Millisecond
	return svc
}

func TestGenerateCaption(t *testing.T) {
	svc := newService()

	caption, err := svc.GenerateCaption(context.Background(), "casual", "medium")
	require.NoError(t, err)
	assert.True(t, strings.Contains(caption, "#NewProduct"))
}

func TestGenerateVideo(t *testing.T) {
	svc := newService()

	video, err := svc.GenerateVideo(context.Background(), "My launch", "a script")
	require.NoError(t, err)
	assert.Equal(t, "/placeholder.svg", video.URL)
	assert.Equal(t, "My launch", video.Title)
}

func TestGenerateVideoRequiresScript(t *testing.T) {
	svc := newService()

	_, err := svc.GenerateVideo(context.Background(), "title", "")
	require.ErrorIs(t, err, ErrScriptRequired)
}

func TestGenerationHonorsCancellation(t *testing.T) {
	svc := NewGenerationService(zap.NewNop()) // real delays

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.GenerateCaption(ctx, "", "")
	require.ErrorIs(t, err, context.Canceled)

	_, err = svc.GenerateVideo(ctx, "t", "s")
	require.ErrorIs(t, err, context.Canceled)
}
