package httpapi

import (
	"context"
	"time"

	"clipcast/internal/adapters/httpapi/middleware"
	"clipcast/internal/core/analytics"
	generationapp "clipcast/internal/core/generation"
	"clipcast/internal/core/schedule"
	postEntity "clipcast/internal/core/scheduledpost"
	shareapp "clipcast/internal/core/share"
	profilePort "clipcast/internal/ports/profile"
	sessionPort "clipcast/internal/ports/session"
	accountPort "clipcast/internal/ports/socialaccount"
	userPort "clipcast/internal/ports/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Inbound ports for the controllers; use cases are injected from outside.

type UserUseCase interface {
	SignIn(ctx context.Context, email, password string) (*userPort.LoginResponse, error)
	SignUp(ctx context.Context, email, password string) (*userPort.UserDTO, error)
	Refresh(ctx context.Context, userID, token string) (*userPort.LoginResponse, error)
	SignOut(ctx context.Context, userID, token string) error
}

type ProfileUseCase interface {
	GetProfile(ctx context.Context, userID string) (*profilePort.ProfileDTO, error)
	SaveProfile(ctx context.Context, userID, username, bio string) (*profilePort.ProfileDTO, error)
}

type SocialAccountUseCase interface {
	ConnectAccount(ctx context.Context, userID, platform, username string) (*accountPort.SocialAccountDTO, error)
	ListAccounts(ctx context.Context, userID string) ([]*accountPort.SocialAccountDTO, error)
	DisconnectAccount(ctx context.Context, userID, id string) error
}

type ScheduledPostUseCase interface {
	CreatePost(ctx context.Context, ownerID, content string, scheduledFor time.Time, platforms postEntity.PlatformSet) (*postEntity.ScheduledPost, error)
	ListPosts(ctx context.Context, ownerID string) ([]*postEntity.ScheduledPost, error)
	DeletePost(ctx context.Context, ownerID, id string) error
}

type ShareUseCase interface {
	Share(ctx context.Context, ownerID string, req shareapp.ShareRequest) (*shareapp.ShareResult, error)
}

type GenerationUseCase interface {
	GenerateCaption(ctx context.Context, style, length string) (string, error)
	GenerateVideo(ctx context.Context, title, script string) (*generationapp.VideoResult, error)
}

type AnalyticsUseCase interface {
	WeeklyViews(ctx context.Context) []analytics.ViewsPoint
	WeeklyEngagement(ctx context.Context) []analytics.EngagementPoint
	PlatformBreakdown(ctx context.Context) []analytics.PlatformShare
}

// SetupRoutes wires controllers to routes; only routing lives here.
func SetupRoutes(
	userUC UserUseCase,
	profileUC ProfileUseCase,
	accountUC SocialAccountUseCase,
	postUC ScheduledPostUseCase,
	store *schedule.Store,
	shareUC ShareUseCase,
	generationUC GenerationUseCase,
	analyticsUC AnalyticsUseCase,
	tokens sessionPort.TokenStore,
	logger *zap.Logger,
) *gin.Engine {
	r := gin.Default()

	uc := NewUserController(userUC)
	pc := NewProfileController(profileUC)
	ac := NewSocialAccountController(accountUC)
	spc := NewScheduledPostController(postUC)
	sc := NewScheduleController(store)
	shc := NewShareController(shareUC)
	gc := NewGenerationController(generationUC)
	anc := NewAnalyticsController(analyticsUC)

	auth := middleware.JWTAuthMiddleware(tokens, logger)

	// Sign-up and sign-in are the only routes without the JWT middleware
	r.POST("/signup", uc.SignUp)
	r.POST("/signin", uc.SignIn)
	r.POST("/refresh", auth, uc.Refresh)
	r.POST("/signout", auth, uc.SignOut)

	r.GET("/profile", auth, pc.GetProfile)
	r.PUT("/profile", auth, pc.SaveProfile)

	r.GET("/accounts", auth, ac.ListAccounts)
	r.POST("/accounts", auth, ac.ConnectAccount)
	r.DELETE("/accounts/:id", auth, ac.DisconnectAccount)

	r.GET("/scheduled-posts", auth, spc.ListPosts)
	r.POST("/scheduled-posts", auth, spc.CreatePost)
	r.DELETE("/scheduled-posts/:id", auth, spc.DeletePost)

	// Schedule-page workflow backed by the store
	r.GET("/schedule", auth, sc.Overview)
	r.POST("/schedule", auth, sc.Compose)
	r.DELETE("/schedule/:id", auth, sc.Remove)

	r.POST("/share", auth, shc.Share)

	r.POST("/generate/caption", auth, gc.GenerateCaption)
	r.POST("/generate/video", auth, gc.GenerateVideo)

	r.GET("/analytics/views", auth, anc.WeeklyViews)
	r.GET("/analytics/engagement", auth, anc.WeeklyEngagement)
	r.GET("/analytics/platforms", auth, anc.PlatformBreakdown)

	return r
}

// identityFromContext rebuilds the session identity the JWT middleware left
// in the gin context.
func identityFromContext(c *gin.Context) *sessionPort.Identity {
	userID, exists := c.Get("userID")
	if !exists {
		return nil
	}
	return &sessionPort.Identity{UserID: userID.(string)}
}
