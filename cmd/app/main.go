package main

import (
	"context"
	"os"

	dbadapter "clipcast/internal/adapters/database"
	"clipcast/internal/adapters/httpapi"
	redisadapter "clipcast/internal/adapters/redis"
	"clipcast/internal/config"
	"clipcast/internal/core/analytics"
	generationapp "clipcast/internal/core/generation"
	"clipcast/internal/core/profile"
	profileapp "clipcast/internal/core/profile/service"
	"clipcast/internal/core/schedule"
	"clipcast/internal/core/scheduledpost"
	scheduledpostapp "clipcast/internal/core/scheduledpost/service"
	shareapp "clipcast/internal/core/share"
	"clipcast/internal/core/socialaccount"
	socialaccountapp "clipcast/internal/core/socialaccount/service"
	"clipcast/internal/core/user"
	userapp "clipcast/internal/core/user/service"
	sessionPort "clipcast/internal/ports/session"

	"go.uber.org/zap"
)

func main() {
	config.InitLogger()
	config.Init()

	config.InitDB()

	if err := config.DB.AutoMigrate(
		&user.User{},
		&profile.Profile{},
		&socialaccount.SocialAccount{},
		&scheduledpost.ScheduledPost{},
	); err != nil {
		config.Logger.Fatal("Error during migrations:", zap.Error(err))
	}
	config.Logger.Info("✅ Database migrations completed")

	config.InitRedis()

	defer closeResources(config.Logger)

	config.Logger.Info("App is running...")

	// Outbound adapters
	userRepo := dbadapter.NewUserRepositoryDatabase()
	profileRepo := dbadapter.NewProfileRepositoryDatabase()
	accountRepo := dbadapter.NewSocialAccountRepositoryDatabase()
	postRepo := dbadapter.NewScheduledPostRepositoryDatabase()
	sessionBus := redisadapter.NewSessionBusRedis(config.RedisClient, config.Logger)
	tokenStore := redisadapter.NewRevokedTokenStoreRedis(config.RedisClient)

	// Use cases
	userSvc := userapp.NewUserService(userRepo, sessionBus, tokenStore, config.Logger, []byte(os.Getenv("JWT_SECRET")))
	profileSvc := profileapp.NewProfileService(profileRepo)
	accountSvc := socialaccountapp.NewSocialAccountService(accountRepo)
	postSvc := scheduledpostapp.NewScheduledPostService(postRepo)
	shareSvc := shareapp.NewShareService(postSvc, config.Logger)
	generationSvc := generationapp.NewGenerationService(config.Logger)
	analyticsSvc := analytics.NewAnalyticsService()

	// Schedule-page store; session changes trigger its refetch
	store := schedule.NewStore(postSvc, config.Logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go watchSessions(ctx, sessionBus, store, config.Logger)

	r := httpapi.SetupRoutes(userSvc, profileSvc, accountSvc, postSvc, store, shareSvc, generationSvc, analyticsSvc, tokenStore, config.Logger)

	if err := r.Run(":" + os.Getenv("APP_PORT")); err != nil {
		config.Logger.Fatal("Server failed to start:", zap.Error(err))
	}
}

// watchSessions refetches the store whenever the session identity changes;
// this is the only implicit refresh trigger.
func watchSessions(ctx context.Context, bus sessionPort.Bus, store *schedule.Store, logger *zap.Logger) {
	events, err := bus.Subscribe(ctx)
	if err != nil {
		logger.Error("Could not subscribe to session events", zap.Error(err))
		return
	}

	for ev := range events {
		logger.Info("Session changed, refreshing scheduled posts", zap.String("type", ev.Type), zap.String("userID", ev.UserID))

		if ev.UserID == "" {
			continue
		}
		if ev.Type == sessionPort.EventSignedOut {
			store.Forget(ev.UserID)
			continue
		}
		ident := &sessionPort.Identity{UserID: ev.UserID}
		if err := store.Refresh(ctx, ident); err != nil {
			logger.Warn("Refresh after session change failed", zap.Error(err))
		}
	}
}

// closeResources shuts down the Redis and database connections
func closeResources(logger *zap.Logger) {
	if err := config.RedisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection:", zap.Error(err))
	}

	sqlDB, err := config.DB.DB()
	if err != nil {
		logger.Error("Error getting raw DB:", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection:", zap.Error(err))
	}
}
