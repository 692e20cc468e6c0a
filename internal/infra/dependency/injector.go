// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pawz-connect/backend/config"
	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/application/usecase/audit"
	"github.com/pawz-connect/backend/internal/application/usecase/auth"
	"github.com/pawz-connect/backend/internal/application/usecase/consent"
	"github.com/pawz-connect/backend/internal/application/usecase/healthrecord"
	"github.com/pawz-connect/backend/internal/application/usecase/pet"
	"github.com/pawz-connect/backend/internal/application/usecase/petservice"
	"github.com/pawz-connect/backend/internal/application/usecase/post"
	"github.com/pawz-connect/backend/internal/application/usecase/profile"
	"github.com/pawz-connect/backend/internal/application/usecase/upload"
	"github.com/pawz-connect/backend/internal/application/usecase/usage"
	"github.com/pawz-connect/backend/internal/infra/db"
	"github.com/pawz-connect/backend/internal/infra/server/router"
	"github.com/pawz-connect/backend/internal/integration/adapters"
	"github.com/pawz-connect/backend/internal/integration/cache"
	"github.com/pawz-connect/backend/internal/integration/email"
	"github.com/pawz-connect/backend/internal/integration/email/templates"
	"github.com/pawz-connect/backend/internal/integration/entrypoint/controller"
	"github.com/pawz-connect/backend/internal/integration/entrypoint/middleware"
	"github.com/pawz-connect/backend/internal/integration/persistence"
)

// Infrastructure groups the external clients the application depends on.
type Infrastructure struct {
	DB          *gorm.DB
	Redis       *redis.Client
	Storage     adapter.ObjectStorage
	EmailSender adapter.EmailSender
	Moderator   adapter.ReviewModerator
}

// Injector holds all application dependencies.
type Injector struct {
	Config           *config.Config
	DB               *gorm.DB
	Router           *router.Router
	EmailWorker      *email.Worker
	LoginRateLimiter *middleware.RateLimiter
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, infra Infrastructure) (*Injector, error) {
	gormDB := infra.DB

	// Create repositories
	userRepo := persistence.NewUserRepository(gormDB)
	profileRepo := persistence.NewProfileRepository(gormDB)
	tokenRepo := persistence.NewTokenRepository(gormDB)
	petRepo := persistence.NewPetRepository(gormDB)
	recordRepo := persistence.NewHealthRecordRepository(gormDB)
	postRepo := persistence.NewPostRepository(gormDB)
	serviceRepo := persistence.NewPetServiceRepository(gormDB)
	reviewRepo := persistence.NewServiceReviewRepository(gormDB)
	consentRepo := persistence.NewConsentRepository(gormDB)
	auditRepo := persistence.NewAuditLogRepository(gormDB)
	emailQueueRepo := persistence.NewEmailQueueRepository(gormDB)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
	imageProcessor := adapters.NewImageProcessor(cfg.Upload.MaxDimension, cfg.Upload.JPEGQuality)
	usageTracker := cache.NewUsageTracker(infra.Redis, cfg.Usage.DailyLimit, cfg.Usage.MonthlyLimit)
	postBroker := cache.NewPostBroker(infra.Redis)
	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)
	auditRecorder := audit.NewRecorder(auditRepo)

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}
	emailWorker := email.NewWorker(emailQueueRepo, infra.EmailSender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Create auth use cases
	passwordStrengthUseCase := auth.NewCheckPasswordStrengthUseCase(passwordService)
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, profileRepo, passwordService, tokenService, emailService, auditRecorder)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService, auditRecorder)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService, auditRecorder)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, profileRepo, resetTokenService, emailService, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService, tokenService, auditRecorder)
	deleteAccountUseCase := auth.NewDeleteAccountUseCase(userRepo, passwordService, tokenService, emailService, auditRecorder)

	// Create profile use cases
	getProfileUseCase := profile.NewGetProfileUseCase(profileRepo)
	updateProfileUseCase := profile.NewUpdateProfileUseCase(profileRepo)
	updatePrivacyUseCase := profile.NewUpdatePrivacyUseCase(profileRepo)

	// Create pet use cases
	listPetsUseCase := pet.NewListPetsUseCase(petRepo)
	createPetUseCase := pet.NewCreatePetUseCase(petRepo)
	updatePetUseCase := pet.NewUpdatePetUseCase(petRepo)
	deletePetUseCase := pet.NewDeletePetUseCase(petRepo)

	listRecordsUseCase := healthrecord.NewListHealthRecordsUseCase(petRepo, recordRepo)
	createRecordUseCase := healthrecord.NewCreateHealthRecordUseCase(petRepo, recordRepo, auditRecorder)
	deleteRecordUseCase := healthrecord.NewDeleteHealthRecordUseCase(petRepo, recordRepo, auditRecorder)

	// Create feed use cases
	getFeedUseCase := post.NewGetFeedUseCase(postRepo)
	streamFeedUseCase := post.NewStreamFeedUseCase(postBroker)
	createPostUseCase := post.NewCreatePostUseCase(postRepo, petRepo, postBroker)
	deletePostUseCase := post.NewDeletePostUseCase(postRepo, postBroker)
	toggleLikeUseCase := post.NewToggleLikeUseCase(postRepo, postBroker)
	addCommentUseCase := post.NewAddCommentUseCase(postRepo, postBroker)
	listCommentsUseCase := post.NewListCommentsUseCase(postRepo)

	// Create services directory use cases
	listServicesUseCase := petservice.NewListServicesUseCase(serviceRepo)
	getServiceUseCase := petservice.NewGetServiceUseCase(serviceRepo)
	listReviewsUseCase := petservice.NewListReviewsUseCase(serviceRepo, reviewRepo)
	createReviewUseCase := petservice.NewCreateReviewUseCase(serviceRepo, reviewRepo, infra.Moderator)

	// Create consent use cases
	grantConsentsUseCase := consent.NewGrantConsentsUseCase(consentRepo, auditRecorder)
	getConsentsUseCase := consent.NewGetConsentsUseCase(consentRepo)
	updateConsentUseCase := consent.NewUpdateConsentUseCase(consentRepo, auditRecorder)

	checkQuotaUseCase := usage.NewCheckQuotaUseCase(usageTracker)
	reserveUsageUseCase := usage.NewReserveUsageUseCase(usageTracker)
	uploadImageUseCase := upload.NewUploadImageUseCase(infra.Storage, imageProcessor, cfg.Upload.MaxSizeMB)

	// Create controllers
	healthController := controller.NewHealthController(
		func(ctx context.Context) bool {
			return db.Ping(ctx, gormDB)
		},
		func(ctx context.Context) bool {
			return infra.Redis.Ping(ctx).Err() == nil
		},
	)

	authController := controller.NewAuthController(
		passwordStrengthUseCase,
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)

	userController := controller.NewUserController(
		deleteAccountUseCase,
	)

	profileController := controller.NewProfileController(
		getProfileUseCase,
		updateProfileUseCase,
		updatePrivacyUseCase,
	)

	petController := controller.NewPetController(
		listPetsUseCase,
		createPetUseCase,
		updatePetUseCase,
		deletePetUseCase,
	)

	healthRecordController := controller.NewHealthRecordController(
		listRecordsUseCase,
		createRecordUseCase,
		deleteRecordUseCase,
	)

	postController := controller.NewPostController(
		getFeedUseCase,
		streamFeedUseCase,
		createPostUseCase,
		deletePostUseCase,
		toggleLikeUseCase,
		addCommentUseCase,
		listCommentsUseCase,
	)

	serviceController := controller.NewServiceController(
		listServicesUseCase,
		getServiceUseCase,
		listReviewsUseCase,
		createReviewUseCase,
	)

	consentController := controller.NewConsentController(
		grantConsentsUseCase,
		getConsentsUseCase,
		updateConsentUseCase,
	)

	usageController := controller.NewUsageController(checkQuotaUseCase)
	uploadController := controller.NewUploadController(uploadImageUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)
	usageQuota := middleware.NewUsageQuotaMiddleware(reserveUsageUseCase)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		userController,
		profileController,
		petController,
		healthRecordController,
		postController,
		serviceController,
		consentController,
		usageController,
		uploadController,
		loginRateLimiter,
		authMiddleware,
		usageQuota,
	)

	return &Injector{
		Config:           cfg,
		DB:               gormDB,
		Router:           r,
		EmailWorker:      emailWorker,
		LoginRateLimiter: loginRateLimiter,
	}, nil
}
