// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pawz-connect/backend/internal/integration/entrypoint/controller"
	"github.com/pawz-connect/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	authController         *controller.AuthController
	userController         *controller.UserController
	profileController      *controller.ProfileController
	petController          *controller.PetController
	healthRecordController *controller.HealthRecordController
	postController         *controller.PostController
	serviceController      *controller.ServiceController
	consentController      *controller.ConsentController
	usageController        *controller.UsageController
	uploadController       *controller.UploadController
	loginRateLimiter       *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
	usageQuota             *middleware.UsageQuotaMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	profileController *controller.ProfileController,
	petController *controller.PetController,
	healthRecordController *controller.HealthRecordController,
	postController *controller.PostController,
	serviceController *controller.ServiceController,
	consentController *controller.ConsentController,
	usageController *controller.UsageController,
	uploadController *controller.UploadController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	usageQuota *middleware.UsageQuotaMiddleware,
) *Router {
	return &Router{
		healthController:       healthController,
		authController:         authController,
		userController:         userController,
		profileController:      profileController,
		petController:          petController,
		healthRecordController: healthRecordController,
		postController:         postController,
		serviceController:      serviceController,
		consentController:      consentController,
		usageController:        usageController,
		uploadController:       uploadController,
		loginRateLimiter:       loginRateLimiter,
		authMiddleware:         authMiddleware,
		usageQuota:             usageQuota,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	// Logger and recovery middleware
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/password-strength", r.authController.PasswordStrength)
		auth.POST("/register", r.authController.Register)
		auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
		auth.POST("/refresh", r.authController.RefreshToken)
		auth.POST("/logout", r.authController.Logout)
		auth.POST("/forgot-password", r.authController.ForgotPassword)
		auth.POST("/reset-password", r.authController.ResetPassword)
	}

	// Public directory
	services := v1.Group("/services")
	{
		services.GET("", r.serviceController.List)
		services.GET("/:id", r.serviceController.Get)
		services.GET("/:id/reviews", r.serviceController.ListReviews)
	}

	protected := v1.Group("")
	protected.Use(r.authMiddleware.Authenticate())
	{
		protected.DELETE("/users/me", r.userController.DeleteAccount)

		protected.GET("/profile", r.profileController.GetOwn)
		protected.PATCH("/profile", r.profileController.Update)
		protected.PUT("/profile/privacy", r.profileController.UpdatePrivacy)
		protected.GET("/profiles/:username", r.profileController.GetByUsername)

		pets := protected.Group("/pets")
		{
			pets.GET("", r.petController.List)
			pets.POST("", r.petController.Create)
			pets.PATCH("/:id", r.petController.Update)
			pets.DELETE("/:id", r.petController.Delete)
			pets.GET("/:id/health-records", r.healthRecordController.List)
			pets.POST("/:id/health-records", r.healthRecordController.Create)
		}
		protected.DELETE("/health-records/:id", r.healthRecordController.Delete)

		protected.GET("/feed", r.postController.Feed)
		protected.GET("/feed/stream", r.postController.Stream)

		posts := protected.Group("/posts")
		{
			posts.POST("", r.usageQuota.Enforce(), r.postController.Create)
			posts.DELETE("/:id", r.postController.Delete)
			posts.POST("/:id/like", r.postController.ToggleLike)
			posts.GET("/:id/comments", r.postController.ListComments)
			posts.POST("/:id/comments", r.postController.AddComment)
		}

		protected.POST("/services/:id/reviews", r.serviceController.CreateReview)

		consents := protected.Group("/consents")
		{
			consents.POST("", r.consentController.Grant)
			consents.GET("", r.consentController.List)
			consents.GET("/status", r.consentController.Status)
			consents.PUT("/:type", r.consentController.Update)
		}

		protected.GET("/usage", r.usageController.Get)
		protected.POST("/uploads/:bucket", r.usageQuota.Enforce(), r.uploadController.Upload)
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
