package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/trainhub/fitness-platform/backend/internal/api"
	"github.com/trainhub/fitness-platform/backend/internal/middleware"
	"github.com/trainhub/fitness-platform/backend/internal/service"
	"github.com/trainhub/fitness-platform/backend/internal/users"
)

// Options carries what every service router needs besides its handlers.
type Options struct {
	Service        string
	Version        string
	Renderer       *middleware.ErrorRenderer
	Directory      users.Directory
	IdentityHeader string
	LookupTimeout  time.Duration
	CORSOrigins    []string
	Limiter        *middleware.RateLimiter
	DB             api.Pinger
	// AccessLog enables gin's request logger.
	AccessLog bool
}

// TrainingServices are the services behind the training API.
type TrainingServices struct {
	Plans    service.IPlanService
	Sessions service.ISessionService
	Reviews  service.IReviewService
	Goals    service.IGoalService
}

// UserServices are the services behind the user API.
type UserServices struct {
	Users         service.IUserService
	Admins        service.IAdminService
	Notifications service.INotificationService
}

// SetupTrainingRouter configures the training service routes
func SetupTrainingRouter(opts Options, s TrainingServices) *gin.Engine {
	router := setup(opts)
	v1 := router.Group("/api")

	api.NewTrainingHandler(s.Plans, s.Reviews).RegisterRoutes(v1)
	api.NewSessionHandler(s.Sessions).RegisterRoutes(v1)
	api.NewGoalHandler(s.Goals).RegisterRoutes(v1)

	return router
}

// SetupUserRouter configures the user service routes
func SetupUserRouter(opts Options, s UserServices) *gin.Engine {
	router := setup(opts)
	v1 := router.Group("/api")

	api.NewUserHandler(s.Users, s.Notifications).RegisterRoutes(v1)
	api.NewAdminHandler(s.Admins).RegisterRoutes(v1)

	return router
}

// setup installs the middleware chain shared by both services. Identity runs
// globally so a blocked caller is refused even on unknown paths.
func setup(opts Options) *gin.Engine {
	router := gin.New()
	if opts.AccessLog {
		router.Use(gin.Logger())
	}
	router.Use(
		middleware.Recovery(opts.Renderer),
		middleware.RequestID(),
		middleware.Metrics(opts.Service),
		middleware.CORS(opts.CORSOrigins, opts.IdentityHeader),
		middleware.ErrorHandler(opts.Renderer),
	)
	if opts.Directory != nil {
		router.Use(middleware.CallerIdentity(opts.Directory, opts.IdentityHeader, opts.LookupTimeout))
	}
	if opts.Limiter != nil {
		router.Use(opts.Limiter.Middleware())
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	})

	api.NewHealthHandler(opts.Service, opts.Version, opts.DB).RegisterRoutes(router)
	return router
}
