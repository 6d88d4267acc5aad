package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "github.com/whenwework/platform-go/docs"
	"github.com/whenwework/platform-go/internal/api/handlers"
	"github.com/whenwework/platform-go/internal/api/middleware"
	"github.com/whenwework/platform-go/internal/metrics"
	"go.uber.org/zap"
)

type Options struct {
	APIPrefix   string
	CORSOrigins []string
	Logger      *zap.Logger
}

// NewRouter builds the engine with the global middleware chain and every route.
func NewRouter(h *handlers.Handlers, opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.LoggingMiddleware(logger),
		middleware.MetricsMiddleware(),
		middleware.CORSMiddleware(opts.CORSOrigins),
		gin.Recovery(),
	)

	r.GET("/", h.System.Root)
	r.GET("/health", h.System.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	RegisterRoutes(r.Group(opts.APIPrefix), h)
	return r
}

func RegisterRoutes(api *gin.RouterGroup, h *handlers.Handlers) {
	// --- public ---
	business := api.Group("/business")
	business.POST("/request-registration", h.Business.RequestRegistration)
	business.POST("/verify-and-register", h.Business.VerifyAndRegister)

	users := api.Group("/users")
	users.POST("", middleware.OptionalJWTMiddleware(), h.User.CreateUser)
	users.POST("/login", h.User.Login)
	users.POST("/logout", h.User.Logout)
	users.POST("/forgot-password", h.User.ForgotPassword)

	// --- JWT-protected ---
	auth := api.Group("")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/auth/status", h.System.AuthStatus)
		auth.GET("/audit/logs", h.Audit.GetAuditLogs)
		auth.GET("/ws/job_applications", middleware.RequireAdmin(), h.Events.StreamApplications)

		biz := auth.Group("/business")
		biz.GET("", h.Business.ListBusinesses)
		biz.GET("/:id", h.Business.GetBusiness)
		biz.PUT("/:id", middleware.RequireAdmin(), h.Business.UpdateBusiness)
		biz.DELETE("/:id", middleware.RequireAdmin(), h.Business.DeleteBusiness)

		u := auth.Group("/users")
		u.GET("", middleware.RequireAdmin(), h.User.ListWorkers)
		u.GET("/:id", h.User.GetUser)
		u.DELETE("/:id", middleware.RequireAdmin(), h.User.DeleteUser)
		u.PUT("/admin/:id", middleware.RequireAdmin(), h.User.UpdateUser)
		u.PUT("/worker/me", middleware.RequireWorker(), h.User.UpdateMe)
		u.POST("/me/photo", h.User.UploadPhoto)

		workers := auth.Group("/workers", middleware.RequireAdmin())
		workers.POST("", h.User.CreateWorker)
		workers.GET("", h.User.ListWorkers)
		workers.GET("/:id", h.User.GetUser)
		workers.PUT("/:id", h.User.UpdateUser)
		workers.DELETE("/:id", h.User.DeleteUser)

		admins := auth.Group("/admin", middleware.RequireAdmin())
		admins.POST("", h.User.CreateAdmin)
		admins.GET("", h.User.ListAdmins)
		admins.GET("/:id", h.User.GetUser)
		admins.PUT("/:id", h.User.UpdateUser)
		admins.DELETE("/:id", h.User.DeleteUser)

		JobRoutes(auth, h.Job)
		JobApplicationRoutes(auth, h.JobApplication)
	}
}
