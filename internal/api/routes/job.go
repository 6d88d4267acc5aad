package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/whenwework/platform-go/internal/api/handlers"
	"github.com/whenwework/platform-go/internal/api/middleware"
)

// JobRoutes registers job posting endpoints.
func JobRoutes(rg *gin.RouterGroup, h *handlers.JobHandler) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("/open", middleware.RequireWorker(), h.ListOpenJobs)
		jobs.GET("/:id", h.GetJob)

		admin := jobs.Group("", middleware.RequireAdmin())
		admin.POST("", h.CreateJob)
		admin.GET("", h.ListJobs)
		admin.GET("/stats", h.JobStats)
		admin.PUT("/:id", h.UpdateJob)
		admin.DELETE("/:id", h.DeleteJob)
	}
}

// JobApplicationRoutes registers the worker and admin sides of the application workflow.
func JobApplicationRoutes(rg *gin.RouterGroup, h *handlers.JobApplicationHandler) {
	apps := rg.Group("/job_applications")
	{
		apps.GET("/:id", h.GetApplication)
		apps.GET("/:id/history", h.History)

		worker := apps.Group("", middleware.RequireWorker())
		worker.POST("", h.Apply)
		worker.GET("", h.ListMine)
		worker.DELETE("/:id", h.Withdraw)
		worker.GET("/worker/revenue", h.WorkerRevenue)
		worker.GET("/worker/status", h.WorkerStatus)

		admin := apps.Group("", middleware.RequireAdmin())
		admin.GET("/approval-panel", h.ApprovalPanel)
		admin.GET("/admin/revenue", h.AdminRevenue)
		admin.PUT("/:id", h.UpdateStatus)
		admin.POST("/:id/approve", h.Approve)
		admin.POST("/:id/reject", h.Reject)
		admin.POST("/:id/complete", h.Complete)
		admin.POST("/:id/payment", h.Payment)
	}
}
