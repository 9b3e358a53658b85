package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sitedesk/sitedesk/internal/handlers"
	"github.com/sitedesk/sitedesk/internal/middleware"
	"github.com/sitedesk/sitedesk/pkg/logger"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, svc *appServices) {
	// Middleware
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS())

	// Rate limiter for public routes
	publicLimiter := middleware.NewRateLimiter(svc.cfg.Server.RateLimitRPS, svc.cfg.Server.RateLimitBurst)

	// Health check
	healthHandler := handlers.NewHealthHandler(svc.store, svc.eventHub)
	r.GET("/health", healthHandler.CheckHealth)

	// Uploaded attachments
	r.Static(svc.cfg.Uploads.BaseURL, svc.uploadService.Dir())

	shareHandler := handlers.NewShareHandler(svc.shareService)

	// Public share resolution (rate limited, no auth)
	r.GET("/share/:token", publicLimiter.Middleware(), shareHandler.Resolve)

	// API routes
	api := r.Group("/api")
	{
		authHandler := handlers.NewAuthHandler(svc.authService)

		// Auth routes (public)
		api.POST("/auth/login", publicLimiter.Middleware(), authHandler.Login)

		// SSE events and chat (public routes with internal token validation)
		sseHandler := handlers.NewSSEHandler(svc.eventHub)
		api.GET("/events", sseHandler.StreamEvents)
		chatHandler := handlers.NewChatHandler(svc.chatHub)
		api.GET("/chat/ws", chatHandler.Connect)

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthRequired(), middleware.AuditLog())
		{
			// Auth
			protected.GET("/auth/me", authHandler.Me)
			protected.POST("/auth/logout", authHandler.Logout)
			protected.POST("/auth/change-password", authHandler.ChangePassword)

			// Dashboard
			dashboardHandler := handlers.NewDashboardHandler(svc.dashboardService)
			protected.GET("/dashboard", dashboardHandler.Overview)
			protected.GET("/dashboard/projects/:id", dashboardHandler.ProjectStats)

			// Projects
			projectHandler := handlers.NewProjectHandler(svc.store)
			protected.GET("/projects", projectHandler.List)
			protected.GET("/projects/:id", projectHandler.GetByID)
			protected.POST("/projects", projectHandler.Create)
			protected.PUT("/projects/:id", projectHandler.Update)
			protected.DELETE("/projects/:id", projectHandler.Delete)

			// Tasks
			taskHandler := handlers.NewTaskHandler(svc.store)
			protected.GET("/projects/:id/tasks", taskHandler.List)
			protected.GET("/projects/:id/tasks/stats", taskHandler.Stats)
			protected.GET("/projects/:id/tasks/:task_id", taskHandler.GetByID)
			protected.POST("/projects/:id/tasks", taskHandler.Create)
			protected.PUT("/projects/:id/tasks/:task_id", taskHandler.Update)
			protected.DELETE("/projects/:id/tasks/:task_id", taskHandler.Delete)
			protected.POST("/projects/:id/tasks/:task_id/submit", taskHandler.Submit)
			protected.POST("/projects/:id/tasks/:task_id/review", taskHandler.Review)
			protected.POST("/projects/:id/tasks/:task_id/comments", taskHandler.AddComment)
			protected.POST("/projects/:id/tasks/bulk-status", taskHandler.BulkStatus)

			// Attachments
			attachmentHandler := handlers.NewAttachmentHandler(svc.store, svc.uploadService)
			protected.POST("/projects/:id/attachments", attachmentHandler.UploadToProject)
			protected.POST("/projects/:id/attachments/pending", attachmentHandler.AddPendingToProject)
			protected.DELETE("/projects/:id/attachments/:attachment_id", attachmentHandler.DeleteFromProject)
			protected.POST("/projects/:id/tasks/:task_id/attachments", attachmentHandler.UploadToTask)
			protected.DELETE("/projects/:id/tasks/:task_id/attachments/:attachment_id", attachmentHandler.DeleteFromTask)

			// Share links
			protected.POST("/shares", shareHandler.Create)
			protected.GET("/projects/:id/shares", shareHandler.ListForProject)
			protected.DELETE("/shares/:token", shareHandler.Revoke)

			// Deals
			dealHandler := handlers.NewDealHandler(svc.store)
			protected.GET("/deals", dealHandler.Table)
			protected.GET("/deals/pipeline", dealHandler.Pipeline)
			protected.GET("/deals/:id", dealHandler.GetByID)
			protected.POST("/deals", dealHandler.Create)
			protected.PUT("/deals/:id", dealHandler.Update)
			protected.DELETE("/deals/:id", dealHandler.Delete)
			protected.POST("/deals/bulk-delete", dealHandler.BulkDelete)
			protected.POST("/deals/delete-selected", dealHandler.DeleteSelected)

			// Messages
			messageHandler := handlers.NewMessageHandler(svc.store)
			protected.GET("/messages", messageHandler.List)
			protected.POST("/messages", messageHandler.Create)
			protected.PUT("/messages/:id", messageHandler.Update)
			protected.DELETE("/messages/:id", messageHandler.Delete)

			// Notifications
			notificationHandler := handlers.NewNotificationHandler(svc.store)
			protected.GET("/notifications", notificationHandler.List)
			protected.POST("/notifications", notificationHandler.Create)
			protected.PUT("/notifications/:id/read", notificationHandler.MarkRead)
			protected.DELETE("/notifications/:id", notificationHandler.Delete)
			protected.DELETE("/notifications", notificationHandler.Clear)

			// Workspace state
			workspaceHandler := handlers.NewWorkspaceHandler(svc.store)
			protected.GET("/workspace", workspaceHandler.Get)
			protected.PUT("/workspace/filters", workspaceHandler.SetFilters)
			protected.PUT("/workspace/view", workspaceHandler.SetView)
			protected.PUT("/workspace/sidebar", workspaceHandler.SetSidebar)
			protected.PUT("/workspace/selection", workspaceHandler.SetSelection)
			protected.POST("/workspace/selection/rows/:id", workspaceHandler.ToggleRow)
			protected.DELETE("/workspace/selection", workspaceHandler.ClearSelection)
			protected.POST("/workspace/reset", workspaceHandler.Reset)
		}
	}
}
