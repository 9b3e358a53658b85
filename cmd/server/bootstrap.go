package main

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/config"
	"github.com/sitedesk/sitedesk/internal/models"
	"github.com/sitedesk/sitedesk/internal/services"
	"github.com/sitedesk/sitedesk/internal/store"
	"github.com/sitedesk/sitedesk/internal/utils"
	"github.com/sitedesk/sitedesk/pkg/logger"
)

// appServices holds all initialized services needed by the application.
type appServices struct {
	cfg                 *config.Config
	store               *store.Store
	eventHub            *services.EventHub
	chatHub             *services.ChatHub
	authService         *services.AuthService
	shareService        *services.ShareService
	uploadService       *services.UploadService
	notificationService *services.NotificationService
	dashboardService    *services.DashboardService
	taskQueue           services.TaskQueue
	worker              *services.Worker
}

// bootstrap initializes all application dependencies: database, the
// workspace store, hubs, services and the share-email queue.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.JWT.Secret)

	// Initialize database
	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto migrate database
	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	// Workspace store, restored from the last snapshot if one exists
	snapshots := models.NewSnapshotRepo(models.GetDB(), cfg.Snapshot.Key)
	st := store.NewStore(snapshots)
	if !st.Restore() {
		logger.Info().Msg("No snapshot found, starting cold")
		if cfg.Snapshot.SeedDemo {
			st.SeedDemoData()
		}
	}

	// Wire the event hub so every store mutation reaches SSE clients
	eventHub := services.NewEventHub()
	st.SetEventSink(eventHub)

	chatHub := services.NewChatHub(st)
	go chatHub.Run()

	// Share-email delivery (uses Redis if enabled, otherwise sync mode)
	emailService := services.NewEmailService(&cfg.SMTP)
	taskQueue := services.InitTaskQueue(cfg)
	if syncQueue, ok := taskQueue.(*services.SyncQueue); ok {
		syncQueue.SetProcessor(func(_ context.Context, task *services.ShareEmailTask) error {
			return emailService.SendShareInvitation(task)
		})
	}

	// Start async worker if Redis is enabled
	var worker *services.Worker
	if cfg.Redis.Enabled {
		worker = services.InitWorker(&cfg.Redis)
		if worker != nil {
			worker.SetProcessor(func(_ context.Context, task *services.ShareEmailTask) error {
				return emailService.SendShareInvitation(task)
			})
			worker.Start()
		}
	}

	baseURL := "http://" + cfg.Server.Host + ":" + cfg.Server.Port
	shareService := services.NewShareService(models.GetDB(), st, taskQueue, baseURL)

	uploadService, err := services.NewUploadService(&cfg.Uploads)
	if err != nil {
		logger.Fatalf("Failed to prepare upload dir: %v", err)
	}

	// Hourly sweep for expired notifications and share links
	notificationService := services.NewNotificationService(st)
	notificationService.StartRetention(shareService)

	dashboardService := services.NewDashboardService(st, services.NewScheduleService())

	// Create default admin user
	authService := services.NewAuthService(models.GetDB(), &cfg.JWT)
	if err := authService.CreateAdminIfNotExists(); err != nil {
		logger.Warn().Err(err).Msg("Failed to create admin user")
	}

	return &appServices{
		cfg:                 cfg,
		store:               st,
		eventHub:            eventHub,
		chatHub:             chatHub,
		authService:         authService,
		shareService:        shareService,
		uploadService:       uploadService,
		notificationService: notificationService,
		dashboardService:    dashboardService,
		taskQueue:           taskQueue,
		worker:              worker,
	}
}

// shutdown gracefully stops all services.
func (s *appServices) shutdown() {
	s.notificationService.StopRetention()
	if s.worker != nil {
		s.worker.Stop()
	}
	if s.taskQueue != nil {
		s.taskQueue.Close()
	}
	logger.Info().Msg("All services stopped")
}
