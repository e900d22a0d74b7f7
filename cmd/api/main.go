package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/soprahr/leavedesk-api/internal/application/audit"
	"github.com/soprahr/leavedesk-api/internal/application/auth"
	"github.com/soprahr/leavedesk-api/internal/application/directory"
	"github.com/soprahr/leavedesk-api/internal/application/leave"
	"github.com/soprahr/leavedesk-api/internal/application/notification"
	infrapdf "github.com/soprahr/leavedesk-api/internal/infrastructure/pdf"
	"github.com/soprahr/leavedesk-api/internal/infrastructure/postgres"
	"github.com/soprahr/leavedesk-api/internal/infrastructure/storage"
	httpiface "github.com/soprahr/leavedesk-api/internal/interfaces/http"
	"github.com/soprahr/leavedesk-api/pkg/config"
	"github.com/soprahr/leavedesk-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	leaveRepo := postgres.NewLeaveRequestRepository(pool)
	attachmentRepo := postgres.NewAttachmentRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	recorder := audit.NewRecorder(auditRepo, notificationRepo, log)
	fileStore := storage.NewLocalStore(cfg.Storage.UploadDir, cfg.Storage.BaseURL)
	pdfGenerator := infrapdf.NewMarotoLeaveSummary()

	leaveUC := leave.NewUseCase(leaveRepo, userRepo, attachmentRepo, txRunner, recorder, fileStore, pdfGenerator)
	directoryUC := directory.NewUseCase(userRepo)
	notificationUC := notification.NewUseCase(notificationRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    10 * 1024 * 1024, // attachment uploads
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "LeaveDesk API",
	}))

	// Attachment files are served from the upload directory.
	app.Static(cfg.Storage.BaseURL, cfg.Storage.UploadDir)

	httpiface.Register(app, httpiface.Handlers{
		Auth:          httpiface.NewAuthHandler(authUC),
		Leaves:        httpiface.NewLeaveHandler(leaveUC, log),
		Users:         httpiface.NewUserHandler(directoryUC, log),
		Notifications: httpiface.NewNotificationHandler(notificationUC, log),
		Audit:         httpiface.NewAuditHandler(recorder, log),
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
