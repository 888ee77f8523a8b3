package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"pocketledger/internal/config"
	"pocketledger/internal/database"
	"pocketledger/internal/events"
	"pocketledger/internal/logger"
	"pocketledger/internal/server"
	"pocketledger/internal/services"
	"pocketledger/internal/validator"
)

// startupTaskTimeout bounds the scheduled-task pass run before serving.
const startupTaskTimeout = 30 * time.Second

// @title           PocketLedger API
// @version         1.0
// @description     PocketLedger keeps a personal ledger consistent: balance, budgets, recurring autopays and notifications.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token from /auth/unlock.

// @securityDefinitions.apikey PipelineKey
// @in header
// @name X-API-Key

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if len(os.Args) > 1 && os.Args[1] == "hash-passcode" {
		if err := hashPasscode(os.Args[2:]); err != nil {
			logger.Get().Fatalf("Fatal error: %v", err)
		}
		return
	}

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

// hashPasscode prints the APP_PASSCODE_HASH value for a passcode.
func hashPasscode(args []string) error {
	if len(args) != 1 || args[0] == "" {
		return fmt.Errorf("usage: api hash-passcode <passcode>")
	}
	hash, err := services.HashPasscode(args[0])
	if err != nil {
		return err
	}
	fmt.Println(hash)
	return nil
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Open the record store
	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("store close error: %v", err)
		}
	}()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	hub := events.NewHub()
	core := services.NewCore(
		dbManager.Records(appConfig.StoreKeyPrefix),
		events.Multi{hub, services.NewAuditLog(logger.Named("audit"))},
		services.Options{
			CatchUp:            appConfig.ScheduleCatchUp,
			DedupeBudgetAlerts: appConfig.DedupeBudgetAlerts,
			NotificationCap:    appConfig.NotificationHistoryCap,
			Logger:             logger.Named("ledger"),
		},
	)
	lockService := services.NewLockService(appConfig.AppPasscodeHash, nil)
	svc := server.NewServices(core, hub, lockService)

	if appConfig.ProcessOnStartup {
		ctx, cancel := context.WithTimeout(context.Background(), startupTaskTimeout)
		result, err := svc.Task.ProcessScheduledTasks(ctx)
		cancel()
		if err != nil {
			return fmt.Errorf("startup scheduled tasks failed: %w", err)
		}
		log.Infow("startup scheduled tasks done",
			"autopays_executed", result.Autopays.Executed,
			"autopays_failed", result.Autopays.Failed,
			"budgets_reset", result.Budgets.Reset,
			"budgets_expired", result.Budgets.Expired,
		)
	}

	validator.Register()

	router := server.NewRouter(svc, server.Options{
		TokenTTL:       appConfig.JWTExpirationDur,
		PipelineAPIKey: appConfig.PipelineAPIKey,
		Swagger:        true,
	})

	log.Infow("starting PocketLedger API",
		"port", appConfig.Port,
		"store", appConfig.StoreDriver,
		"lock_enabled", lockService.Enabled(),
	)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
