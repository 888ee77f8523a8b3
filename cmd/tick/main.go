// Command tick calls the scheduled-task endpoint once, or on an interval
// when TICK_INTERVAL is set.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pocketledger/internal/client"
	"pocketledger/internal/config"
	"pocketledger/internal/logger"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()
	log := logger.Named("tick")

	cfg, err := config.LoadTick()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	pipeline := client.NewPipelineClient(cfg.APIURL, cfg.PipelineAPIKey, &http.Client{Timeout: cfg.RequestTimeout})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Interval == 0 {
		if err := tick(ctx, pipeline); err != nil {
			stop()
			logger.Sync()
			os.Exit(1)
		}
		return
	}

	log.Infow("tick loop started", "interval", cfg.Interval.String(), "api_url", cfg.APIURL)
	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()
	for {
		_ = tick(ctx, pipeline)
		select {
		case <-ctx.Done():
			log.Info("tick loop stopped")
			return
		case <-ticker.C:
		}
	}
}

// tick runs one pass and logs its outcome.
func tick(ctx context.Context, pipeline *client.PipelineClient) error {
	log := logger.Named("tick")
	start := time.Now()

	result, err := pipeline.RunScheduledTasks(ctx)
	if err != nil {
		log.Errorw("scheduled tasks failed", "error", err)
		return err
	}

	log.Infow("scheduled tasks completed",
		"autopays_processed", result.Autopays.Processed,
		"autopays_executed", result.Autopays.Executed,
		"autopays_deactivated", result.Autopays.Deactivated,
		"autopays_failed", result.Autopays.Failed,
		"budgets_reset", result.Budgets.Reset,
		"budgets_expired", result.Budgets.Expired,
		"duration", time.Since(start).String(),
	)
	if result.Autopays.Failed > 0 {
		log.Warnw("some autopays failed; see notifications", "failed", result.Autopays.Failed)
	}
	return nil
}
