package main

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"pharm-graph/config"
	"pharm-graph/services"
	"pharm-graph/storage"
)

func main() {
	logging, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logging.Sync()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("Config load error", zap.Error(err))
	}

	pipeline := services.NewPipeline(cfg, logging)

	if cfg.S3Upload {
		s3Client, err := storage.NewS3Client(context.Background(), cfg)
		if err != nil {
			logging.Fatal("S3 client creation failed", zap.Error(err))
		}
		pipeline.S3Client = s3Client
	}

	// Ohne CRON_SCHEDULE läuft der Export genau einmal.
	if cfg.CronSchedule == "" {
		if err := pipeline.Run(context.Background()); err != nil {
			logging.Fatal("Export fehlgeschlagen", zap.Error(err))
		}
		return
	}

	logging.Info("Starte geplante Läufe", zap.String("schedule", cfg.CronSchedule))
	cronScheduler := cron.New()
	_, err = cronScheduler.AddFunc(cfg.CronSchedule, func() {
		logging.Info("Running scheduled export job...")
		if err := pipeline.Run(context.Background()); err != nil {
			logging.Error("Cron job failed", zap.Error(err))
		} else {
			logging.Info("Cron job completed")
		}
	})
	if err != nil {
		logging.Fatal("Ungültiger CRON_SCHEDULE", zap.Error(err))
	}
	cronScheduler.Start()
	select {}
}
