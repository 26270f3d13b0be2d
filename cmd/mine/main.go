// Batch mining entrypoint. An external scheduler (cron) runs this binary
// on its own cadence; it performs one full pass and exits.
package main

import (
	"context"
	"log"

	"activity-insights-be/internal/bootstrap"
	"activity-insights-be/internal/config"
	"activity-insights-be/pkg/database"
)

func main() {
	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	summary, err := container.MiningService.MineAllUsers(context.Background())
	if err != nil {
		log.Fatalf("Mining batch failed: %v", err)
	}

	log.Printf("Mining batch done: %d users processed, %d failed, %d patterns stored",
		summary.UsersProcessed, summary.UsersFailed, summary.PatternsStored)
}
