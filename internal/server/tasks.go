package server

import (
	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/repositories"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/config"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/logger"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/schedule"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/storage"
)

// registerScheduledTasks sets up the recurring maintenance jobs. Call
// before schedule.Start.
func registerScheduledTasks() {
	products := repositories.NewProductRepository()

	// Keep the featured-products cache warm so the home page never
	// pays the cold query.
	schedule.Every(5).Minutes().
		Name("warm-featured-cache").
		WithoutOverlapping().
		Run(func() {
			if _, err := products.Featured(8); err != nil {
				logger.Warn("tasks: warm featured cache", "error", err)
			}
		})

	// Nightly count of persisted session snapshots, purely for the logs.
	schedule.Daily().
		Name("count-session-snapshots").
		Run(func() {
			names, err := storage.List(config.SessionSlot())
			if err != nil {
				logger.Warn("tasks: list session snapshots", "error", err)
				return
			}
			logger.Info("tasks: session snapshots on disk", "count", len(names))
		})
}
