package app

import (
	"time"

	"sort-visualizer/internal/controllers"
	"sort-visualizer/internal/logger"
	"sort-visualizer/internal/shutdown"
)

const shutdownStepTimeout = 15 * time.Second

// setupGracefulShutdown turns SIGINT/SIGTERM into a close request. The
// controller cancels and joins the worker off the UI thread.
func setupGracefulShutdown(controller *controllers.MainController, log logger.Logger) *shutdown.Manager {
	manager := shutdown.NewManager(log, shutdownStepTimeout)
	manager.Register("controller", controller)
	return manager
}
