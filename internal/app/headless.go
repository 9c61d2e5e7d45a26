package app

import (
	"math/rand"

	"sort-visualizer/internal/config"
	"sort-visualizer/internal/controllers"
	"sort-visualizer/internal/logger"
	"sort-visualizer/internal/models"
	"sort-visualizer/internal/uithread"
	"sort-visualizer/internal/views/headless"
)

// RunHeadless sorts once without a window. The calling goroutine becomes the
// UI thread. A signal cancels the sort the same way closing the window does.
func RunHeadless(cfg config.Config, log logger.Logger) error {
	array := models.NewSharedArray(cfg.ArraySize, rand.New(rand.NewSource(cfg.SeedOrNow())))

	loop := uithread.NewLoop()
	controller := controllers.NewMainController(array, loop, log, controllers.Options{
		RefreshInterval: cfg.RefreshInterval.Duration,
		CloseWhenDone:   true,
	})
	view := headless.NewView(array, cfg.GridColumns, cfg.GridWidth, cfg.GridHeight, log)
	controller.SetMainView(view)
	controller.SetWindow(view)

	manager := setupGracefulShutdown(controller, log)
	manager.Listen()

	log.Info("Application", "headless run starting", map[string]interface{}{
		"elements": cfg.ArraySize,
	})

	controller.Start()
	loop.Do(view.PressStart)

	go func() {
		<-view.Done()
		loop.Stop()
	}()
	loop.Run()

	log.Info("Application", "headless run finished", map[string]interface{}{
		"sorted": array.IsSorted(),
		"frames": view.Frames(),
	})
	return nil
}
