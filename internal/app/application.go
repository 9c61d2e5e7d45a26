package app

import (
	"math/rand"
	"runtime"

	"sort-visualizer/internal/config"
	"sort-visualizer/internal/controllers"
	"sort-visualizer/internal/logger"
	"sort-visualizer/internal/models"
	"sort-visualizer/internal/shutdown"
	"sort-visualizer/internal/uithread"
	"sort-visualizer/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Bubble Sort Visualizer"
	AppID      = "com.example.sortvisualizer"
	AppVersion = "1.0.0"
)

// Application wires the Fyne window to the sorting controller
type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	controller *controllers.MainController
	view       *views.MainView
	shutdown   *shutdown.Manager
	logger     logger.Logger
}

// NewApplication builds the window, the shared array and the controller
func NewApplication(cfg config.Config, log logger.Logger) (*Application, error) {
	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.SetMaster()

	array := models.NewSharedArray(cfg.ArraySize, rand.New(rand.NewSource(cfg.SeedOrNow())))

	controller := controllers.NewMainController(array, uithread.FyneDispatcher{}, log, controllers.Options{
		RefreshInterval: cfg.RefreshInterval.Duration,
		CloseWhenDone:   cfg.CloseWhenDone,
	})
	view := views.NewMainView(window, array, views.Layout{
		GridColumns:   cfg.GridColumns,
		GridWidth:     float32(cfg.GridWidth),
		GridHeight:    float32(cfg.GridHeight),
		ProgressRange: cfg.ProgressRange,
	})
	controller.SetMainView(view)
	controller.SetWindow(view)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		controller: controller,
		view:       view,
		shutdown:   setupGracefulShutdown(controller, log),
		logger:     log,
	}
	application.setupWindowEvents()

	log.Info("Application", "application initialized", map[string]interface{}{
		"version":          AppVersion,
		"elements":         cfg.ArraySize,
		"grid_columns":     cfg.GridColumns,
		"refresh_interval": cfg.RefreshInterval.String(),
		"go_version":       runtime.Version(),
	})
	return application, nil
}

// setupWindowEvents routes the close button through the controller, which
// may defer destruction until the worker has stopped.
func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "window close requested", nil)
		a.controller.RequestClose()
	})

	// the notification pump and repaint timer need a running event loop
	a.fyneApp.Lifecycle().SetOnStarted(func() {
		a.controller.Start()
	})
}

// Run shows the window and blocks until it is destroyed
func (a *Application) Run() error {
	a.shutdown.Listen()
	a.window.ShowAndRun()

	a.logger.Info("Application", "application terminated", nil)
	return nil
}
