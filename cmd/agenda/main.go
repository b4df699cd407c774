package main

import (
	"log"
	"runtime"

	"agenda/internal/config"
	"agenda/internal/controllers"
	"agenda/internal/logger"
	"agenda/internal/models"
	"agenda/internal/services"
	"agenda/internal/shutdown"
	"agenda/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

// Application owns every component for the life of the process
type Application struct {
	// Core components
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	config  config.Config

	// MVC Components
	controller *controllers.MainController
	view       *views.MainView

	// Services
	taskService *services.TaskService
	scheduler   *services.ReminderScheduler

	// Models/Repositories
	taskRepo *models.TaskRepository

	// Lifecycle management
	shutdown   *shutdown.Manager
	stopSignal func()
}

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Printf("Ignoring %s: %v", config.EnvFile, err)
	}

	application, err := NewApplication(cfg)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}
}

// NewApplication creates and initializes the application using dependency injection
func NewApplication(cfg config.Config) (*Application, error) {
	app.SetMetadata(fyne.AppMetadata{
		ID:      config.AppID,
		Name:    config.AppName,
		Version: config.AppVersion,
		Release: true,
	})
	fyneApp := app.NewWithID(config.AppID)

	window := fyneApp.NewWindow(config.AppName)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	appLogger := newLogger(cfg)
	appLogger.Info("Application", "starting", map[string]interface{}{
		"version":        config.AppVersion,
		"go_version":     runtime.Version(),
		"check_interval": cfg.CheckInterval.String(),
		"log_level":      cfg.LogLevel,
	})

	// Initialize repositories/models
	taskRepo := models.NewTaskRepository()

	// Initialize services; reminder scans run on the UI thread
	taskService := services.NewTaskService(taskRepo, appLogger)
	scheduler := services.NewReminderScheduler(taskRepo, cfg.CheckInterval, fyne.Do, appLogger)

	// Initialize MVC components
	mainController := controllers.NewMainController(taskService, scheduler, appLogger)
	mainView := views.NewMainView(window)
	mainController.SetMainView(mainView)
	mainController.SetQuitHandler(fyneApp.Quit)

	shutdownManager := shutdown.NewManager(appLogger)
	shutdownManager.Register("reminder scheduler", scheduler)
	shutdownManager.Register("controller", mainController)

	application := &Application{
		fyneApp:     fyneApp,
		window:      window,
		logger:      appLogger,
		config:      cfg,
		controller:  mainController,
		view:        mainView,
		taskService: taskService,
		scheduler:   scheduler,
		taskRepo:    taskRepo,
		shutdown:    shutdownManager,
	}

	application.setupWindowEvents()

	return application, nil
}

// Run starts the reminder timer and blocks in the Fyne event loop
func (app *Application) Run() error {
	if err := app.scheduler.Start(); err != nil {
		return err
	}

	app.stopSignal = app.shutdown.Listen(func() {
		fyne.Do(app.fyneApp.Quit)
	})
	defer app.stopSignal()

	app.view.Show()
	app.logger.Info("Application", "window shown", nil)

	app.fyneApp.Run()

	app.shutdown.Shutdown()
	app.logger.Info("Application", "terminated", nil)
	return nil
}

// setupWindowEvents stops the timer before the master window goes away
func (app *Application) setupWindowEvents() {
	app.window.SetCloseIntercept(func() {
		app.logger.Info("Application", "window close requested", nil)
		app.shutdown.Shutdown()
		app.window.Close()
	})
}

func newLogger(cfg config.Config) logger.Logger {
	level := logger.ParseLevel(cfg.LogLevel)
	if cfg.JSONLogs {
		return logger.NewJSONLogger(level)
	}
	return logger.NewConsoleLogger(level)
}
