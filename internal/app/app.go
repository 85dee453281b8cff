package app

import (
	"fmt"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"

	"github.com/shhac/whoops/internal/logging"
	"github.com/shhac/whoops/internal/model"
	"github.com/shhac/whoops/internal/report"
	"github.com/shhac/whoops/internal/storage"
)

// Version is set at build time via ldflags:
//
//	go build -ldflags "-X github.com/shhac/whoops/internal/app.Version=1.2.3"
var Version = "dev"

// App is the main application coordinator, responsible for wiring
// together all components and managing their lifecycle.
type App struct {
	fyneApp  fyne.App
	window   fyne.Window
	config   *Config
	logger   *slog.Logger
	storage  storage.Repository
	recorder *report.Recorder
	state    *model.ViewerState
}

// New creates a new App instance with the given configuration.
// fyneApp may be nil for headless commands.
func New(fyneApp fyne.App, cfg *Config) (*App, error) {
	logger, err := logging.InitLogger("whoops", logging.Options{Debug: cfg.Debug, Dir: cfg.LogDir})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return NewWithLogger(fyneApp, cfg, logger)
}

// NewWithLogger is New with a caller-supplied logger.
func NewWithLogger(fyneApp fyne.App, cfg *Config, logger *slog.Logger) (*App, error) {
	logger.Info("initializing whoops",
		slog.Bool("debug", cfg.Debug),
		slog.String("storage_path", cfg.StoragePath),
	)

	storagePath := cfg.StoragePath
	if storagePath == "" {
		var err error
		storagePath, err = storage.DefaultStoragePath()
		if err != nil {
			return nil, fmt.Errorf("failed to determine storage path: %w", err)
		}
	}

	repo := storage.NewJSONRepository(storagePath, logger)
	recorder := report.NewRecorder(report.NewCapturer("whoops", Version), repo, logger)

	logger.Info("application initialized successfully")

	return &App{
		fyneApp:  fyneApp,
		config:   cfg,
		logger:   logger,
		storage:  repo,
		recorder: recorder,
	}, nil
}

// Run displays the window and runs the Fyne event loop (blocking).
func (a *App) Run(window fyne.Window) {
	a.window = window
	a.logger.Info("starting application")
	a.window.ShowAndRun()
}

// Reload reads reports from storage into the viewer state.
func (a *App) Reload() error {
	reports, err := a.storage.ListReports(a.config.ListLimit)
	if err != nil {
		return fmt.Errorf("list reports: %w", err)
	}
	if err := a.State().SetReports(reports); err != nil {
		return fmt.Errorf("update report list: %w", err)
	}
	a.logger.Debug("reloaded reports", slog.Int("count", len(reports)))
	return nil
}

// DeleteReport removes one report and reloads the list.
func (a *App) DeleteReport(id string) error {
	if err := a.storage.DeleteReport(id); err != nil {
		return err
	}
	a.logger.Info("deleted report", slog.String("id", id))
	return a.Reload()
}

// ClearReports removes every report and reloads the list.
func (a *App) ClearReports() error {
	if err := a.storage.ClearReports(); err != nil {
		return err
	}
	a.logger.Info("cleared reports")
	return a.Reload()
}

// Config returns the active configuration.
func (a *App) Config() *Config {
	return a.config
}

// AnimationDuration returns the configured card animation duration.
func (a *App) AnimationDuration() time.Duration {
	return a.config.AnimationDuration
}

// Version returns the build version.
func (a *App) Version() string {
	return Version
}

// State returns the viewer state for use by UI components. It is created
// on first use; updating its bindings requires a running fyne app, which
// headless commands never start.
func (a *App) State() *model.ViewerState {
	if a.state == nil {
		a.state = model.NewViewerState()
	}
	return a.state
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Storage returns the storage repository.
func (a *App) Storage() storage.Repository {
	return a.storage
}

// Recorder returns the report recorder.
func (a *App) Recorder() *report.Recorder {
	return a.recorder
}

// FyneApp returns the underlying Fyne application instance.
func (a *App) FyneApp() fyne.App {
	return a.fyneApp
}
