// Package app provides the dependency injection container for the application.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/runoshun/timers/internal/domain"
	"github.com/runoshun/timers/internal/engine"
	"github.com/runoshun/timers/internal/infra/config"
	"github.com/runoshun/timers/internal/infra/executor"
	"github.com/runoshun/timers/internal/infra/export"
	"github.com/runoshun/timers/internal/infra/logging"
	"github.com/runoshun/timers/internal/infra/notify"
	"github.com/runoshun/timers/internal/infra/prefs"
	"github.com/runoshun/timers/internal/infra/statefile"
	"github.com/runoshun/timers/internal/store"
	"github.com/runoshun/timers/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	DataDir    string // Directory holding config, state, preferences and logs
	StatePath  string // Path to timers.json
	PrefsPath  string // Path to prefs.yaml
	ExportsDir string // Where history exports are written
}

// newConfig derives the paths for a data directory.
func newConfig(dataDir string, appConfig *domain.Config) Config {
	exportsDir := domain.ExportsDir(dataDir)
	if appConfig.Export.Dir != "" {
		exportsDir = appConfig.Export.Dir
	}
	return Config{
		DataDir:    dataDir,
		StatePath:  domain.StatePath(dataDir),
		PrefsPath:  domain.PrefsPath(dataDir),
		ExportsDir: exportsDir,
	}
}

// DefaultDataDir returns $XDG_CONFIG_HOME/timers, or ~/.config/timers.
func DefaultDataDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.DataDir(configHome), nil
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Clock         domain.Clock
	Prefs         domain.PreferenceStore
	Exporter      domain.Exporter
	Encoder       domain.HistoryEncoder
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	TimerLog      domain.Logger
	Executor      domain.CommandExecutor

	// Pointer fields
	Store         *store.Store
	Notifications *notify.Broadcaster
	AppConfig     *domain.Config
	Logger        *slog.Logger
	closers       []func() error
	commands      []*notify.Command

	// Configuration
	Config Config
}

// New creates a new Container for dataDir. An empty dataDir uses DefaultDataDir.
// A state file that cannot be read is logged and replaced by an empty state.
func New(dataDir string) (*Container, error) {
	if dataDir == "" {
		dir, err := DefaultDataDir()
		if err != nil {
			return nil, err
		}
		dataDir = dir
	}

	// Create logger
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	configLoader := config.NewLoader(dataDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := newConfig(dataDir, appConfig)

	fileLogger := logging.New(dataDir, logging.ParseLevel(appConfig.Log.Level))
	clock := domain.RealClock{}

	repo := statefile.New(cfg.StatePath)
	initial, err := repo.Load()
	if err != nil {
		logger.Warn("state file unreadable, starting empty", "path", cfg.StatePath, "error", err)
		fileLogger.Warn("", "app", fmt.Sprintf("load state: %v", err))
		initial = domain.State{}
	}

	s := store.New(initial, clock,
		store.WithRepository(repo),
		store.WithLogger(fileLogger),
	)

	c := &Container{
		Clock:         clock,
		Prefs:         prefs.New(cfg.PrefsPath),
		Exporter:      export.NewFileExporter(cfg.ExportsDir),
		Encoder:       export.Codec{},
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(dataDir),
		TimerLog:      fileLogger,
		Executor:      executor.NewClient(),
		Store:         s,
		Notifications: notify.NewBroadcaster(),
		AppConfig:     appConfig,
		Logger:        logger,
		Config:        cfg,
	}
	c.closers = append(c.closers, fileLogger.Close)
	return c, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, s *store.Store, clock domain.Clock, prefStore domain.PreferenceStore, exporter domain.Exporter, logger *slog.Logger) *Container {
	return &Container{
		Clock:         clock,
		Prefs:         prefStore,
		Exporter:      exporter,
		Encoder:       export.Codec{},
		ConfigLoader:  config.NewLoader(cfg.DataDir),
		ConfigManager: config.NewManager(cfg.DataDir),
		TimerLog:      domain.NopLogger{},
		Executor:      executor.NewClient(),
		Store:         s,
		Notifications: notify.NewBroadcaster(),
		AppConfig:     domain.NewDefaultConfig(),
		Logger:        logger,
		Config:        cfg,
	}
}

// Close waits for running notification commands, then releases the store
// subscribers, notification channels and log file.
func (c *Container) Close() error {
	for _, cmd := range c.commands {
		cmd.Wait()
	}
	c.Store.Close()
	c.Notifications.Close()

	var errs []error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewEngine returns a countdown engine attached to the store. Notifications
// go to the log, to Notifications subscribers, to the configured notify
// command and to every extra notifier. The caller starts and stops it.
func (c *Container) NewEngine(extra ...domain.Notifier) *engine.Engine {
	notifiers := notify.Multi{notify.NewLog(c.TimerLog), c.Notifications}
	if len(c.AppConfig.Notify.Command) > 0 {
		cmd := notify.NewCommand(c.Executor, c.AppConfig.Notify.Command, c.TimerLog)
		c.commands = append(c.commands, cmd)
		notifiers = append(notifiers, cmd)
	}
	notifiers = append(notifiers, extra...)
	return engine.New(c.Store, notifiers, c.TimerLog, c.Clock, engine.Config{
		TickInterval: c.AppConfig.Engine.TickInterval,
	})
}

// UseCase factory methods

// AddTimerUseCase returns a new AddTimer use case.
func (c *Container) AddTimerUseCase() *usecase.AddTimer {
	return usecase.NewAddTimer(c.Store, c.Clock, c.TimerLog)
}

// ControlTimerUseCase returns a new ControlTimer use case.
func (c *Container) ControlTimerUseCase() *usecase.ControlTimer {
	return usecase.NewControlTimer(c.Store, c.TimerLog)
}

// BulkControlUseCase returns a new BulkControl use case.
func (c *Container) BulkControlUseCase() *usecase.BulkControl {
	return usecase.NewBulkControl(c.Store, c.TimerLog)
}

// ListTimersUseCase returns a new ListTimers use case.
func (c *Container) ListTimersUseCase() *usecase.ListTimers {
	return usecase.NewListTimers(c.Store)
}

// ShowHistoryUseCase returns a new ShowHistory use case.
func (c *Container) ShowHistoryUseCase() *usecase.ShowHistory {
	return usecase.NewShowHistory(c.Store)
}

// ExportHistoryUseCase returns a new ExportHistory use case using exporter,
// or the container's exporter when nil.
func (c *Container) ExportHistoryUseCase(exporter domain.Exporter) *usecase.ExportHistory {
	if exporter == nil {
		exporter = c.Exporter
	}
	return usecase.NewExportHistory(c.Store, c.Encoder, exporter, c.TimerLog)
}

// ThemeUseCase returns a new Theme use case.
func (c *Container) ThemeUseCase() *usecase.Theme {
	return usecase.NewTheme(c.Prefs, c.AppConfig.UI.Theme)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
