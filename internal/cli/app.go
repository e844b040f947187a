// Package cli wires configuration, logging and scenes for attachctl commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bnema/attachprop/internal/cli/styles"
	"github.com/bnema/attachprop/internal/config"
	"github.com/bnema/attachprop/internal/logging"
	"github.com/bnema/attachprop/internal/scene"
	"github.com/bnema/attachprop/pkg/attached"
)

// ErrNoScene is returned when neither --scene nor cli.default_scene is set.
var ErrNoScene = errors.New("no scene file given (use --scene or set cli.default_scene)")

// Options configures NewApp.
type Options struct {
	// ConfigFile overrides the config file search.
	ConfigFile string
	// LogLevel overrides logging.level when non-empty.
	LogLevel string
	// LogOutput receives log lines. Defaults to stderr.
	LogOutput io.Writer
}

// App holds CLI dependencies.
type App struct {
	Config *config.Config
	Theme  *styles.Theme

	ctx     context.Context
	manager *config.Manager
}

// NewApp loads configuration and builds the logger.
func NewApp(opts Options) (*App, error) {
	var managerOpts []config.ManagerOption
	if opts.ConfigFile != "" {
		managerOpts = append(managerOpts, config.WithConfigFile(opts.ConfigFile))
	}

	mgr, err := config.NewManager(managerOpts...)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	level := cfg.Logging.Level
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	out := opts.LogOutput
	if out == nil {
		out = os.Stderr
	}
	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
		Output:     out,
	})

	ctx := logging.WithContext(context.Background(), logger)
	ctx = logging.WithComponent(ctx, "attachctl")
	logging.FromContext(ctx).Debug().
		Str("config_file", mgr.ConfigFileUsed()).
		Str("level", level).
		Msg("attachctl initialized")

	return &App{
		Config:  cfg,
		Theme:   styles.NewTheme(cfg),
		ctx:     ctx,
		manager: mgr,
	}, nil
}

// Ctx returns the context carrying the logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// WatchConfig calls fn with the new config each time the config file is
// rewritten. It does nothing when no config file exists.
func (a *App) WatchConfig(fn func(*config.Config)) error {
	path := a.manager.ConfigFileUsed()
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	a.manager.OnConfigChange(fn)
	if err := a.manager.Watch(); err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	logging.FromContext(a.ctx).Debug().
		Str("config_file", a.manager.ConfigFileUsed()).
		Msg("watching config file")
	return nil
}

// NewStore creates a store tuned from config.
func (a *App) NewStore() *attached.Store {
	return attached.NewStore(
		attached.WithSweepEvery(a.Config.Store.SweepEvery),
		attached.WithStoreLogger(*logging.FromContext(a.ctx)),
	)
}

// LoadScene loads and builds the scene at path, falling back to
// cli.default_scene.
func (a *App) LoadScene(path string) (*scene.Scene, error) {
	if path == "" {
		path = a.Config.CLI.DefaultScene
	}
	if path == "" {
		return nil, ErrNoScene
	}

	f, err := scene.Load(path)
	if err != nil {
		return nil, err
	}
	return scene.Build(a.ctx, f, attached.WithStore(a.NewStore()))
}
