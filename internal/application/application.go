package application

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/uiharness/internal/browser"
	"github.com/eugenenazirov/uiharness/internal/config"
)

// Output formats accepted by Render.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Session is the part of a browser session the application drives.
type Session interface {
	Visit(url string) (string, error)
	Close() error
}

// Launcher starts a browser session for the given settings.
type Launcher func(settings config.Settings, logger *zap.Logger) (Session, error)

// Option configures an App.
type Option func(*App)

// WithLauncher overrides the browser launcher (primarily for tests).
func WithLauncher(launch Launcher) Option {
	return func(a *App) {
		a.launch = launch
	}
}

// App encapsulates the resolved settings and the collaborators built from them.
type App struct {
	settings config.Settings
	logger   *zap.Logger
	launch   Launcher
}

// Snapshot is the resolved settings together with the derived driver options.
type Snapshot struct {
	Settings config.Settings       `json:"settings" yaml:"settings"`
	Launch   config.LaunchOptions  `json:"launch_options" yaml:"launch_options"`
	Context  config.ContextOptions `json:"context_options" yaml:"context_options"`
}

// New initializes the application from already resolved settings.
func New(settings config.Settings, logger *zap.Logger, opts ...Option) *App {
	app := &App{
		settings: settings,
		logger:   logger,
		launch:   launchPlaywright,
	}
	for _, opt := range opts {
		opt(app)
	}
	return app
}

func launchPlaywright(settings config.Settings, logger *zap.Logger) (Session, error) {
	session, err := browser.Launch(settings, logger)
	if err != nil {
		return nil, err
	}
	return session, nil
}

// Settings returns the resolved settings.
func (a *App) Settings() config.Settings {
	return a.settings
}

// Snapshot returns the settings and the options derived from them.
func (a *App) Snapshot() Snapshot {
	return Snapshot{
		Settings: a.settings,
		Launch:   a.settings.LaunchOptions(),
		Context:  a.settings.ContextOptions(),
	}
}

// Render writes the snapshot to w in the requested format.
func (a *App) Render(w io.Writer, format string) error {
	snapshot := a.Snapshot()

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snapshot); err != nil {
			return fmt.Errorf("encode JSON: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snapshot); err != nil {
			return fmt.Errorf("encode YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("flush YAML: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
	return nil
}

// Smoke launches a browser session, opens the base UI URL and closes the
// session again. It returns the page title. Cancelling ctx abandons the visit.
func (a *App) Smoke(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	session, err := a.launch(a.settings, a.logger)
	if err != nil {
		return "", fmt.Errorf("launch browser: %w", err)
	}
	closeSession := func() {
		if err := session.Close(); err != nil {
			a.logger.Warn("closing browser session failed", zap.Error(err))
		}
	}

	type visitResult struct {
		title string
		err   error
	}
	done := make(chan visitResult, 1)
	go func() {
		title, err := session.Visit(a.settings.BaseUIURL)
		done <- visitResult{title: title, err: err}
	}()

	var title string
	select {
	case <-ctx.Done():
		// Closing the session aborts the pending navigation; wait for it to unwind.
		closeSession()
		<-done
		return "", ctx.Err()
	case res := <-done:
		closeSession()
		if res.err != nil {
			a.logger.Error("smoke check failed", zap.String("url", a.settings.BaseUIURL), zap.Error(res.err))
			return "", res.err
		}
		title = res.title
	}

	a.logger.Info("smoke check passed", zap.String("url", a.settings.BaseUIURL), zap.String("title", title))
	return title, nil
}
