package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/uiharness/internal/application"
	"github.com/eugenenazirov/uiharness/internal/config"
	"github.com/eugenenazirov/uiharness/internal/logging"
)

var (
	signalNotify = signal.Notify
	signalStop   = signal.Stop
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "harness: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	kingpinApp := kingpin.New("harness", "UI test harness - resolves browser settings and runs a smoke check")
	envFile := kingpinApp.Flag("env-file", "Path to the dotenv file (default: config/.env in the project root)").String()
	profile := kingpinApp.Flag("profile", "Profile to use instead of the ENV variable").Enum("development", "production", "testing")

	showCmd := kingpinApp.Command("show", "Print the resolved settings and browser options").Default()
	format := showCmd.Flag("format", "Output format").Default(application.FormatJSON).Enum(application.FormatJSON, application.FormatYAML)

	smokeCmd := kingpinApp.Command("smoke", "Launch the browser and open the base UI URL")

	command, err := kingpinApp.Parse(args)
	if err != nil {
		return err
	}

	if err := loadEnvironment(*envFile); err != nil {
		return err
	}

	settings, err := resolveSettings(*profile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.New(settings.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, ok := logging.ParseLevel(settings.LogLevel); !ok {
		logger.Warn("unknown log level, using info", zap.String("log_level", settings.LogLevel))
	}

	logger.Debug("configuration resolved",
		zap.String("profile", settings.Profile.String()),
		zap.String("browser", settings.Browser),
		zap.String("base_ui_url", settings.BaseUIURL),
	)

	app := application.New(settings, logger)

	switch command {
	case showCmd.FullCommand():
		return app.Render(stdout, *format)
	case smokeCmd.FullCommand():
		ctx, cancel := notifyContext(context.Background())
		defer cancel()

		title, err := app.Smoke(ctx)
		if err != nil {
			return fmt.Errorf("smoke check: %w", err)
		}
		_, err = fmt.Fprintf(stdout, "%s: %s\n", settings.BaseUIURL, title)
		return err
	}
	return nil
}

// loadEnvironment seeds the process environment from path, or from the
// project's default dotenv file when path is empty. An explicitly named file
// must exist.
func loadEnvironment(path string) error {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("environment file: %w", err)
		}
	} else {
		found, err := config.FindEnvFile(config.DefaultEnvFile)
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("locate environment file: %w", err)
		}
		path = found
	}
	return config.LoadEnvironment(path)
}

func resolveSettings(profile string) (config.Settings, error) {
	if profile != "" {
		return config.ResolveProfile(config.ParseKind(profile), nil)
	}
	return config.Resolve(nil)
}

// notifyContext returns a context cancelled on SIGINT or SIGTERM.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	quit := make(chan os.Signal, 1)
	signalNotify(quit, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signalStop(quit)
		select {
		case <-quit:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
