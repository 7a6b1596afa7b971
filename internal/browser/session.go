package browser

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"

	"github.com/eugenenazirov/uiharness/internal/config"
)

// ErrUnknownBrowser is returned when BROWSER names an engine Playwright does not ship.
var ErrUnknownBrowser = errors.New("unknown browser")

// Session owns a Playwright driver, one browser and one context.
type Session struct {
	settings config.Settings
	logger   *zap.Logger

	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext

	traceDir string
}

// Launch starts the browser named by settings.Browser and opens a context
// configured from the settings.
func Launch(settings config.Settings, logger *zap.Logger) (*Session, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}

	browserType, err := selectBrowserType(pw, settings.Browser)
	if err != nil {
		_ = pw.Stop()
		return nil, err
	}

	browser, err := browserType.Launch(LaunchOptions(settings.LaunchOptions()))
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("launch %s: %w", settings.Browser, err)
	}

	contextOpts := settings.ContextOptions()
	browserCtx, err := browser.NewContext(ContextOptions(contextOpts))
	if err != nil {
		_ = browser.Close()
		_ = pw.Stop()
		return nil, fmt.Errorf("create context: %w", err)
	}
	browserCtx.SetDefaultTimeout(float64(settings.DefaultTimeout))
	browserCtx.SetDefaultNavigationTimeout(float64(settings.NavigationTimeout))

	s := &Session{
		settings: settings,
		logger:   logger,
		pw:       pw,
		browser:  browser,
		context:  browserCtx,
	}

	if contextOpts.RecordTraceDir != "" {
		err := browserCtx.Tracing().Start(playwright.TracingStartOptions{
			Screenshots: playwright.Bool(true),
			Snapshots:   playwright.Bool(true),
		})
		if err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("start tracing: %w", err)
		}
		s.traceDir = contextOpts.RecordTraceDir
	}

	logger.Info("browser session started",
		zap.String("profile", settings.Profile.String()),
		zap.String("browser", settings.Browser),
		zap.Bool("headless", settings.Headless),
	)
	return s, nil
}

// Visit opens url in a new page and returns its title. A failed navigation
// is captured as a screenshot when the settings ask for it.
func (s *Session) Visit(url string) (string, error) {
	page, err := s.context.NewPage()
	if err != nil {
		return "", fmt.Errorf("create page: %w", err)
	}
	defer func() {
		_ = page.Close()
	}()

	if _, err := page.Goto(url); err != nil {
		s.captureFailure(page, url)
		return "", fmt.Errorf("navigate to %s: %w", url, err)
	}

	title, err := page.Title()
	if err != nil {
		return "", fmt.Errorf("read title: %w", err)
	}
	return title, nil
}

func (s *Session) captureFailure(page playwright.Page, name string) {
	if !s.settings.ScreenshotOnFailure {
		return
	}
	if err := os.MkdirAll(s.settings.ScreenshotsDir, 0o755); err != nil {
		s.logger.Warn("create screenshots dir failed", zap.Error(err))
		return
	}

	path := screenshotPath(s.settings.ScreenshotsDir, name, time.Now())
	if _, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	}); err != nil {
		s.logger.Warn("failure screenshot failed", zap.Error(err))
		return
	}
	s.logger.Info("failure screenshot saved", zap.String("path", path))
}

// Close stops tracing, if enabled, and releases the context, browser and driver.
func (s *Session) Close() error {
	var errs []error

	if s.traceDir != "" {
		if err := os.MkdirAll(s.traceDir, 0o755); err != nil {
			errs = append(errs, fmt.Errorf("create trace dir: %w", err))
		} else if err := s.context.Tracing().Stop(tracePath(s.traceDir, time.Now())); err != nil {
			errs = append(errs, fmt.Errorf("stop tracing: %w", err))
		}
	}
	if err := s.context.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close context: %w", err))
	}
	if err := s.browser.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close browser: %w", err))
	}
	if err := s.pw.Stop(); err != nil {
		errs = append(errs, fmt.Errorf("stop playwright: %w", err))
	}
	return errors.Join(errs...)
}

func selectBrowserType(pw *playwright.Playwright, name string) (playwright.BrowserType, error) {
	switch strings.ToLower(name) {
	case "chromium", "chrome":
		return pw.Chromium, nil
	case "firefox":
		return pw.Firefox, nil
	case "webkit":
		return pw.WebKit, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBrowser, name)
	}
}

const fileTimeFormat = "20060102T150405.000"

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// screenshotPath builds a unique, filesystem-safe PNG path for name.
func screenshotPath(dir, name string, at time.Time) string {
	base := strings.Trim(unsafeFileChars.ReplaceAllString(name, "_"), "_")
	if base == "" {
		base = "page"
	}
	return filepath.Join(dir, fmt.Sprintf("%s-%s.png", base, at.UTC().Format(fileTimeFormat)))
}

// tracePath builds a per-run trace archive path so runs do not overwrite each other.
func tracePath(dir string, at time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("trace-%s.zip", at.UTC().Format(fileTimeFormat)))
}
