// Package browser drives Playwright with the options derived from the
// harness settings.
package browser

import (
	"github.com/playwright-community/playwright-go"

	"github.com/eugenenazirov/uiharness/internal/config"
)

// LaunchOptions converts harness launch options into Playwright's form.
func LaunchOptions(opts config.LaunchOptions) playwright.BrowserTypeLaunchOptions {
	launch := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
		SlowMo:   playwright.Float(float64(opts.SlowMo)),
	}
	if len(opts.Args) > 0 {
		launch.Args = append([]string(nil), opts.Args...)
	}
	return launch
}

// ContextOptions converts harness context options into Playwright's form.
// Tracing has no context option in Playwright; Session starts it explicitly.
func ContextOptions(opts config.ContextOptions) playwright.BrowserNewContextOptions {
	ctx := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  opts.Viewport.Width,
			Height: opts.Viewport.Height,
		},
		IgnoreHttpsErrors: playwright.Bool(opts.IgnoreHTTPSErrors),
	}
	if opts.RecordVideoDir != "" {
		ctx.RecordVideo = &playwright.RecordVideo{Dir: opts.RecordVideoDir}
	}
	return ctx
}
