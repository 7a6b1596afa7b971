package config

const (
	viewportWidth  = 1280
	viewportHeight = 720

	// VideoDir and TraceDir receive recordings when enabled.
	VideoDir = "test-results/videos"
	TraceDir = "test-results/traces"
)

// headlessArgs stabilise Chromium on CI runners without a display.
var headlessArgs = []string{"--disable-gpu", "--no-sandbox"}

// LaunchOptions are passed to the browser driver when starting a browser.
type LaunchOptions struct {
	Headless bool     `json:"headless" yaml:"headless"`
	SlowMo   int      `json:"slow_mo" yaml:"slow_mo"`
	Args     []string `json:"args,omitempty" yaml:"args,omitempty"`
}

// Viewport is the page size in CSS pixels.
type Viewport struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// ContextOptions are passed to the browser driver when opening a context.
type ContextOptions struct {
	Viewport          Viewport `json:"viewport" yaml:"viewport"`
	IgnoreHTTPSErrors bool     `json:"ignore_https_errors" yaml:"ignore_https_errors"`
	RecordVideoDir    string   `json:"record_video_dir,omitempty" yaml:"record_video_dir,omitempty"`
	RecordTraceDir    string   `json:"record_trace_dir,omitempty" yaml:"record_trace_dir,omitempty"`
}

// LaunchOptions derives the browser launch options. Args is set only for
// headless runs.
func (s Settings) LaunchOptions() LaunchOptions {
	opts := LaunchOptions{
		Headless: s.Headless,
		SlowMo:   s.SlowMo,
	}
	if s.Headless {
		opts.Args = append([]string(nil), headlessArgs...)
	}
	return opts
}

// ContextOptions derives the browser context options.
func (s Settings) ContextOptions() ContextOptions {
	opts := ContextOptions{
		Viewport:          Viewport{Width: viewportWidth, Height: viewportHeight},
		IgnoreHTTPSErrors: true,
	}
	if s.RecordVideo {
		opts.RecordVideoDir = VideoDir
	}
	if s.RecordTrace {
		opts.RecordTraceDir = TraceDir
	}
	return opts
}
