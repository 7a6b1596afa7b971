package config

const (
	envBrowser             = "BROWSER"
	envHeadless            = "HEADLESS"
	envSlowMo              = "SLOW_MO"
	envTimeout             = "TIMEOUT"
	envNavigationTimeout   = "NAVIGATION_TIMEOUT"
	envBaseUIURL           = "BASE_UI_URL"
	envAPIBaseURL          = "API_BASE_URL"
	envAPITimeout          = "API_TIMEOUT"
	envRecordVideo         = "RECORD_VIDEO"
	envRecordTrace         = "RECORD_TRACE"
	envLogLevel            = "LOG_LEVEL"
	envScreenshotOnFailure = "SCREENSHOT_ON_FAILURE"
	envScreenshotsDir      = "SCREENSHOTS_DIR"
)

const (
	defaultBrowser           = "chromium"
	defaultTimeoutMS         = 30000
	defaultBaseUIURL         = "https://example.com"
	defaultAPIBaseURL        = "https://api.example.com"
	defaultAPITimeoutSeconds = 10
	defaultLogLevel          = "INFO"
	defaultScreenshotsDir    = "test-results/screenshots"

	stagingBaseUIURL  = "https://staging.example.com"
	stagingAPIBaseURL = "https://staging-api.example.com"
)

// Settings is the resolved configuration for one profile. It is a plain value
// and is safe to share between goroutines once resolved.
type Settings struct {
	Profile Kind `json:"profile" yaml:"profile"`

	Browser  string `json:"browser" yaml:"browser"`
	Headless bool   `json:"headless" yaml:"headless"`
	// SlowMo delays each browser operation, in milliseconds.
	SlowMo int `json:"slow_mo" yaml:"slow_mo"`

	// DefaultTimeout and NavigationTimeout are in milliseconds.
	DefaultTimeout    int `json:"default_timeout" yaml:"default_timeout"`
	NavigationTimeout int `json:"navigation_timeout" yaml:"navigation_timeout"`

	BaseUIURL  string `json:"base_ui_url" yaml:"base_ui_url"`
	APIBaseURL string `json:"api_base_url" yaml:"api_base_url"`
	// APITimeout is in seconds.
	APITimeout int `json:"api_timeout" yaml:"api_timeout"`

	RecordVideo bool `json:"record_video" yaml:"record_video"`
	RecordTrace bool `json:"record_trace" yaml:"record_trace"`

	LogLevel string `json:"log_level" yaml:"log_level"`

	ScreenshotOnFailure bool   `json:"screenshot_on_failure" yaml:"screenshot_on_failure"`
	ScreenshotsDir      string `json:"screenshots_dir" yaml:"screenshots_dir"`
}

// Resolve selects the profile named by ENV and resolves it.
func Resolve(lookup LookupFunc) (Settings, error) {
	kind := ParseKind(LookupString(lookup, EnvProfile, ""))
	return ResolveProfile(kind, lookup)
}

// ResolveProfile builds the base settings from the environment and applies
// the overrides of kind on top. The first malformed integer aborts resolution.
func ResolveProfile(kind Kind, lookup LookupFunc) (Settings, error) {
	s, err := resolveBase(lookup)
	if err != nil {
		return Settings{}, err
	}
	s.Profile = kind

	for _, rule := range profileOverrides[kind] {
		rule(&s, lookup)
	}
	return s, nil
}

func resolveBase(lookup LookupFunc) (Settings, error) {
	s := Settings{
		Browser:             LookupString(lookup, envBrowser, defaultBrowser),
		Headless:            LookupBool(lookup, envHeadless, true),
		BaseUIURL:           LookupString(lookup, envBaseUIURL, defaultBaseUIURL),
		APIBaseURL:          LookupString(lookup, envAPIBaseURL, defaultAPIBaseURL),
		RecordVideo:         LookupBool(lookup, envRecordVideo, false),
		RecordTrace:         LookupBool(lookup, envRecordTrace, false),
		LogLevel:            LookupString(lookup, envLogLevel, defaultLogLevel),
		ScreenshotOnFailure: LookupBool(lookup, envScreenshotOnFailure, true),
		ScreenshotsDir:      LookupString(lookup, envScreenshotsDir, defaultScreenshotsDir),
	}

	ints := []struct {
		name string
		def  int
		dst  *int
	}{
		{envSlowMo, 0, &s.SlowMo},
		{envTimeout, defaultTimeoutMS, &s.DefaultTimeout},
		{envNavigationTimeout, defaultTimeoutMS, &s.NavigationTimeout},
		{envAPITimeout, defaultAPITimeoutSeconds, &s.APITimeout},
	}
	for _, field := range ints {
		v, err := LookupInt(lookup, field.name, field.def)
		if err != nil {
			return Settings{}, err
		}
		*field.dst = v
	}

	return s, nil
}
