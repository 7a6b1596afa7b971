package config

// Kind identifies a configuration profile.
type Kind int

const (
	// Development is selected when ENV is unset or unrecognised.
	Development Kind = iota
	Production
	Testing
)

// EnvProfile is the environment variable that selects the profile.
const EnvProfile = "ENV"

func (k Kind) String() string {
	switch k {
	case Production:
		return "production"
	case Testing:
		return "testing"
	default:
		return "development"
	}
}

// MarshalText encodes the kind by name for JSON and YAML output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseKind maps an ENV value to a profile. Matching is exact; every other
// value, including the empty string, falls back to Development.
func ParseKind(raw string) Kind {
	switch raw {
	case "production":
		return Production
	case "testing":
		return Testing
	default:
		return Development
	}
}

// overrideRule adjusts base settings for a single profile.
type overrideRule func(s *Settings, lookup LookupFunc)

var profileOverrides = map[Kind][]overrideRule{
	Development: {setHeadless(false), setLogLevel("DEBUG")},
	Production:  {setHeadless(true), setLogLevel("INFO")},
	Testing: {
		setHeadless(true),
		func(s *Settings, lookup LookupFunc) {
			s.BaseUIURL = LookupString(lookup, envBaseUIURL, stagingBaseUIURL)
			s.APIBaseURL = LookupString(lookup, envAPIBaseURL, stagingAPIBaseURL)
		},
	},
}

func setHeadless(v bool) overrideRule {
	return func(s *Settings, _ LookupFunc) {
		s.Headless = v
	}
}

func setLogLevel(level string) overrideRule {
	return func(s *Settings, _ LookupFunc) {
		s.LogLevel = level
	}
}
