package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is the dotenv file looked up relative to the project root.
var DefaultEnvFile = filepath.Join("config", ".env")

// LookupFunc reports the value of an environment variable and whether it is set.
type LookupFunc func(name string) (string, bool)

func (l LookupFunc) orDefault() LookupFunc {
	if l == nil {
		return os.LookupEnv
	}
	return l
}

// MapLookup returns a LookupFunc backed by a fixed set of variables.
func MapLookup(vars map[string]string) LookupFunc {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

// LookupString returns the raw value of name, or def when it is unset.
func LookupString(lookup LookupFunc, name, def string) string {
	if v, ok := lookup.orDefault()(name); ok {
		return v
	}
	return def
}

// LookupBool returns true only when name is set to "true" in any letter case.
// Any other value, including the empty string, yields false.
func LookupBool(lookup LookupFunc, name string, def bool) bool {
	v, ok := lookup.orDefault()(name)
	if !ok {
		return def
	}
	return strings.ToLower(v) == "true"
}

// LookupInt parses name as a base-10 integer. Malformed values are reported
// as *ParseError.
func LookupInt(lookup LookupFunc, name string, def int) (int, error) {
	v, ok := lookup.orDefault()(name)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, &ParseError{Name: name, Value: v, Err: err}
	}
	return n, nil
}

// LoadEnvironment populates the process environment from a dotenv file.
// Variables that are already set keep their values. A missing file is not
// an error.
func LoadEnvironment(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load environment file %s: %w", path, err)
	}
	return nil
}

// FindEnvFile locates relative by walking up from the working directory.
func FindEnvFile(relative string) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, relative)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("unable to locate %s: %w", relative, fs.ErrNotExist)
}
