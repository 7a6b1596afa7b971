package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnvironment(t *testing.T) {
	clearEnv(t, envBrowser, envSlowMo)
	t.Setenv(envLogLevel, "ERROR")

	path := filepath.Join(t.TempDir(), ".env")
	content := "BROWSER=webkit\nSLOW_MO=25\nLOG_LEVEL=DEBUG\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	if err := LoadEnvironment(path); err != nil {
		t.Fatalf("LoadEnvironment returned error: %v", err)
	}

	if got := os.Getenv(envBrowser); got != "webkit" {
		t.Fatalf("expected BROWSER from file, got %q", got)
	}
	if got := os.Getenv(envSlowMo); got != "25" {
		t.Fatalf("expected SLOW_MO from file, got %q", got)
	}
	if got := os.Getenv(envLogLevel); got != "ERROR" {
		t.Fatalf("expected process environment to win, got %q", got)
	}
}

func TestLoadEnvironmentMissingFile(t *testing.T) {
	if err := LoadEnvironment(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("expected missing file to be ignored, got %v", err)
	}
}

func TestLoadEnvironmentDirectory(t *testing.T) {
	if err := LoadEnvironment(t.TempDir()); err == nil {
		t.Fatalf("expected error when path is a directory")
	}
}

func TestFindEnvFile(t *testing.T) {
	path, err := FindEnvFile("go.mod")
	if err != nil {
		t.Fatalf("FindEnvFile returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected go.mod to exist at %s: %v", path, err)
	}

	if _, err := FindEnvFile("definitely-not-a-real-file"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
