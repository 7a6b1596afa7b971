package browser

import (
	"slices"
	"testing"

	"github.com/eugenenazirov/uiharness/internal/config"
)

func TestLaunchOptions(t *testing.T) {
	t.Run("headless", func(t *testing.T) {
		opts := LaunchOptions(config.Settings{Headless: true, SlowMo: 120}.LaunchOptions())
		if opts.Headless == nil || !*opts.Headless {
			t.Fatalf("expected headless launch")
		}
		if opts.SlowMo == nil || *opts.SlowMo != 120 {
			t.Fatalf("expected slow mo 120, got %v", opts.SlowMo)
		}
		if want := []string{"--disable-gpu", "--no-sandbox"}; !slices.Equal(opts.Args, want) {
			t.Fatalf("expected args %v, got %v", want, opts.Args)
		}
	})

	t.Run("headed", func(t *testing.T) {
		opts := LaunchOptions(config.Settings{}.LaunchOptions())
		if opts.Headless == nil || *opts.Headless {
			t.Fatalf("expected headed launch")
		}
		if opts.Args != nil {
			t.Fatalf("expected no args, got %v", opts.Args)
		}
	})
}

func TestContextOptions(t *testing.T) {
	opts := ContextOptions(config.Settings{RecordVideo: true, RecordTrace: true}.ContextOptions())
	if opts.Viewport == nil || opts.Viewport.Width != 1280 || opts.Viewport.Height != 720 {
		t.Fatalf("unexpected viewport %+v", opts.Viewport)
	}
	if opts.IgnoreHttpsErrors == nil || !*opts.IgnoreHttpsErrors {
		t.Fatalf("expected HTTPS errors to be ignored")
	}
	if opts.RecordVideo == nil || opts.RecordVideo.Dir != config.VideoDir {
		t.Fatalf("expected video recording into %s, got %+v", config.VideoDir, opts.RecordVideo)
	}

	plain := ContextOptions(config.Settings{}.ContextOptions())
	if plain.RecordVideo != nil {
		t.Fatalf("expected no video recording, got %+v", plain.RecordVideo)
	}
}
