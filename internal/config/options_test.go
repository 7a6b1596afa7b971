package config

import (
	"slices"
	"testing"
)

func TestLaunchOptions(t *testing.T) {
	t.Run("headless adds stabilisation args", func(t *testing.T) {
		opts := Settings{Headless: true, SlowMo: 50}.LaunchOptions()
		if !opts.Headless || opts.SlowMo != 50 {
			t.Fatalf("unexpected options: %+v", opts)
		}
		if want := []string{"--disable-gpu", "--no-sandbox"}; !slices.Equal(opts.Args, want) {
			t.Fatalf("expected args %v, got %v", want, opts.Args)
		}
	})

	t.Run("headed omits args", func(t *testing.T) {
		opts := Settings{Headless: false}.LaunchOptions()
		if opts.Args != nil {
			t.Fatalf("expected no args, got %v", opts.Args)
		}
	})

	t.Run("args are not shared", func(t *testing.T) {
		s := Settings{Headless: true}
		first := s.LaunchOptions()
		first.Args[0] = "--mutated"
		if second := s.LaunchOptions(); second.Args[0] != "--disable-gpu" {
			t.Fatalf("launch args leaked between calls: %v", second.Args)
		}
	})
}

func TestContextOptions(t *testing.T) {
	tests := []struct {
		name      string
		video     bool
		trace     bool
		wantVideo string
		wantTrace string
	}{
		{name: "none"},
		{name: "video", video: true, wantVideo: "test-results/videos"},
		{name: "trace", trace: true, wantTrace: "test-results/traces"},
		{name: "both", video: true, trace: true, wantVideo: "test-results/videos", wantTrace: "test-results/traces"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Settings{RecordVideo: tt.video, RecordTrace: tt.trace}.ContextOptions()
			if opts.Viewport != (Viewport{Width: 1280, Height: 720}) {
				t.Fatalf("unexpected viewport %+v", opts.Viewport)
			}
			if !opts.IgnoreHTTPSErrors {
				t.Fatalf("expected HTTPS errors to be ignored")
			}
			if opts.RecordVideoDir != tt.wantVideo || opts.RecordTraceDir != tt.wantTrace {
				t.Fatalf("unexpected recording dirs: video=%q trace=%q", opts.RecordVideoDir, opts.RecordTraceDir)
			}
		})
	}
}
