package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "InitialFloor: 2\nNumFloors: 8\nLogLevel: warn\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Expected load to succeed, got %v", err)
	}
	if c.InitialFloor != 2 {
		t.Errorf("Expected InitialFloor to be 2, got %d", c.InitialFloor)
	}
	if c.NumFloors != 8 {
		t.Errorf("Expected NumFloors to be 8, got %d", c.NumFloors)
	}
	if c.StatusPort != StatusPort {
		t.Errorf("Expected StatusPort to keep its default, got %d", c.StatusPort)
	}
}

func TestLoadMissingFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("Expected an error for a missing file")
	}
	if c != Default() {
		t.Errorf("Expected the defaults back on failure, got %+v", c)
	}
}

func TestSlogLevel(t *testing.T) {
	testCases := []struct {
		name  string
		level string
		want  slog.Level
	}{
		{name: "debug", level: "debug", want: slog.LevelDebug},
		{name: "info", level: "info", want: slog.LevelInfo},
		{name: "warn", level: "warn", want: slog.LevelWarn},
		{name: "error", level: "error", want: slog.LevelError},
		{name: "uppercase", level: "DEBUG", want: slog.LevelDebug},
		{name: "empty falls back to info", level: "", want: slog.LevelInfo},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := Config{LogLevel: tc.level}
			if got := c.SlogLevel(); got != tc.want {
				t.Errorf("Expected %v for %q, got %v", tc.want, tc.level, got)
			}
		})
	}
}
