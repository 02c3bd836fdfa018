package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yml")

	cfg, err := Load(path, false, 0)
	if err != nil {
		t.Fatalf("Expected missing optional config to be ignored, got: %v", err)
	}
	if *cfg != (Config{}) {
		t.Errorf("Expected empty config, got %+v", *cfg)
	}

	if _, err := Load(path, true, 0); err == nil {
		t.Error("Expected error for missing required config")
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("", true, 0)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if *cfg != (Config{}) {
		t.Errorf("Expected empty config, got %+v", *cfg)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""), true, 0)
	if err != nil {
		t.Fatalf("Expected empty file to load, got: %v", err)
	}
	if *cfg != (Config{}) {
		t.Errorf("Expected empty config, got %+v", *cfg)
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, "probe: term\ncolor_profile: ansi256\nverbosity: 2\n")

	cfg, err := Load(path, true, 0)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	expected := Config{Probe: "term", ColorProfile: "ansi256", Verbosity: 2}
	if *cfg != expected {
		t.Errorf("Expected %+v, got %+v", expected, *cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		errContains string
	}{
		{
			name:        "unknown field",
			content:     "probe: isatty\ngreeting: hi\n",
			errContains: "failed to parse config",
		},
		{
			name:        "malformed yaml",
			content:     "probe: [isatty\n",
			errContains: "failed to parse config",
		},
		{
			name:        "bad probe with suggestion",
			content:     "probe: isaty\n",
			errContains: "Did you mean 'isatty'?",
		},
		{
			name:        "bad color profile",
			content:     "color_profile: rainbow\n",
			errContains: "field 'color_profile' must be one of truecolor, ansi256, ansi, ascii, got: rainbow",
		},
		{
			name:        "verbosity out of range",
			content:     "verbosity: 5\n",
			errContains: "field 'verbosity' must be between 0 and 2, got: 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content), true, 0)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("Expected error containing %q, got: %v", tt.errContains, err)
			}
		})
	}
}

func TestValidate_NoSuggestionForDistantValue(t *testing.T) {
	err := Validate(&Config{Probe: "terminal"})
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if strings.Contains(err.Error(), "Did you mean") {
		t.Errorf("Expected no suggestion, got: %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvProbe:        "term",
		EnvColorProfile: "ascii",
	}
	cfg := &Config{Probe: "isatty", ColorProfile: "truecolor", Verbosity: 1}

	cfg.ApplyEnv(func(k string) string { return env[k] })

	expected := Config{Probe: "term", ColorProfile: "ascii", Verbosity: 1}
	if *cfg != expected {
		t.Errorf("Expected %+v, got %+v", expected, *cfg)
	}

	cfg.ApplyEnv(func(string) string { return "" })
	if *cfg != expected {
		t.Errorf("Expected unset env to leave config untouched, got %+v", *cfg)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv(EnvConfig, "/tmp/custom.yml")
	if got := DefaultPath(); got != "/tmp/custom.yml" {
		t.Errorf("Expected env override, got %q", got)
	}

	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME is only honoured on Linux")
	}
	t.Setenv(EnvConfig, "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	t.Setenv("HOME", "/tmp/home")
	if got := DefaultPath(); got != filepath.Join("/tmp/xdg", "ttygreet", "config.yml") {
		t.Errorf("Unexpected default path %q", got)
	}
}
