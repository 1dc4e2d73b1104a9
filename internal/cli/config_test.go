package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DimShadoWWW/npm2ebuild/pkg/errors"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg != defaultConfig() {
		t.Errorf("loadConfig() = %+v, want defaults %+v", cfg, defaultConfig())
	}
}

func TestLoadConfigDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	dir := filepath.Join(home, appName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, configFile), []byte(`keywords = "~arm64"`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Keywords != "~arm64" {
		t.Errorf("Keywords = %q, want value from default config file", cfg.Keywords)
	}
	if cfg.Runtime != defaultConfig().Runtime {
		t.Errorf("Runtime = %q, unset keys should keep defaults", cfg.Runtime)
	}
}

func TestLoadConfigFormats(t *testing.T) {
	want := Config{
		Registry: "http://localhost:4873",
		Output:   "/tmp/overlay",
		Runtime:  ">=net-libs/nodejs-18",
		Keywords: "~amd64",
		Timeout:  5 * time.Second,
	}

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "config.toml",
			content: `registry = "http://localhost:4873"
output = "/tmp/overlay"
runtime = ">=net-libs/nodejs-18"
keywords = "~amd64"
timeout = "5s"
`,
		},
		{
			name: "yaml",
			file: "config.yaml",
			content: `registry: http://localhost:4873
output: /tmp/overlay
runtime: ">=net-libs/nodejs-18"
keywords: "~amd64"
timeout: 5s
`,
		},
		{
			name: "yml",
			file: "npm2ebuild.yml",
			content: `registry: http://localhost:4873
output: /tmp/overlay
runtime: ">=net-libs/nodejs-18"
keywords: "~amd64"
timeout: 5s
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loadConfig(writeConfig(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("loadConfig() error: %v", err)
			}
			if cfg != want {
				t.Errorf("loadConfig() = %+v, want %+v", cfg, want)
			}
		})
	}
}

func TestLoadConfigEmptyYAML(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, "empty.yaml", ""))
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg != defaultConfig() {
		t.Errorf("empty YAML should leave defaults, got %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing explicit file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.toml") }},
		{"unknown extension", func(t *testing.T) string { return writeConfig(t, "config.json", "{}") }},
		{"bad toml", func(t *testing.T) string { return writeConfig(t, "config.toml", "registry = ") }},
		{"unknown toml key", func(t *testing.T) string { return writeConfig(t, "config.toml", `colour = "red"`) }},
		{"unknown yaml key", func(t *testing.T) string { return writeConfig(t, "config.yaml", "colour: red\n") }},
		{"bad yaml duration", func(t *testing.T) string { return writeConfig(t, "config.yaml", "timeout: soon\n") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(tt.path(t))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("loadConfig() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"no timeout", func(c *Config) { c.Timeout = 0 }, false},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, true},
		{"ftp registry", func(c *Config) { c.Registry = "ftp://example.com" }, true},
		{"empty output", func(c *Config) { c.Output = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(&cfg)
			err := cfg.validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("validate() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestValidateGraphPath(t *testing.T) {
	for _, p := range []string{"", "deps.dot", "deps.SVG"} {
		if err := validateGraphPath(p); err != nil {
			t.Errorf("validateGraphPath(%q) error: %v", p, err)
		}
	}
	if err := validateGraphPath("deps.png"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("validateGraphPath(deps.png) error = %v, want INVALID_INPUT", err)
	}
}
