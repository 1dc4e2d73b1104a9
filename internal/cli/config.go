package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/DimShadoWWW/npm2ebuild/pkg/ebuild"
	"github.com/DimShadoWWW/npm2ebuild/pkg/errors"
	"github.com/DimShadoWWW/npm2ebuild/pkg/integrations/npm"
)

// defaultTimeout bounds each registry request unless configured otherwise.
const defaultTimeout = 30 * time.Second

// Config holds the settings that can come from a config file.
// Precedence is defaults, then the config file, then flags.
type Config struct {
	Registry string        `toml:"registry" yaml:"registry"`
	Output   string        `toml:"output" yaml:"output"`
	Runtime  string        `toml:"runtime" yaml:"runtime"`
	Keywords string        `toml:"keywords" yaml:"keywords"`
	Timeout  time.Duration `toml:"timeout" yaml:"timeout"`
}

func defaultConfig() Config {
	return Config{
		Registry: npm.DefaultRegistry,
		Output:   ".",
		Runtime:  ebuild.DefaultRuntime,
		Keywords: ebuild.DefaultKeywords,
		Timeout:  defaultTimeout,
	}
}

// loadConfig returns the defaults overlaid with the file at path. An empty
// path means the default location, which may be absent; an explicit path
// must exist.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, configFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config")
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return cfg, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && err != io.EOF {
			return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
		}
	default:
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "unsupported config format %q (want .toml, .yaml or .yml)", ext)
	}

	return cfg, nil
}

func (c Config) validate() error {
	if err := errors.ValidateURL(c.Registry); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "registry")
	}
	if c.Output == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "output directory cannot be empty")
	}
	if c.Timeout < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "timeout cannot be negative")
	}
	return nil
}

// runOptions holds flag values. Settings shared with Config only override
// the file when the flag was given.
type runOptions struct {
	registry   string
	output     string
	runtime    string
	keywords   string
	timeout    time.Duration
	dryRun     bool
	graph      string
	configPath string
}

func (o runOptions) apply(cmd *cobra.Command, cfg *Config) {
	changed := cmd.Flags().Changed
	if changed("registry") {
		cfg.Registry = o.registry
	}
	if changed("output") {
		cfg.Output = o.output
	}
	if changed("runtime") {
		cfg.Runtime = o.runtime
	}
	if changed("keywords") {
		cfg.Keywords = o.keywords
	}
	if changed("timeout") {
		cfg.Timeout = o.timeout
	}
}

var graphFormats = []string{".dot", ".svg"}

func validateGraphPath(path string) error {
	if path == "" {
		return nil
	}
	if !slices.Contains(graphFormats, strings.ToLower(filepath.Ext(path))) {
		return errors.New(errors.ErrCodeInvalidInput, "graph file %q must end in .dot or .svg", path)
	}
	return nil
}
