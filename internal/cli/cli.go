package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/DimShadoWWW/npm2ebuild/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "npm2ebuild"

	// configFile is the name of the default configuration file.
	configFile = "config.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for the command.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance whose logger writes to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the npm2ebuild command.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		opts    runOptions
		verbose bool
	)

	root := &cobra.Command{
		Use:   "npm2ebuild [flags] <package>",
		Short: "npm2ebuild generates Gentoo ebuilds for npm packages",
		Long: `npm2ebuild resolves the latest version of an npm package and, recursively,
of everything it depends on, then writes one ebuild per package into a
dev-nodejs/<name>/ tree. Recipes that already exist are left untouched.`,
		Example: `  npm2ebuild express
  npm2ebuild -o /var/db/repos/local --graph deps.svg express
  npm2ebuild --dry-run @types/node`,
		Version:      buildinfo.Version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Usage()
			}
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			opts.apply(cmd, &cfg)
			if err := cfg.validate(); err != nil {
				return err
			}
			return c.generate(cmd.Context(), cmd.OutOrStdout(), args[0], cfg, opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	f := root.Flags()
	f.StringVar(&opts.registry, "registry", "", "npm registry base URL (default "+defaultConfig().Registry+")")
	f.StringVarP(&opts.output, "output", "o", "", "root directory that receives dev-nodejs/ (default current directory)")
	f.StringVar(&opts.runtime, "runtime", "", "runtime atom placed first in RDEPEND")
	f.StringVar(&opts.keywords, "keywords", "", "KEYWORDS value of generated ebuilds")
	f.DurationVar(&opts.timeout, "timeout", 0, "registry request timeout, 0 for none (default "+defaultConfig().Timeout.String()+")")
	f.BoolVar(&opts.dryRun, "dry-run", false, "print ebuilds instead of writing them")
	f.StringVar(&opts.graph, "graph", "", "write the dependency graph to a .dot or .svg file")
	f.StringVar(&opts.configPath, "config", "", "config file (.toml, .yaml or .yml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	return root
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the config directory using XDG standard (~/.config/npm2ebuild/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
