// Package cli implements the npm2ebuild command-line interface.
//
// The single command takes one npm package name, resolves it and its
// dependencies against the registry and writes one ebuild per package. It is
// built using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Configuration
//
// Settings are read from $XDG_CONFIG_HOME/npm2ebuild/config.toml when that
// file exists, or from the file named by --config (TOML or YAML, chosen by
// extension). Flags override the file:
//
//	registry = "http://localhost:4873"
//	output   = "/var/db/repos/local"
//	runtime  = ">=net-libs/nodejs-18"
//	keywords = "~amd64"
//	timeout  = "30s"
//
// # Logging
//
// --verbose (-v) enables debug-level logging, including one line per registry
// request. Loggers are passed through context.Context and every run is
// tagged with a short run id.
//
// # Example
//
//	import "github.com/DimShadoWWW/npm2ebuild/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli
