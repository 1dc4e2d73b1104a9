package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/DimShadoWWW/npm2ebuild/pkg/ebuild"
	"github.com/DimShadoWWW/npm2ebuild/pkg/integrations/npm"
	"github.com/DimShadoWWW/npm2ebuild/pkg/observability"
	"github.com/DimShadoWWW/npm2ebuild/pkg/render/nodelink"
	"github.com/DimShadoWWW/npm2ebuild/pkg/resolver"
)

// generate resolves pkg and writes (or prints) its recipes and those of all
// its dependencies.
func (c *CLI) generate(ctx context.Context, out io.Writer, pkg string, cfg Config, opts runOptions) error {
	if err := validateGraphPath(opts.graph); err != nil {
		return err
	}

	logger, runID := runLogger(c.Logger)
	ctx = withLogger(ctx, logger)
	logger.Debug("starting", "id", runID, "package", pkg, "registry", cfg.Registry, "output", cfg.Output,
		"timeout", cfg.Timeout, "dry-run", opts.dryRun)

	stats := &runStats{}
	observability.SetResolveHooks(stats)
	observability.SetHTTPHooks(httpLogHooks{logger: logger})
	defer observability.Reset()

	var sink resolver.Sink = ebuild.FileSink{Root: cfg.Output}
	if opts.dryRun {
		sink = ebuild.NewDryRunSink(cfg.Output, out)
	}

	r := resolver.New(npm.NewClient(cfg.Registry, cfg.Timeout), sink, resolver.Options{
		Runtime:  cfg.Runtime,
		Keywords: cfg.Keywords,
		Logger:   logger,
		Progress: func(name, version string) {
			fmt.Fprintln(out, name+"-"+version)
		},
	})

	prog := newProgress(loggerFromContext(ctx))
	root, err := r.Resolve(ctx, pkg, "")
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Resolved %s-%s", root.Name, root.Version))

	if !opts.dryRun {
		for _, p := range stats.written {
			printFile(out, filepath.Join(cfg.Output, filepath.FromSlash(p)))
		}
	}
	for _, cycle := range stats.cycles {
		printWarning(out, "dependency cycle %s", cycle)
	}

	if opts.graph != "" {
		if err := writeGraph(opts.graph, root); err != nil {
			return err
		}
		printFile(out, opts.graph)
	}

	printSummary(out, root.Stats(), stats, opts.dryRun)
	return nil
}

func writeGraph(path string, root *resolver.Package) error {
	dot := nodelink.ToDOT(root, nodelink.Options{})

	data := []byte(dot)
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		svg, err := nodelink.RenderSVG(dot)
		if err != nil {
			return fmt.Errorf("render graph: %w", err)
		}
		data = svg
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
