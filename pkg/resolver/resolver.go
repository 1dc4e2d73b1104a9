package resolver

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/DimShadoWWW/npm2ebuild/pkg/ebuild"
	"github.com/DimShadoWWW/npm2ebuild/pkg/errors"
	"github.com/DimShadoWWW/npm2ebuild/pkg/integrations/npm"
	"github.com/DimShadoWWW/npm2ebuild/pkg/observability"
	"github.com/DimShadoWWW/npm2ebuild/pkg/version"
)

// DefaultMinVersion is the constraint recorded for the root package.
const DefaultMinVersion = "0.0.1"

// Fetcher retrieves package documents from a registry.
type Fetcher interface {
	Fetch(ctx context.Context, name string) (*npm.Document, error)
}

// Sink stores rendered recipes. Paths are slash separated and relative to
// the sink's root.
type Sink interface {
	Exists(path string) (bool, error)
	Write(path, content string) error
}

// Options configures recipe rendering and progress reporting.
type Options struct {
	Runtime  string                     // RDEPEND runtime atom (default: ebuild.DefaultRuntime)
	Keywords string                     // KEYWORDS value (default: ebuild.DefaultKeywords)
	Logger   *log.Logger                // Debug output (optional)
	Progress func(name, version string) // Called once per resolved package, parents first (optional)
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.Runtime == "" {
		opts.Runtime = ebuild.DefaultRuntime
	}
	if opts.Keywords == "" {
		opts.Keywords = ebuild.DefaultKeywords
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Progress == nil {
		opts.Progress = func(string, string) {}
	}
	return opts
}

// Resolver resolves packages depth first and writes their recipes.
type Resolver struct {
	fetcher Fetcher
	sink    Sink
	opts    Options
}

// New creates a Resolver.
func New(fetcher Fetcher, sink Sink, opts Options) *Resolver {
	return &Resolver{fetcher: fetcher, sink: sink, opts: opts.WithDefaults()}
}

// Resolve resolves name and everything it depends on. minVersion is recorded
// on the returned root (DefaultMinVersion when empty). The first error aborts
// the whole walk; recipes written before it stay on disk.
func (r *Resolver) Resolve(ctx context.Context, name, minVersion string) (*Package, error) {
	if minVersion == "" {
		minVersion = DefaultMinVersion
	}
	w := &walk{Resolver: r, active: make(map[string]bool)}
	return w.resolve(ctx, "", name, minVersion)
}

type walk struct {
	*Resolver
	active map[string]bool
}

func (w *walk) resolve(ctx context.Context, parent, name, minVersion string) (*Package, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := w.fetch(ctx, name)
	if err != nil {
		return nil, err
	}

	chosen, err := version.SelectMaximum(doc.VersionStrings())
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "select version of %s", name)
	}
	release := doc.Versions[chosen]

	pkg := &Package{
		Name:        name,
		MinVersion:  minVersion,
		Version:     chosen,
		Description: doc.Description,
		Path:        ebuild.Path(name, chosen),
	}
	if pkg.Description == "" {
		pkg.Description = release.Description
	}

	w.opts.Progress(name, chosen)
	w.opts.Logger.Debug("resolved", "package", name, "version", chosen, "parent", parent, "deps", release.Dependencies.Len())

	w.active[name] = true
	defer delete(w.active, name)

	recipe := ebuild.Recipe{
		Name:        name,
		Version:     chosen,
		Description: pkg.Description,
		Runtime:     w.opts.Runtime,
		Keywords:    w.opts.Keywords,
	}

	for _, dep := range release.Dependencies.Names() {
		raw, _ := release.Dependencies.Constraint(dep)
		constraint := ebuild.CleanConstraint(raw)

		var child *Package
		if w.active[dep] {
			w.opts.Logger.Debug("dependency cycle", "from", name, "to", dep)
			observability.Resolve().OnCycle(ctx, name, dep)
			child = &Package{Name: dep, MinVersion: constraint, Cycle: true}
		} else {
			child, err = w.resolve(ctx, name, dep, constraint)
			if err != nil {
				return nil, err
			}
		}

		d := ebuild.Dependency{Name: dep, Constraint: constraint}
		recipe.Dependencies = append(recipe.Dependencies, d)
		pkg.DependencyLines = append(pkg.DependencyLines, d.Line())
		pkg.Dependencies = append(pkg.Dependencies, child)
	}

	written, err := w.emit(ctx, pkg, recipe)
	if err != nil {
		return nil, err
	}
	pkg.Written = written
	return pkg, nil
}

func (w *walk) fetch(ctx context.Context, name string) (*npm.Document, error) {
	hooks := observability.Resolve()
	hooks.OnFetchStart(ctx, name)
	start := time.Now()

	doc, err := w.fetcher.Fetch(ctx, name)
	hooks.OnFetchComplete(ctx, name, time.Since(start), err)

	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if !errors.Is(err, errors.ErrCodeMetadataFetch) {
			err = errors.Wrap(errors.ErrCodeMetadataFetch, err, "fetch %s", name)
		}
		return nil, err
	}
	return doc, nil
}

func (w *walk) emit(ctx context.Context, pkg *Package, recipe ebuild.Recipe) (bool, error) {
	exists, err := w.sink.Exists(pkg.Path)
	if err != nil {
		return false, errors.Wrap(errors.ErrCodeRecipeWrite, err, "%s-%s", pkg.Name, pkg.Version)
	}
	if exists {
		w.opts.Logger.Debug("recipe exists", "path", pkg.Path)
		observability.Resolve().OnRecipe(ctx, pkg.Name, pkg.Version, pkg.Path, observability.RecipeSkipped)
		return false, nil
	}

	if err := w.sink.Write(pkg.Path, recipe.Render()); err != nil {
		return false, errors.Wrap(errors.ErrCodeRecipeWrite, err, "%s-%s", pkg.Name, pkg.Version)
	}
	w.opts.Logger.Debug("recipe written", "path", pkg.Path)
	observability.Resolve().OnRecipe(ctx, pkg.Name, pkg.Version, pkg.Path, observability.RecipeWritten)
	return true, nil
}
