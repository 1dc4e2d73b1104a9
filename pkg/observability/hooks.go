// Package observability provides hooks for metrics, tracing, and logging.
//
// Consumers register hooks at startup to receive events about package
// resolution and registry HTTP calls. Libraries never depend on a specific
// backend; they call the registered hooks, which default to no-ops.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetResolveHooks(&myResolveHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Resolve().OnFetchStart(ctx, name)
//	// ... fetch ...
//	observability.Resolve().OnFetchComplete(ctx, name, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Resolve Hooks
// =============================================================================

// RecipeOutcome describes what happened to a package's recipe.
type RecipeOutcome int

const (
	// RecipeWritten means a new recipe file was written.
	RecipeWritten RecipeOutcome = iota
	// RecipeSkipped means a recipe already existed at the target path.
	RecipeSkipped
)

// String returns a lowercase label for the outcome.
func (o RecipeOutcome) String() string {
	switch o {
	case RecipeWritten:
		return "written"
	case RecipeSkipped:
		return "skipped"
	}
	return "unknown"
}

// ResolveHooks receives events from the package resolver.
type ResolveHooks interface {
	// OnFetchStart records the start of a registry metadata fetch.
	OnFetchStart(ctx context.Context, pkg string)

	// OnFetchComplete records the end of a registry metadata fetch.
	OnFetchComplete(ctx context.Context, pkg string, duration time.Duration, err error)

	// OnRecipe records a recipe write decision for a resolved package.
	OnRecipe(ctx context.Context, pkg, version, path string, outcome RecipeOutcome)

	// OnCycle records a dependency that was already being resolved higher up
	// the same path.
	OnCycle(ctx context.Context, from, to string)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from HTTP client operations.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, method, host, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopResolveHooks is a no-op implementation of ResolveHooks.
type NoopResolveHooks struct{}

func (NoopResolveHooks) OnFetchStart(context.Context, string)                            {}
func (NoopResolveHooks) OnFetchComplete(context.Context, string, time.Duration, error)   {}
func (NoopResolveHooks) OnRecipe(context.Context, string, string, string, RecipeOutcome) {}
func (NoopResolveHooks) OnCycle(context.Context, string, string)                         {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	resolveHooks ResolveHooks = NoopResolveHooks{}
	httpHooks    HTTPHooks    = NoopHTTPHooks{}
	hooksMu      sync.RWMutex
)

// SetResolveHooks registers custom resolve hooks.
// This should be called once at application startup before any resolution.
func SetResolveHooks(h ResolveHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		resolveHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before any HTTP operations.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Resolve returns the registered resolve hooks.
func Resolve() ResolveHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return resolveHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	resolveHooks = NoopResolveHooks{}
	httpHooks = NoopHTTPHooks{}
}
