package cli

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/DimShadoWWW/npm2ebuild/pkg/observability"
)

// runStats collects resolver events for the end-of-run summary.
type runStats struct {
	mu        sync.Mutex
	fetched   int
	fetchTime time.Duration
	written   []string
	skipped   int
	cycles    []string
}

func (s *runStats) OnFetchStart(context.Context, string) {}

func (s *runStats) OnFetchComplete(_ context.Context, _ string, d time.Duration, _ error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetched++
	s.fetchTime += d
}

func (s *runStats) OnRecipe(_ context.Context, _, _, path string, outcome observability.RecipeOutcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch outcome {
	case observability.RecipeWritten:
		s.written = append(s.written, path)
	case observability.RecipeSkipped:
		s.skipped++
	}
}

func (s *runStats) OnCycle(_ context.Context, from, to string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cycles = append(s.cycles, from+" → "+to)
}

// httpLogHooks logs registry requests at debug level.
type httpLogHooks struct {
	logger *log.Logger
}

func (h httpLogHooks) OnRequest(context.Context, string, string, string) {}

func (h httpLogHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("registry", "method", method, "url", host+path, "status", status, "took", d.Round(time.Millisecond))
}

func (h httpLogHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("registry request failed", "method", method, "url", host+path, "err", err)
}
