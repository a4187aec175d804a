package cli

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dotsweep/pkg/observability"
)

// renderStats collects per-render timings from the converter so verbose
// runs can point at the slowest graph.
type renderStats struct {
	observability.NoopConvertHooks

	mu      sync.Mutex
	slowest string
	longest time.Duration
	fresh   int
	removed map[string]int
}

func newRenderStats() *renderStats {
	return &renderStats{removed: make(map[string]int)}
}

func (s *renderStats) OnRender(_ context.Context, src, _ string, cached bool, d time.Duration, err error) {
	if cached || err != nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fresh++
	if d > s.longest {
		s.longest = d
		s.slowest = filepath.Base(src)
	}
}

func (s *renderStats) OnCleanup(_ context.Context, pattern string, removed int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removed[pattern] += removed
}

// logTo writes the collected timings at debug level.
func (s *renderStats) logTo(logger *log.Logger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for pattern, n := range s.removed {
		logger.Debug("Cleanup", "pattern", pattern, "removed", n)
	}
	if s.fresh == 0 {
		return
	}
	logger.Debug("Slowest render", "file", s.slowest, "took", s.longest.Round(time.Millisecond), "rendered", s.fresh)
}
