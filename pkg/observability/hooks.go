// Package observability provides hooks for metrics, tracing, and logging.
//
// The converter reports run, render, and cleanup events through a
// process-wide [ConvertHooks] value. The default is a no-op; callers that
// want metrics register their own implementation at startup:
//
//	observability.SetConvertHooks(&myHooks{})
//
// Libraries emit events through the accessor:
//
//	observability.Convert().OnRender(ctx, src, out, cached, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// ConvertHooks receives events from a batch conversion run.
type ConvertHooks interface {
	// OnRunStart is called once the target directory is known.
	OnRunStart(ctx context.Context, dir string)

	// OnRender is called after each graph file has been rendered or
	// served from cache. err is nil on success.
	OnRender(ctx context.Context, src, out string, cached bool, duration time.Duration, err error)

	// OnCleanup is called after a cleanup pass with the glob pattern it
	// applied and the number of files it removed.
	OnCleanup(ctx context.Context, pattern string, removed int)

	// OnRunComplete is called when the run finishes, successfully or not.
	OnRunComplete(ctx context.Context, dir string, rendered, failed int, duration time.Duration, err error)
}

// NoopConvertHooks is a no-op implementation of ConvertHooks.
type NoopConvertHooks struct{}

func (NoopConvertHooks) OnRunStart(context.Context, string) {}
func (NoopConvertHooks) OnRender(context.Context, string, string, bool, time.Duration, error) {
}
func (NoopConvertHooks) OnCleanup(context.Context, string, int) {}
func (NoopConvertHooks) OnRunComplete(context.Context, string, int, int, time.Duration, error) {
}

var (
	convertHooks ConvertHooks = NoopConvertHooks{}
	hooksMu      sync.RWMutex
)

// SetConvertHooks registers custom conversion hooks. Nil is ignored.
func SetConvertHooks(h ConvertHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		convertHooks = h
	}
}

// Convert returns the registered conversion hooks.
func Convert() ConvertHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return convertHooks
}

// Reset restores the no-op default.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	convertHooks = NoopConvertHooks{}
}
