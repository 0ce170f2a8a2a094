// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. The host application can
// register hooks at startup to receive events about graph builds and diagram
// rendering.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach avoids import cycles (hooks are registered by main, not by
// libraries), keeps the engine dependency-free from observability
// frameworks, and allows different backends.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetEngineHooks(&myEngineHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Engine().OnBuildStart(ctx, len(records))
//	// ... build ...
//	observability.Engine().OnBuildComplete(ctx, nodes, edges, skipped, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// EngineHooks receives events from the lineage engine.
type EngineHooks interface {
	// OnBuildStart records the beginning of a graph build.
	OnBuildStart(ctx context.Context, records int)

	// OnBuildComplete records a finished graph build with its result sizes
	// and the number of malformed records skipped.
	OnBuildComplete(ctx context.Context, nodes, edges, skipped int, duration time.Duration)

	// OnRenderComplete records a finished diagram render.
	OnRenderComplete(ctx context.Context, lines int, duration time.Duration, err error)
}

// NoopEngineHooks is a no-op implementation of EngineHooks.
type NoopEngineHooks struct{}

func (NoopEngineHooks) OnBuildStart(context.Context, int)                             {}
func (NoopEngineHooks) OnBuildComplete(context.Context, int, int, int, time.Duration) {}
func (NoopEngineHooks) OnRenderComplete(context.Context, int, time.Duration, error)   {}

var (
	engineHooks EngineHooks = NoopEngineHooks{}
	hooksMu     sync.RWMutex
)

// SetEngineHooks registers custom engine hooks.
// This should be called once at application startup before any engine use.
func SetEngineHooks(h EngineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		engineHooks = h
	}
}

// Engine returns the registered engine hooks.
func Engine() EngineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return engineHooks
}

// Reset restores the no-op default hooks.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	engineHooks = NoopEngineHooks{}
}
