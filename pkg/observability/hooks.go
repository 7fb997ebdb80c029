// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Hosts can register hooks
// at startup to receive events about guarded render calls and recursion
// detection.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define a hook interface for render events
//   - Provide a no-op default implementation
//   - Allow registration of a custom implementation at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by the host, not by libraries)
//   - Keeps the guard dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
//
// The guard and dispatcher call hooks to emit events:
//
//	observability.Render().OnRenderStart(ctx, viewName)
//	// ... do rendering ...
//	observability.Render().OnRenderComplete(ctx, viewName, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// RenderHooks receives events from guarded render calls.
type RenderHooks interface {
	// OnRenderStart records the start of a guarded render.
	OnRenderStart(ctx context.Context, view string)

	// OnRenderComplete records the completion of a guarded render,
	// successful or not.
	OnRenderComplete(ctx context.Context, view string, duration time.Duration, err error)

	// OnRecursionDetected records a rejected re-entrant render. depth is
	// the stack depth at the moment of detection.
	OnRecursionDetected(ctx context.Context, view string, depth int)
}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, string)                          {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, time.Duration, error) {}
func (NoopRenderHooks) OnRecursionDetected(context.Context, string, int)               {}

var (
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetRenderHooks registers custom render hooks.
// This should be called once at application startup before any render
// operations.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores the hooks to their no-op default.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	renderHooks = NoopRenderHooks{}
}
