// Package guard implements the render recursion guard.
//
// The guard maintains a per-request stack of (object, view) frames and
// rejects a render attempt that would re-enter a frame already active on the
// stack. Rendering chains call Enter before delegating to the next renderer
// and Leave unconditionally afterward, or use Wrap to get both around any
// Renderer.
//
// # Usage
//
// Wrap a host renderer once and render through the wrapper:
//
//	g := guard.New(guard.WithLogger(logger))
//	guarded := g.Wrap(hostRenderer)
//
//	rc := request.New()
//	ctx := request.WithContext(context.Background(), rc)
//	err := guarded.Render(ctx, article, "detail")
//	if errors.Is(err, errors.ErrCodeRecursion) {
//	    // a template included itself; render a diagnostic instead
//	}
//
// Recursion is a hard stop for that render subtree: the error propagates
// unretried, while frames pushed by outer, unaffected render calls are still
// cleaned up on the way out.
package guard

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/renderguard/pkg/errors"
	"github.com/matzehuels/renderguard/pkg/observability"
	"github.com/matzehuels/renderguard/pkg/request"
	"github.com/matzehuels/renderguard/pkg/view"
)

// RecursionError reports a rejected re-entrant render. It carries the
// offending object and view so the host's error layer can describe the loop.
type RecursionError struct {
	Object any
	View   string
}

// Error implements the error interface.
func (e *RecursionError) Error() string {
	return fmt.Sprintf("recursion detected: %s is already being rendered", view.NewFrame(e.Object, e.View))
}

// Code returns the error code for this error type.
func (e *RecursionError) Code() errors.Code {
	return errors.ErrCodeRecursion
}

// DepthError reports that a render exceeded the configured nesting limit.
type DepthError struct {
	View     string
	MaxDepth int
}

// Error implements the error interface.
func (e *DepthError) Error() string {
	return fmt.Sprintf("render depth limit exceeded: view %q at depth %d", e.View, e.MaxDepth)
}

// Code returns the error code for this error type.
func (e *DepthError) Code() errors.Code {
	return errors.ErrCodeDepthExceeded
}

// Guard detects re-entrant renders within one request.
//
// The zero-configured Guard (guard.New()) is enabled, has no depth limit,
// and logs nothing. A Guard holds no per-request state and may be shared by
// any number of requests; all mutable state lives on the request.Context.
type Guard struct {
	logger   *log.Logger
	maxDepth int
	enabled  bool
}

// Option configures a Guard.
type Option func(*Guard)

// WithLogger sets the logger used for detection events. Request-scoped
// loggers on the render context take precedence when present.
func WithLogger(l *log.Logger) Option {
	return func(g *Guard) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithMaxDepth sets an upper bound on render nesting depth. Zero (the
// default) means unlimited: only exact re-entry is rejected.
func WithMaxDepth(n int) Option {
	return func(g *Guard) {
		if n > 0 {
			g.maxDepth = n
		}
	}
}

// WithEnabled toggles the guard. A disabled guard never rejects and never
// touches the stack; Wrap returns the renderer unchanged.
func WithEnabled(enabled bool) Option {
	return func(g *Guard) {
		g.enabled = enabled
	}
}

// New creates a guard.
func New(opts ...Option) *Guard {
	g := &Guard{enabled: true}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Enabled reports whether the guard is active.
func (g *Guard) Enabled() bool {
	return g.enabled
}

// Enter records that object is about to be rendered with view. It fails
// with a *RecursionError if an equal frame is already active on rc's stack,
// leaving the stack unmodified. On success the frame is pushed and the
// caller must pair it with exactly one Leave, regardless of whether the
// guarded render succeeds.
func (g *Guard) Enter(rc *request.Context, object any, viewName string) error {
	if !g.enabled {
		return nil
	}

	stack := rc.Stack()
	frame := view.NewFrame(object, viewName)

	if stack.Contains(frame) {
		g.loggerFor(rc).Warn("recursion detected",
			"view", viewName,
			"object", fmt.Sprintf("%T", object),
			"depth", stack.Len())
		return &RecursionError{Object: object, View: viewName}
	}

	if g.maxDepth > 0 && stack.Len() >= g.maxDepth {
		return &DepthError{View: viewName, MaxDepth: g.maxDepth}
	}

	stack.Push(frame)
	return nil
}

// Leave removes the frame for (object, view) from rc's stack. It is a safe
// no-op when the frame is absent or the stack was never initialized, so it
// can run unconditionally in a defer. Skipping a Leave leaks the frame and
// causes false recursion signals if the context is reused.
func (g *Guard) Leave(rc *request.Context, object any, viewName string) {
	if !g.enabled {
		return
	}
	if rc.Depth() == 0 {
		return
	}
	rc.Stack().Remove(view.NewFrame(object, viewName))
}

// Wrap returns a renderer that runs next under the guard. Enter rejects
// re-entrant frames before next runs; Leave is deferred so cleanup happens
// on success, failure, and panic alike. Errors from next pass through
// unmodified.
//
// The render context is taken from ctx; a fresh one is created and attached
// when absent, so a wrapped renderer is safe to call with a bare context.
func (g *Guard) Wrap(next view.Renderer) view.Renderer {
	if !g.enabled {
		return next
	}
	return view.RenderFunc(func(ctx context.Context, object any, viewName string) error {
		ctx, rc := request.FromOrNew(ctx)

		if err := g.Enter(rc, object, viewName); err != nil {
			var rerr *RecursionError
			if stderrors.As(err, &rerr) {
				observability.Render().OnRecursionDetected(ctx, viewName, rc.Depth())
			}
			return err
		}
		defer g.Leave(rc, object, viewName)

		start := time.Now()
		observability.Render().OnRenderStart(ctx, viewName)
		err := next.Render(ctx, object, viewName)
		observability.Render().OnRenderComplete(ctx, viewName, time.Since(start), err)
		return err
	})
}

// loggerFor prefers the request-scoped logger, falling back to the guard's
// own.
func (g *Guard) loggerFor(rc *request.Context) *log.Logger {
	if rc != nil && rc.Logger() != nil {
		return rc.Logger()
	}
	if g.logger != nil {
		return g.logger
	}
	return log.Default()
}
