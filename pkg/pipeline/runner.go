package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/renderguard/pkg/guard"
	"github.com/matzehuels/renderguard/pkg/request"
	"github.com/matzehuels/renderguard/pkg/view"
)

// Runner dispatches render calls through the recursion guard.
//
// The Runner is stateless except for the guard and logger - all per-request
// state lives on the request context. Multiple goroutines can safely use the
// same Runner for different requests.
type Runner struct {
	Guard  *guard.Guard
	Logger *log.Logger

	renderer view.Renderer
	guarded  view.Renderer
}

// NewRunner creates a runner that dispatches to the given renderer.
// If g is nil, a default enabled guard with DefaultMaxDepth is used.
// If logger is nil, the default logger is used.
func NewRunner(renderer view.Renderer, g *guard.Guard, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	if g == nil {
		g = guard.New(
			guard.WithLogger(logger),
			guard.WithMaxDepth(DefaultMaxDepth),
		)
	}
	return &Runner{
		Guard:    g,
		Logger:   logger,
		renderer: renderer,
		guarded:  g.Wrap(renderer),
	}
}

// NewRunnerFromOptions creates a runner configured by opts.
func NewRunnerFromOptions(renderer view.Renderer, opts Options) (*Runner, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	g := guard.New(
		guard.WithLogger(opts.Logger),
		guard.WithMaxDepth(opts.MaxDepth),
		guard.WithEnabled(opts.Enabled),
	)
	return NewRunner(renderer, g, opts.Logger), nil
}

// Execute renders object with the named view under the guard.
//
// A render context is taken from ctx or created fresh, so the host can call
// Execute with a bare context per request. Nested renders issued by the host
// renderer must go through the same guarded path (Render or the wrapped
// renderer) with the ctx they were handed, which carries the request state.
func (r *Runner) Execute(ctx context.Context, object any, viewName string) error {
	if err := ValidateView(viewName); err != nil {
		return err
	}

	ctx, rc := request.FromOrNew(ctx, request.WithLogger(r.Logger))

	start := time.Now()
	err := r.guarded.Render(ctx, object, viewName)
	duration := time.Since(start)

	if err != nil {
		rc.Logger().Error("render failed",
			"view", viewName,
			"duration", duration,
			"err", err)
		return err
	}

	rc.Logger().Debug("rendered view",
		"view", viewName,
		"duration", duration)
	return nil
}

// Renderer returns the guarded renderer for hosts that dispatch nested
// renders themselves.
func (r *Runner) Renderer() view.Renderer {
	return r.guarded
}

// ExecuteEach renders each object with the named view in parallel.
//
// Every branch gets a forked render context: sibling branches neither race
// on the frame stack nor see each other's frames as recursion. The first
// error cancels the remaining branches and is returned.
func (r *Runner) ExecuteEach(ctx context.Context, objects []any, viewName string) error {
	if err := ValidateView(viewName); err != nil {
		return err
	}

	ctx, rc := request.FromOrNew(ctx, request.WithLogger(r.Logger))

	g, gctx := errgroup.WithContext(ctx)
	for _, object := range objects {
		object := object
		branch := request.WithContext(gctx, rc.Fork())
		g.Go(func() error {
			return r.guarded.Render(branch, object, viewName)
		})
	}
	return g.Wait()
}
