// Package request provides the per-request render context that owns the
// view call stack.
//
// The original pattern of stashing the stack in an untyped request-attribute
// bag is replaced here with a strongly typed owner: the stack is a field on
// Context, allocated lazily on first use and discarded with the request. A
// Context travels through context.Context under an unexported key so that
// guarded renderers deep in a chain can reach it without threading an extra
// parameter.
package request

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/renderguard/pkg/view"
)

// Context is the render state owned by one request. It holds the view call
// stack the guard maintains, a request-scoped logger, and a unique ID for
// log correlation.
//
// A Context is mutated sequentially by nested render calls and must not be
// shared across goroutines; parallel sub-render branches use Fork.
type Context struct {
	id     string
	logger *log.Logger
	stack  *view.Stack
}

// Option configures a Context.
type Option func(*Context)

// WithLogger sets the request-scoped logger. The request ID is attached as
// a persistent field.
func WithLogger(l *log.Logger) Option {
	return func(c *Context) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a render context with a fresh request ID. The view stack is
// allocated lazily on first use.
func New(opts ...Option) *Context {
	c := &Context{id: uuid.NewString()}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	c.logger = c.logger.With("request_id", c.id)
	return c
}

// ID returns the unique request identifier.
func (c *Context) ID() string { return c.id }

// Logger returns the request-scoped logger.
func (c *Context) Logger() *log.Logger { return c.logger }

// Stack returns the view call stack, allocating it on first use.
func (c *Context) Stack() *view.Stack {
	if c.stack == nil {
		c.stack = view.NewStack()
	}
	return c.stack
}

// Depth returns the current render nesting depth without allocating the
// stack.
func (c *Context) Depth() int {
	if c.stack == nil {
		return 0
	}
	return c.stack.Len()
}

// Fork returns an isolated copy of the context for a parallel sub-render
// branch. The fork shares the request ID and logger but snapshots the view
// stack, so sibling branches neither race nor see each other's frames as
// recursion.
func (c *Context) Fork() *Context {
	forked := &Context{id: c.id, logger: c.logger}
	if c.stack != nil {
		forked.stack = c.stack.Fork()
	}
	return forked
}

// ctxKey is the type for context keys used in this package.
// Using a distinct type prevents collisions with other packages.
type ctxKey int

// renderContextKey is the context key for storing a render Context.
const renderContextKey ctxKey = 0

// WithContext returns a new context.Context carrying rc.
func WithContext(ctx context.Context, rc *Context) context.Context {
	return context.WithValue(ctx, renderContextKey, rc)
}

// From extracts the render Context from ctx, or nil if none is attached.
func From(ctx context.Context) *Context {
	rc, _ := ctx.Value(renderContextKey).(*Context)
	return rc
}

// FromOrNew extracts the render Context from ctx, creating and attaching a
// fresh one when absent. The returned context.Context always carries the
// returned render Context.
func FromOrNew(ctx context.Context, opts ...Option) (context.Context, *Context) {
	if rc := From(ctx); rc != nil {
		return ctx, rc
	}
	rc := New(opts...)
	return WithContext(ctx, rc), rc
}
