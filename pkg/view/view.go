// Package view defines the rendering vocabulary shared by the guard and the
// dispatcher: the Renderer capability interface, the Frame identifying one
// active render invocation, and the per-request call Stack of frames.
//
// A view is a named template applied to a content object. How a view name is
// resolved to a template and how output is serialized are owned by the host
// rendering framework; this package only models the (object, view) pairs that
// are active while a request renders.
package view

import "context"

// Renderer renders an object with a named view.
//
// Implementations are provided by the host framework. Render may recursively
// invoke the same render path for nested content, which is exactly the case
// the guard package protects against.
type Renderer interface {
	Render(ctx context.Context, object any, view string) error
}

// RenderFunc adapts a function to the Renderer interface.
type RenderFunc func(ctx context.Context, object any, view string) error

// Render calls f.
func (f RenderFunc) Render(ctx context.Context, object any, view string) error {
	return f(ctx, object, view)
}
