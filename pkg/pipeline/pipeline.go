// Package pipeline provides the guarded render dispatcher.
//
// The dispatcher sits between the host framework and its renderers: every
// delegated render step goes through the recursion guard, so a template that
// includes itself (directly or through a chain of other templates) fails fast
// with a recursion error instead of looping until the stack blows.
//
// # Usage
//
// Create a Runner around the host renderer and execute render calls:
//
//	runner := pipeline.NewRunner(hostRenderer, nil, logger)
//	err := runner.Execute(ctx, article, "detail")
//
// Render independent siblings in parallel, each on a forked render context:
//
//	err := runner.ExecuteEach(ctx, []any{teaser1, teaser2}, "teaser")
package pipeline

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/renderguard/pkg/errors"
)

// DefaultMaxDepth bounds render nesting when the host does not configure a
// limit. Rendering nesting rarely exceeds a few dozen levels; anything close
// to this bound is a template bug the recursion check did not catch (for
// example a cycle through ever-changing objects).
const DefaultMaxDepth = 64

// Options contains configuration for guarded render dispatch.
type Options struct {
	// Enabled toggles the recursion guard. Disabled dispatch delegates
	// straight to the renderer.
	Enabled bool `toml:"enabled"`

	// MaxDepth is the render nesting limit. Zero applies DefaultMaxDepth;
	// negative disables the limit entirely.
	MaxDepth int `toml:"max_depth"`

	// Logger receives dispatch and detection events.
	Logger *log.Logger `toml:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `toml:"-"`
}

// DefaultOptions returns options with the guard enabled and default limits.
func DefaultOptions() Options {
	return Options{Enabled: true}
}

// ValidateAndSetDefaults checks fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.MaxDepth == 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.MaxDepth < 0 {
		o.MaxDepth = 0 // unlimited
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// ValidateView checks that a view name is usable for dispatch.
func ValidateView(view string) error {
	return errors.ValidateViewName(view)
}
