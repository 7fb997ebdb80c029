// Package pkg provides the core libraries for renderguard, a request-scoped
// recursion guard for server-side template rendering pipelines.
//
// # Overview
//
// A rendering pipeline that lets templates include other templates can loop:
// a view renders an object, which includes a view that renders the same
// object with the same view again, forever. renderguard tracks the active
// (object, view) pairs per request and aborts the render path that would
// re-enter one of them.
//
// The typical flow through renderguard:
//
//	Host render call
//	         ↓
//	    [pipeline] package (guarded dispatch)
//	         ↓
//	    [guard] package (enter → render → leave)
//	         ↓
//	    [request] / [view] packages (per-request frame stack)
//	         ↓
//	    Host renderer output
//
// # Quick Start
//
// Wrap the host renderer and dispatch through the runner:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/renderguard/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(hostRenderer, nil, logger)
//	if err := runner.Execute(context.Background(), article, "detail"); err != nil {
//	    // RECURSION_DETECTED errors identify the offending (object, view)
//	}
//
// # Main Packages
//
// [view] - Rendering vocabulary: the Renderer capability interface, the
// Frame identifying one active render invocation (object identity + view
// name), and the per-request call Stack.
//
// [guard] - The recursion guard: Enter/Leave around each delegated render
// step, and Wrap to turn any Renderer into a guarded one.
//
// [request] - Typed per-request render context owning the frame stack, with
// context.Context carriage and Fork for parallel sub-render branches.
//
// [pipeline] - Guarded render dispatch: options, TOML config, and a Runner
// used by hosts as the entry point for render calls.
//
// [errors] - Structured error codes shared across the library.
//
// [observability] - Optional hooks for metrics and tracing backends.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/guard/...    # Specific package
//	go test -run Example       # Examples only
//
// [view]: https://pkg.go.dev/github.com/matzehuels/renderguard/pkg/view
// [guard]: https://pkg.go.dev/github.com/matzehuels/renderguard/pkg/guard
// [request]: https://pkg.go.dev/github.com/matzehuels/renderguard/pkg/request
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/renderguard/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/renderguard/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/renderguard/pkg/observability
package pkg
