package guard_test

import (
	"context"
	"fmt"

	"github.com/matzehuels/renderguard/pkg/errors"
	"github.com/matzehuels/renderguard/pkg/guard"
	"github.com/matzehuels/renderguard/pkg/request"
	"github.com/matzehuels/renderguard/pkg/view"
)

type article struct {
	Title string
}

// Example demonstrates wrapping a renderer whose template includes itself.
// The second render of the same (object, view) pair is rejected instead of
// looping forever.
func Example() {
	g := guard.New()

	var guarded view.Renderer
	selfInclude := view.RenderFunc(func(ctx context.Context, object any, viewName string) error {
		fmt.Printf("rendering %s\n", viewName)
		return guarded.Render(ctx, object, viewName)
	})
	guarded = g.Wrap(selfInclude)

	ctx := request.WithContext(context.Background(), request.New())
	err := guarded.Render(ctx, &article{Title: "Hello"}, "detail")

	fmt.Println(errors.GetCode(err))
	// Output:
	// rendering detail
	// RECURSION_DETECTED
}
