package request

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/renderguard/pkg/view"
)

func TestNew(t *testing.T) {
	rc := New()

	if rc.ID() == "" {
		t.Error("ID should not be empty")
	}
	if rc.Logger() == nil {
		t.Error("Logger should default to a discard logger, not nil")
	}
	if rc.Depth() != 0 {
		t.Errorf("Depth() = %d on fresh context, want 0", rc.Depth())
	}

	// IDs are unique per request.
	if New().ID() == rc.ID() {
		t.Error("two contexts should not share an ID")
	}
}

func TestStackLazyInit(t *testing.T) {
	rc := New()

	// Depth does not allocate the stack.
	_ = rc.Depth()

	s := rc.Stack()
	if s == nil {
		t.Fatal("Stack() should allocate on first use")
	}
	if s != rc.Stack() {
		t.Error("Stack() should return the same stack on every call")
	}
}

func TestWithLogger(t *testing.T) {
	logger := log.NewWithOptions(io.Discard, log.Options{})
	rc := New(WithLogger(logger))
	if rc.Logger() == nil {
		t.Error("Logger() should not be nil")
	}
}

func TestFork(t *testing.T) {
	rc := New()
	shared := &struct{ n int }{n: 1}
	rc.Stack().Push(view.NewFrame(shared, "detail"))

	forked := rc.Fork()
	if forked.ID() != rc.ID() {
		t.Error("fork should share the request ID")
	}
	if forked.Depth() != 1 {
		t.Fatalf("fork Depth() = %d, want 1", forked.Depth())
	}

	forked.Stack().Push(view.NewFrame(&struct{ n int }{n: 2}, "teaser"))
	if rc.Depth() != 1 {
		t.Error("push on forked context leaked into the original")
	}
}

func TestForkWithoutStack(t *testing.T) {
	rc := New()
	forked := rc.Fork()
	if forked.Depth() != 0 {
		t.Errorf("fork of fresh context Depth() = %d, want 0", forked.Depth())
	}
	// The fork allocates its own stack independently.
	forked.Stack().Push(view.NewFrame(&struct{}{}, "detail"))
	if rc.Depth() != 0 {
		t.Error("fork stack leaked into the original")
	}
}

func TestContextCarriage(t *testing.T) {
	rc := New()
	ctx := WithContext(context.Background(), rc)

	if got := From(ctx); got != rc {
		t.Error("From should return the attached render context")
	}
	if From(context.Background()) != nil {
		t.Error("From on a bare context should return nil")
	}
}

func TestFromOrNew(t *testing.T) {
	// Absent: creates and attaches.
	ctx, rc := FromOrNew(context.Background())
	if rc == nil {
		t.Fatal("FromOrNew should create a context when absent")
	}
	if From(ctx) != rc {
		t.Error("FromOrNew should attach the created context")
	}

	// Present: reuses.
	ctx2, rc2 := FromOrNew(ctx)
	if rc2 != rc {
		t.Error("FromOrNew should reuse an attached context")
	}
	if ctx2 != ctx {
		t.Error("FromOrNew should not rewrap when already attached")
	}
}
