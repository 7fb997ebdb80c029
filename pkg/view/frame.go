package view

import (
	"fmt"
	"reflect"
)

// Frame identifies one active render invocation: the object being rendered
// plus the name of the view rendering it. Two frames are equal iff both the
// object identity and the view name match.
type Frame struct {
	object any
	view   string
}

// NewFrame creates a frame for the given object and view name.
func NewFrame(object any, view string) Frame {
	return Frame{object: object, view: view}
}

// Object returns the rendered object.
func (f Frame) Object() any { return f.object }

// View returns the view name.
func (f Frame) View() string { return f.view }

// Equal reports whether both frames refer to the same object rendered with
// the same view. Object comparison uses identity, not content equality; see
// SameObject.
func (f Frame) Equal(other Frame) bool {
	return f.view == other.view && SameObject(f.object, other.object)
}

// String formats the frame for log and error messages.
func (f Frame) String() string {
	return fmt.Sprintf("%T with view %q", f.object, f.view)
}

// SameObject reports whether a and b are the same object, not merely equal
// in content. Reference kinds (pointers, maps, slices, channels, functions)
// compare by pointer, so two distinct objects with identical content are
// never the same. Comparable value kinds fall back to ==, since a copied
// value has no identity apart from its content. Non-comparable composites
// never match.
//
// Render targets are expected to be pointers to content objects; value-kind
// targets are supported but cannot be distinguished from copies.
func SameObject(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}
	switch ra.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return ra.Pointer() == rb.Pointer()
	default:
		if !ra.Type().Comparable() {
			return false
		}
		return a == b
	}
}
