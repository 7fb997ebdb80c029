package view

// Stack is the ordered sequence of frames active within one request.
// Insertion order is render nesting order. The guard maintains the invariant
// that no two equal frames coexist on the stack.
//
// A Stack is owned by a single request and mutated sequentially as nested
// renders enter and leave. It is not safe for concurrent use; parallel
// sub-render branches must operate on independent copies (see Fork).
type Stack struct {
	frames []Frame
}

// NewStack creates an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push appends a frame to the top of the stack.
func (s *Stack) Push(f Frame) {
	s.frames = append(s.frames, f)
}

// Contains reports whether a frame equal to f is on the stack. Membership is
// a linear scan; nesting depth stays small enough that a set buys nothing.
func (s *Stack) Contains(f Frame) bool {
	for _, active := range s.frames {
		if active.Equal(f) {
			return true
		}
	}
	return false
}

// Remove deletes the first frame equal to f and reports whether one was
// found. Removing an absent frame is a no-op; unrelated frames are never
// touched.
func (s *Stack) Remove(f Frame) bool {
	for i, active := range s.frames {
		if active.Equal(f) {
			s.frames = append(s.frames[:i], s.frames[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of active frames.
func (s *Stack) Len() int {
	return len(s.frames)
}

// Frames returns a copy of the active frames in nesting order.
func (s *Stack) Frames() []Frame {
	out := make([]Frame, len(s.frames))
	copy(out, s.frames)
	return out
}

// Fork returns an independent snapshot of the stack. Each parallel
// sub-render branch within one request must fork so that sibling branches
// neither race nor see each other's frames as recursion.
func (s *Stack) Fork() *Stack {
	forked := &Stack{frames: make([]Frame, len(s.frames))}
	copy(forked.frames, s.frames)
	return forked
}
