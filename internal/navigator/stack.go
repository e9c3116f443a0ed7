package navigator

import (
	"errors"

	"regiontrip/internal/domain"
)

// DefaultMaxDepth bounds the navigation history.
const DefaultMaxDepth = 64

// ErrStackFull is returned by Push when the stack is at capacity.
var ErrStackFull = errors.New("navigator: navigation stack is full")

// Stack is a bounded LIFO of navigation frames used for back navigation.
type Stack struct {
	frames []domain.Frame
	max    int
}

// NewStack returns an empty stack holding at most depth frames. A
// non-positive depth selects DefaultMaxDepth.
func NewStack(depth int) *Stack {
	if depth <= 0 {
		depth = DefaultMaxDepth
	}
	return &Stack{max: depth}
}

// Push saves f. The district slice is copied, so later changes by the caller
// don't leak into the saved frame.
func (s *Stack) Push(f domain.Frame) error {
	if len(s.frames) >= s.max {
		return ErrStackFull
	}
	f.Districts = cloneDistricts(f.Districts)
	s.frames = append(s.frames, f)
	return nil
}

// Pop removes and returns the most recent frame.
func (s *Stack) Pop() (domain.Frame, bool) {
	if len(s.frames) == 0 {
		return domain.Frame{}, false
	}
	f := s.frames[len(s.frames)-1]
	s.frames[len(s.frames)-1] = domain.Frame{}
	s.frames = s.frames[:len(s.frames)-1]
	return f, true
}

// Peek returns the most recent frame without removing it.
func (s *Stack) Peek() (domain.Frame, bool) {
	if len(s.frames) == 0 {
		return domain.Frame{}, false
	}
	return s.frames[len(s.frames)-1], true
}

// Len returns the number of saved frames.
func (s *Stack) Len() int { return len(s.frames) }

// Cap returns the maximum number of frames.
func (s *Stack) Cap() int { return s.max }

// IsEmpty reports whether there is nothing to go back to.
func (s *Stack) IsEmpty() bool { return len(s.frames) == 0 }

func cloneDistricts(ds []domain.District) []domain.District {
	if ds == nil {
		return nil
	}
	return append(make([]domain.District, 0, len(ds)), ds...)
}
