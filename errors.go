package frozenidx

import (
	"errors"
	"fmt"

	"github.com/hupe1980/frozenidx/attr"
)

var (
	// ErrNilExtractor is returned when New is called without an extractor.
	ErrNilExtractor = errors.New("extractor must not be nil")

	// ErrUnhashableValue is returned when the extractor produces a value
	// without a stable hash/equality contract (the zero attr.Value).
	// Construction fails as a whole; no partially built index is exposed.
	ErrUnhashableValue = errors.New("unhashable attribute value")
)

// UnhashableValueError reports which object produced an unusable value.
//
// It unwraps to ErrUnhashableValue.
type UnhashableValueError struct {
	// Position is the object's position in the input sequence.
	Position int
	// Kind is the offending value kind.
	Kind attr.Kind
}

func (e *UnhashableValueError) Error() string {
	return fmt.Sprintf("unhashable attribute value (kind %s) for object %d", e.Kind, e.Position)
}

func (e *UnhashableValueError) Unwrap() error { return ErrUnhashableValue }
