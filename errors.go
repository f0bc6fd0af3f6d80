package cut

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidOffset is returned when offset is negative or outside of
	// the cut.
	ErrInvalidOffset = errors.New("invalid offset")
	// ErrInvalidDuration is returned when duration isn't positive.
	ErrInvalidDuration = errors.New("invalid duration")
	// ErrIncompatibleCuts is returned when cuts with different sampling
	// rates, frame shifts or feature dimensions are mixed.
	ErrIncompatibleCuts = errors.New("incompatible cuts")
	// ErrDuplicateID is returned when two cuts in a set share an id.
	ErrDuplicateID = errors.New("duplicate cut id")
	// ErrUnknownRecording is returned when a supervision references a
	// recording that isn't present in the manifests.
	ErrUnknownRecording = errors.New("unknown recording")
	// ErrUnknownCutType is returned when a cut record has unknown type.
	ErrUnknownCutType = errors.New("unknown cut type")
)

// CutError is a failure of batch operation on a single cut.
type CutError struct {
	ID  string
	Err error
}

func (e CutError) Error() string {
	return fmt.Sprintf("cut %s: %v", e.ID, e.Err)
}

// Unwrap returns the cause.
func (e CutError) Unwrap() error {
	return e.Err
}

// BatchError is returned by batch operations with SkipErrors option when
// some of the cuts failed. The result of operation contains all other cuts.
type BatchError struct {
	Errors []CutError
}

func (e *BatchError) Error() string {
	s := make([]string, 0, len(e.Errors))
	for _, ce := range e.Errors {
		s = append(s, ce.Error())
	}
	return strings.Join(s, ", ")
}

// Is checks if any of errors match provided sentinel error.
func (e *BatchError) Is(err error) bool {
	for _, ce := range e.Errors {
		if errors.Is(ce.Err, err) {
			return true
		}
	}
	return false
}

// ret returns untyped nil if there are no errors.
func (e *BatchError) ret() error {
	if len(e.Errors) > 0 {
		return e
	}
	return nil
}
