package pathdml

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the engine. Wrapped errors remain detectable
// with errors.Is.
var (
	// ErrParse reports structurally unrecoverable path data. Most anomalies
	// (unknown command letters, surplus coordinate groups) are absorbed by
	// the tolerant parsing policy instead; see Parse.
	ErrParse = errors.New("pathdml: unrecoverable path data")

	// ErrConfiguration reports an invalid viewport or coordinate setup,
	// such as non-positive viewport dimensions.
	ErrConfiguration = errors.New("pathdml: invalid coordinate configuration")

	// ErrTransform reports a degenerate coordinate mapping, such as
	// normalizing against a zero-width or zero-height bounding box.
	ErrTransform = errors.New("pathdml: degenerate transform")

	// ErrArcConversion reports arc parameters that cannot be represented,
	// such as a non-positive radius.
	ErrArcConversion = errors.New("pathdml: invalid arc parameters")

	// ErrInvalidArgument reports an unsupported shape-fit kind or an
	// out-of-range configuration value.
	ErrInvalidArgument = errors.New("pathdml: invalid argument")
)

// GenerationError wraps a transform or arc-conversion failure surfaced while
// emitting markup, tagged with the index of the failing command.
type GenerationError struct {
	// Index is the zero-based index of the command that failed.
	Index int

	// Err is the underlying cause.
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("pathdml: generation failed at command %d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying cause so errors.Is sees through the wrapper.
func (e *GenerationError) Unwrap() error {
	return e.Err
}

// BatchError marks one failed input of a batch, tagged with its position in
// the input slice. It is distinct from GenerationError, whose index counts
// path commands.
type BatchError struct {
	// Input is the zero-based position of the failing path in the batch.
	Input int

	// Err is the underlying cause.
	Err error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("pathdml: path %d: %v", e.Input, e.Err)
}

// Unwrap returns the underlying cause so errors.Is sees through the wrapper.
func (e *BatchError) Unwrap() error {
	return e.Err
}
