package surface

import "fmt"

// ErrorKind classifies a surface calculation failure so callers can react
// differently to each one.
type ErrorKind int

const (
	// InputNotFound means the potentials CSV could not be opened.
	InputNotFound ErrorKind = iota
	// MalformedRow means the CSV was missing a required column or a row
	// carried an unparsable Potential value.
	MalformedRow
	// WriteFailure means an output artifact could not be written.
	WriteFailure
)

func (k ErrorKind) String() string {
	switch k {
	case InputNotFound:
		return "input not found"
	case MalformedRow:
		return "malformed row"
	case WriteFailure:
		return "write failure"
	}
	return "unknown"
}

// Error is a surface calculation failure tagged with its kind. The original
// cause is preserved as context.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("surface calculation: %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
