package resolver

import "errors"

// ErrUnrecognizedField matches any ResolutionError of kind UnrecognizedField
var ErrUnrecognizedField = errors.New("unrecognized field")

// Kind classifies a resolution failure
type Kind int

const (
	// UnrecognizedField means the requested name is not a known field
	UnrecognizedField Kind = iota
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case UnrecognizedField:
		return "UnrecognizedField"
	default:
		return "Unknown"
	}
}

// ResolutionError is returned when a requested name cannot be resolved
type ResolutionError struct {
	Kind   Kind
	Name   string
	Detail string
}

// Error returns the detail message
func (e *ResolutionError) Error() string {
	return e.Detail
}

// Is reports whether target is the sentinel for this error's kind
func (e *ResolutionError) Is(target error) bool {
	return e.Kind == UnrecognizedField && target == ErrUnrecognizedField
}

func unrecognized(name string) *ResolutionError {
	return &ResolutionError{
		Kind:   UnrecognizedField,
		Name:   name,
		Detail: "Error " + name,
	}
}
