package roadview

import "errors"

// Sentinel errors for the roadview package. Sub-packages define their
// own package-prefixed sentinels (e.g. mapio.ErrRoadClass) and this
// package wraps them with fmt.Errorf("%w", ...) where useful context is
// available.
var (
	// ErrNilDocument is returned when a Controller is built from a nil Document.
	ErrNilDocument = errors.New("roadview: nil document")

	// ErrInvalidViewState is returned when LoadView cannot parse its input.
	ErrInvalidViewState = errors.New("roadview: malformed view state")
)
