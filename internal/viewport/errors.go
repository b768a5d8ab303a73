package viewport

import "errors"

// Errors returned by viewport operations.
var (
	// ErrUnresolvedHome indicates a rectangle whose home is still a label.
	ErrUnresolvedHome = errors.New("viewport home is not resolved")

	// ErrInvalidRectangle indicates a home that is not a cell or label, or a
	// negative dimension.
	ErrInvalidRectangle = errors.New("invalid viewport rectangle")

	// ErrNoSheet indicates a layout requested without a sheet.
	ErrNoSheet = errors.New("no sheet")
)
