package budgeting

import "errors"

var (
	// ErrInvalidInput signals a structurally malformed pipeline input or output.
	// It indicates a defect, not a business condition.
	ErrInvalidInput = errors.New("invalid pipeline input")
	// ErrConfiguration signals a pricing table missing a required entry with no
	// system default to fall back to.
	ErrConfiguration = errors.New("invalid pricing configuration")
)
