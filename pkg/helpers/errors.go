package helpers

import "errors"

var (
	// ErrInvalidOptions reports malformed or contradictory helper options.
	ErrInvalidOptions = errors.New("helpers: invalid options")
	// ErrInvalidState reports calls made in the wrong builder state, such as
	// adding a divider outside a dropdown or closing a form that was never
	// opened.
	ErrInvalidState = errors.New("helpers: invalid state")
)
