package states

import "errors"

var (
	// ErrInvalidState is returned for an empty or unregistered state ID.
	ErrInvalidState = errors.New("invalid state")

	// ErrRedundantState is returned when the requested state is already active.
	ErrRedundantState = errors.New("state already active")

	// ErrAlreadyStarted is returned by Startup on a manager that is running
	// or has a transition pending.
	ErrAlreadyStarted = errors.New("state manager already started")

	// ErrConstruction wraps failures of a state factory.
	ErrConstruction = errors.New("state construction failed")

	// ErrDuplicateState is returned when registering an ID twice.
	ErrDuplicateState = errors.New("state already registered")
)
