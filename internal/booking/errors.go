package booking

import "errors"

var (
	// ErrTimeout means a bounded wait expired.
	ErrTimeout = errors.New("timeout")
	// ErrInteraction means an element was missing or an action on it failed.
	ErrInteraction = errors.New("interaction failed")
	// ErrAuthentication covers sign-in failures other than the success-marker timeout.
	ErrAuthentication = errors.New("authentication failed")
	// ErrNavigation covers failures reaching the appointment page.
	ErrNavigation = errors.New("navigation failed")
)
