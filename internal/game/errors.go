package game

import "errors"

var (
	// ErrInvalidConfiguration is returned for bad tempo/range/geometry
	// values. Fails fast, non-recoverable for that call.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrSensorUnavailable blocks starting a session while the tracking
	// collaborator reports no readiness. Not a runtime fault.
	ErrSensorUnavailable = errors.New("hand tracking unavailable")
)
