package domain

import "errors"

var (
	// ErrConnection: store unreachable or misconfigured.
	ErrConnection = errors.New("showcase store unavailable")
	// ErrQuery: statement rejected by the store or rows could not be scanned.
	ErrQuery    = errors.New("showcase query failed")
	ErrTemplate = errors.New("template unavailable")
	ErrNotFound = errors.New("showcase item not found")
)
