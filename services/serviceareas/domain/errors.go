package domain

import "errors"

// Sentinel errors for the service-areas domain. Use errors.Is() to check these.
var (
	// ErrServiceAreaNotFound indicates no coverage mapping exists for the
	// pincode/caterer pair.
	ErrServiceAreaNotFound = errors.New("service area not found")
)
