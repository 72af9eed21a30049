package domain

import "errors"

// Sentinel errors for the orders domain. Use errors.Is() to check these.
var (
	// ErrOrderNotFound indicates the requested order does not exist.
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderExists indicates an order with the same id already exists.
	ErrOrderExists = errors.New("order already exists")
)
