package domain

import "errors"

// Sentinel errors for the catalog domain. Use errors.Is() to check these.
var (
	// ErrCatererNotFound indicates the requested caterer profile does not exist.
	ErrCatererNotFound = errors.New("caterer not found")

	// ErrCatalogItemExists indicates a menu item or package with the same id already exists.
	ErrCatalogItemExists = errors.New("catalog item already exists")
)
