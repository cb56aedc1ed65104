// pkg/comparator/errors.go
package comparator

import "errors"

var (
	// ErrCatalogUnavailable covers transport and backend failures on any
	// catalog call. It is recoverable by retrying the same user action.
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrNotFound means a detail lookup did not resolve, e.g. the product
	// vanished between listing and picking.
	ErrNotFound = errors.New("product not found")

	// ErrInvalidSlot is returned when a slot index is outside [1, N].
	ErrInvalidSlot = errors.New("invalid slot")

	// ErrFlowClosed is returned when an operation is invoked on a picker
	// flow that has already closed.
	ErrFlowClosed = errors.New("picker flow closed")
)
