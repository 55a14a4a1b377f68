package store

import (
	"tally/internal/receipt"
)

// Record is the stored association between an issued identifier and a
// scored receipt. Records are written once per identifier and never
// mutated afterwards; a duplicate Put replaces the record wholesale.
type Record struct {
	Receipt receipt.Receipt `json:"receipt"`
	Points  int64           `json:"points"`
}

// NotFoundError is returned when no record exists for the requested
// identifier. An unknown identifier is an expected outcome, not a fault;
// callers translate it into their own absence signal.
type NotFoundError struct {
	message string
}

// Error returns a textual description of the error.
func (e *NotFoundError) Error() string {
	return e.message
}

// NewNotFoundError creates a NotFoundError for the given identifier.
func NewNotFoundError(id string) *NotFoundError {
	return &NotFoundError{message: "receipt not found: " + id}
}

// Store is the capability for keeping scored receipts, keyed by their
// issued identifier. Implementations must be safe for concurrent use:
// Put calls under distinct identifiers must not corrupt each other, and
// a Points call must never observe a partially written record.
//
// The store trusts its caller: identifiers and values are not validated.
type Store interface {
	// Put records the receipt and its points under id.
	// A second Put with the same id silently overwrites.
	Put(id string, r receipt.Receipt, points int64) error

	// Points returns the stored points for id.
	// Returns *NotFoundError when no record exists.
	Points(id string) (int64, error)

	// Exists reports whether a record is present for id.
	Exists(id string) bool

	// Close releases any resources held by the backend.
	Close() error
}
