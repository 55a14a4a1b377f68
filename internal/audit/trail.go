package audit

import (
	"tally/internal/receipt"
)

// Trail records every accepted receipt for later auditing. Implementations
// must be safe for concurrent use; recording must never fail a submission.
type Trail interface {
	// Record appends an audit entry for the receipt stored under id with
	// the given points.
	Record(id string, r receipt.Receipt, points int64)
	// Close flushes and releases the underlying sink.
	Close()
}

// NopTrail is a Trail that records nothing. Used when auditing is not
// configured.
type NopTrail struct{}

// Record discards the entry.
func (NopTrail) Record(string, receipt.Receipt, int64) {}

// Close does nothing.
func (NopTrail) Close() {}
