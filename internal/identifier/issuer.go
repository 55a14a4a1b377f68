package identifier

import (
	"github.com/google/uuid"
)

// Issuer mints opaque identifiers for accepted receipts.
type Issuer interface {
	// Issue returns a freshly generated identifier on every call.
	Issue() string
}

// UUIDIssuer issues random version 4 UUIDs in their canonical textual
// form. 128 bits of randomness make collisions negligible, so they are
// not handled specially.
type UUIDIssuer struct{}

// Issue returns a new random identifier, e.g.
// "adb6b560-0eef-42bc-9d16-df48f30e89b2".
func (UUIDIssuer) Issue() string {
	return uuid.NewString()
}

// NewUUIDIssuer creates a UUID-based issuer.
func NewUUIDIssuer() UUIDIssuer {
	return UUIDIssuer{}
}

// Compile-time check: UUIDIssuer implements Issuer.
var _ Issuer = UUIDIssuer{}
