package auth

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Secret is the account-level shared secret for authenticating
// communication between an SDK client and the DoorPasses platform.
// Both parties hold it out-of-band; it never travels on the wire
// and must never appear in logs or error messages.
type Secret string

// String implements [fmt.Stringer] and always redacts.
func (s Secret) String() string {
	return "(redacted secret)"
}

// GoString implements [fmt.GoStringer] so %#v also redacts.
func (s Secret) GoString() string {
	return `auth.Secret("(redacted secret)")`
}

// Fingerprint returns a short stable identifier for the secret,
// derived via SHA3-256. It is safe to log and lets operators tell
// which secret a client is configured with without revealing it.
func (s Secret) Fingerprint() string {
	sum := sha3.Sum256([]byte(s))
	return hex.EncodeToString(sum[:8])
}

// Payload is a structured request body to be authenticated: a mapping
// of field names to strings, numbers, booleans, nulls, nested payloads
// and sequences of those. Values outside that set have no canonical
// form and fail encoding with [ErrEncoding].
type Payload map[string]any
