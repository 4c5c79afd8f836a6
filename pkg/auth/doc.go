// Package auth implements request authentication for the DoorPasses
// API: canonical payload encoding, signature generation and signature
// verification. Both sides of the protocol hold an account-level
// shared secret and prove possession of it per-request with an
// HMAC-SHA256 signature, without the secret ever travelling on the
// wire.
//
// # Signing
//
// A request is signed by computing
//
//	signature = hex( HMAC-SHA256( secret, "<timestamp>.<hex(body)>" ) )
//
// where timestamp is the sender's Unix time in seconds as a decimal
// string, and body is the exact byte sequence sent on the wire (zero
// bytes for bodyless requests). The signature travels in X-SIGNATURE,
// alongside X-TIMESTAMP and X-ACCT-ID.
//
// # Canonical form
//
// Structured payloads are reduced to bytes with [EncodePayload] before
// signing, so that both parties derive identical bytes from equal
// data. The canonical form is JSON restricted as follows:
//
//   - No insignificant whitespace anywhere.
//   - Object keys sort by byte-wise lexicographic order at every
//     nesting level. Array order is preserved.
//   - Strings escape only the double quote, the backslash, and control
//     characters below U+0020 (\b \t \n \f \r for those that have a
//     short form, lowercase \u00xx otherwise). All other characters,
//     including non-ASCII, are raw UTF-8. Strings that are not valid
//     UTF-8 cannot be encoded.
//   - Integers are exact decimal digits. Floats use the shortest
//     round-trip decimal in the ECMAScript Number-to-string layout:
//     plain decimal notation when the exponent lies in (-7, 21),
//     exponent notation ("1.5e+22", "5e-7") outside it. Negative zero
//     encodes as 0. NaN and infinities cannot be encoded.
//   - true, false and null encode as those literals.
//
// Equal payloads therefore encode to equal bytes regardless of key
// insertion order or of how their numbers were spelled on input.
//
// # Verification
//
// [VerifySignature] recomputes the expected signature and compares in
// constant time, and additionally checks that the claimed timestamp
// lies within a freshness tolerance of the verifier's clock. A failed
// comparison and a stale timestamp are deliberately indistinguishable
// to the caller; only malformed input (empty secret, negative
// tolerance, non-hexadecimal signature, unencodable payload) is
// reported as an error.
package auth
