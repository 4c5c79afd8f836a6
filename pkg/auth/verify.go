package auth

import (
	"crypto/hmac"
	"encoding/hex"
	"fmt"
)

// verdict is the internal outcome of a verification. The public
// surface collapses staleness and mismatch into a single false so
// callers cannot probe which one occurred.
type verdict int

const (
	verdictOK verdict = iota
	verdictStale
	verdictMismatch
)

// VerifySignature reports whether signature authenticates payload at
// the given Unix timestamp, and whether the timestamp lies within
// tolerance seconds of now (inclusive at both edges). A wrong
// signature and a stale timestamp both yield (false, nil); an error is
// returned only for malformed input: an empty secret, a negative
// tolerance, a non-hexadecimal signature, or a payload that cannot be
// canonically encoded.
func VerifySignature(secret Secret, timestamp int64, payload Payload, signature string, now, tolerance int64) (bool, error) {
	canonical, err := EncodePayload(payload)
	if err != nil {
		return false, err
	}
	return VerifyBytes(secret, timestamp, canonical, signature, now, tolerance)
}

// VerifyBytes is [VerifySignature] over the exact body bytes received
// on the wire. A request without a body verifies against zero bytes.
func VerifyBytes(secret Secret, timestamp int64, body []byte, signature string, now, tolerance int64) (bool, error) {
	v, err := verifyBytes(secret, timestamp, body, signature, now, tolerance)
	if err != nil {
		return false, err
	}
	return v == verdictOK, nil
}

func verifyBytes(secret Secret, timestamp int64, body []byte, signature string, now, tolerance int64) (verdict, error) {
	if secret == "" {
		return verdictMismatch, ErrInvalidSecret
	}
	if tolerance < 0 {
		return verdictMismatch, fmt.Errorf("%w: negative tolerance %d", ErrInvalidInput, tolerance)
	}
	presented, err := hex.DecodeString(signature)
	if err != nil {
		return verdictMismatch, fmt.Errorf("%w: signature is not hexadecimal", ErrInvalidInput)
	}

	if delta := now - timestamp; delta > tolerance || delta < -tolerance {
		return verdictStale, nil
	}

	expected, err := computeMAC(secret, timestamp, body)
	if err != nil {
		return verdictMismatch, err
	}
	if !macEqual(presented, expected) {
		return verdictMismatch, nil
	}
	return verdictOK, nil
}

// macEqual compares a presented MAC against the expected one. The
// length check is not constant-time, but MAC length is public; the
// byte comparison is constant-time so timing does not reveal how much
// of a guess was correct.
func macEqual(presented, expected []byte) bool {
	if len(presented) != len(expected) {
		return false
	}
	return hmac.Equal(presented, expected)
}
