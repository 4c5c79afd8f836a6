package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// SignatureLength is the length in characters of a hex-encoded
// signature.
const SignatureLength = 2 * sha256.Size

// CreateSignature encodes payload into its canonical form and signs it
// for the given Unix timestamp. The returned signature is lowercase
// hexadecimal. Fails with [ErrInvalidSecret] for an empty secret and
// with [ErrEncoding] when the payload has no canonical form.
func CreateSignature(secret Secret, timestamp int64, payload Payload) (string, error) {
	if secret == "" {
		return "", ErrInvalidSecret
	}
	canonical, err := EncodePayload(payload)
	if err != nil {
		return "", err
	}
	return SignBytes(secret, timestamp, canonical)
}

// SignBytes signs the exact body bytes as sent on the wire. A request
// without a body signs zero bytes.
func SignBytes(secret Secret, timestamp int64, body []byte) (string, error) {
	mac, err := computeMAC(secret, timestamp, body)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(mac), nil
}

// computeMAC keys HMAC-SHA256 with the secret and runs it over the
// signing string "<timestamp>.<hex of body>". Hex-encoding the body
// keeps the timestamp/body boundary unambiguous for any body content.
func computeMAC(secret Secret, timestamp int64, body []byte) ([]byte, error) {
	if secret == "" {
		return nil, ErrInvalidSecret
	}
	msg := strconv.FormatInt(timestamp, 10) + "." + hex.EncodeToString(body)
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(msg))
	return h.Sum(nil), nil
}
