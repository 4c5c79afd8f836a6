package auth

import (
	"crypto/hmac"
	"net/http"
	"strconv"
)

// Wire names of the authentication headers.
const (
	AccountHeader   = "X-ACCT-ID"
	TimestampHeader = "X-TIMESTAMP"
	SignatureHeader = "X-SIGNATURE"
)

// Headers are the headers that are used to authenticate a request.
type Headers struct {
	AccountID string `header:"X-ACCT-ID"`
	Timestamp string `header:"X-TIMESTAMP"`
	Signature string `header:"X-SIGNATURE" doorpasses:"sensitive"`
}

// NewHeaders builds the authentication headers for a request whose
// exact body bytes are body. The timestamp is a Unix time in seconds.
func NewHeaders(secret Secret, accountID string, timestamp int64, body []byte) (*Headers, error) {
	signature, err := SignBytes(secret, timestamp, body)
	if err != nil {
		return nil, err
	}
	return &Headers{
		AccountID: accountID,
		Timestamp: strconv.FormatInt(timestamp, 10),
		Signature: signature,
	}, nil
}

// HeadersFromRequest extracts the authentication headers from req.
// Absent headers come back as empty strings; [Headers.SigningComponents]
// reports them as errors.
func HeadersFromRequest(req *http.Request) *Headers {
	return &Headers{
		AccountID: req.Header.Get(AccountHeader),
		Timestamp: req.Header.Get(TimestampHeader),
		Signature: req.Header.Get(SignatureHeader),
	}
}

// Apply sets the authentication headers on req.
func (h *Headers) Apply(req *http.Request) {
	req.Header.Set(AccountHeader, h.AccountID)
	req.Header.Set(TimestampHeader, h.Timestamp)
	req.Header.Set(SignatureHeader, h.Signature)
}

// Equal returns true if the headers are equal.
//
// It compares all three headers using hmac.Equal to prevent timing
// attacks.
func (h *Headers) Equal(other *Headers) bool {
	accountMatches := hmac.Equal([]byte(h.AccountID), []byte(other.AccountID))
	timestampMatches := hmac.Equal([]byte(h.Timestamp), []byte(other.Timestamp))
	signatureMatches := hmac.Equal([]byte(h.Signature), []byte(other.Signature))
	return accountMatches && timestampMatches && signatureMatches
}

// SigningComponents returns the parsed timestamp and the presented
// signature carried by the headers.
func (h *Headers) SigningComponents() (timestamp int64, signature string, err error) {
	switch {
	case h.AccountID == "":
		err = ErrNoAccountHeader
		return
	case h.Timestamp == "":
		err = ErrNoTimestampHeader
		return
	case h.Signature == "":
		err = ErrNoSignatureHeader
		return
	}

	timestamp, err = strconv.ParseInt(h.Timestamp, 10, 64)
	if err != nil {
		err = ErrNoTimestampHeader
		return
	}

	signature = h.Signature
	return
}

// VerifyRequest authenticates an inbound request against the exact
// body bytes the caller read from it. now and tolerance are Unix
// seconds. Missing or malformed headers surface as their specific
// errors; a stale timestamp and a wrong signature both surface as
// [ErrAuthenticationFailed], deliberately indistinguishable.
func VerifyRequest(secret Secret, req *http.Request, body []byte, now, tolerance int64) error {
	timestamp, signature, err := HeadersFromRequest(req).SigningComponents()
	if err != nil {
		return err
	}
	ok, err := VerifyBytes(secret, timestamp, body, signature, now, tolerance)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAuthenticationFailed
	}
	return nil
}
